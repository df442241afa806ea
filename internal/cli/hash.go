package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anaconda/go-packaging-utils/pkg/crypto"
)

// newHashCmd creates the "hash" command, which reports the digest formats a
// string satisfies.
func newHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <value>",
		Short: "Report which digest formats a hex string satisfies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := args[0]
			out := cmd.OutOrStdout()

			if !crypto.IsValidHex(value) {
				return fmt.Errorf("not a valid hex string: %s", value)
			}
			fmt.Fprintf(out, "hex:     true\n")
			fmt.Fprintf(out, "md5:     %v\n", crypto.IsValidMD5(value))
			fmt.Fprintf(out, "sha1:    %v\n", crypto.IsValidSHA1(value))
			fmt.Fprintf(out, "sha256:  %v\n", crypto.IsValidSHA256(value))
			return nil
		},
	}
}
