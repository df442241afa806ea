package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anaconda/go-packaging-utils/pkg/api"
	"github.com/anaconda/go-packaging-utils/pkg/api/repodata"
)

// newRepodataCmd creates the "repodata" command, which fetches the package
// index for one channel/architecture pair from repo.anaconda.com.
func newRepodataCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repodata <channel> <architecture>",
		Short: "Fetch the repodata index for a channel and architecture",
		Long:  `Fetch and validate the repodata.json blob for a publishing channel (e.g. main, free, r, msys2) and architecture subdir (e.g. linux-64, osx-arm64, noarch).`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			client := repodata.NewClient(api.NewClient(api.WithLogger(logger)))

			channel := repodata.Channel(args[0])
			arch := repodata.Architecture(args[1])

			data, err := client.FetchRepodata(cmd.Context(), channel, arch)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "subdir:           %s\n", data.Info.Subdir)
			fmt.Fprintf(out, "repodata version: %d\n", data.RepodataVersion)
			fmt.Fprintf(out, "packages:         %d\n", len(data.Packages))
			fmt.Fprintf(out, "removed:          %d\n", len(data.Removed))
			return nil
		},
	}
}
