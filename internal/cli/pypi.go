package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/anaconda/go-packaging-utils/pkg/api"
	"github.com/anaconda/go-packaging-utils/pkg/api/pypi"
)

// newPyPICmd creates the "pypi" command, which fetches package metadata from
// the PyPI JSON API.
func newPyPICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pypi <package> [version]",
		Short: "Fetch package metadata from PyPI",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			client := pypi.NewClient(api.NewClient(api.WithLogger(logger)))

			var (
				meta *pypi.PackageMetadata
				err  error
			)
			if len(args) == 2 {
				meta, err = client.FetchPackageVersionMetadata(cmd.Context(), args[0], args[1])
			} else {
				meta, err = client.FetchPackageMetadata(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name:     %s\n", meta.Info.Name)
			fmt.Fprintf(out, "version:  %s\n", meta.Info.Version)
			fmt.Fprintf(out, "license:  %s\n", meta.Info.License)
			fmt.Fprintf(out, "summary:  %s\n", meta.Info.Summary)
			fmt.Fprintf(out, "source:   %s\n", meta.Info.SourceMetadata.Filename)
			fmt.Fprintf(out, "releases: %d\n", len(meta.Releases))

			versions := make([]string, 0, len(meta.Releases))
			for v := range meta.Releases {
				versions = append(versions, v)
			}
			sort.Strings(versions)
			for _, v := range versions {
				artifact := meta.Releases[v]
				fmt.Fprintf(out, "  %s  %s (%d bytes)\n", v, artifact.Filename, artifact.Size)
			}
			return nil
		},
	}
}
