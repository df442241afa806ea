package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. Typically
// called by the main package with values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the pkgutils CLI and returns an error if any command fails.
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext: info level by default, debug with --verbose.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "pkgutils",
		Short:        "pkgutils fetches and validates software package metadata",
		Long:         `pkgutils is a collection of utilities for packaging tooling: it fetches metadata about software packages from PyPI and repo.anaconda.com, validates the responses, and reports them in a uniform shape.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("pkgutils %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newPyPICmd())
	root.AddCommand(newRepodataCmd())
	root.AddCommand(newHashCmd())

	return root.ExecuteContext(ctx)
}
