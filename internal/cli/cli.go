// Package cli implements the paletteatlas command-line interface.
//
// paletteatlas reads a TOML paint list, deduplicates it into a palette,
// lays the palette out in the 256×256 paint texture and reports the
// resulting texture coordinates. The build command also writes the
// texture as an image.
//
// All commands support --verbose (-v) for debug-level logging. The logger
// travels in the command context and is handed to the palette package
// through log/slog.
package cli

import (
	"context"
	"fmt"
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the paletteatlas CLI with the given arguments, logging to
// stderr.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := newRootCmd(stderr)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "paletteatlas",
		Short:         "paletteatlas packs paints into a paint texture",
		Long:          `paletteatlas deduplicates solid colors and linear gradients into a palette, lays them out in a 256x256 RGBA paint texture and reports where each paint landed.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(logOut, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("paletteatlas %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newBuildCmd())
	root.AddCommand(newInspectCmd())

	return root
}
