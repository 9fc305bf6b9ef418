// Package cmd implements the compilador CLI's command tree: a root command
// plus build, check, and run subcommands, following the same
// one-file-per-command layout and persistent --verbose flag convention the
// teacher CLI established.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Version is set by build-time ldflags; it defaults to a development
	// marker when built without them.
	Version = "0.1.0-dev"

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "compilador",
	Short: "AST build, semantic analysis, and LLVM IR lowering for the programa/inicio/fin language",
	Long: `compilador drives the astbuild -> semantic -> ir pipeline over a
serialized parse tree, producing either a diagnostic report or a textual
LLVM IR module targeting x86_64-pc-linux-gnu.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostic and timing output")
}
