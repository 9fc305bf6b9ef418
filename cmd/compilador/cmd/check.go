package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [parse-tree.yaml]",
	Short: "Run AST construction and semantic analysis, printing diagnostics",
	Long: `check decodes a serialized parse tree, builds the typed AST, and runs the
semantic analyzer, printing every diagnostic. It never invokes the IR
generator, and exits non-zero only when at least one diagnostic is an error.

Use "-" to read the parse tree from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, args []string) error {
	prog, err := loadProgram(args[0])
	if err != nil {
		return err
	}

	a := analyze(prog)
	printDiagnostics(a)

	if a.HasErrors() {
		return fmt.Errorf("semantic analysis failed")
	}
	return nil
}
