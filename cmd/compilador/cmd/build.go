package cmd

import (
	"fmt"
	"os"

	"github.com/CesarTecun/Compilador-Cesar/internal/ir"
	"github.com/spf13/cobra"
)

var (
	outputPath string
	windowsEXE bool
)

var buildCmd = &cobra.Command{
	Use:   "build [parse-tree.yaml]",
	Short: "Run the full pipeline and write the generated LLVM IR module",
	Long: `build decodes a serialized parse tree, builds the AST, runs semantic
analysis, and (only if analysis reports no errors) lowers the program to a
textual LLVM IR module targeting x86_64-pc-linux-gnu.

Diagnostics are always printed; warnings do not prevent IR generation.
Use "-" to read the parse tree from stdin, and -o - to write the module to
stdout instead of a file.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&outputPath, "output", "o", "out.ll", `output path for the generated IR ("-" for stdout)`)
	buildCmd.Flags().BoolVar(&windowsEXE, "windows-exe", false, "call getchar before main's final return, for a double-clicked console build")
}

func runBuild(_ *cobra.Command, args []string) error {
	prog, err := loadProgram(args[0])
	if err != nil {
		return err
	}

	a := analyze(prog)
	printDiagnostics(a)
	if a.HasErrors() {
		return fmt.Errorf("semantic analysis failed, not generating IR")
	}

	logVerbose("generating IR (windows-exe=%v)", windowsEXE)
	gen := ir.NewGenerator()
	gen.SetWindowsEXE(windowsEXE)
	module, err := gen.Generate(prog)
	if err != nil {
		return fmt.Errorf("generating IR: %w", err)
	}

	if outputPath == "-" {
		_, err = fmt.Print(module)
		return err
	}
	logVerbose("writing IR module to %s", outputPath)
	return os.WriteFile(outputPath, []byte(module), 0o644)
}
