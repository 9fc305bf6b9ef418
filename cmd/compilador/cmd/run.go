package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"

	"github.com/CesarTecun/Compilador-Cesar/internal/ir"
	"github.com/spf13/cobra"
)

var optLevel string

var runCmd = &cobra.Command{
	Use:   "run [parse-tree.yaml]",
	Short: "Build and execute the program via the LLVM JIT (lli)",
	Long: `run performs the same pipeline as build, then pipes the generated IR
through "lli" (optionally pre-processed by "opt -O1|-O2|-O3" when --opt is
given). Neither tool is part of this module: their absence from $PATH is
reported as an ordinary error, not a panic, since they are optional
collaborator processes the driver shells out to.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&optLevel, "opt", "", "optimization level to pipe the module through opt first (O1, O2, or O3)")
	runCmd.Flags().BoolVar(&windowsEXE, "windows-exe", false, "call getchar before main's final return, for a double-clicked console build")
}

func runRun(_ *cobra.Command, args []string) error {
	prog, err := loadProgram(args[0])
	if err != nil {
		return err
	}

	a := analyze(prog)
	printDiagnostics(a)
	if a.HasErrors() {
		return fmt.Errorf("semantic analysis failed, not running")
	}

	gen := ir.NewGenerator()
	gen.SetWindowsEXE(windowsEXE)
	module, err := gen.Generate(prog)
	if err != nil {
		return fmt.Errorf("generating IR: %w", err)
	}

	if optLevel != "" {
		module, err = runOpt(module, optLevel)
		if err != nil {
			return err
		}
	}

	lli, err := exec.LookPath("lli")
	if err != nil {
		return fmt.Errorf("lli not found on $PATH: %w", err)
	}

	logVerbose("executing module via %s", lli)
	execCmd := exec.Command(lli)
	execCmd.Stdin = bytes.NewBufferString(module)
	execCmd.Stdout = os.Stdout
	execCmd.Stderr = os.Stderr
	return execCmd.Run()
}

// runOpt pipes module through "opt -O<level>", returning the optimized IR
// text. level must be "O1", "O2", or "O3".
func runOpt(module, level string) (string, error) {
	optBin, err := exec.LookPath("opt")
	if err != nil {
		return "", fmt.Errorf("opt not found on $PATH: %w", err)
	}

	logVerbose("piping module through %s -%s", optBin, level)
	optCmd := exec.Command(optBin, "-"+level, "-S")
	optCmd.Stdin = bytes.NewBufferString(module)
	var out, stderr bytes.Buffer
	optCmd.Stdout = &out
	optCmd.Stderr = &stderr
	if err := optCmd.Run(); err != nil {
		return "", fmt.Errorf("opt failed: %w: %s", err, stderr.String())
	}
	return out.String(), nil
}
