// Command compilador is the driver for the astbuild → semantic → ir
// pipeline: it reads a serialized parse tree, runs AST construction and
// semantic analysis, and (when those succeed) lowers the program to
// textual LLVM IR.
package main

import (
	"fmt"
	"os"

	"github.com/CesarTecun/Compilador-Cesar/cmd/compilador/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
