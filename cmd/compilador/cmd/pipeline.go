package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/CesarTecun/Compilador-Cesar/internal/ast"
	"github.com/CesarTecun/Compilador-Cesar/internal/astbuild"
	cerrors "github.com/CesarTecun/Compilador-Cesar/internal/errors"
	"github.com/CesarTecun/Compilador-Cesar/internal/parsetree"
	"github.com/CesarTecun/Compilador-Cesar/internal/semantic"
	"github.com/CesarTecun/Compilador-Cesar/internal/token"
)

// logVerbose writes a tracing line to stderr when --verbose is set,
// matching the teacher CLI's own compileVerbose-flag logging style.
func logVerbose(format string, args ...interface{}) {
	if !verbose {
		return
	}
	log.Printf(format, args...)
}

// openInput opens path, or returns stdin when path is "-".
func openInput(path string) (*os.File, error) {
	if path == "-" {
		return os.Stdin, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return f, nil
}

// loadProgram decodes the YAML parse tree at path and runs the AST builder
// over it. Failures here (a malformed parse tree, an unreadable file) are
// driver-level errors, not Semantic Analyzer diagnostics, so they go through
// internal/errors' source-context formatting rather than the fixed
// "[Línea N] ..." wire format. The file is read into memory up front and its
// YAML text is passed as the error's Source. A decode failure carries no
// position, so no source line is shown for it; an AST-build failure is
// placed at the Program node's position, not at the node the builder
// rejected (the builder's own message names that node's position).
func loadProgram(path string) (*ast.Program, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, cerrors.NewCompilerError(token.Unknown, err.Error(), "", path)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, cerrors.NewCompilerError(token.Unknown, err.Error(), "", path)
	}
	source := string(data)

	logVerbose("decoding parse tree from %s", path)
	root, err := parsetree.DecodeYAML(bytes.NewReader(data))
	if err != nil {
		return nil, cerrors.NewCompilerError(token.Unknown, err.Error(), source, path)
	}

	logVerbose("building AST")
	prog, err := astbuild.Build(root)
	if err != nil {
		return nil, cerrors.NewCompilerError(root.Pos(), err.Error(), source, path)
	}
	return prog, nil
}

// analyze runs the semantic analyzer over prog and returns its diagnostics.
func analyze(prog *ast.Program) *semantic.Analyzer {
	logVerbose("running semantic analysis")
	a := semantic.NewAnalyzer()
	a.Analyze(prog)
	return a
}

// printDiagnostics writes every diagnostic to stderr in the order the
// analyzer reported them.
func printDiagnostics(a *semantic.Analyzer) {
	for _, d := range a.Diagnostics() {
		fmt.Fprintln(os.Stderr, d.String())
	}
}
