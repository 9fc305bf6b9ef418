// Package ir lowers a semantically validated ast.Program into a textual,
// LLVM-style SSA module targeting x86_64-pc-linux-gnu. It never inspects the
// Semantic Analyzer's diagnostics list itself: callers must confirm
// Analyzer.HasErrors() is false before calling Generate, the same contract
// the teacher's own compile pipeline enforces between its analysis and
// codegen stages.
package ir

import (
	"fmt"
	"strings"

	"github.com/CesarTecun/Compilador-Cesar/internal/ast"
	"github.com/CesarTecun/Compilador-Cesar/internal/types"
)

// funcSig is a function's calling convention: its return Kind and ordered
// parameter Kinds, registered before any body is lowered so a call
// anywhere in the program can be emitted without re-walking the definition.
type funcSig struct {
	name       string
	returnType types.Kind
	paramTypes []types.Kind
}

// Generator holds everything produced by lowering one ast.Program: the
// string/format constant pools, the global variable declarations, the
// registered function signatures, and (while a function or main is being
// lowered) the funcBuilder doing the actual instruction emission.
type Generator struct {
	strPool *constPool
	fmtPool *constPool

	globalScope *varScope
	globalDecls []string

	funcSigs map[string]*funcSig
	funcText []string

	fb *funcBuilder

	// windowsEXE mirrors the driver's "target is Windows EXE" build flag. It
	// affects only main's epilogue: a getchar call before the final ret i32 0,
	// giving a double-clicked console window a chance to be read before it
	// closes. No other lowering decision depends on it.
	windowsEXE bool
}

// NewGenerator creates an empty Generator ready for a single Generate call.
func NewGenerator() *Generator {
	return &Generator{
		strPool:     newConstPool("str"),
		fmtPool:     newConstPool("fmt"),
		globalScope: newVarScope(nil),
		funcSigs:    make(map[string]*funcSig),
	}
}

// SetWindowsEXE sets the "target is Windows EXE" build flag consulted by
// genMain's epilogue.
func (g *Generator) SetWindowsEXE(enabled bool) {
	g.windowsEXE = enabled
}

// Generate lowers prog into a complete textual IR module and returns it as
// a string.
func (g *Generator) Generate(prog *ast.Program) (string, error) {
	for _, fn := range prog.Functions {
		g.registerSignature(fn)
	}

	for _, decl := range prog.Globals {
		if err := g.genGlobal(decl); err != nil {
			return "", err
		}
	}

	for _, fn := range prog.Functions {
		text, err := g.genFunction(fn)
		if err != nil {
			return "", err
		}
		g.funcText = append(g.funcText, text)
	}

	mainText, err := g.genMain(prog.Main)
	if err != nil {
		return "", err
	}

	return g.assemble(mainText), nil
}

func (g *Generator) registerSignature(fn *ast.Function) {
	sig := &funcSig{name: fn.Name, returnType: fn.ReturnType}
	for _, p := range fn.Parameters {
		sig.paramTypes = append(sig.paramTypes, p.Type)
	}
	g.funcSigs[fn.Name] = sig
}

func (g *Generator) assemble(mainText string) string {
	var out strings.Builder
	out.WriteString("target triple = \"x86_64-pc-linux-gnu\"\n\n")
	out.WriteString(externalDeclarations)
	out.WriteString("\n")
	out.WriteString(concatDefinition)
	out.WriteString("\n")
	if len(g.globalDecls) > 0 {
		out.WriteString(strings.Join(g.globalDecls, "\n"))
		out.WriteString("\n\n")
	}
	if decls := g.strPool.render(); decls != "" {
		out.WriteString(decls)
		out.WriteString("\n")
	}
	if decls := g.fmtPool.render(); decls != "" {
		out.WriteString(decls)
		out.WriteString("\n")
	}
	for _, fn := range g.funcText {
		out.WriteString(fn)
		out.WriteString("\n")
	}
	out.WriteString(mainText)
	return out.String()
}

// genGlobal lowers one top-level declaration into an LLVM global variable,
// requiring its initializer to be a literal constant (or the negation of a
// numeric one): global initializers cannot reference runtime computation,
// and this language has no separate "constant expression" grammar to lean
// on for anything richer. A global without an initializer is zero-initialized.
func (g *Generator) genGlobal(decl *ast.Declaration) error {
	text, kind := "zeroinitializer", decl.Type
	if decl.Value != nil {
		var err error
		text, kind, err = g.constOperand(decl.Value)
		if err != nil {
			return fmt.Errorf("ir: global %q: %w", decl.Name, err)
		}
	}

	resolvedType := decl.Type
	if resolvedType == types.Inferred {
		resolvedType = kind
	}

	name := "@" + decl.Name
	g.globalDecls = append(g.globalDecls, fmtf("%s = global %s %s", name, llvmType(resolvedType), text))
	g.globalScope.declare(decl.Name, binding{ptr: name, kind: resolvedType})
	return nil
}

// constOperand renders expr as an LLVM constant expression, the only form a
// global initializer accepts.
func (g *Generator) constOperand(expr ast.Expression) (string, types.Kind, error) {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return intConst(e.Value, types.Int32).text, types.Int32, nil
	case *ast.FloatLiteral:
		return floatConst(e.Value).text, types.Float64, nil
	case *ast.BooleanLiteral:
		return boolConst(e.Value).text, types.Bool, nil
	case *ast.StringLiteral:
		return g.constString(e.Value), types.String, nil
	case *ast.UnaryExpression:
		if e.Operator != "-" {
			return "", types.Invalid, fmt.Errorf("constant initializer cannot use unary operator %q", e.Operator)
		}
		switch inner := e.Operand.(type) {
		case *ast.IntegerLiteral:
			return intConst(-inner.Value, types.Int32).text, types.Int32, nil
		case *ast.FloatLiteral:
			return floatConst(-inner.Value).text, types.Float64, nil
		default:
			return "", types.Invalid, fmt.Errorf("constant initializer cannot negate a non-literal")
		}
	default:
		return "", types.Invalid, fmt.Errorf("constant initializer must be a literal, got %T", expr)
	}
}

// constString interns text as a byte-array global and renders the constant
// bitcast expression that reinterprets it as i8*.
func (g *Generator) constString(text string) string {
	raw := text + "\x00"
	name := g.strPool.intern(raw)
	length := len(raw)
	return fmtf("bitcast ([%d x i8]* %s to i8*)", length, name)
}
