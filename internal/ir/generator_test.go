package ir

import (
	"fmt"
	"os"
	"testing"

	"github.com/CesarTecun/Compilador-Cesar/internal/ast"
	"github.com/CesarTecun/Compilador-Cesar/internal/token"
	"github.com/CesarTecun/Compilador-Cesar/internal/types"
	"github.com/gkampitakis/go-snaps/snaps"
)

func tk(lit string) token.Token {
	return token.Token{Kind: token.IDENT, Literal: lit, Pos: token.Position{Line: 1, Column: 1}}
}

func ident(name string) *ast.Identifier { return &ast.Identifier{Token: tk(name), Name: name} }

func intLit(n int32) *ast.IntegerLiteral { return &ast.IntegerLiteral{Token: tk("n"), Value: n} }

func floatLit(f float64) *ast.FloatLiteral { return &ast.FloatLiteral{Token: tk("f"), Value: f} }

func boolLit(b bool) *ast.BooleanLiteral { return &ast.BooleanLiteral{Token: tk("b"), Value: b} }

func strLit(s string) *ast.StringLiteral { return &ast.StringLiteral{Token: tk("s"), Value: s} }

func block(stmts ...ast.Statement) *ast.Block {
	return &ast.Block{Token: tk("{"), Statements: stmts}
}

func print(args ...ast.Expression) *ast.PrintStatement {
	return &ast.PrintStatement{Token: tk("pintar"), Args: args}
}

func decl(kind types.Kind, name string, value ast.Expression) *ast.Declaration {
	return &ast.Declaration{Token: tk(name), Type: kind, Name: name, Value: value}
}

func runGenerate(t *testing.T, name string, prog *ast.Program) {
	t.Helper()
	g := NewGenerator()
	out, err := g.Generate(prog)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	snaps.MatchSnapshot(t, fmt.Sprintf("%s_ir", name), out)
}

// TestGenerateIntegerPrint mirrors scenario 1: `entero x = 3; pintar(x);`
// should print "3\n" and return 0.
func TestGenerateIntegerPrint(t *testing.T) {
	prog := &ast.Program{
		Token: tk("programa"),
		Name:  "P",
		Main: block(
			decl(types.Int32, "x", intLit(3)),
			print(ident("x")),
		),
	}
	runGenerate(t, "integer_print", prog)
}

// TestGenerateStringConcat mirrors scenario 2: concatenation of two string
// literals must lower through the local concat helper.
func TestGenerateStringConcat(t *testing.T) {
	prog := &ast.Program{
		Token: tk("programa"),
		Name:  "P",
		Main: block(
			decl(types.String, "s", &ast.BinaryExpression{
				Token: tk("+"), Left: strLit("a"), Operator: "+", Right: strLit("b"),
			}),
			print(ident("s")),
		),
	}
	runGenerate(t, "string_concat", prog)
}

// TestGenerateFunctionCall mirrors scenario 4: a user function with a
// parameter and an arithmetic return, called from main.
func TestGenerateFunctionCall(t *testing.T) {
	prog := &ast.Program{
		Token: tk("programa"),
		Name:  "P",
		Functions: []*ast.Function{
			{
				Token:      tk("f"),
				ReturnType: types.Int32,
				Name:       "f",
				Parameters: []*ast.Parameter{{Token: tk("a"), Type: types.Int32, Name: "a"}},
				Body: block(
					&ast.ReturnStatement{Token: tk("ret"), Value: &ast.BinaryExpression{
						Token: tk("+"), Left: ident("a"), Operator: "+", Right: intLit(1),
					}},
				),
			},
		},
		Main: block(
			print(&ast.CallExpression{Token: tk("f"), Name: "f", Args: []ast.Expression{intLit(2)}}),
		),
	}
	runGenerate(t, "function_call", prog)
}

// TestGenerateIfElse mirrors scenario 6: both branches of the if fall
// through to the merge block rather than returning, so the merge block is
// kept and main's epilogue lands in it.
func TestGenerateIfElse(t *testing.T) {
	prog := &ast.Program{
		Token: tk("programa"),
		Name:  "P",
		Main: block(
			decl(types.Int32, "x", intLit(0)),
			&ast.IfStatement{
				Token:     tk("si"),
				Condition: &ast.BinaryExpression{Token: tk("=="), Left: ident("x"), Operator: "==", Right: intLit(0)},
				Then:      block(print(strLit("yes"))),
				Else:      block(print(strLit("no"))),
			},
		),
	}
	runGenerate(t, "if_else", prog)
}

// TestGenerateWhileLoop exercises the test/body/end basic-block wiring for
// "mientras".
func TestGenerateWhileLoop(t *testing.T) {
	prog := &ast.Program{
		Token: tk("programa"),
		Name:  "P",
		Main: block(
			decl(types.Int32, "i", intLit(0)),
			&ast.WhileStatement{
				Token:     tk("mientras"),
				Condition: &ast.BinaryExpression{Token: tk("<"), Left: ident("i"), Operator: "<", Right: intLit(3)},
				Body: block(
					print(ident("i")),
					&ast.AssignmentStatement{Token: tk("i"), Assignment: &ast.Assignment{
						Token: tk("i"), Name: "i",
						Value: &ast.BinaryExpression{Token: tk("+"), Left: ident("i"), Operator: "+", Right: intLit(1)},
					}},
				),
			},
		),
	}
	runGenerate(t, "while_loop", prog)
}

// TestGenerateForLoop exercises init/test/body/update/end block wiring and
// the loop's private init scope.
func TestGenerateForLoop(t *testing.T) {
	prog := &ast.Program{
		Token: tk("programa"),
		Name:  "P",
		Main: block(
			&ast.ForStatement{
				Token: tk("para"),
				Init:  decl(types.Int32, "i", intLit(0)),
				Condition: &ast.BinaryExpression{
					Token: tk("<"), Left: ident("i"), Operator: "<", Right: intLit(5),
				},
				Update: &ast.Assignment{
					Token: tk("i"), Name: "i",
					Value: &ast.BinaryExpression{Token: tk("+"), Left: ident("i"), Operator: "+", Right: intLit(1)},
				},
				Body: block(print(ident("i"))),
			},
		),
	}
	runGenerate(t, "for_loop", prog)
}

// TestGenerateGlobalAndNegativeConst exercises a global declaration with a
// negated numeric literal initializer, the only non-bare-literal constant
// expression a global initializer accepts.
func TestGenerateGlobalAndNegativeConst(t *testing.T) {
	prog := &ast.Program{
		Token: tk("programa"),
		Name:  "P",
		Globals: []*ast.Declaration{
			decl(types.Int32, "limit", &ast.UnaryExpression{Token: tk("-"), Operator: "-", Operand: intLit(10)}),
		},
		Main: block(print(ident("limit"))),
	}
	runGenerate(t, "global_negative_const", prog)
}

// TestGenerateGlobalRejectsNonConstInitializer asserts that a global whose
// initializer is not a literal (or negated literal) fails generation, since
// LLVM globals require a constant expression.
func TestGenerateGlobalRejectsNonConstInitializer(t *testing.T) {
	prog := &ast.Program{
		Token: tk("programa"),
		Name:  "P",
		Globals: []*ast.Declaration{
			decl(types.Int32, "bad", &ast.BinaryExpression{
				Token: tk("+"), Left: intLit(1), Operator: "+", Right: intLit(2),
			}),
		},
		Main: block(),
	}
	g := NewGenerator()
	if _, err := g.Generate(prog); err == nil {
		t.Fatal("expected an error for a non-constant global initializer")
	}
}

// TestGenerateWindowsEXEPause confirms the Windows-EXE build flag affects
// only main's epilogue, inserting a getchar call before the final ret.
func TestGenerateWindowsEXEPause(t *testing.T) {
	prog := &ast.Program{
		Token: tk("programa"),
		Name:  "P",
		Main:  block(print(floatLit(1.5)), print(boolLit(true))),
	}
	g := NewGenerator()
	g.SetWindowsEXE(true)
	out, err := g.Generate(prog)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	snaps.MatchSnapshot(t, "windows_exe_pause_ir", out)
}

func TestMain(m *testing.M) {
	code := m.Run()
	snaps.Clean(m)
	os.Exit(code)
}
