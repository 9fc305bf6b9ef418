package semantic

import (
	"strings"
	"testing"

	"github.com/CesarTecun/Compilador-Cesar/internal/ast"
	"github.com/CesarTecun/Compilador-Cesar/internal/token"
	"github.com/CesarTecun/Compilador-Cesar/internal/types"
)

func pos(line int) token.Position { return token.Position{Line: line, Column: 1} }

func tk(line int, lit string) token.Token {
	return token.Token{Kind: token.IDENT, Literal: lit, Pos: pos(line)}
}

func ident(line int, name string) *ast.Identifier {
	return &ast.Identifier{Token: tk(line, name), Name: name}
}

func intLit(line int, n int32) *ast.IntegerLiteral {
	return &ast.IntegerLiteral{Token: tk(line, "n"), Value: n}
}

func floatLit(line int, f float64) *ast.FloatLiteral {
	return &ast.FloatLiteral{Token: tk(line, "f"), Value: f}
}

func strLit(line int, s string) *ast.StringLiteral {
	return &ast.StringLiteral{Token: tk(line, "s"), Value: s}
}

func decl(line int, kind types.Kind, name string, value ast.Expression) *ast.Declaration {
	return &ast.Declaration{Token: tk(line, name), Type: kind, Name: name, Value: value}
}

func block(line int, stmts ...ast.Statement) *ast.Block {
	return &ast.Block{Token: tk(line, "{"), Statements: stmts}
}

func messages(diags []Diagnostic) []string {
	var out []string
	for _, d := range diags {
		out = append(out, d.String())
	}
	return out
}

func containsSubstring(diags []Diagnostic, substr string) bool {
	for _, d := range diags {
		if strings.Contains(d.String(), substr) {
			return true
		}
	}
	return false
}

// TestDiagnosticFormat checks the exact wire format of both severities.
func TestDiagnosticFormat(t *testing.T) {
	errD := Diagnostic{Severity: SeverityError, Message: "algo salió mal.", Pos: pos(7)}
	if got, want := errD.String(), "[Línea 7] Error semántico: algo salió mal."; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	warnD := Diagnostic{Severity: SeverityWarning, Message: "cuidado.", Pos: pos(3)}
	if got, want := warnD.String(), "[Línea 3] Advertencia: cuidado."; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	unknownD := Diagnostic{Severity: SeverityError, Message: "oops.", Pos: token.Unknown}
	if got, want := unknownD.String(), "[Línea desconocida] Error semántico: oops."; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestScenarioIntegerPrint mirrors end-to-end scenario 1: no diagnostics.
func TestScenarioIntegerPrint(t *testing.T) {
	prog := &ast.Program{
		Token: tk(1, "programa"), Name: "P",
		Main: block(1,
			decl(1, types.Int32, "x", intLit(1, 3)),
			&ast.PrintStatement{Token: tk(1, "pintar"), Args: []ast.Expression{ident(1, "x")}},
		),
	}
	a := NewAnalyzer()
	a.Analyze(prog)
	if got := a.Diagnostics(); len(got) != 0 {
		t.Fatalf("expected no diagnostics, got %v", messages(got))
	}
}

// TestScenarioTypeMismatchInInitialization mirrors scenario 3: entero x =
// 3.5; produces exactly one type-mismatch error and HasErrors() is true.
func TestScenarioTypeMismatchInInitialization(t *testing.T) {
	prog := &ast.Program{
		Token: tk(1, "programa"), Name: "P",
		Main: block(1, decl(1, types.Int32, "x", floatLit(1, 3.5))),
	}
	a := NewAnalyzer()
	a.Analyze(prog)

	diags := a.Diagnostics()
	if !a.HasErrors() {
		t.Fatalf("expected HasErrors() true, diagnostics: %v", messages(diags))
	}
	if !containsSubstring(diags, "Tipo incompatible en inicialización de 'x'") {
		t.Fatalf("expected a type-mismatch diagnostic, got %v", messages(diags))
	}
}

// TestScenarioUncalledFunctionWarns mirrors scenario 5: a defined-but-never-
// called function produces a warning, not an error, and IR generation is
// still allowed to proceed.
func TestScenarioUncalledFunctionWarns(t *testing.T) {
	prog := &ast.Program{
		Token: tk(1, "programa"), Name: "P",
		Functions: []*ast.Function{
			{
				Token: tk(1, "f"), ReturnType: types.Int32, Name: "f",
				Body: block(1, &ast.ReturnStatement{Token: tk(1, "ret"), Value: intLit(1, 1)}),
			},
		},
		Main: block(1, &ast.PrintStatement{Token: tk(1, "pintar"), Args: []ast.Expression{intLit(1, 1)}}),
	}
	a := NewAnalyzer()
	a.Analyze(prog)

	diags := a.Diagnostics()
	if a.HasErrors() {
		t.Fatalf("expected no errors, got %v", messages(diags))
	}
	if !containsSubstring(diags, "Función 'f' fue definida pero nunca llamada.") {
		t.Fatalf("expected an uncalled-function warning, got %v", messages(diags))
	}
}

// TestRedeclarationInSameScope checks the *Redeclaration* diagnostic kind.
func TestRedeclarationInSameScope(t *testing.T) {
	prog := &ast.Program{
		Token: tk(1, "programa"), Name: "P",
		Main: block(1,
			decl(1, types.Int32, "x", intLit(1, 1)),
			decl(2, types.Int32, "x", intLit(2, 2)),
		),
	}
	a := NewAnalyzer()
	a.Analyze(prog)
	if !containsSubstring(a.Diagnostics(), "ya fue declarada en este ámbito") {
		t.Fatalf("expected a redeclaration error, got %v", messages(a.Diagnostics()))
	}
}

// TestShadowingWarnsExactlyOnce checks that shadowing an outer variable from
// a nested block produces exactly one warning.
func TestShadowingWarnsExactlyOnce(t *testing.T) {
	inner := block(2, decl(2, types.Int32, "x", intLit(2, 9)))
	prog := &ast.Program{
		Token: tk(1, "programa"), Name: "P",
		Main: block(1,
			decl(1, types.Int32, "x", intLit(1, 1)),
			&ast.IfStatement{
				Token:     tk(2, "si"),
				Condition: &ast.BooleanLiteral{Token: tk(2, "b"), Value: true},
				Then:      inner,
			},
		),
	}
	a := NewAnalyzer()
	a.Analyze(prog)

	count := 0
	for _, d := range a.Diagnostics() {
		if strings.Contains(d.String(), "oculta una declaración anterior") {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one shadowing warning, got %d: %v", count, messages(a.Diagnostics()))
	}
}

// TestUndeclaredVariableFallsBackToInt32 checks the *Undeclared variable*
// diagnostic kind and its Int32 fallback so analysis can continue.
func TestUndeclaredVariableFallsBackToInt32(t *testing.T) {
	a := NewAnalyzer()
	got := a.inferType(ident(1, "ghost"))
	if got != types.Int32 {
		t.Fatalf("expected Int32 fallback, got %v", got)
	}
	if !containsSubstring(a.Diagnostics(), "no declarada") {
		t.Fatalf("expected an undeclared-variable error, got %v", messages(a.Diagnostics()))
	}
}

// TestArityMismatchReported checks the *Arity mismatch* diagnostic kind.
func TestArityMismatchReported(t *testing.T) {
	prog := &ast.Program{
		Token: tk(1, "programa"), Name: "P",
		Functions: []*ast.Function{
			{
				Token: tk(1, "f"), ReturnType: types.Int32, Name: "f",
				Parameters: []*ast.Parameter{{Token: tk(1, "a"), Type: types.Int32, Name: "a"}},
				Body:       block(1, &ast.ReturnStatement{Token: tk(1, "ret"), Value: ident(1, "a")}),
			},
		},
		Main: block(1, &ast.PrintStatement{
			Token: tk(2, "pintar"),
			Args:  []ast.Expression{&ast.CallExpression{Token: tk(2, "f"), Name: "f"}},
		}),
	}
	a := NewAnalyzer()
	a.Analyze(prog)
	if !containsSubstring(a.Diagnostics(), "espera 1 argumento(s), pero se proporcionaron 0") {
		t.Fatalf("expected an arity-mismatch error, got %v", messages(a.Diagnostics()))
	}
}

// TestReturnOutsideFunction checks the *Return outside function* diagnostic
// kind: a ret statement directly in main's block.
func TestReturnOutsideFunction(t *testing.T) {
	prog := &ast.Program{
		Token: tk(1, "programa"), Name: "P",
		Main: block(1, &ast.ReturnStatement{Token: tk(1, "ret"), Value: intLit(1, 1)}),
	}
	a := NewAnalyzer()
	a.Analyze(prog)
	if !containsSubstring(a.Diagnostics(), "'ret' fuera de una función") {
		t.Fatalf("expected a return-outside-function error, got %v", messages(a.Diagnostics()))
	}
}

// TestUnusedAndUnreadVariableWarnings checks the *Unused variable* and
// *assigned-but-never-read variable* diagnostic kinds.
func TestUnusedAndUnreadVariableWarnings(t *testing.T) {
	prog := &ast.Program{
		Token: tk(1, "programa"), Name: "P",
		Main: block(1,
			decl(1, types.Int32, "unused", intLit(1, 1)),
			decl(2, types.Int32, "writtenOnly", nil),
			&ast.AssignmentStatement{Token: tk(3, "writtenOnly"), Assignment: &ast.Assignment{
				Token: tk(3, "writtenOnly"), Name: "writtenOnly", Value: intLit(3, 5),
			}},
		),
	}
	a := NewAnalyzer()
	a.Analyze(prog)

	diags := a.Diagnostics()
	if !containsSubstring(diags, "Variable 'unused' fue declarada pero nunca utilizada.") {
		t.Fatalf("expected an unused-variable warning, got %v", messages(diags))
	}
	if !containsSubstring(diags, "Variable 'writtenOnly' fue asignada pero nunca leída.") {
		t.Fatalf("expected an assigned-but-unread warning, got %v", messages(diags))
	}
}

// TestForLoopInitScopeDoesNotLeak checks that a for-loop's init declaration
// is not visible after the loop.
func TestForLoopInitScopeDoesNotLeak(t *testing.T) {
	prog := &ast.Program{
		Token: tk(1, "programa"), Name: "P",
		Main: block(1,
			&ast.ForStatement{
				Token: tk(1, "para"),
				Init:  decl(1, types.Int32, "i", intLit(1, 0)),
				Body:  block(1, &ast.PrintStatement{Token: tk(1, "pintar"), Args: []ast.Expression{ident(1, "i")}}),
			},
			&ast.PrintStatement{Token: tk(2, "pintar"), Args: []ast.Expression{ident(2, "i")}},
		),
	}
	a := NewAnalyzer()
	a.Analyze(prog)
	if !containsSubstring(a.Diagnostics(), "Variable 'i' no declarada.") {
		t.Fatalf("expected 'i' to be out of scope after the loop, got %v", messages(a.Diagnostics()))
	}
}

// TestStringConcatInfersStringType checks that '+' on two cadena operands
// infers to String rather than falling back to Int32.
func TestStringConcatInfersStringType(t *testing.T) {
	prog := &ast.Program{
		Token: tk(1, "programa"), Name: "P",
		Main: block(1, decl(1, types.String, "s", &ast.BinaryExpression{
			Token: tk(1, "+"), Left: strLit(1, "a"), Operator: "+", Right: strLit(1, "b"),
		})),
	}
	a := NewAnalyzer()
	a.Analyze(prog)
	if a.HasErrors() {
		t.Fatalf("expected no errors, got %v", messages(a.Diagnostics()))
	}
}

// TestHasGuaranteedReturnIsNeverConsultedAsAnError preserves the documented
// quirk: a non-Void function with no guaranteed return on every path is
// never diagnosed, even though hasGuaranteedReturn can compute that it is
// missing one.
func TestHasGuaranteedReturnIsNeverConsultedAsAnError(t *testing.T) {
	fn := &ast.Function{
		Token: tk(1, "f"), ReturnType: types.Int32, Name: "f",
		Body: block(1), // empty body, no ret anywhere
	}
	if hasGuaranteedReturn(fn.Body) {
		t.Fatalf("expected hasGuaranteedReturn to report false for an empty body")
	}

	prog := &ast.Program{
		Token: tk(1, "programa"), Name: "P",
		Functions: []*ast.Function{fn},
		Main:      block(1, &ast.PrintStatement{Token: tk(2, "pintar"), Args: []ast.Expression{&ast.CallExpression{Token: tk(2, "f"), Name: "f"}}}),
	}
	a := NewAnalyzer()
	a.Analyze(prog)
	if a.HasErrors() {
		t.Fatalf("missing-return must not be raised as an error, got %v", messages(a.Diagnostics()))
	}
}
