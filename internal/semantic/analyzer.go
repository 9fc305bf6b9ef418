// Package semantic walks a validated ast.Program, maintaining a stack of
// lexical scopes, and produces an ordered list of diagnostics. It never
// aborts on error: every diagnostic is appended and the walk continues, so a
// single pass reports every problem in a source file at once.
package semantic

import (
	"fmt"

	"github.com/CesarTecun/Compilador-Cesar/internal/ast"
	"github.com/CesarTecun/Compilador-Cesar/internal/token"
	"github.com/CesarTecun/Compilador-Cesar/internal/types"
)

// Analyzer holds the scope stack and accumulated diagnostics for one
// compilation. It is not safe for concurrent use, nor meant to be reused
// across unrelated programs once Analyze has been called.
type Analyzer struct {
	global      *Scope
	current     *Scope
	diagnostics []Diagnostic
	called      map[string]bool

	// currentFn is the function whose body is being walked, or nil at
	// global/main scope. A Return statement with currentFn == nil is
	// "return outside a function".
	currentFn *Function
}

// NewAnalyzer creates an analyzer with an empty global scope.
func NewAnalyzer() *Analyzer {
	global := newScope(nil)
	return &Analyzer{
		global:  global,
		current: global,
		called:  make(map[string]bool),
	}
}

// Diagnostics returns every error and warning collected, in the order they
// were encountered during the walk.
func (a *Analyzer) Diagnostics() []Diagnostic {
	return a.diagnostics
}

// HasErrors reports whether any collected diagnostic is fatal. IR generation
// must not proceed when this is true.
func (a *Analyzer) HasErrors() bool {
	for _, d := range a.diagnostics {
		if d.IsError() {
			return true
		}
	}
	return false
}

func (a *Analyzer) errorAt(pos token.Position, format string, args ...interface{}) {
	a.diagnostics = append(a.diagnostics, Diagnostic{
		Severity: SeverityError,
		Message:  fmt.Sprintf(format, args...),
		Pos:      pos,
	})
}

func (a *Analyzer) warnAt(pos token.Position, format string, args ...interface{}) {
	a.diagnostics = append(a.diagnostics, Diagnostic{
		Severity: SeverityWarning,
		Message:  fmt.Sprintf(format, args...),
		Pos:      pos,
	})
}

// Analyze walks prog in source order: global declarations, then function
// definitions (each registered into the global scope as it is reached, so a
// function may call itself but not a sibling defined later), then the main
// block.
func (a *Analyzer) Analyze(prog *ast.Program) {
	for _, decl := range prog.Globals {
		a.declareVariable(decl)
	}

	for _, fn := range prog.Functions {
		a.analyzeFunction(fn)
	}

	if prog.Main != nil {
		a.analyzeBlock(prog.Main)
	}

	a.popScope(a.global)
	for _, fn := range a.global.orderedFunctions() {
		if !a.called[fn.Name] {
			a.warnAt(fn.Pos, "Función '%s' fue definida pero nunca llamada.", fn.Name)
		}
	}
}

// pushScope enters a new lexical scope nested in the current one.
func (a *Analyzer) pushScope() *Scope {
	s := newScope(a.current)
	a.current = s
	return s
}

// popScope leaves scope, which must be the current scope, reporting unused-
// and assigned-but-unread-variable warnings for everything it declared.
func (a *Analyzer) popScope(scope *Scope) {
	for _, sym := range scope.orderedVariables() {
		switch {
		case !sym.Read && !sym.Assigned:
			a.warnAt(sym.Pos, "Variable '%s' fue declarada pero nunca utilizada.", sym.Name)
		case sym.Assigned && !sym.Read:
			a.warnAt(sym.Pos, "Variable '%s' fue asignada pero nunca leída.", sym.Name)
		}
	}
	if scope.outer != nil {
		a.current = scope.outer
	}
}

// declareVariable binds decl.Name in the current scope, applying the
// redeclaration, shadowing, initializer-type-match, and inferred-type
// resolution rules. It is used for both global and local declarations.
func (a *Analyzer) declareVariable(decl *ast.Declaration) {
	if _, redeclared := a.current.declaredHere(decl.Name); redeclared {
		a.errorAt(decl.Pos(), "Variable '%s' ya fue declarada en este ámbito.", decl.Name)
	} else if _, shadowed := a.current.resolveVariable(decl.Name); shadowed != nil {
		a.warnAt(decl.Pos(), "Variable '%s' en este bloque oculta una declaración anterior en un ámbito externo.", decl.Name)
	}

	resolvedType := decl.Type
	var exprType types.Kind
	var hasInit bool
	if decl.Value != nil {
		exprType = a.inferType(decl.Value)
		hasInit = true
	}

	switch decl.Type {
	case types.Inferred:
		if hasInit {
			resolvedType = exprType
		} else {
			resolvedType = types.Int32
		}
	default:
		if hasInit && exprType != decl.Type {
			a.errorAt(decl.Pos(), "Tipo incompatible en inicialización de '%s': declarado '%s', pero la expresión es '%s'.",
				decl.Name, decl.Type.Keyword(), keywordOf(exprType))
		}
	}

	sym := &Symbol{Name: decl.Name, Type: resolvedType, Pos: decl.Pos()}
	a.current.declareVariable(sym)
}

// keywordOf renders a types.Kind using the source-level keyword, falling
// back to the Go-side name for Invalid (never produced by a well-formed
// expression, but kept defensive for robustness per the type-inference
// fallback contract).
func keywordOf(k types.Kind) string {
	if k == types.Invalid {
		return k.String()
	}
	return k.Keyword()
}

// analyzeFunction registers fn in the global scope, then walks its body in a
// fresh scope seeded with its parameters.
func (a *Analyzer) analyzeFunction(fn *ast.Function) {
	if a.global.functionDeclaredHere(fn.Name) {
		a.errorAt(fn.Pos(), "Función '%s' ya fue definida.", fn.Name)
	}

	symFn := &Function{Name: fn.Name, ReturnType: fn.ReturnType, Pos: fn.Pos()}
	for _, p := range fn.Parameters {
		symFn.Parameters = append(symFn.Parameters, Parameter{Name: p.Name, Type: p.Type})
	}
	a.global.declareFunction(symFn)

	paramsScope := a.pushScope()
	for _, p := range fn.Parameters {
		paramsScope.declareVariable(&Symbol{Name: p.Name, Type: p.Type, Pos: p.Pos()})
	}

	outerFn := a.currentFn
	a.currentFn = symFn
	if fn.Body != nil {
		a.analyzeBlock(fn.Body)
	}
	a.currentFn = outerFn

	a.popScope(paramsScope)
}
