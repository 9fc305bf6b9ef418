package semantic

import (
	"github.com/CesarTecun/Compilador-Cesar/internal/token"
	"github.com/CesarTecun/Compilador-Cesar/internal/types"
)

// Symbol is one variable binding tracked for the lifetime of its scope. Pos
// is the declaration's source position, used to stamp end-of-scope
// unused/unread warnings at the declaration site rather than the closing
// brace.
type Symbol struct {
	Name     string
	Type     types.Kind
	Assigned bool
	Read     bool
	Pos      token.Position
}

// Parameter is one formal parameter of a Function symbol.
type Parameter struct {
	Name string
	Type types.Kind
}

// Function is one function binding: its declared return type and ordered
// parameter list.
type Function struct {
	Name       string
	ReturnType types.Kind
	Parameters []Parameter
	Pos        token.Position
}

// Scope is one lexical region's variable and function namespaces, linked to
// its enclosing scope. The bottom of the chain (outer == nil) is the global
// scope.
type Scope struct {
	variables map[string]*Symbol
	varOrder  []string // declaration order, for deterministic end-of-scope warnings
	functions map[string]*Function
	funcOrder []string // declaration order, for deterministic uncalled-function warnings
	outer     *Scope
}

func newScope(outer *Scope) *Scope {
	return &Scope{
		variables: make(map[string]*Symbol),
		functions: make(map[string]*Function),
		outer:     outer,
	}
}

// declareVariable binds name to sym in this scope. Callers must check
// declaredHere first: this never reports a redeclaration itself.
func (s *Scope) declareVariable(sym *Symbol) {
	if _, exists := s.variables[sym.Name]; !exists {
		s.varOrder = append(s.varOrder, sym.Name)
	}
	s.variables[sym.Name] = sym
}

// orderedVariables returns this scope's own symbols in declaration order.
func (s *Scope) orderedVariables() []*Symbol {
	syms := make([]*Symbol, len(s.varOrder))
	for i, name := range s.varOrder {
		syms[i] = s.variables[name]
	}
	return syms
}

// orderedFunctions returns this scope's own functions in declaration order.
func (s *Scope) orderedFunctions() []*Function {
	fns := make([]*Function, len(s.funcOrder))
	for i, name := range s.funcOrder {
		fns[i] = s.functions[name]
	}
	return fns
}

// declaredHere reports whether name is bound directly in this scope, without
// walking to outer scopes.
func (s *Scope) declaredHere(name string) (*Symbol, bool) {
	sym, ok := s.variables[name]
	return sym, ok
}

// resolveVariable walks from this scope outward and returns the nearest
// binding of name, along with the scope that owns it.
func (s *Scope) resolveVariable(name string) (*Symbol, *Scope) {
	for sc := s; sc != nil; sc = sc.outer {
		if sym, ok := sc.variables[name]; ok {
			return sym, sc
		}
	}
	return nil, nil
}

// declareFunction binds a function in this scope (used only on the global
// scope, since the language has no nested function definitions).
func (s *Scope) declareFunction(fn *Function) {
	if _, exists := s.functions[fn.Name]; !exists {
		s.funcOrder = append(s.funcOrder, fn.Name)
	}
	s.functions[fn.Name] = fn
}

// functionDeclaredHere reports whether name is bound directly in this scope.
func (s *Scope) functionDeclaredHere(name string) bool {
	_, ok := s.functions[name]
	return ok
}

// resolveFunction walks from this scope outward and returns the nearest
// function binding of name.
func (s *Scope) resolveFunction(name string) (*Function, bool) {
	for sc := s; sc != nil; sc = sc.outer {
		if fn, ok := sc.functions[name]; ok {
			return fn, true
		}
	}
	return nil, false
}
