package ir

import "github.com/CesarTecun/Compilador-Cesar/internal/types"

// binding is where a variable's storage lives: the pointer register (or
// global symbol name) that holds its address, and the Kind of the value
// stored there.
type binding struct {
	ptr  string
	kind types.Kind
}

// varScope is a lexical chain of variable bindings, mirroring the Analyzer's
// own Scope but carrying IR storage locations instead of usage flags.
type varScope struct {
	vars  map[string]binding
	outer *varScope
}

func newVarScope(outer *varScope) *varScope {
	return &varScope{vars: make(map[string]binding), outer: outer}
}

func (s *varScope) declare(name string, b binding) {
	s.vars[name] = b
}

func (s *varScope) resolve(name string) (binding, bool) {
	for sc := s; sc != nil; sc = sc.outer {
		if b, ok := sc.vars[name]; ok {
			return b, true
		}
	}
	return binding{}, false
}
