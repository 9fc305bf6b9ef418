package parsetree

import "github.com/CesarTecun/Compilador-Cesar/internal/token"

// Tree is the reference implementation of Node. A real parser can return any
// type satisfying Node; Tree exists so the AST Builder's tests can hand-build
// fixture trees without a grammar.
type Tree struct {
	kind        Kind
	pos         token.Position
	text        string
	typeKeyword string
	children    []Node
}

func (t *Tree) Kind() Kind            { return t.kind }
func (t *Tree) Pos() token.Position   { return t.pos }
func (t *Tree) Text() string          { return t.text }
func (t *Tree) TypeKeyword() string   { return t.typeKeyword }
func (t *Tree) Children() []Node      { return t.children }

// New builds a Tree node at the given position with no terminal text.
func New(kind Kind, pos token.Position, children ...Node) *Tree {
	return &Tree{kind: kind, pos: pos, children: children}
}

// NewLeaf builds a Tree node that wraps a terminal's text (identifier,
// literal, or operator symbol).
func NewLeaf(kind Kind, pos token.Position, text string, children ...Node) *Tree {
	return &Tree{kind: kind, pos: pos, text: text, children: children}
}

// NewTyped builds a Tree node that additionally carries a type keyword
// (declarations, parameters, function definitions).
func NewTyped(kind Kind, pos token.Position, typeKeyword, text string, children ...Node) *Tree {
	return &Tree{kind: kind, pos: pos, typeKeyword: typeKeyword, text: text, children: children}
}

// Pos1 is a convenience 1:1 position for fixtures that don't care about
// exact source coordinates.
func Pos1(line int) token.Position {
	return token.Position{Line: line, Column: 1, Offset: 0}
}
