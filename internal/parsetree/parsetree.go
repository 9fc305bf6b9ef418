// Package parsetree defines the contract between the AST Builder and
// whatever parser front-end produced a parse tree. A parser walks its
// grammar and hands the builder a tree of Node values tagged by Kind; the
// builder never type-switches on a concrete parser type, only on Kind, which
// keeps it decoupled from whichever parser generator produced the tree.
//
// Node intentionally mirrors the shape of an ANTLR rule context: Text is the
// terminal this node wraps (identifier, literal, operator symbol, or type
// keyword) when one applies, and Children holds the ordered rule-node
// children. Meaning is Kind-specific and documented on each Kind constant
// below; several kinds use fixed-arity, nil-padded Children slots (e.g. If
// always has exactly 3 slots, with Children[2] nil when there is no "sino").
package parsetree

import "github.com/CesarTecun/Compilador-Cesar/internal/token"

// Kind tags which grammar production a Node was built from.
type Kind int

const (
	// Program: Text = program name. Children, in source order: zero or
	// more DeclGlobal nodes, then an optional single Functions node, then
	// exactly one ProgramBlock node.
	Program Kind = iota

	// DeclGlobal / DeclTyped: TypeKeyword = declared type. Text =
	// identifier. Children: empty, or exactly one initializer expression.
	DeclGlobal
	DeclTyped

	// DeclInferred: Text = identifier. Children: exactly one initializer
	// expression (required).
	DeclInferred

	// ProgramBlock: Children: exactly one Block node.
	ProgramBlock

	// Block: Children = ordered statement nodes.
	Block

	// Functions: Children = ordered FunctionDef nodes.
	Functions

	// FunctionDef: TypeKeyword = return type ("void" if omitted). Text =
	// function name. Children: zero or more Param nodes followed by
	// exactly one Block node (the body), in that order.
	FunctionDef

	// Param: TypeKeyword = type. Text = identifier.
	Param

	// Print: Children = ordered argument expressions.
	Print

	// If: fixed arity 3: Children[0] = condition, Children[1] = then
	// statement, Children[2] = else statement or nil.
	If

	// While: fixed arity 2: Children[0] = condition, Children[1] = body.
	While

	// DoWhile: fixed arity 2: Children[0] = body, Children[1] = condition.
	DoWhile

	// Return: Children: empty, or exactly one expression.
	Return

	// For: fixed arity 4: Children[0] = init (Decl* node or expression
	// statement, or nil), Children[1] = condition or nil, Children[2] =
	// update expression or nil, Children[3] = body.
	For

	// AssignmentExpr: Text = target identifier. Children: exactly one
	// value expression.
	AssignmentExpr

	// LogicalOr, LogicalAnd, Equality, Comparison, Add, Mul, Pow: fixed
	// arity 2 binary operators. Text = operator symbol (Pow's is always
	// "^" and need not be read from Text).
	LogicalOr
	LogicalAnd
	Equality
	Comparison
	Add
	Mul
	Pow

	// UnaryNot, UnaryPlus, UnaryMinus: fixed arity 1. Children[0] = operand.
	UnaryNot
	UnaryPlus
	UnaryMinus

	// Call: Text = function name. Children = ordered argument expressions,
	// already flattened across any repeated argument-list productions.
	Call

	// Paren: Children[0] = inner expression; the builder unwraps this and
	// emits no AST node of its own.
	Paren

	// Number: Text = literal text, e.g. "3" or "3.5".
	Number

	// Boolean: Text = literal spelling, e.g. "verdad".
	Boolean

	// Text: Text = raw string INCLUDING surrounding quote characters; the
	// builder strips them.
	Text

	// Variable: Text = identifier.
	Variable

	// ExprStatement: Children[0] = the wrapped expression.
	ExprStatement
)

// Node is the concrete parse tree contract the AST Builder consumes.
type Node interface {
	Kind() Kind
	Pos() token.Position
	// Text returns this node's terminal text: an identifier, literal, or
	// operator symbol, depending on Kind. Empty when not applicable.
	Text() string
	// TypeKeyword returns the type keyword attached to this node
	// (declarations, parameters, function return types). Empty when not
	// applicable.
	TypeKeyword() string
	// Children returns this node's ordered rule-node children. Meaning and
	// arity are documented per Kind above; some slots may be nil.
	Children() []Node
}
