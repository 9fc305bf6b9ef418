// Package ast defines the typed abstract syntax tree produced by the AST
// Builder. Every node kind is an exhaustive, tagged variant: once built, a
// tree is immutable, and the Semantic Analyzer only annotates an external
// diagnostics list alongside it.
package ast

import (
	"bytes"
	"strings"

	"github.com/CesarTecun/Compilador-Cesar/internal/token"
	"github.com/CesarTecun/Compilador-Cesar/internal/types"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	// TokenLiteral returns the literal text of the node's leading token.
	TokenLiteral() string

	// String renders the node back into source-like text, for debugging and
	// round-trip tests.
	String() string

	// Pos returns the position of the node's leading token, for diagnostics.
	Pos() token.Position
}

// Expression is any node that yields a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action without itself yielding a
// value (though it may contain expressions that do).
type Statement interface {
	Node
	statementNode()
}

// Program is the root of the tree: a program name, its global declarations,
// its function definitions, and the main block that runs them.
type Program struct {
	Token     token.Token
	Name      string
	Globals   []*Declaration
	Functions []*Function
	Main      *Block
}

func (p *Program) TokenLiteral() string { return p.Token.Literal }
func (p *Program) Pos() token.Position  { return p.Token.Pos }
func (p *Program) String() string {
	var out bytes.Buffer
	out.WriteString("programa ")
	out.WriteString(p.Name)
	out.WriteString("\n")
	for _, g := range p.Globals {
		out.WriteString(g.String())
		out.WriteString("\n")
	}
	if len(p.Functions) > 0 {
		out.WriteString("funciones\n")
		for _, f := range p.Functions {
			out.WriteString(f.String())
			out.WriteString("\n")
		}
	}
	out.WriteString("inicio\n")
	if p.Main != nil {
		out.WriteString(p.Main.String())
	}
	out.WriteString("fin")
	return out.String()
}

// Declaration declares one variable, optionally with an initializer. It
// doubles as both a global declaration (Program.Globals) and a local
// declaration statement (inside a Block); Type may be types.Inferred, in
// which case Value must be non-nil and the real type is resolved during
// semantic analysis.
type Declaration struct {
	Token token.Token
	Type  types.Kind
	Name  string
	Value Expression
}

func (d *Declaration) statementNode()       {}
func (d *Declaration) TokenLiteral() string { return d.Token.Literal }
func (d *Declaration) Pos() token.Position  { return d.Token.Pos }
func (d *Declaration) String() string {
	var out bytes.Buffer
	out.WriteString(d.Type.Keyword())
	out.WriteString(" ")
	out.WriteString(d.Name)
	if d.Value != nil {
		out.WriteString(" = ")
		out.WriteString(d.Value.String())
	}
	out.WriteString(";")
	return out.String()
}

// Parameter is one formal parameter of a function definition.
type Parameter struct {
	Token token.Token
	Type  types.Kind
	Name  string
}

func (p *Parameter) TokenLiteral() string { return p.Token.Literal }
func (p *Parameter) Pos() token.Position  { return p.Token.Pos }
func (p *Parameter) String() string       { return p.Type.Keyword() + " " + p.Name }

// Function is a user-defined function: its declared return type, name,
// ordered parameters, and body block.
type Function struct {
	Token      token.Token
	ReturnType types.Kind
	Name       string
	Parameters []*Parameter
	Body       *Block
}

func (f *Function) TokenLiteral() string { return f.Token.Literal }
func (f *Function) Pos() token.Position  { return f.Token.Pos }
func (f *Function) String() string {
	var out bytes.Buffer
	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.String()
	}
	out.WriteString(f.ReturnType.Keyword())
	out.WriteString(" ")
	out.WriteString(f.Name)
	out.WriteString("(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") ")
	if f.Body != nil {
		out.WriteString(f.Body.String())
	}
	return out.String()
}

// Block is an ordered list of statements; it is itself a Statement so it can
// appear wherever a single statement is expected (if/while/for bodies).
type Block struct {
	Token      token.Token
	Statements []Statement
}

func (b *Block) statementNode()       {}
func (b *Block) TokenLiteral() string { return b.Token.Literal }
func (b *Block) Pos() token.Position  { return b.Token.Pos }
func (b *Block) String() string {
	var out bytes.Buffer
	out.WriteString("{\n")
	for _, s := range b.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	out.WriteString("}")
	return out.String()
}
