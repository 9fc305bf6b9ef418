package ast

import (
	"bytes"

	"github.com/CesarTecun/Compilador-Cesar/internal/token"
)

// AssignmentStatement wraps an Assignment expression used in statement
// position (e.g. "x = x + 1;"). The expression form is used directly inside
// larger expressions and for-loop updates; see Assignment in expressions.go.
type AssignmentStatement struct {
	Token      token.Token
	Assignment *Assignment
}

func (as *AssignmentStatement) statementNode()       {}
func (as *AssignmentStatement) TokenLiteral() string { return as.Token.Literal }
func (as *AssignmentStatement) Pos() token.Position  { return as.Token.Pos }
func (as *AssignmentStatement) String() string       { return as.Assignment.String() + ";" }

// PrintStatement is the "pintar(...)" statement; each argument is printed in
// order, space-separated, with a trailing newline.
type PrintStatement struct {
	Token token.Token
	Args  []Expression
}

func (ps *PrintStatement) statementNode()       {}
func (ps *PrintStatement) TokenLiteral() string { return ps.Token.Literal }
func (ps *PrintStatement) Pos() token.Position  { return ps.Token.Pos }
func (ps *PrintStatement) String() string {
	var out bytes.Buffer
	out.WriteString("pintar(")
	for i, a := range ps.Args {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(a.String())
	}
	out.WriteString(");")
	return out.String()
}

// ReturnStatement is "ret <expr>;" or bare "ret;" (Value is nil for the
// latter, which returns Void).
type ReturnStatement struct {
	Token token.Token
	Value Expression
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReturnStatement) Pos() token.Position  { return rs.Token.Pos }
func (rs *ReturnStatement) String() string {
	if rs.Value == nil {
		return "ret;"
	}
	return "ret " + rs.Value.String() + ";"
}

// ExpressionStatement wraps an expression used for its side effect alone,
// the prototypical case being a bare function call ("f(x);").
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }
func (es *ExpressionStatement) Pos() token.Position  { return es.Token.Pos }
func (es *ExpressionStatement) String() string       { return es.Expression.String() + ";" }
