package ast

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/CesarTecun/Compilador-Cesar/internal/token"
)

// IntegerLiteral is a numeric literal whose textual form had no '.'.
type IntegerLiteral struct {
	Token token.Token
	Value int32
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Literal }
func (il *IntegerLiteral) Pos() token.Position  { return il.Token.Pos }
func (il *IntegerLiteral) String() string       { return strconv.FormatInt(int64(il.Value), 10) }

// FloatLiteral is a numeric literal whose textual form contained a '.'.
type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (fl *FloatLiteral) expressionNode()      {}
func (fl *FloatLiteral) TokenLiteral() string { return fl.Token.Literal }
func (fl *FloatLiteral) Pos() token.Position  { return fl.Token.Pos }
func (fl *FloatLiteral) String() string       { return strconv.FormatFloat(fl.Value, 'g', -1, 64) }

// BooleanLiteral is "verdad" (true) or the accepted false spelling.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (bl *BooleanLiteral) expressionNode()      {}
func (bl *BooleanLiteral) TokenLiteral() string { return bl.Token.Literal }
func (bl *BooleanLiteral) Pos() token.Position  { return bl.Token.Pos }
func (bl *BooleanLiteral) String() string {
	if bl.Value {
		return "verdad"
	}
	return "falso"
}

// StringLiteral holds the string's contents with surrounding quotes already
// stripped; no escape processing is performed.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Literal }
func (sl *StringLiteral) Pos() token.Position  { return sl.Token.Pos }
func (sl *StringLiteral) String() string       { return "\"" + sl.Value + "\"" }

// Identifier is a variable reference.
type Identifier struct {
	Token token.Token
	Name  string
}

func (id *Identifier) expressionNode()      {}
func (id *Identifier) TokenLiteral() string { return id.Token.Literal }
func (id *Identifier) Pos() token.Position  { return id.Token.Pos }
func (id *Identifier) String() string       { return id.Name }

// BinaryExpression is a two-operand operator application. Operator is one of
// "+ - * / % ^ == != < > <= >= && ||".
type BinaryExpression struct {
	Token    token.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (be *BinaryExpression) expressionNode()      {}
func (be *BinaryExpression) TokenLiteral() string { return be.Token.Literal }
func (be *BinaryExpression) Pos() token.Position  { return be.Token.Pos }
func (be *BinaryExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(be.Left.String())
	out.WriteString(" " + be.Operator + " ")
	out.WriteString(be.Right.String())
	out.WriteString(")")
	return out.String()
}

// UnaryExpression is a prefix operator application. Operator is one of "+ - !".
type UnaryExpression struct {
	Token    token.Token
	Operator string
	Operand  Expression
}

func (ue *UnaryExpression) expressionNode()      {}
func (ue *UnaryExpression) TokenLiteral() string { return ue.Token.Literal }
func (ue *UnaryExpression) Pos() token.Position  { return ue.Token.Pos }
func (ue *UnaryExpression) String() string       { return "(" + ue.Operator + ue.Operand.String() + ")" }

// CallExpression is a function call by name, in either expression or
// statement position (an ExpressionStatement wraps it for the latter).
type CallExpression struct {
	Token token.Token
	Name  string
	Args  []Expression
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CallExpression) Pos() token.Position  { return ce.Token.Pos }
func (ce *CallExpression) String() string {
	args := make([]string, len(ce.Args))
	for i, a := range ce.Args {
		args[i] = a.String()
	}
	return ce.Name + "(" + strings.Join(args, ", ") + ")"
}

// Assignment is "name = value", used both as an expression yielding the
// assigned value, and, wrapped in AssignmentStatement, as a statement.
type Assignment struct {
	Token token.Token
	Name  string
	Value Expression
}

func (a *Assignment) expressionNode()      {}
func (a *Assignment) TokenLiteral() string { return a.Token.Literal }
func (a *Assignment) Pos() token.Position  { return a.Token.Pos }
func (a *Assignment) String() string       { return a.Name + " = " + a.Value.String() }
