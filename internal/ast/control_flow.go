package ast

import (
	"bytes"

	"github.com/CesarTecun/Compilador-Cesar/internal/token"
)

// IfStatement is "si (cond) then sino else", with Else nil when there is no
// "sino" branch.
type IfStatement struct {
	Token     token.Token
	Condition Expression
	Then      Statement
	Else      Statement
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Literal }
func (is *IfStatement) Pos() token.Position  { return is.Token.Pos }
func (is *IfStatement) String() string {
	var out bytes.Buffer
	out.WriteString("si (")
	out.WriteString(is.Condition.String())
	out.WriteString(") ")
	out.WriteString(is.Then.String())
	if is.Else != nil {
		out.WriteString(" sino ")
		out.WriteString(is.Else.String())
	}
	return out.String()
}

// WhileStatement is "mientras (cond) hacer body".
type WhileStatement struct {
	Token     token.Token
	Condition Expression
	Body      Statement
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WhileStatement) Pos() token.Position  { return ws.Token.Pos }
func (ws *WhileStatement) String() string {
	return "mientras (" + ws.Condition.String() + ") " + ws.Body.String()
}

// DoWhileStatement is "hacer body mientras (cond);" — the body always runs
// at least once.
type DoWhileStatement struct {
	Token     token.Token
	Body      Statement
	Condition Expression
}

func (dw *DoWhileStatement) statementNode()       {}
func (dw *DoWhileStatement) TokenLiteral() string { return dw.Token.Literal }
func (dw *DoWhileStatement) Pos() token.Position  { return dw.Token.Pos }
func (dw *DoWhileStatement) String() string {
	return "hacer " + dw.Body.String() + " mientras (" + dw.Condition.String() + ");"
}

// ForStatement is "para (init; cond; update) hacer body". Init is a
// Statement because the initializer may be either a Declaration or a bare
// expression statement; Condition and Update are optional (nil means "always
// true" and "no-op", respectively).
type ForStatement struct {
	Token     token.Token
	Init      Statement
	Condition Expression
	Update    Expression
	Body      Statement
}

func (fs *ForStatement) statementNode()       {}
func (fs *ForStatement) TokenLiteral() string { return fs.Token.Literal }
func (fs *ForStatement) Pos() token.Position  { return fs.Token.Pos }
func (fs *ForStatement) String() string {
	var out bytes.Buffer
	out.WriteString("para (")
	if fs.Init != nil {
		out.WriteString(fs.Init.String())
	}
	out.WriteString(" ")
	if fs.Condition != nil {
		out.WriteString(fs.Condition.String())
	}
	out.WriteString("; ")
	if fs.Update != nil {
		out.WriteString(fs.Update.String())
	}
	out.WriteString(") hacer ")
	out.WriteString(fs.Body.String())
	return out.String()
}
