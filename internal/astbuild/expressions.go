package astbuild

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/CesarTecun/Compilador-Cesar/internal/ast"
	"github.com/CesarTecun/Compilador-Cesar/internal/parsetree"
	"github.com/CesarTecun/Compilador-Cesar/internal/token"
)

// binaryOperatorKinds are the fixed-arity-2 operator productions; each one's
// operator symbol is read from Text, except Pow, whose symbol is always "^".
var binaryOperatorKinds = map[parsetree.Kind]bool{
	parsetree.LogicalOr:  true,
	parsetree.LogicalAnd: true,
	parsetree.Equality:   true,
	parsetree.Comparison: true,
	parsetree.Add:        true,
	parsetree.Mul:        true,
}

func buildExpression(n parsetree.Node) (ast.Expression, error) {
	switch n.Kind() {
	case parsetree.Number:
		return buildNumber(n)
	case parsetree.Boolean:
		return &ast.BooleanLiteral{Token: tok(n, token.BOOLEAN), Value: n.Text() == "verdad"}, nil
	case parsetree.Text:
		return buildStringLiteral(n)
	case parsetree.Variable:
		return &ast.Identifier{Token: tok(n, token.IDENT), Name: n.Text()}, nil
	case parsetree.Paren:
		return buildParen(n)
	case parsetree.Call:
		return buildCall(n)
	case parsetree.AssignmentExpr:
		return buildAssignment(n)
	case parsetree.UnaryNot:
		return buildUnary(n, "!")
	case parsetree.UnaryPlus:
		return buildUnary(n, "+")
	case parsetree.UnaryMinus:
		return buildUnary(n, "-")
	case parsetree.Pow:
		return buildBinary(n, "^")
	default:
		if binaryOperatorKinds[n.Kind()] {
			return buildBinary(n, n.Text())
		}
		return nil, fmt.Errorf("astbuild: unexpected expression kind %d at %s", n.Kind(), n.Pos())
	}
}

// buildNumber classifies the literal by its textual form alone: any '.'
// makes it a FloatLiteral, otherwise an IntegerLiteral.
func buildNumber(n parsetree.Node) (ast.Expression, error) {
	text := n.Text()
	if strings.Contains(text, ".") {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("astbuild: malformed float literal %q at %s: %w", text, n.Pos(), err)
		}
		return &ast.FloatLiteral{Token: tok(n, token.NUMBER), Value: v}, nil
	}
	v, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("astbuild: malformed integer literal %q at %s: %w", text, n.Pos(), err)
	}
	return &ast.IntegerLiteral{Token: tok(n, token.NUMBER), Value: int32(v)}, nil
}

// buildStringLiteral strips the surrounding quote characters the parse tree
// includes in Text; no escape processing is performed.
func buildStringLiteral(n parsetree.Node) (ast.Expression, error) {
	text := n.Text()
	if len(text) < 2 {
		return nil, fmt.Errorf("astbuild: malformed string literal %q at %s", text, n.Pos())
	}
	return &ast.StringLiteral{Token: tok(n, token.STRING), Value: text[1 : len(text)-1]}, nil
}

// buildParen unwraps a Paren node without emitting any AST node of its own.
func buildParen(n parsetree.Node) (ast.Expression, error) {
	children := n.Children()
	if len(children) != 1 {
		return nil, fmt.Errorf("astbuild: Paren at %s must wrap exactly one expression", n.Pos())
	}
	return buildExpression(children[0])
}

func buildBinary(n parsetree.Node, operator string) (ast.Expression, error) {
	children := n.Children()
	if len(children) != 2 {
		return nil, fmt.Errorf("astbuild: binary expression at %s must have exactly 2 children, got %d", n.Pos(), len(children))
	}
	left, err := buildExpression(children[0])
	if err != nil {
		return nil, err
	}
	right, err := buildExpression(children[1])
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpression{Token: tok(n, token.OPERATOR), Left: left, Operator: operator, Right: right}, nil
}

func buildUnary(n parsetree.Node, operator string) (ast.Expression, error) {
	children := n.Children()
	if len(children) != 1 {
		return nil, fmt.Errorf("astbuild: unary expression at %s must have exactly 1 child, got %d", n.Pos(), len(children))
	}
	operand, err := buildExpression(children[0])
	if err != nil {
		return nil, err
	}
	return &ast.UnaryExpression{Token: tok(n, token.OPERATOR), Operator: operator, Operand: operand}, nil
}

// buildCall flattens its arguments from the (already-flattened) Children
// list: the parse tree contract guarantees repeated argument-list
// productions were merged before reaching the builder.
func buildCall(n parsetree.Node) (ast.Expression, error) {
	ce := &ast.CallExpression{Token: tok(n, token.IDENT), Name: n.Text()}
	for _, child := range n.Children() {
		arg, err := buildExpression(child)
		if err != nil {
			return nil, err
		}
		ce.Args = append(ce.Args, arg)
	}
	return ce, nil
}

func buildAssignment(n parsetree.Node) (*ast.Assignment, error) {
	children := n.Children()
	if len(children) != 1 {
		return nil, fmt.Errorf("astbuild: AssignmentExpr at %s must have exactly 1 child, got %d", n.Pos(), len(children))
	}
	value, err := buildExpression(children[0])
	if err != nil {
		return nil, err
	}
	return &ast.Assignment{Token: tok(n, token.IDENT), Name: n.Text(), Value: value}, nil
}
