package astbuild

import (
	"fmt"

	"github.com/CesarTecun/Compilador-Cesar/internal/ast"
	"github.com/CesarTecun/Compilador-Cesar/internal/parsetree"
	"github.com/CesarTecun/Compilador-Cesar/internal/token"
)

// buildStatement dispatches on Kind to the one transformer that handles it.
// AssignmentExpr is the only Kind shared between statement and expression
// position: here it is always wrapped in an AssignmentStatement.
func buildStatement(n parsetree.Node) (ast.Statement, error) {
	switch n.Kind() {
	case parsetree.DeclGlobal, parsetree.DeclTyped, parsetree.DeclInferred:
		return buildDeclaration(n)
	case parsetree.Block:
		return buildBlock(n)
	case parsetree.If:
		return buildIf(n)
	case parsetree.While:
		return buildWhile(n)
	case parsetree.DoWhile:
		return buildDoWhile(n)
	case parsetree.Return:
		return buildReturn(n)
	case parsetree.For:
		return buildFor(n)
	case parsetree.Print:
		return buildPrint(n)
	case parsetree.AssignmentExpr:
		asn, err := buildAssignment(n)
		if err != nil {
			return nil, err
		}
		return &ast.AssignmentStatement{Token: asn.Token, Assignment: asn}, nil
	case parsetree.ExprStatement:
		return buildExprStatement(n)
	default:
		return nil, fmt.Errorf("astbuild: unexpected statement kind %d at %s", n.Kind(), n.Pos())
	}
}

func buildIf(n parsetree.Node) (*ast.IfStatement, error) {
	children := n.Children()
	if len(children) != 3 {
		return nil, fmt.Errorf("astbuild: If at %s must have exactly 3 children, got %d", n.Pos(), len(children))
	}

	cond, err := buildExpression(children[0])
	if err != nil {
		return nil, err
	}
	then, err := buildStatement(children[1])
	if err != nil {
		return nil, err
	}

	is := &ast.IfStatement{Token: tok(n, token.KEYWORD), Condition: cond, Then: then}
	if children[2] != nil {
		elseStmt, err := buildStatement(children[2])
		if err != nil {
			return nil, err
		}
		is.Else = elseStmt
	}
	return is, nil
}

func buildWhile(n parsetree.Node) (*ast.WhileStatement, error) {
	children := n.Children()
	if len(children) != 2 {
		return nil, fmt.Errorf("astbuild: While at %s must have exactly 2 children, got %d", n.Pos(), len(children))
	}
	cond, err := buildExpression(children[0])
	if err != nil {
		return nil, err
	}
	body, err := buildStatement(children[1])
	if err != nil {
		return nil, err
	}
	return &ast.WhileStatement{Token: tok(n, token.KEYWORD), Condition: cond, Body: body}, nil
}

func buildDoWhile(n parsetree.Node) (*ast.DoWhileStatement, error) {
	children := n.Children()
	if len(children) != 2 {
		return nil, fmt.Errorf("astbuild: DoWhile at %s must have exactly 2 children, got %d", n.Pos(), len(children))
	}
	body, err := buildStatement(children[0])
	if err != nil {
		return nil, err
	}
	cond, err := buildExpression(children[1])
	if err != nil {
		return nil, err
	}
	return &ast.DoWhileStatement{Token: tok(n, token.KEYWORD), Body: body, Condition: cond}, nil
}

func buildReturn(n parsetree.Node) (*ast.ReturnStatement, error) {
	children := n.Children()
	rs := &ast.ReturnStatement{Token: tok(n, token.KEYWORD)}
	switch len(children) {
	case 0:
	case 1:
		value, err := buildExpression(children[0])
		if err != nil {
			return nil, err
		}
		rs.Value = value
	default:
		return nil, fmt.Errorf("astbuild: Return at %s has too many children", n.Pos())
	}
	return rs, nil
}

func buildPrint(n parsetree.Node) (*ast.PrintStatement, error) {
	ps := &ast.PrintStatement{Token: tok(n, token.KEYWORD)}
	for _, child := range n.Children() {
		arg, err := buildExpression(child)
		if err != nil {
			return nil, err
		}
		ps.Args = append(ps.Args, arg)
	}
	return ps, nil
}

// buildFor's init slot may be nil, a declaration, or a bare expression
// (assignment or call); the latter two are wrapped in the matching statement
// so ast.ForStatement.Init can stay a plain Statement.
func buildFor(n parsetree.Node) (*ast.ForStatement, error) {
	children := n.Children()
	if len(children) != 4 {
		return nil, fmt.Errorf("astbuild: For at %s must have exactly 4 children, got %d", n.Pos(), len(children))
	}

	fs := &ast.ForStatement{Token: tok(n, token.KEYWORD)}

	if children[0] != nil {
		init, err := buildForInit(children[0])
		if err != nil {
			return nil, err
		}
		fs.Init = init
	}
	if children[1] != nil {
		cond, err := buildExpression(children[1])
		if err != nil {
			return nil, err
		}
		fs.Condition = cond
	}
	if children[2] != nil {
		update, err := buildExpression(children[2])
		if err != nil {
			return nil, err
		}
		fs.Update = update
	}

	body, err := buildStatement(children[3])
	if err != nil {
		return nil, err
	}
	fs.Body = body
	return fs, nil
}

func buildForInit(n parsetree.Node) (ast.Statement, error) {
	switch n.Kind() {
	case parsetree.DeclGlobal, parsetree.DeclTyped, parsetree.DeclInferred:
		return buildDeclaration(n)
	case parsetree.AssignmentExpr:
		asn, err := buildAssignment(n)
		if err != nil {
			return nil, err
		}
		return &ast.AssignmentStatement{Token: asn.Token, Assignment: asn}, nil
	default:
		expr, err := buildExpression(n)
		if err != nil {
			return nil, err
		}
		return &ast.ExpressionStatement{Token: tok(n, token.PUNCT), Expression: expr}, nil
	}
}

func buildExprStatement(n parsetree.Node) (*ast.ExpressionStatement, error) {
	children := n.Children()
	if len(children) != 1 {
		return nil, fmt.Errorf("astbuild: ExprStatement at %s must wrap exactly one expression", n.Pos())
	}
	expr, err := buildExpression(children[0])
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Token: tok(n, token.PUNCT), Expression: expr}, nil
}
