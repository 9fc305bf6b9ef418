// Package astbuild transforms a parsetree.Node produced by an external
// parser front-end into the typed, immutable tree defined by package ast.
// Every transformer dispatches on parsetree.Kind, never on the concrete type
// of the Node it was given, so the builder stays decoupled from whichever
// parser generator produced the tree.
package astbuild

import (
	"fmt"

	"github.com/CesarTecun/Compilador-Cesar/internal/ast"
	"github.com/CesarTecun/Compilador-Cesar/internal/parsetree"
	"github.com/CesarTecun/Compilador-Cesar/internal/token"
	"github.com/CesarTecun/Compilador-Cesar/internal/types"
)

// Build transforms root, which must be a Program node, into an *ast.Program.
// It reports an error for any shape the parse tree contract does not allow
// for a given Kind (wrong arity, an unresolvable type keyword); a
// well-formed tree from a conforming parser never triggers one.
func Build(root parsetree.Node) (*ast.Program, error) {
	if root.Kind() != parsetree.Program {
		return nil, fmt.Errorf("astbuild: expected Program node at %s, got kind %d", root.Pos(), root.Kind())
	}
	return buildProgram(root)
}

func tok(n parsetree.Node, kind token.Kind) token.Token {
	return token.Token{Kind: kind, Literal: n.Text(), Pos: n.Pos()}
}

func buildProgram(n parsetree.Node) (*ast.Program, error) {
	prog := &ast.Program{Token: tok(n, token.KEYWORD), Name: n.Text()}

	for _, child := range n.Children() {
		switch child.Kind() {
		case parsetree.DeclGlobal:
			decl, err := buildDeclaration(child)
			if err != nil {
				return nil, err
			}
			prog.Globals = append(prog.Globals, decl)
		case parsetree.Functions:
			fns, err := buildFunctions(child)
			if err != nil {
				return nil, err
			}
			prog.Functions = fns
		case parsetree.ProgramBlock:
			block, err := buildProgramBlock(child)
			if err != nil {
				return nil, err
			}
			prog.Main = block
		default:
			return nil, fmt.Errorf("astbuild: unexpected child kind %d of Program at %s", child.Kind(), child.Pos())
		}
	}
	return prog, nil
}

func buildProgramBlock(n parsetree.Node) (*ast.Block, error) {
	children := n.Children()
	if len(children) != 1 || children[0].Kind() != parsetree.Block {
		return nil, fmt.Errorf("astbuild: ProgramBlock at %s must wrap exactly one Block", n.Pos())
	}
	return buildBlock(children[0])
}

func buildBlock(n parsetree.Node) (*ast.Block, error) {
	block := &ast.Block{Token: tok(n, token.PUNCT)}
	for _, child := range n.Children() {
		stmt, err := buildStatement(child)
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	return block, nil
}

func buildFunctions(n parsetree.Node) ([]*ast.Function, error) {
	var fns []*ast.Function
	for _, child := range n.Children() {
		if child.Kind() != parsetree.FunctionDef {
			return nil, fmt.Errorf("astbuild: expected FunctionDef at %s, got kind %d", child.Pos(), child.Kind())
		}
		fn, err := buildFunctionDef(child)
		if err != nil {
			return nil, err
		}
		fns = append(fns, fn)
	}
	return fns, nil
}

// buildFunctionDef expects Children to be zero or more Param nodes followed
// by exactly one Block (the body); an empty return-type keyword means the
// source omitted the return type, defaulting to void.
func buildFunctionDef(n parsetree.Node) (*ast.Function, error) {
	children := n.Children()
	if len(children) == 0 || children[len(children)-1].Kind() != parsetree.Block {
		return nil, fmt.Errorf("astbuild: FunctionDef at %s must end in a Block", n.Pos())
	}

	returnType := types.Void
	if kw := n.TypeKeyword(); kw != "" {
		t, ok := types.FromKeyword(kw)
		if !ok {
			return nil, fmt.Errorf("astbuild: unknown return type keyword %q at %s", kw, n.Pos())
		}
		returnType = t
	}

	fn := &ast.Function{Token: tok(n, token.IDENT), ReturnType: returnType, Name: n.Text()}

	for _, child := range children[:len(children)-1] {
		if child.Kind() != parsetree.Param {
			return nil, fmt.Errorf("astbuild: expected Param at %s, got kind %d", child.Pos(), child.Kind())
		}
		param, err := buildParam(child)
		if err != nil {
			return nil, err
		}
		fn.Parameters = append(fn.Parameters, param)
	}

	body, err := buildBlock(children[len(children)-1])
	if err != nil {
		return nil, err
	}
	fn.Body = body
	return fn, nil
}

func buildParam(n parsetree.Node) (*ast.Parameter, error) {
	t, ok := types.FromKeyword(n.TypeKeyword())
	if !ok {
		return nil, fmt.Errorf("astbuild: unknown parameter type keyword %q at %s", n.TypeKeyword(), n.Pos())
	}
	return &ast.Parameter{Token: tok(n, token.IDENT), Type: t, Name: n.Text()}, nil
}

// buildDeclaration handles DeclGlobal, DeclTyped, and DeclInferred alike: the
// only difference is where the declared type comes from and whether an
// initializer is required.
func buildDeclaration(n parsetree.Node) (*ast.Declaration, error) {
	decl := &ast.Declaration{Token: tok(n, token.IDENT), Name: n.Text()}

	if n.Kind() == parsetree.DeclInferred {
		decl.Type = types.Inferred
	} else {
		t, ok := types.FromKeyword(n.TypeKeyword())
		if !ok {
			return nil, fmt.Errorf("astbuild: unknown declared type keyword %q at %s", n.TypeKeyword(), n.Pos())
		}
		decl.Type = t
	}

	children := n.Children()
	switch len(children) {
	case 0:
		if n.Kind() == parsetree.DeclInferred {
			return nil, fmt.Errorf("astbuild: inferred declaration of %q at %s requires an initializer", n.Text(), n.Pos())
		}
	case 1:
		value, err := buildExpression(children[0])
		if err != nil {
			return nil, err
		}
		decl.Value = value
	default:
		return nil, fmt.Errorf("astbuild: declaration of %q at %s has too many children", n.Text(), n.Pos())
	}
	return decl, nil
}
