package astbuild

import (
	"testing"

	"github.com/CesarTecun/Compilador-Cesar/internal/ast"
	"github.com/CesarTecun/Compilador-Cesar/internal/parsetree"
	"github.com/CesarTecun/Compilador-Cesar/internal/types"
)

func TestBuildMinimalProgram(t *testing.T) {
	block := parsetree.New(parsetree.Block, parsetree.Pos1(3))
	progBlock := parsetree.New(parsetree.ProgramBlock, parsetree.Pos1(3), block)
	root := parsetree.NewLeaf(parsetree.Program, parsetree.Pos1(1), "saludo", progBlock)

	prog, err := Build(root)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if prog.Name != "saludo" {
		t.Errorf("Name = %q, want saludo", prog.Name)
	}
	if len(prog.Globals) != 0 || len(prog.Functions) != 0 {
		t.Errorf("expected no globals or functions, got %d globals, %d functions", len(prog.Globals), len(prog.Functions))
	}
	if prog.Main == nil || len(prog.Main.Statements) != 0 {
		t.Errorf("expected an empty main block, got %#v", prog.Main)
	}
}

func TestBuildGlobalDeclarationTyped(t *testing.T) {
	number := parsetree.NewLeaf(parsetree.Number, parsetree.Pos1(1), "42")
	decl := parsetree.NewTyped(parsetree.DeclGlobal, parsetree.Pos1(1), "entero", "contador", number)
	block := parsetree.New(parsetree.Block, parsetree.Pos1(2))
	progBlock := parsetree.New(parsetree.ProgramBlock, parsetree.Pos1(2), block)
	root := parsetree.NewLeaf(parsetree.Program, parsetree.Pos1(1), "p", decl, progBlock)

	prog, err := Build(root)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(prog.Globals) != 1 {
		t.Fatalf("expected 1 global, got %d", len(prog.Globals))
	}
	g := prog.Globals[0]
	if g.Name != "contador" || g.Type != types.Int32 {
		t.Errorf("global = %+v, want contador:Int32", g)
	}
	lit, ok := g.Value.(*ast.IntegerLiteral)
	if !ok || lit.Value != 42 {
		t.Errorf("initializer = %#v, want IntegerLiteral(42)", g.Value)
	}
}

func TestBuildInferredDeclarationRequiresInitializer(t *testing.T) {
	decl := parsetree.NewLeaf(parsetree.DeclInferred, parsetree.Pos1(1), "x")
	_, err := buildDeclaration(decl)
	if err == nil {
		t.Fatal("expected an error for an inferred declaration with no initializer")
	}
}

func TestBuildFunctionWithParametersAndReturn(t *testing.T) {
	paramA := parsetree.NewTyped(parsetree.Param, parsetree.Pos1(1), "entero", "a")
	paramB := parsetree.NewTyped(parsetree.Param, parsetree.Pos1(1), "entero", "b")
	sum := parsetree.NewLeaf(parsetree.Add, parsetree.Pos1(2), "+",
		parsetree.NewLeaf(parsetree.Variable, parsetree.Pos1(2), "a"),
		parsetree.NewLeaf(parsetree.Variable, parsetree.Pos1(2), "b"))
	ret := parsetree.New(parsetree.Return, parsetree.Pos1(2), sum)
	body := parsetree.New(parsetree.Block, parsetree.Pos1(2), ret)
	fnDef := parsetree.NewTyped(parsetree.FunctionDef, parsetree.Pos1(1), "entero", "sumar", paramA, paramB, body)
	fns := parsetree.New(parsetree.Functions, parsetree.Pos1(1), fnDef)

	mainBlock := parsetree.New(parsetree.Block, parsetree.Pos1(4))
	progBlock := parsetree.New(parsetree.ProgramBlock, parsetree.Pos1(4), mainBlock)
	root := parsetree.NewLeaf(parsetree.Program, parsetree.Pos1(1), "p", fns, progBlock)

	prog, err := Build(root)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(prog.Functions) != 1 {
		t.Fatalf("expected 1 function, got %d", len(prog.Functions))
	}
	fn := prog.Functions[0]
	if fn.Name != "sumar" || fn.ReturnType != types.Int32 || len(fn.Parameters) != 2 {
		t.Errorf("function = %+v, want sumar(entero,entero):entero", fn)
	}
	if len(fn.Body.Statements) != 1 {
		t.Fatalf("expected 1 statement in body, got %d", len(fn.Body.Statements))
	}
	rs, ok := fn.Body.Statements[0].(*ast.ReturnStatement)
	if !ok {
		t.Fatalf("expected ReturnStatement, got %T", fn.Body.Statements[0])
	}
	bin, ok := rs.Value.(*ast.BinaryExpression)
	if !ok || bin.Operator != "+" {
		t.Errorf("return value = %#v, want a + binary expression", rs.Value)
	}
}

func TestBuildFunctionDefaultsToVoidReturn(t *testing.T) {
	body := parsetree.New(parsetree.Block, parsetree.Pos1(1))
	fnDef := parsetree.NewLeaf(parsetree.FunctionDef, parsetree.Pos1(1), "saludar", body)

	fn, err := buildFunctionDef(fnDef)
	if err != nil {
		t.Fatalf("buildFunctionDef returned error: %v", err)
	}
	if fn.ReturnType != types.Void {
		t.Errorf("ReturnType = %v, want Void when the type keyword is omitted", fn.ReturnType)
	}
}

func TestBuildIfWithoutElse(t *testing.T) {
	cond := parsetree.NewLeaf(parsetree.Boolean, parsetree.Pos1(1), "verdad")
	then := parsetree.New(parsetree.Print, parsetree.Pos1(1))
	ifNode := parsetree.New(parsetree.If, parsetree.Pos1(1), cond, then, nil)

	stmt, err := buildStatement(ifNode)
	if err != nil {
		t.Fatalf("buildStatement returned error: %v", err)
	}
	is, ok := stmt.(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected IfStatement, got %T", stmt)
	}
	if is.Else != nil {
		t.Errorf("Else = %#v, want nil when there is no sino branch", is.Else)
	}
}

func TestBuildForWithDeclarationInit(t *testing.T) {
	init := parsetree.NewTyped(parsetree.DeclTyped, parsetree.Pos1(1), "entero", "i",
		parsetree.NewLeaf(parsetree.Number, parsetree.Pos1(1), "0"))
	cond := parsetree.New(parsetree.Comparison, parsetree.Pos1(1),
		parsetree.NewLeaf(parsetree.Variable, parsetree.Pos1(1), "i"),
		parsetree.NewLeaf(parsetree.Number, parsetree.Pos1(1), "10"))
	update := parsetree.NewLeaf(parsetree.AssignmentExpr, parsetree.Pos1(1), "i",
		parsetree.New(parsetree.Add, parsetree.Pos1(1),
			parsetree.NewLeaf(parsetree.Variable, parsetree.Pos1(1), "i"),
			parsetree.NewLeaf(parsetree.Number, parsetree.Pos1(1), "1")))
	body := parsetree.New(parsetree.Block, parsetree.Pos1(1))
	forNode := parsetree.New(parsetree.For, parsetree.Pos1(1), init, cond, update, body)

	stmt, err := buildStatement(forNode)
	if err != nil {
		t.Fatalf("buildStatement returned error: %v", err)
	}
	fs, ok := stmt.(*ast.ForStatement)
	if !ok {
		t.Fatalf("expected ForStatement, got %T", stmt)
	}
	if _, ok := fs.Init.(*ast.Declaration); !ok {
		t.Errorf("Init = %#v, want a Declaration", fs.Init)
	}
	if fs.Condition == nil || fs.Update == nil {
		t.Errorf("expected both Condition and Update to be set, got %#v / %#v", fs.Condition, fs.Update)
	}
}

func TestBuildBareCallStatement(t *testing.T) {
	call := parsetree.NewLeaf(parsetree.Call, parsetree.Pos1(1), "saludar")
	exprStmt := parsetree.New(parsetree.ExprStatement, parsetree.Pos1(1), call)

	stmt, err := buildStatement(exprStmt)
	if err != nil {
		t.Fatalf("buildStatement returned error: %v", err)
	}
	es, ok := stmt.(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected ExpressionStatement, got %T", stmt)
	}
	if _, ok := es.Expression.(*ast.CallExpression); !ok {
		t.Errorf("Expression = %#v, want a CallExpression", es.Expression)
	}
}

func TestBuildStringLiteralStripsQuotes(t *testing.T) {
	n := parsetree.NewLeaf(parsetree.Text, parsetree.Pos1(1), `"hola"`)
	expr, err := buildExpression(n)
	if err != nil {
		t.Fatalf("buildExpression returned error: %v", err)
	}
	sl, ok := expr.(*ast.StringLiteral)
	if !ok || sl.Value != "hola" {
		t.Errorf("expr = %#v, want StringLiteral(hola)", expr)
	}
}

func TestBuildNumberClassifiesByDot(t *testing.T) {
	intNode := parsetree.NewLeaf(parsetree.Number, parsetree.Pos1(1), "7")
	floatNode := parsetree.NewLeaf(parsetree.Number, parsetree.Pos1(1), "7.5")

	intExpr, err := buildExpression(intNode)
	if err != nil {
		t.Fatalf("buildExpression returned error: %v", err)
	}
	if _, ok := intExpr.(*ast.IntegerLiteral); !ok {
		t.Errorf("expr = %#v, want IntegerLiteral", intExpr)
	}

	floatExpr, err := buildExpression(floatNode)
	if err != nil {
		t.Fatalf("buildExpression returned error: %v", err)
	}
	if _, ok := floatExpr.(*ast.FloatLiteral); !ok {
		t.Errorf("expr = %#v, want FloatLiteral", floatExpr)
	}
}

func TestBuildParenUnwrapsWithoutItsOwnNode(t *testing.T) {
	inner := parsetree.NewLeaf(parsetree.Number, parsetree.Pos1(1), "3")
	paren := parsetree.New(parsetree.Paren, parsetree.Pos1(1), inner)

	expr, err := buildExpression(paren)
	if err != nil {
		t.Fatalf("buildExpression returned error: %v", err)
	}
	if _, ok := expr.(*ast.IntegerLiteral); !ok {
		t.Errorf("expr = %#v, want the unwrapped IntegerLiteral, not a wrapper node", expr)
	}
}

func TestBuildRejectsUnexpectedRootKind(t *testing.T) {
	root := parsetree.NewLeaf(parsetree.Number, parsetree.Pos1(1), "1")
	if _, err := Build(root); err == nil {
		t.Fatal("expected an error when the root node is not a Program")
	}
}

func TestBuildRejectsUnknownTypeKeyword(t *testing.T) {
	decl := parsetree.NewTyped(parsetree.DeclGlobal, parsetree.Pos1(1), "flotante", "x")
	if _, err := buildDeclaration(decl); err == nil {
		t.Fatal("expected an error for an unrecognized type keyword")
	}
}
