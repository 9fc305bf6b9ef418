package ir

import (
	"fmt"
	"strings"

	"github.com/CesarTecun/Compilador-Cesar/internal/ast"
	"github.com/CesarTecun/Compilador-Cesar/internal/types"
)

// genBlock pushes a fresh variable scope, lowers every statement in source
// order, and pops it. It stops lowering further statements as soon as the
// current basic block has been terminated: code textually after a ret is
// unreachable and would otherwise land after a terminator, which is not
// valid IR.
func (g *Generator) genBlock(block *ast.Block) error {
	outer := g.fb.scope
	g.fb.scope = newVarScope(outer)
	defer func() { g.fb.scope = outer }()

	for _, stmt := range block.Statements {
		if g.fb.terminated() {
			break
		}
		if err := g.genStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) genStatement(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.Declaration:
		return g.genDeclaration(s)
	case *ast.AssignmentStatement:
		_, err := g.genAssignment(s.Assignment)
		return err
	case *ast.PrintStatement:
		return g.genPrint(s)
	case *ast.IfStatement:
		return g.genIf(s)
	case *ast.WhileStatement:
		return g.genWhile(s)
	case *ast.DoWhileStatement:
		return g.genDoWhile(s)
	case *ast.ForStatement:
		return g.genFor(s)
	case *ast.ReturnStatement:
		return g.genReturn(s)
	case *ast.ExpressionStatement:
		_, err := g.genExpression(s.Expression)
		return err
	case *ast.Block:
		return g.genBlock(s)
	default:
		return fmt.Errorf("ir: unsupported statement %T", stmt)
	}
}

// genDeclaration allocates the variable's stack slot and stores its
// initializer into it; a declaration without an initializer stores the
// type's zero value.
func (g *Generator) genDeclaration(decl *ast.Declaration) error {
	resolvedType := decl.Type
	operand := llvmType(resolvedType) + " zeroinitializer"
	if decl.Value != nil {
		val, err := g.genExpression(decl.Value)
		if err != nil {
			return err
		}
		if resolvedType == types.Inferred {
			resolvedType = val.kind
		}
		operand = g.coerce(val, resolvedType).typed()
	}

	slot := g.fb.nextReg()
	g.fb.emit("%s = alloca %s", ptrReg(slot), llvmType(resolvedType))
	g.fb.emit("store %s, %s* %s", operand, llvmType(resolvedType), ptrReg(slot))
	g.fb.scope.declare(decl.Name, binding{ptr: ptrReg(slot), kind: resolvedType})
	return nil
}

func (g *Generator) genAssignment(asn *ast.Assignment) (value, error) {
	val, err := g.genExpression(asn.Value)
	if err != nil {
		return value{}, err
	}
	b, ok := g.resolveVar(asn.Name)
	if !ok {
		return value{}, fmt.Errorf("ir: assignment to undeclared variable %q", asn.Name)
	}
	val = g.coerce(val, b.kind)
	g.fb.emit("store %s, %s* %s", val.typed(), llvmType(b.kind), b.ptr)
	return value{text: val.text, kind: b.kind}, nil
}

// genPrint builds the printf format string for this call site, interning it
// (by content hash) so two pintar calls with the same argument shapes share
// one global. Bool arguments widen to i32 since there is no "%b" printf
// conversion.
func (g *Generator) genPrint(ps *ast.PrintStatement) error {
	var formatParts []string
	var args []value

	for _, a := range ps.Args {
		val, err := g.genExpression(a)
		if err != nil {
			return err
		}
		switch val.kind {
		case types.String:
			formatParts = append(formatParts, "%s")
			args = append(args, val)
		case types.Float64:
			formatParts = append(formatParts, "%f")
			args = append(args, val)
		case types.Bool:
			formatParts = append(formatParts, "%d")
			r := g.fb.nextReg()
			g.fb.emit("%s = zext i1 %s to i32", ptrReg(r), val.text)
			args = append(args, reg(r, types.Int32))
		case types.Int32:
			formatParts = append(formatParts, "%d")
			args = append(args, val)
		default:
			return fmt.Errorf("ir: unsupported type for pintar: %v", val.kind)
		}
	}

	formatStr := strings.Join(formatParts, " ") + "\n\x00"
	name := g.fmtPool.intern(formatStr)
	length := len(formatStr)

	fmtReg := g.fb.nextReg()
	g.fb.emit("%s = bitcast [%d x i8]* %s to i8*", ptrReg(fmtReg), length, name)

	callArgs := []string{"i8* " + ptrReg(fmtReg)}
	for _, a := range args {
		callArgs = append(callArgs, a.typed())
	}
	g.fb.emit("call i32 (i8*, ...) @printf(%s)", strings.Join(callArgs, ", "))
	return nil
}

func (g *Generator) genIf(ifS *ast.IfStatement) error {
	condVal, err := g.genExpression(ifS.Condition)
	if err != nil {
		return err
	}
	boolVal, err := g.toBool(condVal)
	if err != nil {
		return err
	}

	thenBlk := g.fb.appendBlock("if.then")
	var elseBlk *block
	if ifS.Else != nil {
		elseBlk = g.fb.appendBlock("if.else")
	}
	mergeBlk := g.fb.appendBlock("if.merge")

	falseTarget := mergeBlk
	if elseBlk != nil {
		falseTarget = elseBlk
	}
	g.fb.terminate("br i1 %s, label %%%s, label %%%s", boolVal.text, thenBlk.name, falseTarget.name)

	g.fb.use(thenBlk)
	if err := g.genStatement(ifS.Then); err != nil {
		return err
	}
	thenFallsThrough := !g.fb.terminated()
	if thenFallsThrough {
		g.fb.terminate("br label %%%s", mergeBlk.name)
	}

	elseFallsThrough := true
	if elseBlk != nil {
		g.fb.use(elseBlk)
		if err := g.genStatement(ifS.Else); err != nil {
			return err
		}
		elseFallsThrough = !g.fb.terminated()
		if elseFallsThrough {
			g.fb.terminate("br label %%%s", mergeBlk.name)
		}
	}

	// When both branches end in their own terminator nothing reaches the
	// merge block: it is dropped from the function, and marked terminated so
	// no unreachable code after the if is lowered into it.
	if !thenFallsThrough && !elseFallsThrough {
		for i, b := range g.fb.blocks {
			if b == mergeBlk {
				g.fb.blocks = append(g.fb.blocks[:i], g.fb.blocks[i+1:]...)
				break
			}
		}
		mergeBlk.terminated = true
	}

	g.fb.use(mergeBlk)
	return nil
}

func (g *Generator) genWhile(ws *ast.WhileStatement) error {
	testBlk := g.fb.appendBlock("while.test")
	bodyBlk := g.fb.appendBlock("while.body")
	endBlk := g.fb.appendBlock("while.end")

	g.fb.terminate("br label %%%s", testBlk.name)

	g.fb.use(testBlk)
	condVal, err := g.genExpression(ws.Condition)
	if err != nil {
		return err
	}
	boolVal, err := g.toBool(condVal)
	if err != nil {
		return err
	}
	g.fb.terminate("br i1 %s, label %%%s, label %%%s", boolVal.text, bodyBlk.name, endBlk.name)

	g.fb.use(bodyBlk)
	if err := g.genStatement(ws.Body); err != nil {
		return err
	}
	if !g.fb.terminated() {
		g.fb.terminate("br label %%%s", testBlk.name)
	}

	g.fb.use(endBlk)
	return nil
}

func (g *Generator) genDoWhile(dw *ast.DoWhileStatement) error {
	bodyBlk := g.fb.appendBlock("do.body")
	testBlk := g.fb.appendBlock("do.test")
	endBlk := g.fb.appendBlock("do.end")

	g.fb.terminate("br label %%%s", bodyBlk.name)

	g.fb.use(bodyBlk)
	if err := g.genStatement(dw.Body); err != nil {
		return err
	}
	if !g.fb.terminated() {
		g.fb.terminate("br label %%%s", testBlk.name)
	}

	g.fb.use(testBlk)
	condVal, err := g.genExpression(dw.Condition)
	if err != nil {
		return err
	}
	boolVal, err := g.toBool(condVal)
	if err != nil {
		return err
	}
	g.fb.terminate("br i1 %s, label %%%s, label %%%s", boolVal.text, bodyBlk.name, endBlk.name)

	g.fb.use(endBlk)
	return nil
}

// genFor gives the loop's own init-declaration a private scope, matching the
// Semantic Analyzer's identical treatment of for-loop scoping.
func (g *Generator) genFor(fs *ast.ForStatement) error {
	outer := g.fb.scope
	g.fb.scope = newVarScope(outer)
	defer func() { g.fb.scope = outer }()

	initBlk := g.fb.appendBlock("for.init")
	testBlk := g.fb.appendBlock("for.test")
	bodyBlk := g.fb.appendBlock("for.body")
	updateBlk := g.fb.appendBlock("for.update")
	endBlk := g.fb.appendBlock("for.end")

	g.fb.terminate("br label %%%s", initBlk.name)

	g.fb.use(initBlk)
	if fs.Init != nil {
		if err := g.genStatement(fs.Init); err != nil {
			return err
		}
	}
	if !g.fb.terminated() {
		g.fb.terminate("br label %%%s", testBlk.name)
	}

	g.fb.use(testBlk)
	if fs.Condition != nil {
		condVal, err := g.genExpression(fs.Condition)
		if err != nil {
			return err
		}
		boolVal, err := g.toBool(condVal)
		if err != nil {
			return err
		}
		g.fb.terminate("br i1 %s, label %%%s, label %%%s", boolVal.text, bodyBlk.name, endBlk.name)
	} else {
		g.fb.terminate("br label %%%s", bodyBlk.name)
	}

	g.fb.use(bodyBlk)
	if err := g.genStatement(fs.Body); err != nil {
		return err
	}
	if !g.fb.terminated() {
		g.fb.terminate("br label %%%s", updateBlk.name)
	}

	g.fb.use(updateBlk)
	if fs.Update != nil {
		if _, err := g.genExpression(fs.Update); err != nil {
			return err
		}
	}
	if !g.fb.terminated() {
		g.fb.terminate("br label %%%s", testBlk.name)
	}

	g.fb.use(endBlk)
	return nil
}

func (g *Generator) genReturn(rs *ast.ReturnStatement) error {
	if rs.Value == nil {
		g.fb.terminate("ret void")
		return nil
	}
	val, err := g.genExpression(rs.Value)
	if err != nil {
		return err
	}
	val = g.coerce(val, g.fb.returnKind)
	g.fb.terminate("ret %s", val.typed())
	return nil
}
