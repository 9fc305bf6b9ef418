package ir

import (
	"fmt"
	"strings"

	"github.com/CesarTecun/Compilador-Cesar/internal/ast"
	"github.com/CesarTecun/Compilador-Cesar/internal/types"
)

func (g *Generator) genExpression(expr ast.Expression) (value, error) {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return intConst(e.Value, types.Int32), nil
	case *ast.FloatLiteral:
		return floatConst(e.Value), nil
	case *ast.BooleanLiteral:
		return boolConst(e.Value), nil
	case *ast.StringLiteral:
		return g.genStringLiteral(e.Value), nil
	case *ast.Identifier:
		return g.genIdentifier(e)
	case *ast.BinaryExpression:
		return g.genBinary(e)
	case *ast.UnaryExpression:
		return g.genUnary(e)
	case *ast.CallExpression:
		return g.genCall(e)
	case *ast.Assignment:
		return g.genAssignment(e)
	default:
		return value{}, fmt.Errorf("ir: unsupported expression %T", expr)
	}
}

func (g *Generator) genStringLiteral(text string) value {
	raw := text + "\x00"
	name := g.strPool.intern(raw)
	r := g.fb.nextReg()
	g.fb.emit("%s = bitcast [%d x i8]* %s to i8*", ptrReg(r), len(raw), name)
	return reg(r, types.String)
}

func (g *Generator) genIdentifier(id *ast.Identifier) (value, error) {
	b, ok := g.resolveVar(id.Name)
	if !ok {
		return value{}, fmt.Errorf("ir: undeclared variable %q", id.Name)
	}
	r := g.fb.nextReg()
	g.fb.emit("%s = load %s, %s* %s", ptrReg(r), llvmType(b.kind), llvmType(b.kind), b.ptr)
	return reg(r, b.kind), nil
}

func (g *Generator) genCall(ce *ast.CallExpression) (value, error) {
	sig, ok := g.funcSigs[ce.Name]
	if !ok {
		return value{}, fmt.Errorf("ir: call to undefined function %q", ce.Name)
	}

	var argVals []value
	for _, a := range ce.Args {
		v, err := g.genExpression(a)
		if err != nil {
			return value{}, err
		}
		argVals = append(argVals, v)
	}

	var parts []string
	for _, v := range argVals {
		parts = append(parts, v.typed())
	}
	callArgs := strings.Join(parts, ", ")

	if sig.returnType == types.Void {
		g.fb.emit("call void @%s(%s)", ce.Name, callArgs)
		return value{kind: types.Void}, nil
	}
	r := g.fb.nextReg()
	g.fb.emit("%s = call %s @%s(%s)", ptrReg(r), llvmType(sig.returnType), ce.Name, callArgs)
	return reg(r, sig.returnType), nil
}

// genBinary handles string concatenation and logical operators before the
// generic numeric path, since neither coerces its operands through
// matchTypes the way arithmetic/comparison/power do.
func (g *Generator) genBinary(be *ast.BinaryExpression) (value, error) {
	left, err := g.genExpression(be.Left)
	if err != nil {
		return value{}, err
	}
	right, err := g.genExpression(be.Right)
	if err != nil {
		return value{}, err
	}

	switch be.Operator {
	case "&&", "||":
		l, err := g.toBool(left)
		if err != nil {
			return value{}, err
		}
		r, err := g.toBool(right)
		if err != nil {
			return value{}, err
		}
		op := "and"
		if be.Operator == "||" {
			op = "or"
		}
		reg_ := g.fb.nextReg()
		g.fb.emit("%s = %s i1 %s, %s", ptrReg(reg_), op, l.text, r.text)
		return reg(reg_, types.Bool), nil
	case "+":
		if left.kind == types.String && right.kind == types.String {
			reg_ := g.fb.nextReg()
			g.fb.emit("%s = call i8* @concat(i8* %s, i8* %s)", ptrReg(reg_), left.text, right.text)
			return reg(reg_, types.String), nil
		}
	}

	left, right = g.matchTypes(left, right)

	switch be.Operator {
	case "==", "!=", "<", ">", "<=", ">=":
		return g.genComparison(be.Operator, left, right), nil
	case "+", "-", "*", "/", "%":
		return g.genArithmetic(be.Operator, left, right), nil
	case "^":
		return g.genPower(left, right), nil
	default:
		return value{}, fmt.Errorf("ir: unsupported binary operator %q", be.Operator)
	}
}

// matchTypes widens one numeric operand to double when the other is double,
// mirroring the reference generator's own int/double promotion rule, and
// otherwise sign-extends an i1 operand to i32 when the other is i32.
func (g *Generator) matchTypes(l, r value) (value, value) {
	if l.kind == r.kind {
		return l, r
	}
	if l.kind == types.Float64 || r.kind == types.Float64 {
		return g.coerce(l, types.Float64), g.coerce(r, types.Float64)
	}
	if l.kind == types.Bool && r.kind == types.Int32 {
		reg_ := g.fb.nextReg()
		g.fb.emit("%s = sext i1 %s to i32", ptrReg(reg_), l.text)
		return reg(reg_, types.Int32), r
	}
	if l.kind == types.Int32 && r.kind == types.Bool {
		reg_ := g.fb.nextReg()
		g.fb.emit("%s = sext i1 %s to i32", ptrReg(reg_), r.text)
		return l, reg(reg_, types.Int32)
	}
	return l, r
}

func (g *Generator) genArithmetic(op string, l, r value) value {
	if op == "%" {
		reg_ := g.fb.nextReg()
		if l.kind == types.Int32 {
			g.fb.emit("%s = srem i32 %s, %s", ptrReg(reg_), l.text, r.text)
			return reg(reg_, types.Int32)
		}
		g.fb.emit("%s = call double @fmod(double %s, double %s)", ptrReg(reg_), l.text, r.text)
		return reg(reg_, types.Float64)
	}

	isInt := l.kind == types.Int32
	var instr string
	switch op {
	case "+":
		instr = pick(isInt, "add", "fadd")
	case "-":
		instr = pick(isInt, "sub", "fsub")
	case "*":
		instr = pick(isInt, "mul", "fmul")
	case "/":
		instr = pick(isInt, "sdiv", "fdiv")
	}

	reg_ := g.fb.nextReg()
	g.fb.emit("%s = %s %s %s, %s", ptrReg(reg_), instr, llvmType(l.kind), l.text, r.text)
	if isInt {
		return reg(reg_, types.Int32)
	}
	return reg(reg_, types.Float64)
}

func (g *Generator) genComparison(op string, l, r value) value {
	isInt := l.kind == types.Int32 || l.kind == types.Bool
	cmp := "icmp"
	predicates := map[string]string{"==": "eq", "!=": "ne", "<": "slt", ">": "sgt", "<=": "sle", ">=": "sge"}
	if !isInt {
		cmp = "fcmp"
		predicates = map[string]string{"==": "oeq", "!=": "one", "<": "olt", ">": "ogt", "<=": "ole", ">=": "oge"}
	}

	reg_ := g.fb.nextReg()
	g.fb.emit("%s = %s %s %s %s, %s", ptrReg(reg_), cmp, predicates[op], llvmType(l.kind), l.text, r.text)
	return reg(reg_, types.Bool)
}

func (g *Generator) genPower(l, r value) value {
	l = g.coerce(l, types.Float64)
	r = g.coerce(r, types.Float64)
	reg_ := g.fb.nextReg()
	g.fb.emit("%s = call double @pow(double %s, double %s)", ptrReg(reg_), l.text, r.text)
	return reg(reg_, types.Float64)
}

func (g *Generator) genUnary(ue *ast.UnaryExpression) (value, error) {
	operand, err := g.genExpression(ue.Operand)
	if err != nil {
		return value{}, err
	}

	switch ue.Operator {
	case "+":
		return operand, nil
	case "-":
		reg_ := g.fb.nextReg()
		if operand.kind == types.Int32 {
			g.fb.emit("%s = sub i32 0, %s", ptrReg(reg_), operand.text)
			return reg(reg_, types.Int32), nil
		}
		g.fb.emit("%s = fneg double %s", ptrReg(reg_), operand.text)
		return reg(reg_, types.Float64), nil
	case "!":
		b, err := g.toBool(operand)
		if err != nil {
			return value{}, err
		}
		reg_ := g.fb.nextReg()
		g.fb.emit("%s = xor i1 %s, 1", ptrReg(reg_), b.text)
		return reg(reg_, types.Bool), nil
	default:
		return value{}, fmt.Errorf("ir: unsupported unary operator %q", ue.Operator)
	}
}

// coerce converts v to target's representation when the two Kinds differ.
// Well-typed input from a program that passed semantic analysis rarely
// exercises this beyond Inferred-declaration resolution and the int/double
// promotions arithmetic already triggers; it stays total regardless.
func (g *Generator) coerce(v value, target types.Kind) value {
	if v.kind == target {
		return v
	}
	reg_ := g.fb.nextReg()
	switch {
	case v.kind == types.Int32 && target == types.Float64:
		g.fb.emit("%s = sitofp i32 %s to double", ptrReg(reg_), v.text)
		return reg(reg_, types.Float64)
	case v.kind == types.Float64 && target == types.Int32:
		g.fb.emit("%s = fptosi double %s to i32", ptrReg(reg_), v.text)
		return reg(reg_, types.Int32)
	case v.kind == types.Bool && target == types.Int32:
		g.fb.emit("%s = zext i1 %s to i32", ptrReg(reg_), v.text)
		return reg(reg_, types.Int32)
	default:
		return v
	}
}

// toBool renders v as an i1 condition, comparing numeric values against
// zero the way a C-style truthiness check would.
func (g *Generator) toBool(v value) (value, error) {
	switch v.kind {
	case types.Bool:
		return v, nil
	case types.Int32:
		reg_ := g.fb.nextReg()
		g.fb.emit("%s = icmp ne i32 %s, 0", ptrReg(reg_), v.text)
		return reg(reg_, types.Bool), nil
	case types.Float64:
		reg_ := g.fb.nextReg()
		g.fb.emit("%s = fcmp one double %s, 0.0", ptrReg(reg_), v.text)
		return reg(reg_, types.Bool), nil
	default:
		return value{}, fmt.Errorf("ir: cannot use a %v value as a condition", v.kind)
	}
}

func pick(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
