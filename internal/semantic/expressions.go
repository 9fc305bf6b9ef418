package semantic

import (
	"github.com/CesarTecun/Compilador-Cesar/internal/ast"
	"github.com/CesarTecun/Compilador-Cesar/internal/types"
)

// inferType computes the type of expr, reporting any diagnostics its
// sub-expressions trigger along the way (undeclared variables, undefined
// functions, arity/argument mismatches). It always returns one of the five
// real primitives, never Inferred: an unrecognized expression shape falls
// back to Int32 so analysis can continue past it.
func (a *Analyzer) inferType(expr ast.Expression) types.Kind {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return types.Int32
	case *ast.FloatLiteral:
		return types.Float64
	case *ast.BooleanLiteral:
		return types.Bool
	case *ast.StringLiteral:
		return types.String
	case *ast.Identifier:
		return a.inferIdentifier(e)
	case *ast.BinaryExpression:
		return a.inferBinary(e)
	case *ast.UnaryExpression:
		return a.inferUnary(e)
	case *ast.CallExpression:
		return a.inferCall(e)
	case *ast.Assignment:
		a.analyzeAssignment(e)
		sym, _ := a.current.resolveVariable(e.Name)
		if sym != nil {
			return sym.Type
		}
		return types.Int32
	default:
		return types.Int32
	}
}

func (a *Analyzer) inferIdentifier(id *ast.Identifier) types.Kind {
	sym, scope := a.current.resolveVariable(id.Name)
	if scope == nil {
		a.errorAt(id.Pos(), "Variable '%s' no declarada.", id.Name)
		return types.Int32
	}
	sym.Read = true
	return sym.Type
}

var comparisonOperators = map[string]bool{
	"==": true, "!=": true, "<": true, ">": true, "<=": true, ">=": true,
}

// inferBinary infers the result type of a binary expression. Only the six
// comparison operators produce Bool; "&&" and "||" fall through to the same
// numeric-promotion rule as arithmetic operators and infer Int32 (or
// Float64, if either operand is Float64) rather than Bool, matching the
// reference analyzer's type-inference fallback.
func (a *Analyzer) inferBinary(be *ast.BinaryExpression) types.Kind {
	left := a.inferType(be.Left)
	right := a.inferType(be.Right)

	if comparisonOperators[be.Operator] {
		return types.Bool
	}
	if be.Operator == "+" && left == types.String && right == types.String {
		return types.String
	}
	if left == types.Float64 || right == types.Float64 {
		return types.Float64
	}
	return types.Int32
}

func (a *Analyzer) inferUnary(ue *ast.UnaryExpression) types.Kind {
	operandType := a.inferType(ue.Operand)
	if ue.Operator == "!" {
		return types.Bool
	}
	return operandType
}

func (a *Analyzer) inferCall(ce *ast.CallExpression) types.Kind {
	a.called[ce.Name] = true

	fn, ok := a.current.resolveFunction(ce.Name)
	if !ok {
		a.errorAt(ce.Pos(), "Función '%s' no definida.", ce.Name)
		for _, arg := range ce.Args {
			a.inferType(arg)
		}
		return types.Int32
	}

	if len(ce.Args) != len(fn.Parameters) {
		a.errorAt(ce.Pos(), "La función '%s' espera %d argumento(s), pero se proporcionaron %d.",
			ce.Name, len(fn.Parameters), len(ce.Args))
		for _, arg := range ce.Args {
			a.inferType(arg)
		}
		return fn.ReturnType
	}

	for i, arg := range ce.Args {
		argType := a.inferType(arg)
		param := fn.Parameters[i]
		if argType != param.Type {
			a.errorAt(arg.Pos(), "Tipo incorrecto para el argumento %d en llamada a '%s': se esperaba '%s', pero se recibió '%s'.",
				i+1, ce.Name, keywordOf(param.Type), keywordOf(argType))
		}
	}

	return fn.ReturnType
}
