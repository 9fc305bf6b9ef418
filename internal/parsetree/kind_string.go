package parsetree

// kindNames is indexed by Kind so the mapping stays correct even if the
// iota sequence in parsetree.go is reordered.
var kindNames = [...]string{
	Program:        "Program",
	DeclGlobal:     "DeclGlobal",
	DeclTyped:      "DeclTyped",
	DeclInferred:   "DeclInferred",
	ProgramBlock:   "ProgramBlock",
	Block:          "Block",
	Functions:      "Functions",
	FunctionDef:    "FunctionDef",
	Param:          "Param",
	Print:          "Print",
	If:             "If",
	While:          "While",
	DoWhile:        "DoWhile",
	Return:         "Return",
	For:            "For",
	AssignmentExpr: "AssignmentExpr",
	LogicalOr:      "LogicalOr",
	LogicalAnd:     "LogicalAnd",
	Equality:       "Equality",
	Comparison:     "Comparison",
	Add:            "Add",
	Mul:            "Mul",
	Pow:            "Pow",
	UnaryNot:       "UnaryNot",
	UnaryPlus:      "UnaryPlus",
	UnaryMinus:     "UnaryMinus",
	Call:           "Call",
	Paren:          "Paren",
	Number:         "Number",
	Boolean:        "Boolean",
	Text:           "Text",
	Variable:       "Variable",
	ExprStatement:  "ExprStatement",
}

// String renders k using the same name its Kind constant is declared under,
// the form DecodeYAML fixtures and driver diagnostics use.
func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// ParseKind resolves a Kind from its constant name, as produced by an
// external parser's serialized tree. The second result is false for any
// name not in the enumeration.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}
