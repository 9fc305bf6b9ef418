package ir

import (
	"fmt"
	"strconv"

	"github.com/CesarTecun/Compilador-Cesar/internal/types"
)

// value is an operand of an in-progress instruction: either an SSA register
// ("%t3") or a literal constant ("5", "3.500000e+00", "1"), paired with
// the Kind it carries so binary/unary lowering can decide on coercions
// without re-deriving the type from the instruction stream.
type value struct {
	text string
	kind types.Kind
}

func (v value) typed() string {
	return llvmType(v.kind) + " " + v.text
}

func intConst(n int32, kind types.Kind) value {
	return value{text: strconv.FormatInt(int64(n), 10), kind: kind}
}

func floatConst(f float64) value {
	return value{text: strconv.FormatFloat(f, 'e', 6, 64), kind: types.Float64}
}

func boolConst(b bool) value {
	if b {
		return value{text: "1", kind: types.Bool}
	}
	return value{text: "0", kind: types.Bool}
}

func reg(name string, kind types.Kind) value {
	return value{text: "%" + name, kind: kind}
}

func ptrReg(name string) string {
	return "%" + name
}

func fmtf(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}
