package ir

import "github.com/CesarTecun/Compilador-Cesar/internal/types"

// llvmType renders the LLVM textual type that backs a primitive Kind.
// cadena values are always carried as an i8* pointer to a NUL-terminated
// byte buffer, never as an in-place array.
func llvmType(k types.Kind) string {
	switch k {
	case types.Int32:
		return "i32"
	case types.Float64:
		return "double"
	case types.Bool:
		return "i1"
	case types.String:
		return "i8*"
	case types.Void:
		return "void"
	default:
		return "i32"
	}
}
