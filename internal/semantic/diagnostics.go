package semantic

import (
	"strconv"

	"github.com/CesarTecun/Compilador-Cesar/internal/token"
)

// Severity distinguishes a fatal diagnostic from a non-fatal one.
type Severity int

const (
	// SeverityError is a fatal diagnostic; its presence anywhere in the list
	// means IR generation must not proceed.
	SeverityError Severity = iota
	// SeverityWarning is informational and never halts compilation.
	SeverityWarning
)

// Diagnostic is one error or warning produced while walking the AST, stamped
// with the source line of the node that triggered it.
type Diagnostic struct {
	Severity Severity
	Message  string
	Pos      token.Position
}

// String renders the diagnostic in the fixed wire format consumed by the
// driver and by tests: "[Línea N] Error semántico: ..." or
// "[Línea N] Advertencia: ...". A position with no known line renders as the
// literal "desconocida".
func (d Diagnostic) String() string {
	line := "desconocida"
	if !d.Pos.IsUnknown() && d.Pos.Line > 0 {
		line = strconv.Itoa(d.Pos.Line)
	}
	if d.Severity == SeverityWarning {
		return "[Línea " + line + "] Advertencia: " + d.Message
	}
	return "[Línea " + line + "] Error semántico: " + d.Message
}

// IsError reports whether this diagnostic is fatal.
func (d Diagnostic) IsError() bool {
	return d.Severity == SeverityError
}
