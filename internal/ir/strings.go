package ir

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// constPool deduplicates string and printf-format byte-buffer globals by
// content hash, so two identical literals (or two pintar calls with the same
// argument shapes) share one global instead of emitting a fresh constant
// every time they are lowered.
type constPool struct {
	byHash map[uint64]string
	decls  []string
	prefix string
	count  int
}

func newConstPool(prefix string) *constPool {
	return &constPool{byHash: make(map[uint64]string), prefix: prefix}
}

// intern returns the global symbol name for raw (NUL-terminated at the
// caller's discretion), declaring a new internal constant only the first
// time this content hash is seen. Two inputs with equal hashes share one
// global; their bytes are not compared.
func (p *constPool) intern(raw string) string {
	h := xxhash.Sum64String(raw)
	if name, ok := p.byHash[h]; ok {
		return name
	}

	p.count++
	name := "@." + p.prefix + "." + strconv.FormatUint(h, 16)
	p.byHash[h] = name

	length := len(raw)
	decl := fmtf("%s = internal constant [%d x i8] c\"%s\"", name, length, escapeBytes(raw))
	p.decls = append(p.decls, decl)
	return name
}

func (p *constPool) render() string {
	if len(p.decls) == 0 {
		return ""
	}
	return strings.Join(p.decls, "\n") + "\n"
}

// escapeBytes renders raw as the LLVM string-literal byte escapes: every
// byte outside printable ASCII (and the backslash/quote themselves) becomes
// \XX, matching the textual IR c"..." constant syntax.
func escapeBytes(raw string) string {
	var out strings.Builder
	for i := 0; i < len(raw); i++ {
		b := raw[i]
		switch {
		case b == '"' || b == '\\':
			out.WriteString(fmtf("\\%02X", b))
		case b >= 0x20 && b < 0x7f:
			out.WriteByte(b)
		default:
			out.WriteString(fmtf("\\%02X", b))
		}
	}
	return out.String()
}
