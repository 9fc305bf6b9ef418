package ir

import (
	"strings"

	"github.com/CesarTecun/Compilador-Cesar/internal/types"
)

// block is one basic block under construction: an ordered instruction
// stream that ends, once sealed, in exactly one terminator (br, ret, or
// unreachable).
type block struct {
	name       string
	body       strings.Builder
	terminated bool
}

// funcBuilder holds everything live while lowering a single function body:
// its basic blocks in emission order, the register/label counters that keep
// every name in the function unique, and the variable scope chain rooted at
// its parameters.
type funcBuilder struct {
	blocks     []*block
	byName     map[string]*block
	current    *block
	regCount   int
	lblCount   int
	returnKind types.Kind
	scope      *varScope
}

func newFuncBuilder(outer *varScope) *funcBuilder {
	fb := &funcBuilder{
		byName: make(map[string]*block),
		scope:  newVarScope(outer),
	}
	fb.current = fb.appendBlock("entry")
	return fb
}

// appendBlock opens a new block at the end of the function. It does not
// become the emission target; callers that want to emit into it call use()
// or rely on the constructor's initial assignment.
func (fb *funcBuilder) appendBlock(prefix string) *block {
	name := prefix
	if _, exists := fb.byName[name]; exists {
		fb.lblCount++
		name = fmtf("%s.%d", prefix, fb.lblCount)
	}
	b := &block{name: name}
	fb.blocks = append(fb.blocks, b)
	fb.byName[name] = b
	return b
}

func (fb *funcBuilder) use(b *block) {
	fb.current = b
}

func (fb *funcBuilder) emit(format string, args ...interface{}) {
	fb.current.body.WriteString("  " + fmtf(format, args...) + "\n")
}

func (fb *funcBuilder) terminated() bool {
	return fb.current.terminated
}

func (fb *funcBuilder) terminate(format string, args ...interface{}) {
	if fb.current.terminated {
		return
	}
	fb.emit(format, args...)
	fb.current.terminated = true
}

// nextReg mints a fresh SSA register name, unique within the function.
func (fb *funcBuilder) nextReg() string {
	fb.regCount++
	return fmtf("t%d", fb.regCount)
}

// render assembles every block's instruction stream into the function body
// text, in the order the blocks were appended.
func (fb *funcBuilder) render() string {
	var out strings.Builder
	for _, b := range fb.blocks {
		out.WriteString(b.name + ":\n")
		out.WriteString(b.body.String())
	}
	return out.String()
}
