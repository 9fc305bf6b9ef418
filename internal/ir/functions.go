package ir

import (
	"strings"

	"github.com/CesarTecun/Compilador-Cesar/internal/ast"
	"github.com/CesarTecun/Compilador-Cesar/internal/types"
)

// genFunction lowers one user-defined function: its parameters are spilled
// to stack slots immediately (mirroring the reference generator's own
// alloca-then-store-argument pattern) so later assignments to a parameter
// behave exactly like assignments to any other local.
func (g *Generator) genFunction(fn *ast.Function) (string, error) {
	fb := newFuncBuilder(g.globalScope)
	fb.returnKind = fn.ReturnType
	g.fb = fb

	var paramDecls []string
	for _, p := range fn.Parameters {
		paramDecls = append(paramDecls, fmtf("%s %%%s", llvmType(p.Type), p.Name))
	}
	for _, p := range fn.Parameters {
		slot := fb.nextReg()
		fb.emit("%s = alloca %s", ptrReg(slot), llvmType(p.Type))
		fb.emit("store %s %%%s, %s* %s", llvmType(p.Type), p.Name, llvmType(p.Type), ptrReg(slot))
		fb.scope.declare(p.Name, binding{ptr: ptrReg(slot), kind: p.Type})
	}

	if err := g.genBlock(fn.Body); err != nil {
		g.fb = nil
		return "", err
	}

	if !fb.terminated() {
		if fn.ReturnType == types.Void {
			fb.terminate("ret void")
		} else {
			fb.terminate("unreachable")
		}
	}

	header := fmtf("define %s @%s(%s) {", llvmType(fn.ReturnType), fn.Name, strings.Join(paramDecls, ", "))
	text := header + "\n" + fb.render() + "}\n"
	g.fb = nil
	return text, nil
}

// genMain lowers the program's main block into the "main" entry point. If
// control falls off the end of the block without an explicit ret, the
// epilogue returns i32 0, calling getchar first when the Windows-EXE build
// flag is set (the console-pause quirk the reference generator gates behind
// its own for_windows_exe flag).
func (g *Generator) genMain(block *ast.Block) (string, error) {
	fb := newFuncBuilder(g.globalScope)
	fb.returnKind = types.Int32
	g.fb = fb

	if block != nil {
		if err := g.genBlock(block); err != nil {
			g.fb = nil
			return "", err
		}
	}

	if !fb.terminated() {
		if g.windowsEXE {
			fb.emit("call i32 @getchar()")
		}
		fb.terminate("ret i32 0")
	}

	text := "define i32 @main() {\n" + fb.render() + "}\n"
	g.fb = nil
	return text, nil
}

func (g *Generator) resolveVar(name string) (binding, bool) {
	return g.fb.scope.resolve(name)
}
