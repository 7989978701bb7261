/*
File    : snlc/emit/emit_program.go
Author  : yurzi
Contact : github.com/yurzi/snlc
*/
package emit

import (
	"fmt"

	"github.com/yurzi/snlc/parser"
)

// VisitProgram renders "program P; decls; begin B end." as a zero-argument
// closure bound to P, containing decls (var bindings, then procedure
// closures) followed by B, with an immediate invocation after the
// closure's own definition. The binding is "let mut P" to match any
// nested procedure closures it declares, which themselves need a
// mutable binding to be callable.
func (e *Emitter) VisitProgram(n *parser.Program) {
	e.writeIndent()
	fmt.Fprintf(&e.Buf, "let mut %s = || {\n", n.Name)
	e.Indent++
	for _, vd := range n.VarDefs {
		vd.Accept(e)
	}
	for _, pd := range n.ProcedureDefs {
		pd.Accept(e)
	}
	e.emitStmtList(n.Body)
	e.Indent--
	e.writeIndent()
	e.Buf.WriteString("};\n")
	e.writeIndent()
	fmt.Fprintf(&e.Buf, "%s();\n", n.Name)
}

// VisitProcedureDef renders "procedure q(params) decls; begin B" as a
// closure bound to q, taking the declared parameters in order with host
// types char/i32, whose body is decls followed by B. Unlike Program, the
// closure is only defined here — nothing invokes it; invocation happens
// wherever a Call expression elsewhere in the body names it. The binding
// is "let mut q" rather than "let q": q's body is free to assign to
// variables captured from the enclosing scope, which makes the closure
// FnMut, and calling it requires the binding itself be mutable.
func (e *Emitter) VisitProcedureDef(n *parser.ProcedureDef) {
	e.writeIndent()
	fmt.Fprintf(&e.Buf, "let mut %s = |%s| {\n", n.Name, paramList(n.Params))
	e.Indent++
	for _, vd := range n.VarDefs {
		vd.Accept(e)
	}
	e.emitStmtList(n.Body)
	e.Indent--
	e.writeIndent()
	e.Buf.WriteString("};\n")
}

func paramList(params []parser.ParamDecl) string {
	if len(params) == 0 {
		return ""
	}
	s := ""
	for i, p := range params {
		if i > 0 {
			s += ", "
		}
		s += p.Name + ": " + rustType(p.IsChar)
	}
	return s
}

func rustType(isChar bool) string {
	if isChar {
		return "char"
	}
	return "i32"
}
