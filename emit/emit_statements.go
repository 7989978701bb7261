/*
File    : snlc/emit/emit_statements.go
Author  : yurzi
Contact : github.com/yurzi/snlc
*/
package emit

import "github.com/yurzi/snlc/parser"

// VisitExprStmt renders a bare expression statement — almost always an
// assignment, since the expression's value is otherwise discarded.
func (e *Emitter) VisitExprStmt(n *parser.ExprStmt) {
	n.X.Accept(e)
}

// VisitIfStmt renders "if C then T [else E] fi" as a host if/else with
// braces; each arm is a statement list with every statement followed by
// its own ';'.
func (e *Emitter) VisitIfStmt(n *parser.IfStmt) {
	e.Buf.WriteString("if ")
	n.Cond.Accept(e)
	e.Buf.WriteString(" {\n")
	e.Indent++
	e.emitStmtList(n.Body)
	e.Indent--
	e.writeIndent()
	e.Buf.WriteString("}")

	if n.Else != nil {
		e.Buf.WriteString(" else {\n")
		e.Indent++
		e.emitStmtList(n.Else)
		e.Indent--
		e.writeIndent()
		e.Buf.WriteString("}")
	}
}

// VisitWhileStmt renders "while C do B endwh" as a host while with braces.
func (e *Emitter) VisitWhileStmt(n *parser.WhileStmt) {
	e.Buf.WriteString("while ")
	n.Cond.Accept(e)
	e.Buf.WriteString(" {\n")
	e.Indent++
	e.emitStmtList(n.Body)
	e.Indent--
	e.writeIndent()
	e.Buf.WriteString("}")
}

// VisitWriteStmt renders "write(e)" as a formatted print with a newline.
func (e *Emitter) VisitWriteStmt(n *parser.WriteStmt) {
	e.Buf.WriteString(`println!("{}", `)
	n.Arg.Accept(e)
	e.Buf.WriteString(")")
}

// VisitReadStmt renders "read(x)" as "x = read()", where read is the
// external runtime helper the driver's preamble provides.
func (e *Emitter) VisitReadStmt(n *parser.ReadStmt) {
	n.Arg.Accept(e)
	e.Buf.WriteString(" = read()")
}
