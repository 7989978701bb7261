/*
File    : snlc/cmd/snlex/ast_printer.go
Author  : yurzi
Contact : github.com/yurzi/snlc
*/
package main

import (
	"fmt"
	"io"

	"github.com/yurzi/snlc/parser"
)

const astIndentSize = 2

// astPrinter is a parser.Visitor that prints each node's shape to w with
// indentation tracking descent depth — the same buffer-and-indent shape
// the emitter uses, repurposed here for a one-shot debug dump instead of
// code generation.
type astPrinter struct {
	w      io.Writer
	indent int
}

func (p *astPrinter) line(format string, args ...any) {
	for i := 0; i < p.indent; i++ {
		fmt.Fprint(p.w, " ")
	}
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *astPrinter) descend(f func()) {
	p.indent += astIndentSize
	f()
	p.indent -= astIndentSize
}

func (p *astPrinter) VisitProgram(n *parser.Program) {
	p.line("Program %q", n.Name)
	p.descend(func() {
		for _, vd := range n.VarDefs {
			vd.Accept(p)
		}
		for _, pd := range n.ProcedureDefs {
			pd.Accept(p)
		}
		for _, s := range n.Body {
			s.Accept(p)
		}
	})
}

func (p *astPrinter) VisitVarDef(n *parser.VarDef) {
	typ := "integer"
	if n.IsChar {
		typ = "char"
	}
	p.line("VarDef %s %v", typ, n.Names)
}

func (p *astPrinter) VisitProcedureDef(n *parser.ProcedureDef) {
	p.line("ProcedureDef %q (%d params)", n.Name, len(n.Params))
	p.descend(func() {
		for _, vd := range n.VarDefs {
			vd.Accept(p)
		}
		for _, s := range n.Body {
			s.Accept(p)
		}
	})
}

func (p *astPrinter) VisitExprStmt(n *parser.ExprStmt) {
	p.line("ExprStmt")
	p.descend(func() { n.X.Accept(p) })
}

func (p *astPrinter) VisitIfStmt(n *parser.IfStmt) {
	p.line("IfStmt (else=%v)", n.Else != nil)
	p.descend(func() {
		n.Cond.Accept(p)
		for _, s := range n.Body {
			s.Accept(p)
		}
		for _, s := range n.Else {
			s.Accept(p)
		}
	})
}

func (p *astPrinter) VisitWhileStmt(n *parser.WhileStmt) {
	p.line("WhileStmt")
	p.descend(func() {
		n.Cond.Accept(p)
		for _, s := range n.Body {
			s.Accept(p)
		}
	})
}

func (p *astPrinter) VisitWriteStmt(n *parser.WriteStmt) {
	p.line("WriteStmt")
	p.descend(func() { n.Arg.Accept(p) })
}

func (p *astPrinter) VisitReadStmt(n *parser.ReadStmt) {
	p.line("ReadStmt")
	p.descend(func() { n.Arg.Accept(p) })
}

func (p *astPrinter) VisitAssignExpr(n *parser.AssignExpr) {
	p.line("AssignExpr")
	p.descend(func() {
		n.Target.Accept(p)
		n.From.Accept(p)
	})
}

func (p *astPrinter) VisitBinaryExpr(n *parser.BinaryExpr) {
	p.line("BinaryExpr %s", n.Op)
	p.descend(func() {
		n.Lhs.Accept(p)
		n.Rhs.Accept(p)
	})
}

func (p *astPrinter) VisitVarExpr(n *parser.VarExpr) {
	p.line("VarExpr %s", n.Name)
}

func (p *astPrinter) VisitLitExpr(n *parser.LitExpr) {
	p.line("LitExpr %s", n.Raw)
}

func (p *astPrinter) VisitIndexExpr(n *parser.IndexExpr) {
	p.line("IndexExpr %s", n.Name)
	p.descend(func() { n.Index.Accept(p) })
}

func (p *astPrinter) VisitCallExpr(n *parser.CallExpr) {
	p.line("CallExpr %s (%d args)", n.Name, len(n.Args))
	p.descend(func() {
		for _, a := range n.Args {
			a.Accept(p)
		}
	})
}

func (p *astPrinter) VisitParenExpr(n *parser.ParenExpr) {
	p.line("ParenExpr")
	p.descend(func() { n.Inner.Accept(p) })
}
