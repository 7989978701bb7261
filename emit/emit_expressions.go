/*
File    : snlc/emit/emit_expressions.go
Author  : yurzi
Contact : github.com/yurzi/snlc
*/
package emit

import "github.com/yurzi/snlc/parser"

// VisitAssignExpr renders "target := from" as a host "=" assignment,
// keeping the target (any Expr, per the grammar) on the left exactly as
// parsed.
func (e *Emitter) VisitAssignExpr(n *parser.AssignExpr) {
	n.Target.Accept(e)
	e.Buf.WriteString(" = ")
	n.From.Accept(e)
}

// VisitBinaryExpr renders "lhs op rhs" infix with single-space separation.
// SNL "=" becomes Rust "==" since SNL already spends "=" on comparison and
// ":=" on assignment; every other operator keeps its own lexeme.
func (e *Emitter) VisitBinaryExpr(n *parser.BinaryExpr) {
	n.Lhs.Accept(e)
	e.Buf.WriteString(" ")
	e.Buf.WriteString(opLexeme(n.Op))
	e.Buf.WriteString(" ")
	n.Rhs.Accept(e)
}

func opLexeme(op parser.BinOp) string {
	if op == parser.OpEq {
		return "=="
	}
	return string(op)
}

// VisitVarExpr renders a bare identifier reference unchanged.
func (e *Emitter) VisitVarExpr(n *parser.VarExpr) {
	e.Buf.WriteString(n.Name)
}

// VisitLitExpr renders an integer or character literal verbatim: SNL's
// literal syntax for both is already valid Rust literal syntax.
func (e *Emitter) VisitLitExpr(n *parser.LitExpr) {
	e.Buf.WriteString(n.Raw)
}

// VisitIndexExpr renders "name[index]" unchanged.
func (e *Emitter) VisitIndexExpr(n *parser.IndexExpr) {
	e.Buf.WriteString(n.Name)
	e.Buf.WriteString("[")
	n.Index.Accept(e)
	e.Buf.WriteString("]")
}

// VisitCallExpr renders "name(args...)" with comma-separated arguments and
// no trailing comma.
func (e *Emitter) VisitCallExpr(n *parser.CallExpr) {
	e.Buf.WriteString(n.Name)
	e.Buf.WriteString("(")
	for i, arg := range n.Args {
		if i > 0 {
			e.Buf.WriteString(", ")
		}
		arg.Accept(e)
	}
	e.Buf.WriteString(")")
}

// VisitParenExpr renders "(inner)", preserving the source's own
// parenthesization.
func (e *Emitter) VisitParenExpr(n *parser.ParenExpr) {
	e.Buf.WriteString("(")
	n.Inner.Accept(e)
	e.Buf.WriteString(")")
}
