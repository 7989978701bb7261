/*
File    : snlc/emit/emitter.go
Author  : yurzi
Contact : github.com/yurzi/snlc

Package emit renders a parser.Program as host-language (Rust) source
text. The visitor performs a single depth-first walk and appends to one
growing buffer; it never fails — every AST shape the parser package can
produce has exactly one rendering.
*/
package emit

import (
	"bytes"
	"strings"

	"github.com/yurzi/snlc/parser"
)

const indentUnit = "    "

// Emitter walks a Program and writes Rust text to Buf. It implements
// parser.Visitor; callers normally use the package-level Emit function
// rather than driving an Emitter directly.
type Emitter struct {
	Buf    bytes.Buffer
	Indent int
}

func (e *Emitter) writeIndent() {
	e.Buf.WriteString(strings.Repeat(indentUnit, e.Indent))
}

// Emit renders prog and returns the emitted Rust text for its body —
// the closure definition and its immediate invocation, with no
// surrounding preamble or main(). Composing that wrapper is the driver's
// job (see cmd/snlc), matching §1's framing of the runtime prelude and
// host-program packaging as an external, contract-only concern.
func Emit(prog *parser.Program) string {
	e := &Emitter{}
	prog.Accept(e)
	return e.Buf.String()
}

// emitStmtList renders each statement in stmts on its own indented line,
// terminated with ';' — the uniform "statement in a list is followed by
// ';'" rule. Individual Visit*Stmt methods render only their own content;
// this is the only place a trailing ';' or indentation prefix is added
// for a statement.
func (e *Emitter) emitStmtList(stmts []parser.Stmt) {
	for _, s := range stmts {
		e.writeIndent()
		s.Accept(e)
		e.Buf.WriteString(";\n")
	}
}
