/*
File    : snlc/emit/emit_decls.go
Author  : yurzi
Contact : github.com/yurzi/snlc
*/
package emit

import (
	"fmt"

	"github.com/yurzi/snlc/parser"
)

// VisitVarDef renders "var char a, b;" / "var integer i, j;" as one
// mutable binding per name, initialized to the host type's zero value —
// '\0' for char, 0 for integer.
func (e *Emitter) VisitVarDef(n *parser.VarDef) {
	typ := rustType(n.IsChar)
	zero := "0"
	if n.IsChar {
		zero = "'\\0'"
	}
	for _, name := range n.Names {
		e.writeIndent()
		fmt.Fprintf(&e.Buf, "let mut %s: %s = %s;\n", name, typ, zero)
	}
}
