/*
File    : snlc/emit/emit_errors.go
Author  : yurzi
Contact : github.com/yurzi/snlc
*/
package emit

import (
	"fmt"

	"github.com/yurzi/snlc/parser"
)

// EmitError renders a SyntaxError as a compile_error! invocation — a
// marker that, spliced into the emitted artifact alongside the (stub)
// program emission, makes the downstream host compiler refuse to build
// it, with a diagnostic that still references the offending source
// position. The emitter itself never fails; this is how a failed parse
// still produces emittable text.
func EmitError(err *parser.SyntaxError) string {
	return fmt.Sprintf("compile_error!(%q);\n", err.Error())
}
