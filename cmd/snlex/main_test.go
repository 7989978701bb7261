/*
File    : snlc/cmd/snlex/main_test.go
Author  : yurzi
Contact : github.com/yurzi/snlc
*/
package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yurzi/snlc/lexer"
	"github.com/yurzi/snlc/parser"
)

func TestRunAST_PrintsProgramShape(t *testing.T) {
	prog, err := parser.Parse(lexer.Tokenize(`program p var integer a; begin a := 1; write(a) end.`))
	assert.NoError(t, err)

	var buf bytes.Buffer
	printAST(&buf, prog)

	out := buf.String()
	assert.Contains(t, out, `Program "p"`)
	assert.Contains(t, out, "VarDef integer [a]")
	assert.Contains(t, out, "AssignExpr")
	assert.Contains(t, out, "WriteStmt")

	// the var decl and assignment must print before the write, matching
	// source order.
	assert.True(t, strings.Index(out, "VarDef") < strings.Index(out, "AssignExpr"))
	assert.True(t, strings.Index(out, "AssignExpr") < strings.Index(out, "WriteStmt"))
}
