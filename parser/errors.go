/*
File    : snlc/parser/errors.go
Author  : yurzi
Contact : github.com/yurzi/snlc
*/
package parser

import (
	"fmt"

	"github.com/yurzi/snlc/lexer"
)

// SyntaxError is the one error shape the parser ever produces: the first
// token that could not satisfy the current production, together with
// what the parser was expecting there. There is no recovery — parsing
// stops the moment this is raised.
type SyntaxError struct {
	Pos     int
	Got     lexer.Token
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at byte %d: %s (got %q)", e.Pos, e.Message, e.Got.Lexeme)
}

func newSyntaxError(got lexer.Token, format string, args ...any) *SyntaxError {
	return &SyntaxError{
		Pos:     got.Pos,
		Got:     got,
		Message: fmt.Sprintf(format, args...),
	}
}
