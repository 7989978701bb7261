/*
File    : snlc/lexer/token.go
Author  : yurzi
Contact : github.com/yurzi/snlc

Package lexer implements lexical analysis (tokenization) of SNL source
code. It scans a source string rune by rune and produces a sequence of
classified tokens, each carrying the exact source slice it was taken
from and the byte offset it started at.

The lexer is split into two layers, mirroring the original SNL compiler:
  - a low-level cursor (Scanner.AdvanceToken) that knows nothing about
    absolute position and just reports how many bytes it consumed, and
  - a positioned driver (Tokenize) that walks the cursor, tracks a
    running byte offset, classifies keywords, and drops comments.
*/
package lexer

import "fmt"

// TokenKind is the classification assigned to a positioned Token. It is
// a closed set: every SNL lexeme falls into exactly one of these.
type TokenKind string

const (
	Ident      TokenKind = "Ident"
	Keyword    TokenKind = "Keyword"
	Delimiter  TokenKind = "Delimiter"
	Literal    TokenKind = "Literal"
	Whitespace TokenKind = "Whitespace"
	BinOp      TokenKind = "BinOp"
	Comment    TokenKind = "Comment"
	Invisible  TokenKind = "Invisible"
	EOF        TokenKind = "EOF"
)

// ReservedWords is the keyword set of SNL. An identifier lexeme that
// appears here is reclassified from Ident to Keyword during tokenization.
// SNL is case-sensitive: "Begin" is an ordinary identifier, not a keyword.
var ReservedWords = map[string]bool{
	"program":   true,
	"begin":     true,
	"end":       true,
	"procedure": true,
	"return":    true,
	"type":      true,
	"var":       true,
	"if":        true,
	"then":      true,
	"else":      true,
	"fi":        true,
	"while":     true,
	"do":        true,
	"endwh":     true,
	"char":      true,
	"integer":   true,
	"record":    true,
	"array":     true,
	"of":        true,
	"read":      true,
	"write":     true,
}

// IsKeyword reports whether lex is one of SNL's reserved words.
func IsKeyword(lex string) bool {
	return ReservedWords[lex]
}

// Token is a single classified, positioned lexeme produced by Tokenize.
type Token struct {
	Kind   TokenKind
	Pos    int // 0-based byte offset into the source
	Lexeme string
}

// NewToken builds a Token from its three fields. Kept as a constructor
// (rather than a bare struct literal) so call sites read the same way
// across the codebase and tests.
func NewToken(kind TokenKind, pos int, lexeme string) Token {
	return Token{Kind: kind, Pos: pos, Lexeme: lexeme}
}

// End returns the byte offset one past the token's last byte.
func (t Token) End() int {
	return t.Pos + len(t.Lexeme)
}

// Print writes a debug form of the token to stdout: "pos:kind:lexeme".
// The auxiliary lexer CLI (cmd/snlex) prints the same form through String.
func (t Token) Print() {
	fmt.Printf("%d:%s:%q\n", t.Pos, t.Kind, t.Lexeme)
}

// String implements fmt.Stringer with the same "pos:kind:lexeme" shape
// Print uses, so tokens can be embedded directly in error/log messages.
func (t Token) String() string {
	return fmt.Sprintf("%d:%s:%q", t.Pos, t.Kind, t.Lexeme)
}
