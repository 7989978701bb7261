/*
File    : snlc/rewrite/bridge.go
Author  : yurzi
Contact : github.com/yurzi/snlc

Package rewrite implements the pre-emit token rewrite bridge: it
re-lexes an SNL source string and prefixes every keyword lexeme with
Rust's raw-identifier marker "r#", so that a downstream tokeniser which
reserves those words as its own keywords still sees them as plain
identifiers. Whitespace, delimiters, and literals round-trip unchanged;
comments were already dropped during tokenisation, which is the one
place source text is lost irrecoverably by this pass.
*/
package rewrite

import (
	"strings"

	"github.com/yurzi/snlc/lexer"
)

const rawIdentMarker = "r#"

// Bridge re-lexes src and returns the reassembled text with every keyword
// token's lexeme prefixed by "r#". The concatenation is exact for every
// other token kind.
func Bridge(src string) string {
	toks := lexer.Tokenize(src)

	var b strings.Builder
	b.Grow(len(src) + len(toks)*len(rawIdentMarker))
	for _, t := range toks {
		if t.Kind == lexer.Keyword {
			b.WriteString(rawIdentMarker)
		}
		b.WriteString(t.Lexeme)
	}
	return b.String()
}
