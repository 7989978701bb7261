/*
File    : snlc/lexer/lexer_test.go
Author  : yurzi
Contact : github.com/yurzi/snlc
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// represents a test case for Tokenize
type tokenizeCase struct {
	Input    string
	Expected []Token
}

func TestTokenize(t *testing.T) {
	tests := []tokenizeCase{
		{
			Input: "program p begin write(1) end.",
			Expected: []Token{
				NewToken(Keyword, 0, "program"),
				NewToken(Whitespace, 7, " "),
				NewToken(Ident, 8, "p"),
				NewToken(Whitespace, 9, " "),
				NewToken(Keyword, 10, "begin"),
				NewToken(Whitespace, 15, " "),
				NewToken(Keyword, 16, "write"),
				NewToken(Delimiter, 21, "("),
				NewToken(Literal, 22, "1"),
				NewToken(Delimiter, 23, ")"),
				NewToken(Whitespace, 24, " "),
				NewToken(Keyword, 25, "end"),
				NewToken(Delimiter, 28, "."),
			},
		},
		{
			Input: "a:=b",
			Expected: []Token{
				NewToken(Ident, 0, "a"),
				NewToken(BinOp, 1, ":="),
				NewToken(Ident, 3, "b"),
			},
		},
		{
			Input: "x <= 10",
			Expected: []Token{
				NewToken(Ident, 0, "x"),
				NewToken(Whitespace, 1, " "),
				NewToken(BinOp, 2, "<="),
				NewToken(Whitespace, 4, " "),
				NewToken(Literal, 5, "10"),
			},
		},
		{
			Input: "a..b",
			Expected: []Token{
				NewToken(Ident, 0, "a"),
				NewToken(Delimiter, 1, ".."),
				NewToken(Ident, 3, "b"),
			},
		},
		{
			Input: "{ a comment } x",
			Expected: []Token{
				NewToken(Whitespace, 13, " "),
				NewToken(Ident, 14, "x"),
			},
		},
		{
			Input: "'a' 'bc",
			Expected: []Token{
				NewToken(Literal, 0, "'a'"),
				NewToken(Whitespace, 3, " "),
				NewToken(Literal, 4, "'b"),
				NewToken(Ident, 6, "c"),
			},
		},
		{
			Input: "# x",
			Expected: []Token{
				NewToken(Invisible, 0, "#"),
				NewToken(Whitespace, 1, " "),
				NewToken(Ident, 2, "x"),
			},
		},
	}

	for _, tt := range tests {
		got := Tokenize(tt.Input)
		assert.Equal(t, tt.Expected, got, "Tokenize(%q)", tt.Input)
	}
}

func TestTokenize_SumOfLengthsEqualsInputLength(t *testing.T) {
	inputs := []string{
		"",
		"program p begin write(1) end.",
		"{ unterminated comment",
		"'x",
		"var integer i, j;",
	}

	for _, in := range inputs {
		s := NewScanner(in)
		total := 0
		for {
			tok := s.AdvanceToken()
			total += tok.Len
			if tok.Kind.Tag == EofTag {
				break
			}
		}
		assert.Equal(t, len(in), total, "sum of lengths for %q", in)
	}
}

func TestTokenize_DropsCommentsButCursorAdvances(t *testing.T) {
	toks := Tokenize("a{comment}b")
	assert.Equal(t, []Token{
		NewToken(Ident, 0, "a"),
		NewToken(Ident, 10, "b"),
	}, toks)
}

func TestIsKeyword(t *testing.T) {
	assert.True(t, IsKeyword("while"))
	assert.True(t, IsKeyword("endwh"))
	assert.False(t, IsKeyword("While"), "SNL is case-sensitive")
	assert.False(t, IsKeyword("whilex"))
}

func TestUnterminatedCommentCoversRestOfInput(t *testing.T) {
	s := NewScanner("{ no closing brace")
	tok := s.AdvanceToken()
	assert.Equal(t, CommentTag, tok.Kind.Tag)
	assert.False(t, tok.Kind.Terminated)
	assert.Equal(t, len("{ no closing brace"), tok.Len)
}

func TestUnterminatedCharLiteral(t *testing.T) {
	s := NewScanner("'z")
	tok := s.AdvanceToken()
	assert.Equal(t, LiteralTag, tok.Kind.Tag)
	assert.Equal(t, CharLiteral, tok.Kind.LitKind)
	assert.False(t, tok.Kind.Terminated)
}

func TestTerminatedCharLiteral(t *testing.T) {
	s := NewScanner("'z'")
	tok := s.AdvanceToken()
	assert.Equal(t, LiteralTag, tok.Kind.Tag)
	assert.Equal(t, CharLiteral, tok.Kind.LitKind)
	assert.True(t, tok.Kind.Terminated)
	assert.Equal(t, 3, tok.Len)
}
