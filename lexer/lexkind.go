/*
File    : snlc/lexer/lexkind.go
Author  : yurzi
Contact : github.com/yurzi/snlc
*/
package lexer

// LexTag is the low-level token tag produced by the Scanner, before
// absolute position and keyword classification are layered on top by
// Tokenize. It is a closed set.
type LexTag string

const (
	CommentTag    LexTag = "Comment"
	WhitespaceTag LexTag = "Whitespace"
	IdentTag      LexTag = "Ident"
	LiteralTag    LexTag = "Literal"
	OpenParenTag  LexTag = "OpenParen"
	CloseParenTag LexTag = "CloseParen"
	OpenBrackTag  LexTag = "OpenBracket"
	CloseBrackTag LexTag = "CloseBracket"
	PlusTag       LexTag = "Plus"
	MinusTag      LexTag = "Minus"
	StarTag       LexTag = "Star"
	SlashTag      LexTag = "Slash"
	SemicolonTag  LexTag = "Semicolon"
	DotTag        LexTag = "Dot"
	CommaTag      LexTag = "Comma"
	ColonTag      LexTag = "Colon"
	LessTag       LexTag = "Less"
	LessEqTag     LexTag = "LessEq"
	EqTag         LexTag = "Eq"
	AssignTag     LexTag = "Assign"
	UnderRangeTag LexTag = "UnderRange"
	UnknownTag    LexTag = "Unknown"
	EofTag        LexTag = "Eof"
)

// LiteralKind distinguishes the two literal shapes SNL recognizes.
type LiteralKind string

const (
	IntegerLiteral LiteralKind = "Integer"
	CharLiteral    LiteralKind = "Char"
)

// LexKind carries a LexTag plus the extra bits some tags need:
// Terminated applies to Comment (closing '}' present) and to a Char
// literal (closing "'" present); LitKind applies only when Tag is
// LiteralTag.
type LexKind struct {
	Tag        LexTag
	Terminated bool
	LitKind    LiteralKind
}

// LexToken is the raw result of one Scanner.AdvanceToken call: a kind and
// the number of source bytes it spans. It carries no absolute position —
// the caller (Tokenize) accumulates that itself.
type LexToken struct {
	Kind LexKind
	Len  int
}
