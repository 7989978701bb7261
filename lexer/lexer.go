/*
File    : snlc/lexer/lexer.go
Author  : yurzi
Contact : github.com/yurzi/snlc
*/
package lexer

import (
	"iter"
	"unicode/utf8"
)

// Scanner is a stateful cursor over a UTF-8 source buffer. It exposes the
// low-level AdvanceToken entry point, which the positioned-token driver
// (Tokenize) and the auxiliary CLI both build on.
type Scanner struct {
	src string
	pos int // byte offset of the next unread byte
}

// NewScanner creates a Scanner positioned at the start of src.
func NewScanner(src string) *Scanner {
	return &Scanner{src: src}
}

// bump consumes and returns the rune at the cursor, or (0, false) at EOF.
func (s *Scanner) bump() (rune, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	r, w := utf8.DecodeRuneInString(s.src[s.pos:])
	s.pos += w
	return r, true
}

// first peeks the rune at the cursor without consuming it.
func (s *Scanner) first() (rune, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.pos:])
	return r, true
}

// second peeks the rune one past the cursor without consuming anything.
func (s *Scanner) second() (rune, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	_, w := utf8.DecodeRuneInString(s.src[s.pos:])
	next := s.pos + w
	if next >= len(s.src) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s.src[next:])
	return r, true
}

// eatWhile consumes runes while pred holds, stopping at EOF or the first
// rune pred rejects (which is left unconsumed).
func (s *Scanner) eatWhile(pred func(rune) bool) {
	for {
		r, ok := s.first()
		if !ok || !pred(r) {
			return
		}
		s.bump()
	}
}

// AdvanceToken scans and returns the next LexToken, advancing the cursor
// past it. At end of input it returns a token with Kind.Tag == EofTag and
// Len == 0, and may be called any number of times after EOF is reached.
func (s *Scanner) AdvanceToken() LexToken {
	start := s.pos
	first, ok := s.bump()
	if !ok {
		return LexToken{Kind: LexKind{Tag: EofTag}, Len: 0}
	}

	var kind LexKind
	switch {
	case first == '{':
		kind = s.comment()
	case isWhitespace(first):
		kind = s.whitespace()
	case isIDStart(first):
		kind = s.ident()
	case first == ':':
		if r, ok := s.first(); ok && r == '=' {
			s.bump()
			kind = LexKind{Tag: AssignTag}
		} else {
			kind = LexKind{Tag: ColonTag}
		}
	case first == '<':
		if r, ok := s.first(); ok && r == '=' {
			s.bump()
			kind = LexKind{Tag: LessEqTag}
		} else {
			kind = LexKind{Tag: LessTag}
		}
	case first == '.':
		if r, ok := s.first(); ok && r == '.' {
			s.bump()
			kind = LexKind{Tag: UnderRangeTag}
		} else {
			kind = LexKind{Tag: DotTag}
		}
	case isASCIIDigit(first):
		kind = s.intLiteral()
	case first == '\'':
		kind = s.charLiteral()
	case first == '=':
		kind = LexKind{Tag: EqTag}
	case first == '(':
		kind = LexKind{Tag: OpenParenTag}
	case first == ')':
		kind = LexKind{Tag: CloseParenTag}
	case first == '[':
		kind = LexKind{Tag: OpenBrackTag}
	case first == ']':
		kind = LexKind{Tag: CloseBrackTag}
	case first == '+':
		kind = LexKind{Tag: PlusTag}
	case first == '-':
		kind = LexKind{Tag: MinusTag}
	case first == '*':
		kind = LexKind{Tag: StarTag}
	case first == '/':
		kind = LexKind{Tag: SlashTag}
	case first == ';':
		kind = LexKind{Tag: SemicolonTag}
	case first == ',':
		kind = LexKind{Tag: CommaTag}
	default:
		kind = LexKind{Tag: UnknownTag}
	}

	return LexToken{Kind: kind, Len: s.pos - start}
}

// comment consumes a brace comment's body and, if present, its closing
// '}'. An unterminated comment (no closing brace before EOF) still
// produces exactly one Comment token, flagged Terminated: false, that
// spans the rest of input.
func (s *Scanner) comment() LexKind {
	s.eatWhile(func(r rune) bool { return r != '}' })
	_, ok := s.bump()
	return LexKind{Tag: CommentTag, Terminated: ok}
}

func (s *Scanner) whitespace() LexKind {
	s.eatWhile(isWhitespace)
	return LexKind{Tag: WhitespaceTag}
}

func (s *Scanner) ident() LexKind {
	s.eatWhile(isIDContinue)
	return LexKind{Tag: IdentTag}
}

func (s *Scanner) intLiteral() LexKind {
	s.eatWhile(isASCIIDigit)
	return LexKind{Tag: LiteralTag, LitKind: IntegerLiteral}
}

// charLiteral scans a single-quoted char literal. It never produces a
// true string: exactly one character is consumed as the literal's value,
// regardless of how many characters follow before a closing quote.
// Terminated distinguishes 'x' (true) from 'x at end of input (false).
func (s *Scanner) charLiteral() LexKind {
	second, hasSecond := s.second()
	if hasSecond && second == '\'' {
		s.bump() // the literal character
		s.bump() // the closing quote
		return LexKind{Tag: LiteralTag, LitKind: CharLiteral, Terminated: true}
	}
	s.bump() // the literal character, if any
	return LexKind{Tag: LiteralTag, LitKind: CharLiteral, Terminated: false}
}

// Tokens returns a lazy sequence of LexTokens over src, stopping (without
// yielding) at the first Eof. Unlike AdvanceToken, Eof itself is never
// produced by this sequence.
func Tokens(src string) iter.Seq[LexToken] {
	return func(yield func(LexToken) bool) {
		s := NewScanner(src)
		for {
			tok := s.AdvanceToken()
			if tok.Kind.Tag == EofTag {
				return
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// Tokenize converts src into positioned, classified Tokens: it drives the
// Scanner to completion, slices out each lexeme, classifies it into a
// TokenKind (upgrading Ident to Keyword where the lexeme is reserved),
// and drops comments entirely (the cursor still advances past them).
func Tokenize(src string) []Token {
	tokens := make([]Token, 0)
	cur := 0
	for lt := range Tokens(src) {
		if lt.Kind.Tag == CommentTag {
			cur += lt.Len
			continue
		}
		lexeme := src[cur : cur+lt.Len]
		kind := classify(lt.Kind)
		if kind == Ident && IsKeyword(lexeme) {
			kind = Keyword
		}
		tokens = append(tokens, NewToken(kind, cur, lexeme))
		cur += lt.Len
	}
	return tokens
}

// classify maps a low-level LexKind onto its higher-level TokenKind,
// independent of keyword status.
func classify(k LexKind) TokenKind {
	switch k.Tag {
	case PlusTag, MinusTag, StarTag, SlashTag, LessTag, LessEqTag, EqTag, AssignTag:
		return BinOp
	case OpenParenTag, CloseParenTag, OpenBrackTag, CloseBrackTag,
		SemicolonTag, DotTag, CommaTag, ColonTag, UnderRangeTag:
		return Delimiter
	case LiteralTag:
		return Literal
	case WhitespaceTag:
		return Whitespace
	case IdentTag:
		return Ident
	default:
		return Invisible
	}
}
