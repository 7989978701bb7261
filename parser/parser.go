/*
File    : snlc/parser/parser.go
Author  : yurzi
Contact : github.com/yurzi/snlc
*/
package parser

import "github.com/yurzi/snlc/lexer"

// Parser walks a token slice with one-token lookahead (Peek/Advance) and
// a cheap fork operation (Fork) used by the handful of productions that
// need a second token of lookahead without committing to consuming it.
// It is deliberately a thin cursor over a fixed slice rather than a
// pull-based stream: SNL programs are small and the whole token list is
// already in memory by the time parsing starts.
type Parser struct {
	toks []lexer.Token
	pos  int
}

// New builds a Parser over toks, filtering out Whitespace tokens — the
// grammar never looks at them. Comments are already absent: Tokenize
// drops them before a Token is ever produced.
func New(toks []lexer.Token) *Parser {
	filtered := make([]lexer.Token, 0, len(toks))
	for _, t := range toks {
		if t.Kind == lexer.Whitespace {
			continue
		}
		filtered = append(filtered, t)
	}
	return &Parser{toks: filtered}
}

// eofToken is returned by Peek once the cursor runs past the last token.
// Its Pos is one past the end of the last real token, so a "ran out of
// input" syntax error still carries a sensible span.
func (p *Parser) eofToken() lexer.Token {
	if len(p.toks) == 0 {
		return lexer.NewToken(lexer.EOF, 0, "")
	}
	last := p.toks[len(p.toks)-1]
	return lexer.NewToken(lexer.EOF, last.End(), "")
}

// Peek returns the current token without consuming it.
func (p *Parser) Peek() lexer.Token {
	if p.pos >= len(p.toks) {
		return p.eofToken()
	}
	return p.toks[p.pos]
}

// AtEnd reports whether the cursor has consumed every token.
func (p *Parser) AtEnd() bool {
	return p.pos >= len(p.toks)
}

// Advance consumes and returns the current token.
func (p *Parser) Advance() lexer.Token {
	t := p.Peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

// Fork returns an independent cursor copy positioned at the same place
// as p. Advancing the fork never affects p; the caller either discards
// the fork or, to commit to what it found, re-does the same Advance
// calls on p itself. This mirrors the reference compiler's syn::fork,
// translated from a parse-stream snapshot into a plain struct copy.
func (p *Parser) Fork() *Parser {
	cp := *p
	return &cp
}

// peekIsDelim reports whether the current token is a Delimiter with the
// given lexeme — the common case for single-character punctuation.
func (p *Parser) peekIsDelim(lexeme string) bool {
	t := p.Peek()
	return t.Kind == lexer.Delimiter && t.Lexeme == lexeme
}

// peekIsKeyword reports whether the current token is the named keyword.
func (p *Parser) peekIsKeyword(kw string) bool {
	t := p.Peek()
	return t.Kind == lexer.Keyword && t.Lexeme == kw
}

// expectKeyword consumes the current token if it is the named keyword,
// else raises a SyntaxError.
func (p *Parser) expectKeyword(kw string) error {
	if !p.peekIsKeyword(kw) {
		return newSyntaxError(p.Peek(), "expected keyword %q", kw)
	}
	p.Advance()
	return nil
}

// expectDelim consumes the current token if it is the named delimiter,
// else raises a SyntaxError.
func (p *Parser) expectDelim(lexeme string) error {
	if !p.peekIsDelim(lexeme) {
		return newSyntaxError(p.Peek(), "expected %q", lexeme)
	}
	p.Advance()
	return nil
}

// expectIdent consumes and returns the current token's lexeme if it is
// an Ident, else raises a SyntaxError.
func (p *Parser) expectIdent() (string, error) {
	t := p.Peek()
	if t.Kind != lexer.Ident {
		return "", newSyntaxError(t, "expected identifier")
	}
	p.Advance()
	return t.Lexeme, nil
}

// stubProgram is the fallback AST substituted for a failed parse, so
// that emission still runs and produces a syntactically valid (if
// deliberately broken) host artifact alongside the propagated error.
// The name "yurzi" is the CLI's own author/identity string, not an
// arbitrary placeholder.
func stubProgram() *Program {
	return &Program{
		Name: "yurzi",
		Body: []Stmt{},
	}
}

// Parse is the package's public entry point: it tokenizes is already
// done by the caller (Parser operates on a token slice), so Parse just
// parses a full Program. On success it returns the real AST and a nil
// error. On the first syntax error, it returns the stub program alongside
// the error, so a caller that wants "always emit something" can ignore
// the error and still get a Program to hand to the emitter.
func Parse(toks []lexer.Token) (*Program, error) {
	p := New(toks)
	prog, err := p.parseProgram()
	if err != nil {
		return stubProgram(), err
	}
	return prog, nil
}
