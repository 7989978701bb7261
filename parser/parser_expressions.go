/*
File    : snlc/parser/parser_expressions.go
Author  : yurzi
Contact : github.com/yurzi/snlc
*/
package parser

import "github.com/yurzi/snlc/lexer"

// binOpLexemes maps every BinOp's surface lexeme back to the BinOp value,
// used to recognize an operator token without hard-coding the mapping at
// every call site.
var binOpLexemes = map[string]BinOp{
	string(OpLt):     OpLt,
	string(OpLe):     OpLe,
	string(OpEq):     OpEq,
	string(OpAssign): OpAssign,
	string(OpPlus):   OpPlus,
	string(OpMinus):  OpMinus,
	string(OpStar):   OpStar,
	string(OpSlash):  OpSlash,
}

// peekBinOp reports the BinOp the current token spells, if any.
func (p *Parser) peekBinOp() (BinOp, bool) {
	t := p.Peek()
	if t.Kind != lexer.BinOp {
		return "", false
	}
	op, ok := binOpLexemes[t.Lexeme]
	return op, ok
}

// parseExpr parses "Primary (BinOp Expr)?". The grammar is flat right
// recursion rather than precedence climbing: every operator binds exactly
// the same way regardless of which one it is, so "a + b * c" parses as
// "a + (b * c)" purely because of right-recursion, never because '*'
// outranks '+'. This is spec-mandated and deliberately not how a
// general-purpose expression grammar would normally be written.
func (p *Parser) parseExpr() (Expr, error) {
	lhs, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	op, ok := p.peekBinOp()
	if !ok {
		return lhs, nil
	}
	p.Advance()

	rhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if op == OpAssign {
		return &AssignExpr{Target: lhs, From: rhs}, nil
	}
	return &BinaryExpr{Lhs: lhs, Op: op, Rhs: rhs}, nil
}

// parsePrimary parses "INT_LIT | CHAR_LIT | IDENT '[' Expr ']' |
// IDENT '(' (Expr (',' Expr)*)? ')' | IDENT | '(' Expr ')'".
//
// The three IDENT-led alternatives are disambiguated by one token of
// lookahead past the identifier itself: a following '[' commits to Index,
// a following '(' commits to Call, anything else falls back to a bare
// VarExpr. parseIdentLedPrimary makes that decision with a Fork.
func (p *Parser) parsePrimary() (Expr, error) {
	t := p.Peek()

	switch {
	case t.Kind == lexer.Literal:
		p.Advance()
		kind := LitInt
		if t.Lexeme != "" && t.Lexeme[0] == '\'' {
			kind = LitChar
		}
		return &LitExpr{Kind: kind, Raw: t.Lexeme}, nil

	case t.Kind == lexer.Ident:
		return p.parseIdentLedPrimary()

	case p.peekIsDelim("("):
		p.Advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectDelim(")"); err != nil {
			return nil, err
		}
		return &ParenExpr{Inner: inner}, nil

	default:
		return nil, newSyntaxError(t, "expected an expression")
	}
}

// parseIdentLedPrimary resolves the Index/Call/Var ambiguity that starting
// on an identifier creates. It forks the cursor, advances the fork past
// the identifier to see what comes next, then replays that same decision
// on the real cursor — a fork-then-peek rather than a speculative parse,
// since the decision only ever needs one token past the identifier.
func (p *Parser) parseIdentLedPrimary() (Expr, error) {
	lookahead := p.Fork()
	lookahead.Advance()
	next := lookahead.Peek()
	isIndex := next.Kind == lexer.Delimiter && next.Lexeme == "["
	isCall := next.Kind == lexer.Delimiter && next.Lexeme == "("

	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	switch {
	case isIndex:
		p.Advance()
		index, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectDelim("]"); err != nil {
			return nil, err
		}
		return &IndexExpr{Name: name, Index: index}, nil

	case isCall:
		p.Advance()
		args, err := p.parseCallArgs()
		if err != nil {
			return nil, err
		}
		if err := p.expectDelim(")"); err != nil {
			return nil, err
		}
		return &CallExpr{Name: name, Args: args}, nil

	default:
		return &VarExpr{Name: name}, nil
	}
}

// parseCallArgs parses a possibly-empty comma-separated Expr list, stopping
// at (without consuming) the closing ')'. A trailing comma is rejected:
// each ',' must be followed by another argument.
func (p *Parser) parseCallArgs() ([]Expr, error) {
	var args []Expr
	if p.peekIsDelim(")") {
		return args, nil
	}
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if !p.peekIsDelim(",") {
			break
		}
		p.Advance()
	}
	return args, nil
}
