/*
File    : snlc/parser/parser_statements.go
Author  : yurzi
Contact : github.com/yurzi/snlc
*/
package parser

// parseStmtList parses "Stm (';' Stm)*": one statement, then as many
// more as are introduced by a semicolon. It stops — without consuming
// anything else — the moment the next token isn't ';', which is what
// naturally ends a body right before "end", "else", "fi", or "endwh"
// without this function ever having to recognize those keywords itself.
func (p *Parser) parseStmtList() ([]Stmt, error) {
	first, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	stmts := []Stmt{first}

	for p.peekIsDelim(";") {
		p.Advance()
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	return stmts, nil
}

// parseStmt parses a single Stm production.
func (p *Parser) parseStmt() (Stmt, error) {
	switch {
	case p.peekIsKeyword("read"):
		return p.parseReadStmt()
	case p.peekIsKeyword("write"):
		return p.parseWriteStmt()
	case p.peekIsKeyword("if"):
		return p.parseIfStmt()
	case p.peekIsKeyword("while"):
		return p.parseWhileStmt()
	default:
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ExprStmt{X: expr}, nil
	}
}

func (p *Parser) parseReadStmt() (*ReadStmt, error) {
	p.Advance() // "read"
	if err := p.expectDelim("("); err != nil {
		return nil, err
	}
	arg, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectDelim(")"); err != nil {
		return nil, err
	}
	return &ReadStmt{Arg: arg}, nil
}

func (p *Parser) parseWriteStmt() (*WriteStmt, error) {
	p.Advance() // "write"
	if err := p.expectDelim("("); err != nil {
		return nil, err
	}
	arg, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectDelim(")"); err != nil {
		return nil, err
	}
	return &WriteStmt{Arg: arg}, nil
}

func (p *Parser) parseIfStmt() (*IfStmt, error) {
	p.Advance() // "if"
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("then"); err != nil {
		return nil, err
	}
	body, err := p.parseStmtList()
	if err != nil {
		return nil, err
	}

	var elseBody []Stmt
	if p.peekIsKeyword("else") {
		p.Advance()
		elseBody, err = p.parseStmtList()
		if err != nil {
			return nil, err
		}
	}

	if err := p.expectKeyword("fi"); err != nil {
		return nil, err
	}

	return &IfStmt{Cond: cond, Body: body, Else: elseBody}, nil
}

func (p *Parser) parseWhileStmt() (*WhileStmt, error) {
	p.Advance() // "while"
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("do"); err != nil {
		return nil, err
	}
	body, err := p.parseStmtList()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("endwh"); err != nil {
		return nil, err
	}
	return &WhileStmt{Cond: cond, Body: body}, nil
}
