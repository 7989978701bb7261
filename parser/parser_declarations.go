/*
File    : snlc/parser/parser_declarations.go
Author  : yurzi
Contact : github.com/yurzi/snlc
*/
package parser

// isMaybeBlockEnd reports whether the current token could end a var-def
// list: the stream is positioned at "begin" or "procedure". Nested
// statement-block enders (endwh/else/fi) are a separate concern handled
// by the semicolon-driven statement-list termination, not by this check.
func (p *Parser) isMaybeBlockEnd() bool {
	return p.peekIsKeyword("begin") || p.peekIsKeyword("procedure")
}

// parseProgram parses the whole "program NAME VarBlock? ProcBlock?
// begin StmList end ." production.
func (p *Parser) parseProgram() (*Program, error) {
	if err := p.expectKeyword("program"); err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	varDefs, err := p.parseOptionalVarBlock()
	if err != nil {
		return nil, err
	}

	procDefs, err := p.parseOptionalProcBlock()
	if err != nil {
		return nil, err
	}

	if err := p.expectKeyword("begin"); err != nil {
		return nil, err
	}
	body, err := p.parseStmtList()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("end"); err != nil {
		return nil, err
	}
	if err := p.expectDelim("."); err != nil {
		return nil, err
	}

	return &Program{
		Name:          name,
		VarDefs:       varDefs,
		ProcedureDefs: procDefs,
		Body:          body,
	}, nil
}

// parseOptionalVarBlock parses a leading "var" keyword followed by one
// or more semicolon-terminated VarDefs, or returns (nil, nil) if the
// stream has no "var" section here.
func (p *Parser) parseOptionalVarBlock() ([]*VarDef, error) {
	if !p.peekIsKeyword("var") {
		return nil, nil
	}
	p.Advance()
	return p.parseVarDefsWithin()
}

// parseVarDefsWithin parses VarDef ';' repeatedly until the stream
// starts with "begin"/"procedure" or runs out of tokens.
func (p *Parser) parseVarDefsWithin() ([]*VarDef, error) {
	var defs []*VarDef
	for {
		if p.isMaybeBlockEnd() || p.AtEnd() {
			break
		}
		def, err := p.parseVarDef()
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
		if err := p.expectDelim(";"); err != nil {
			return nil, err
		}
	}
	return defs, nil
}

// parseVarDef parses "('char'|'integer') IDENT (',' IDENT)*".
func (p *Parser) parseVarDef() (*VarDef, error) {
	isChar, err := p.parseTypeKeyword()
	if err != nil {
		return nil, err
	}
	names, err := p.parseIdentListUntilSemicolon()
	if err != nil {
		return nil, err
	}
	return &VarDef{IsChar: isChar, Names: names}, nil
}

// parseTypeKeyword consumes "char" or "integer" and reports which one.
func (p *Parser) parseTypeKeyword() (isChar bool, err error) {
	switch {
	case p.peekIsKeyword("char"):
		p.Advance()
		return true, nil
	case p.peekIsKeyword("integer"):
		p.Advance()
		return false, nil
	default:
		return false, newSyntaxError(p.Peek(), "expected \"char\" or \"integer\"")
	}
}

// parseIdentListUntilSemicolon parses one or more comma-separated
// identifiers, stopping at (without consuming) the first ';'.
func (p *Parser) parseIdentListUntilSemicolon() ([]string, error) {
	var names []string
	for {
		if p.peekIsDelim(";") || p.AtEnd() {
			break
		}
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		names = append(names, name)

		if p.peekIsDelim(";") {
			break
		}
		if err := p.expectDelim(","); err != nil {
			return nil, err
		}
	}
	if len(names) == 0 {
		return nil, newSyntaxError(p.Peek(), "expected at least one identifier in declaration")
	}
	return names, nil
}

// parseOptionalProcBlock parses zero or more ProcedureDefs. Its
// termination rule is inverted from var-blocks: a procedure list keeps
// going as long as the stream starts with "procedure", and stops the
// instant it doesn't.
func (p *Parser) parseOptionalProcBlock() ([]*ProcedureDef, error) {
	var procs []*ProcedureDef
	for p.peekIsKeyword("procedure") {
		proc, err := p.parseProcedureDef()
		if err != nil {
			return nil, err
		}
		procs = append(procs, proc)
	}
	return procs, nil
}

// parseProcedureDef parses "procedure IDENT ( ParamList? ) VarBlock?
// begin StmList". Unlike Program, a procedure body needs no "end" token
// of its own — it runs until the next procedure or the enclosing
// program's "begin"; one trailing "end" after the body is consumed if
// present.
func (p *Parser) parseProcedureDef() (*ProcedureDef, error) {
	if err := p.expectKeyword("procedure"); err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expectDelim("("); err != nil {
		return nil, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	if err := p.expectDelim(")"); err != nil {
		return nil, err
	}

	varDefs, err := p.parseOptionalVarBlock()
	if err != nil {
		return nil, err
	}

	if err := p.expectKeyword("begin"); err != nil {
		return nil, err
	}
	body, err := p.parseStmtList()
	if err != nil {
		return nil, err
	}

	// The grammar gives a procedure body no closing "end" of its own — it
	// normally runs until the next "procedure" or the enclosing program's
	// "begin"/"end". Source written in the traditional Pascal style still
	// closes each procedure's "begin" with a matching "end", though, so a
	// trailing "end" here is consumed when present and simply absent
	// otherwise; either way the procedure list's own termination check
	// (peekIsKeyword("procedure")) decides where ProcBlock really ends.
	if p.peekIsKeyword("end") {
		p.Advance()
	}

	return &ProcedureDef{
		Name:    name,
		Params:  params,
		VarDefs: varDefs,
		Body:    body,
	}, nil
}

// parseParamList parses a possibly-empty comma-separated ParamDecl list,
// stopping at (without consuming) the closing ')'.
func (p *Parser) parseParamList() ([]ParamDecl, error) {
	var params []ParamDecl
	if p.peekIsDelim(")") {
		return params, nil
	}
	for {
		param, err := p.parseParamDecl()
		if err != nil {
			return nil, err
		}
		params = append(params, param)

		if !p.peekIsDelim(",") {
			break
		}
		p.Advance()
	}
	return params, nil
}

// parseParamDecl parses "('char'|'integer') IDENT".
func (p *Parser) parseParamDecl() (ParamDecl, error) {
	isChar, err := p.parseTypeKeyword()
	if err != nil {
		return ParamDecl{}, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return ParamDecl{}, err
	}
	return ParamDecl{IsChar: isChar, Name: name}, nil
}
