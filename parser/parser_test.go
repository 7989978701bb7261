/*
File    : snlc/parser/parser_test.go
Author  : yurzi
Contact : github.com/yurzi/snlc
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yurzi/snlc/lexer"
)

func mustParse(t *testing.T, src string) *Program {
	t.Helper()
	prog, err := Parse(lexer.Tokenize(src))
	assert.NoError(t, err)
	return prog
}

func TestParse_MinimalProgram(t *testing.T) {
	prog := mustParse(t, `program p begin write(1) end.`)

	assert.Equal(t, "p", prog.Name)
	assert.Nil(t, prog.VarDefs)
	assert.Nil(t, prog.ProcedureDefs)
	assert.Len(t, prog.Body, 1)

	ws, ok := prog.Body[0].(*WriteStmt)
	assert.True(t, ok)
	lit, ok := ws.Arg.(*LitExpr)
	assert.True(t, ok)
	assert.Equal(t, LitInt, lit.Kind)
	assert.Equal(t, "1", lit.Raw)
}

func TestParse_VarBlockAndAssignment(t *testing.T) {
	prog := mustParse(t, `program p var integer a, b; begin a := 1; b := a end.`)

	assert.Len(t, prog.VarDefs, 1)
	assert.False(t, prog.VarDefs[0].IsChar)
	assert.Equal(t, []string{"a", "b"}, prog.VarDefs[0].Names)
	assert.Len(t, prog.Body, 2)

	first, ok := prog.Body[0].(*ExprStmt)
	assert.True(t, ok)
	assign, ok := first.X.(*AssignExpr)
	assert.True(t, ok)
	target, ok := assign.Target.(*VarExpr)
	assert.True(t, ok)
	assert.Equal(t, "a", target.Name)
}

func TestParse_IfStmt_ElseIsNilWithoutElseBranch(t *testing.T) {
	prog := mustParse(t, `program p begin if 1 < 2 then write(1) fi end.`)

	ifs, ok := prog.Body[0].(*IfStmt)
	assert.True(t, ok)
	assert.Nil(t, ifs.Else)
	assert.Len(t, ifs.Body, 1)
}

func TestParse_IfStmt_ElsePresentWhenElseBranchAppears(t *testing.T) {
	prog := mustParse(t, `program p begin if 1 < 2 then write(1) else write(2) fi end.`)

	ifs, ok := prog.Body[0].(*IfStmt)
	assert.True(t, ok)
	assert.NotNil(t, ifs.Else)
	assert.Len(t, ifs.Else, 1)
}

func TestParse_IfStmt_EmptyThenBodyIsSyntaxError(t *testing.T) {
	_, err := Parse(lexer.Tokenize(`program p begin if 1 < 2 then fi end.`))
	assert.Error(t, err)
	var synErr *SyntaxError
	assert.ErrorAs(t, err, &synErr)
}

func TestParse_WhileStmt(t *testing.T) {
	prog := mustParse(t, `program p var integer i; begin while i < 10 do i := i + 1 endwh end.`)

	ws, ok := prog.Body[0].(*WhileStmt)
	assert.True(t, ok)
	assert.Len(t, ws.Body, 1)
}

func TestParse_CallExpr_ArgCountMatchesCommaCount(t *testing.T) {
	prog := mustParse(t, `program p var integer f, a, b, c; begin f(a, b, c) end.`)

	es, ok := prog.Body[0].(*ExprStmt)
	assert.True(t, ok)
	call, ok := es.X.(*CallExpr)
	assert.True(t, ok)
	assert.Equal(t, "f", call.Name)
	assert.Len(t, call.Args, 3)
}

func TestParse_CallExpr_TrailingCommaIsSyntaxError(t *testing.T) {
	_, err := Parse(lexer.Tokenize(`program p var integer f, a; begin f(a,) end.`))
	assert.Error(t, err)
}

func TestParse_IndexExpr(t *testing.T) {
	prog := mustParse(t, `program p var integer a, i; begin a[i] := 1 end.`)

	es, ok := prog.Body[0].(*ExprStmt)
	assert.True(t, ok)
	assign, ok := es.X.(*AssignExpr)
	assert.True(t, ok)
	idx, ok := assign.Target.(*IndexExpr)
	assert.True(t, ok)
	assert.Equal(t, "a", idx.Name)
}

func TestParse_AssignOnlyWhenOperatorIsColonEquals(t *testing.T) {
	prog := mustParse(t, `program p var integer a, b; begin a < b end.`)

	es, ok := prog.Body[0].(*ExprStmt)
	assert.True(t, ok)
	_, isAssign := es.X.(*AssignExpr)
	assert.False(t, isAssign)
	bin, ok := es.X.(*BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, OpLt, bin.Op)
}

func TestParse_FlatGrammarIsRightAssociativeNotPrecedenceClimbing(t *testing.T) {
	prog := mustParse(t, `program p var integer a, b, c; begin a := b + c * a end.`)

	es, ok := prog.Body[0].(*ExprStmt)
	assert.True(t, ok)
	assign, ok := es.X.(*AssignExpr)
	assert.True(t, ok)

	outer, ok := assign.From.(*BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, OpPlus, outer.Op)

	inner, ok := outer.Rhs.(*BinaryExpr)
	assert.True(t, ok, "right-recursion must nest c*a under +, never group b+c first")
	assert.Equal(t, OpStar, inner.Op)
}

func TestParse_ProcedureDefHasNoClosingEnd(t *testing.T) {
	prog := mustParse(t, `program p
		procedure inc(integer n)
		begin
			write(n)
		begin
			write(1)
		end.`)

	assert.Len(t, prog.ProcedureDefs, 1)
	proc := prog.ProcedureDefs[0]
	assert.Equal(t, "inc", proc.Name)
	assert.Len(t, proc.Params, 1)
	assert.Equal(t, ParamDecl{IsChar: false, Name: "n"}, proc.Params[0])
	assert.Len(t, prog.Body, 1)
}

func TestParse_ProcedureDefOptionalTrailingEndIsConsumed(t *testing.T) {
	prog := mustParse(t, `program p
		procedure inc(integer n)
		begin
			write(n)
		end
		begin
			write(1)
		end.`)

	assert.Len(t, prog.ProcedureDefs, 1)
	assert.Len(t, prog.ProcedureDefs[0].Body, 1)
	assert.Len(t, prog.Body, 1)
}

func TestParse_Scenario5_ProcedureWithParametersAndStrayEnd(t *testing.T) {
	src := `program bubble var integer i, j, num;
procedure q(integer num, integer awa)
  var integer k;
  begin k:=1; i:=num; write(i);
    while k <= 10 do k:=k+1; write(k) endwh
  end
begin read(num); q(num, j) end.`
	prog := mustParse(t, src)

	assert.Len(t, prog.ProcedureDefs, 1)
	proc := prog.ProcedureDefs[0]
	assert.Equal(t, "q", proc.Name)
	assert.Len(t, proc.Params, 2)
	assert.Len(t, proc.Body, 4)
	assert.Len(t, prog.Body, 2)
}

func TestParse_FirstSyntaxErrorStopsParsing(t *testing.T) {
	prog, err := Parse(lexer.Tokenize(`program begin write(1) end.`))
	assert.Error(t, err)
	assert.Equal(t, stubProgram(), prog)
}

func TestParse_ReadStmt(t *testing.T) {
	prog := mustParse(t, `program p var char c; begin read(c) end.`)

	rs, ok := prog.Body[0].(*ReadStmt)
	assert.True(t, ok)
	target, ok := rs.Arg.(*VarExpr)
	assert.True(t, ok)
	assert.Equal(t, "c", target.Name)
}

func TestParse_ParenExprPreserved(t *testing.T) {
	prog := mustParse(t, `program p var integer a, b; begin a := (b) end.`)

	es, ok := prog.Body[0].(*ExprStmt)
	assert.True(t, ok)
	assign, ok := es.X.(*AssignExpr)
	assert.True(t, ok)
	_, ok = assign.From.(*ParenExpr)
	assert.True(t, ok)
}
