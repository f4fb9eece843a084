package peg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckFindsNothingWrongWithASimpleGrammar(t *testing.T) {
	grammar := Seq(Lit("a"), ZeroOrMore(Lit("b")))
	assert.Empty(t, Check(grammar))
}

func TestCheckFlagsNullableRepetition(t *testing.T) {
	grammar := ZeroOrMore(Opt(Lit("a"))).Named("loopy")
	diags := Check(grammar)

	require.NotEmpty(t, diags)
	assert.Equal(t, DiagnosticNullableRepetition, diags[0].Kind)
	assert.Equal(t, "loopy", diags[0].Rule)
}

func TestCheckFlagsNullableSep(t *testing.T) {
	grammar := Sep(Opt(Lit("a")), Lit(","), 0, false).Named("loopy-sep")
	diags := Check(grammar)

	require.NotEmpty(t, diags)
	assert.Equal(t, DiagnosticNullableRepetition, diags[0].Kind)
}

func TestCheckFlagsNullableToken(t *testing.T) {
	grammar := Token(Opt(Lit("a"))).Named("loopy-token")
	diags := Check(grammar)

	require.NotEmpty(t, diags)
	assert.Equal(t, DiagnosticNullableToken, diags[0].Kind)
	assert.Equal(t, "loopy-token", diags[0].Rule)
}

func TestCheckFlagsDirectLeftRecursion(t *testing.T) {
	var expr *Parser
	expr = Lazy(func() *Parser {
		return Choice(Seq(expr, Lit("+"), Lit("1")), Lit("1"))
	}).Named("expr")

	diags := Check(expr)

	var found bool
	for _, d := range diags {
		if d.Kind == DiagnosticLeftRecursion {
			found = true
		}
	}
	assert.True(t, found, "expr <- expr '+' '1' / '1' is left-recursive and must be flagged")
}

func TestCheckDoesNotFlagLeftExprsOwnRecursion(t *testing.T) {
	operand := CharPred("digit", func(r rune) bool { return r >= '0' && r <= '9' })
	grammar := LeftExpr(operand, false, []InfixAlt{
		{Op: Lit("+"), Right: operand, Combine: func(l, r any) any { return nil }},
	}, nil)

	diags := Check(grammar)
	for _, d := range diags {
		assert.NotEqual(t, DiagnosticLeftRecursion, d.Kind, "precedence climbing is exempt from the left-recursion check")
	}
}

func TestCheckDoesNotFlagRecursionBehindAConsumingPrefix(t *testing.T) {
	var expr *Parser
	expr = Lazy(func() *Parser {
		return Choice(Seq(Lit("("), expr, Lit(")")), Lit("x"))
	}).Named("parenExpr")

	assert.Empty(t, Check(expr))
}

func TestComputeNullableRecognizesEmptyLiteral(t *testing.T) {
	p := Lit("")
	nullable := computeNullable(p)
	assert.True(t, nullable[p])
}

func TestComputeNullableChoiceIsNullableIfAnyAltIs(t *testing.T) {
	p := Choice(Lit("a"), Opt(Lit("b")))
	nullable := computeNullable(p)
	assert.True(t, nullable[p])
}

func TestComputeNullableSequenceRequiresAllNullable(t *testing.T) {
	p := Seq(Opt(Lit("a")), Lit("b"))
	nullable := computeNullable(p)
	assert.False(t, nullable[p], "b is not nullable, so the sequence as a whole is not")
}
