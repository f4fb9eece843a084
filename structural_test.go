package peg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSepRequiresMinItems(t *testing.T) {
	res := parseAll(Sep(Lit("a"), Lit(","), 2, false), "a")
	assert.False(t, res.Success)
}

func TestSepMatchesItemsSeparatedByCommas(t *testing.T) {
	res := parseAll(Sep(Lit("a"), Lit(","), 1, false), "a,a,a")
	require.True(t, res.Success)
	assert.True(t, res.FullMatch)
}

func TestSepDoesNotConsumeTrailingSeparator(t *testing.T) {
	res := parseAll(Sep(Lit("a"), Lit(","), 1, false), "a,a,")
	require.True(t, res.Success)
	assert.False(t, res.FullMatch, "a dangling separator with no following item must be left unconsumed")
	assert.Equal(t, 3, res.MatchSize)
}

func TestSepZeroMinMatchesEmpty(t *testing.T) {
	res := parseAll(Sep(Lit("a"), Lit(","), 0, false), "")
	assert.True(t, res.Success)
}

func TestSepWithTrailingConsumesDanglingSeparator(t *testing.T) {
	res := parseAll(Sep(Lit("a"), Lit(","), 1, true), "a,a,")
	require.True(t, res.Success)
	assert.True(t, res.FullMatch, "trailing=true must consume the dangling separator")
}

func TestSepWithTrailingStillWorksWithoutOne(t *testing.T) {
	res := parseAll(Sep(Lit("a"), Lit(","), 1, true), "a,a")
	require.True(t, res.Success)
	assert.True(t, res.FullMatch, "trailing=true only makes the separator optional, not required")
}

func TestWordConsumesTrailingWhitespace(t *testing.T) {
	res := parseAll(Seq(Word(Lit("if")), Lit("x")), "if   x")
	require.True(t, res.Success, "Word should consume the trailing spaces before x is tried")
	assert.True(t, res.FullMatch)
}

func TestWordDoesNotRecordATokenBoundary(t *testing.T) {
	var boundaries []int
	grammar := Action(Word(Lit("if")), func(f Frame, s *State) { boundaries = s.TokenBoundaries() })
	res := parseAll(grammar, "if")
	require.True(t, res.Success)
	assert.Empty(t, boundaries, "Word is the plain whitespace-trimming half; only Token records boundaries")
}

func TestTokenSkipsTrailingWhitespace(t *testing.T) {
	res := parseAll(Seq(Token(Lit("a")), Lit("b")), "a   b")
	require.True(t, res.Success, "Token(a) should consume the trailing spaces before b is tried")
	assert.True(t, res.FullMatch)
}

func TestTokenLeavesTrailingWhitespaceUnconsumedWithoutTracking(t *testing.T) {
	opts := DefaultOptions().WithTrackWhitespace(false).WithWellFormednessCheck(false)
	res := ParseString(Seq(Token(Lit("a")), Lit(" "), Lit("b")), "a b", opts)
	assert.True(t, res.Success, "with TrackWhitespace off, the grammar must skip its own whitespace")
}

func TestTokenRecordsABoundaryAtEachMatch(t *testing.T) {
	var boundaries []int
	grammar := Seq(Token(Lit("a")), Action(Token(Lit("b")), func(f Frame, s *State) {
		boundaries = s.TokenBoundaries()
	}))
	res := parseAll(grammar, "a b")
	require.True(t, res.Success)
	assert.Equal(t, []int{2, 3}, boundaries, "one boundary per completed Token match, after its trailing whitespace, in order")
}

func TestTokenChoiceMatchesAnyListedKind(t *testing.T) {
	tokens := []Token{{Kind: "plus", Start: 0, End: 1}}
	res := ParseTokens(TokenChoice("plus", "minus"), tokens, "+", nil)
	assert.True(t, res.Success)
}

func TestTokenChoiceFailsOnUnlistedKind(t *testing.T) {
	tokens := []Token{{Kind: "star", Start: 0, End: 1}}
	res := ParseTokens(TokenChoice("plus", "minus"), tokens, "*", nil)
	assert.False(t, res.Success)
}

func TestTokenChoiceRecordsABoundaryOnMatch(t *testing.T) {
	tokens := []Token{{Kind: "plus", Start: 0, End: 1}}
	var boundaries []int
	grammar := Action(TokenChoice("plus", "minus"), func(f Frame, s *State) {
		boundaries = s.TokenBoundaries()
	})
	res := ParseTokens(grammar, tokens, "+", DefaultOptions().WithWellFormednessCheck(false))
	require.True(t, res.Success)
	assert.Equal(t, []int{1}, boundaries)
}
