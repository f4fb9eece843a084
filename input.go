package peg

// Token is one opaque lexer token, exposing its Kind and the start/end
// rune offsets into the original source text it was carved from (§3, §6).
type Token struct {
	Kind  string
	Start int
	End   int
}

// Input is the uniform view over position semantics §3 asks for: either a
// character sequence or an ordered sequence of tokens. It is immutable
// during a parse; both NewStringInput and NewTokenInput copy their input
// so the caller is free to mutate the original afterwards.
type Input interface {
	// Len returns the number of elements (runes or tokens).
	Len() int
	// IsToken reports whether this is a token-sequence input.
	IsToken() bool
	// Rune returns the rune at position pos for a character input. It
	// panics if called against a token input.
	Rune(pos int) rune
	// TokenAt returns the token at position pos for a token input. It
	// panics if called against a character input.
	TokenAt(pos int) Token
	// Text returns the underlying source substring covered by [start,
	// end) element positions: for character input this is the runes
	// themselves; for token input it is the span from the first
	// token's Start to the last token's End into the original source.
	Text(start, end int) string
	// runes exposes the underlying rune slice for position/line
	// tracking, valid for both input kinds (token inputs keep the
	// original source text around for this purpose).
	runes() []rune
}

type stringInput struct {
	src []rune
}

// NewStringInput builds a character Input over src.
func NewStringInput(src string) Input {
	return &stringInput{src: []rune(src)}
}

func (in *stringInput) Len() int        { return len(in.src) }
func (in *stringInput) IsToken() bool    { return false }
func (in *stringInput) Rune(pos int) rune {
	return in.src[pos]
}
func (in *stringInput) TokenAt(pos int) Token {
	panic("peg: TokenAt called on a character Input")
}
func (in *stringInput) Text(start, end int) string {
	return string(in.src[start:end])
}
func (in *stringInput) runes() []rune { return in.src }

type tokenInput struct {
	tokens []Token
	source []rune
}

// NewTokenInput builds a token-sequence Input. source is the original text
// the tokens' Start/End offsets index into (used only for error spans and
// Text()); it may be empty if the caller doesn't need substrings.
func NewTokenInput(tokens []Token, source string) Input {
	cp := make([]Token, len(tokens))
	copy(cp, tokens)
	return &tokenInput{tokens: cp, source: []rune(source)}
}

func (in *tokenInput) Len() int     { return len(in.tokens) }
func (in *tokenInput) IsToken() bool { return true }
func (in *tokenInput) Rune(pos int) rune {
	panic("peg: Rune called on a token Input")
}
func (in *tokenInput) TokenAt(pos int) Token {
	return in.tokens[pos]
}
func (in *tokenInput) Text(start, end int) string {
	if start >= end || end > len(in.tokens) {
		return ""
	}
	lo, hi := in.tokens[start].Start, in.tokens[end-1].End
	if lo < 0 || hi > len(in.source) || lo > hi {
		return ""
	}
	return string(in.source[lo:hi])
}
func (in *tokenInput) runes() []rune { return in.source }
