package peg

import "reflect"

// Result is the outcome of a single top-level parse (§4.7).
type Result struct {
	Success        bool
	FullMatch      bool
	MatchSize      int
	ValueStack     []any
	ErrorPosition  int
	ErrorExpected  []string
	ErrorCallStack []string
	Thrown         *ThrownError
	Diagnostics    []Diagnostic
	Metrics        *Metrics
}

// ParseString runs grammar over a plain-text input (§4.7). opts may be nil
// for DefaultOptions().
func ParseString(grammar *Parser, text string, opts *Options) Result {
	return run(grammar, NewStringInput(text), opts)
}

// ParseTokens runs grammar over a pre-lexed token stream (§4.7). opts may
// be nil for DefaultOptions().
func ParseTokens(grammar *Parser, tokens []Token, source string, opts *Options) Result {
	return run(grammar, NewTokenInput(tokens, source), opts)
}

func run(grammar *Parser, input Input, opts *Options) Result {
	if opts == nil {
		opts = DefaultOptions()
	}

	var diags []Diagnostic
	if opts.WellFormednessCheck {
		diags = Check(grammar)
		if len(diags) > 0 {
			return Result{Diagnostics: diags}
		}
	}

	s := NewState(input, opts)
	ok := grammar.Parse(s)

	res := Result{
		Success:        ok,
		MatchSize:      s.pos,
		FullMatch:      ok && s.pos == input.Len(),
		ValueStack:     s.stack.Snapshot(),
		ErrorPosition:  s.errorPos,
		ErrorExpected:  s.ErrorExpected(),
		ErrorCallStack: s.errorCallStack,
		Thrown:         s.thrown,
		Diagnostics:    diags,
		Metrics:        s.metrics,
	}
	if !ok {
		res.ValueStack = nil
	}
	return res
}

// equalResult reports whether a and b agree on every field that the
// determinism contract (§5: "run_twice") requires to be identical across
// two parses of the same input with the same grammar and options.
func equalResult(a, b Result) bool {
	if a.Success != b.Success || a.FullMatch != b.FullMatch || a.MatchSize != b.MatchSize {
		return false
	}
	if a.ErrorPosition != b.ErrorPosition {
		return false
	}
	if (a.Thrown == nil) != (b.Thrown == nil) {
		return false
	}
	if a.Thrown != nil && (a.Thrown.Label != b.Thrown.Label || a.Thrown.Message != b.Thrown.Message) {
		return false
	}
	if len(a.ValueStack) != len(b.ValueStack) || len(a.ErrorExpected) != len(b.ErrorExpected) {
		return false
	}
	for i := range a.ValueStack {
		if !reflect.DeepEqual(a.ValueStack[i], b.ValueStack[i]) {
			return false
		}
	}
	for i := range a.ErrorExpected {
		if a.ErrorExpected[i] != b.ErrorExpected[i] {
			return false
		}
	}
	return true
}

// RunTwice parses text with grammar twice and panics if the two results
// disagree on anything the determinism contract covers, surfacing a
// grammar author's accidental non-determinism (e.g. a stack action reading
// map iteration order, or time.Now()) as an immediate programming error
// rather than a flaky test later (§5, invariant "run_twice").
func RunTwice(grammar *Parser, text string, opts *Options) Result {
	first := ParseString(grammar, text, opts)
	second := ParseString(grammar, text, opts)
	if !equalResult(first, second) {
		panic("peg: non-deterministic parse: two runs over identical input disagreed")
	}
	return first
}
