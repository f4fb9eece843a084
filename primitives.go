package peg

import "strings"

// leafCombinator is embedded by every primitive with no sub-parsers.
type leafCombinator struct{}

func (leafCombinator) children() []*Parser { return nil }

// ---- Literal ----

type literalCombinator struct {
	leafCombinator
	text []rune
}

// Lit matches the fixed rune sequence text at the current position,
// advancing by its length on success (§4.2).
func Lit(text string) *Parser {
	return newParser(`"`+text+`"`, &literalCombinator{text: []rune(text)})
}

func (c *literalCombinator) doParse(self *Parser, s *State) bool {
	if s.input.IsToken() {
		return tokenLiteralDoParse(self, s, string(c.text))
	}
	for _, want := range c.text {
		if s.pos >= s.input.Len() || s.input.Rune(s.pos) != want {
			return s.failAt(s.pos, self.label)
		}
		s.pos++
	}
	return true
}

func tokenLiteralDoParse(self *Parser, s *State, kind string) bool {
	if s.pos >= s.input.Len() {
		return s.failAt(s.pos, self.label)
	}
	if s.input.TokenAt(s.pos).Kind != kind {
		return s.failAt(s.pos, self.label)
	}
	s.pos++
	return true
}

// TokenKind matches exactly one token whose Kind equals kind (the token
// input analogue of Lit, §3/§4.2: "literal string / token class").
func TokenKind(kind string) *Parser {
	return newParser("token:"+kind, &literalCombinator{text: []rune(kind)})
}

// ---- Any ----

type anyCombinator struct{ leafCombinator }

// Any matches exactly one element (rune or token), failing at end of
// input (§4.2).
func Any() *Parser {
	return newParser(".", &anyCombinator{})
}

func (c *anyCombinator) doParse(self *Parser, s *State) bool {
	if s.pos >= s.input.Len() {
		return s.failAt(s.pos, "any element")
	}
	s.pos++
	return true
}

// ---- Predicates ----

type runePredCombinator struct {
	leafCombinator
	fn func(rune) bool
}

// CharPred matches one rune satisfying fn. name is used for diagnostics.
func CharPred(name string, fn func(rune) bool) *Parser {
	return newParser(name, &runePredCombinator{fn: fn})
}

func (c *runePredCombinator) doParse(self *Parser, s *State) bool {
	if s.pos >= s.input.Len() {
		return s.failAt(s.pos, self.label)
	}
	if !c.fn(s.input.Rune(s.pos)) {
		return s.failAt(s.pos, self.label)
	}
	s.pos++
	return true
}

type tokenPredCombinator struct {
	leafCombinator
	fn func(Token) bool
}

// TokenPred matches one token satisfying fn.
func TokenPred(name string, fn func(Token) bool) *Parser {
	return newParser(name, &tokenPredCombinator{fn: fn})
}

func (c *tokenPredCombinator) doParse(self *Parser, s *State) bool {
	if s.pos >= s.input.Len() {
		return s.failAt(s.pos, self.label)
	}
	if !c.fn(s.input.TokenAt(s.pos)) {
		return s.failAt(s.pos, self.label)
	}
	s.pos++
	return true
}

// ---- Range / Set ----

// CharRange matches one rune within the inclusive [lo, hi] range.
func CharRange(lo, hi rune) *Parser {
	return CharPred(rangeLabel(lo, hi), func(r rune) bool { return r >= lo && r <= hi })
}

func rangeLabel(lo, hi rune) string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteRune(lo)
	b.WriteByte('-')
	b.WriteRune(hi)
	b.WriteByte(']')
	return b.String()
}

// CharSet matches one rune that appears in set.
func CharSet(set string) *Parser {
	members := map[rune]struct{}{}
	for _, r := range set {
		members[r] = struct{}{}
	}
	return CharPred("["+set+"]", func(r rune) bool {
		_, ok := members[r]
		return ok
	})
}

// ---- Not / And (lookahead) ----

type notCombinator struct{ child *Parser }

// Not succeeds iff child fails; it never advances position or touches the
// stack/log on either outcome (§4.2).
func Not(child *Parser) *Parser {
	return newParser("!"+child.Name(), &notCombinator{child: child})
}

func (c *notCombinator) children() []*Parser { return []*Parser{c.child} }

func (c *notCombinator) doParse(self *Parser, s *State) bool {
	pos0, size0, log0 := s.pos, s.stack.Size(), s.log.Length()
	ok := c.child.Parse(s)
	// Unconditionally undo whatever the child did: a lookahead never
	// commits to input, stack or log regardless of its own outcome.
	s.pos = pos0
	s.stack.Truncate(size0)
	s.log.Truncate(log0)
	if ok {
		return s.failAt(pos0, "not "+c.child.Name())
	}
	return true
}

type andCombinator struct{ child *Parser }

// And succeeds iff child succeeds, but still restores position, stack and
// log on success: positive lookahead never consumes (§4.2).
func And(child *Parser) *Parser {
	return newParser("&"+child.Name(), &andCombinator{child: child})
}

func (c *andCombinator) children() []*Parser { return []*Parser{c.child} }

func (c *andCombinator) doParse(self *Parser, s *State) bool {
	pos0, size0, log0 := s.pos, s.stack.Size(), s.log.Length()
	ok := c.child.Parse(s)
	s.pos = pos0
	s.stack.Truncate(size0)
	s.log.Truncate(log0)
	return ok
}

// ---- Sequence ----

type sequenceCombinator struct{ items []*Parser }

// Seq matches each child in order, failing (with the wrapper's full
// rollback) if any fails (§4.2).
func Seq(items ...*Parser) *Parser {
	return newParser("seq", &sequenceCombinator{items: items})
}

func (c *sequenceCombinator) children() []*Parser { return c.items }

func (c *sequenceCombinator) doParse(self *Parser, s *State) bool {
	for _, item := range c.items {
		if !item.Parse(s) {
			return false
		}
	}
	return true
}

// ---- Choice ----

type choiceCombinator struct{ alts []*Parser }

// Choice tries each alternative in order and returns on the first success;
// it never tries further alternatives once one matches and it is not
// longest-match (§4.2, invariant 5).
func Choice(alts ...*Parser) *Parser {
	return newParser("choice", &choiceCombinator{alts: alts})
}

func (c *choiceCombinator) children() []*Parser { return c.alts }

func (c *choiceCombinator) doParse(self *Parser, s *State) bool {
	for _, alt := range c.alts {
		if alt.Parse(s) {
			return true
		}
		if s.thrown != nil {
			return false
		}
	}
	return false
}

// ---- Optional ----

type optionalCombinator struct{ child *Parser }

// Opt runs child; it always succeeds, restoring state if child failed
// (§4.2).
func Opt(child *Parser) *Parser {
	return newParser(child.Name()+"?", &optionalCombinator{child: child})
}

func (c *optionalCombinator) children() []*Parser { return []*Parser{c.child} }

func (c *optionalCombinator) doParse(self *Parser, s *State) bool {
	c.child.Parse(s)
	return true
}

// ---- Repetition ----

type repetitionCombinator struct {
	child    *Parser
	min, max int // max < 0 means unbounded
}

// Rep greedily matches child until it fails or max repetitions have been
// reached (max < 0 for unbounded), succeeding iff at least min iterations
// matched (§4.2). Each successful iteration's effects persist; the
// iteration that fails is rolled back by its own wrapper invocation.
func Rep(child *Parser, min, max int) *Parser {
	return newParser(repLabel(child, min, max), &repetitionCombinator{child: child, min: min, max: max})
}

// ZeroOrMore is Rep(child, 0, -1).
func ZeroOrMore(child *Parser) *Parser { return Rep(child, 0, -1) }

// OneOrMore is Rep(child, 1, -1).
func OneOrMore(child *Parser) *Parser { return Rep(child, 1, -1) }

func repLabel(child *Parser, min, max int) string {
	switch {
	case min == 0 && max < 0:
		return child.Name() + "*"
	case min == 1 && max < 0:
		return child.Name() + "+"
	default:
		return child.Name() + "{...}"
	}
}

func (c *repetitionCombinator) children() []*Parser { return []*Parser{c.child} }

func (c *repetitionCombinator) doParse(self *Parser, s *State) bool {
	count := 0
	for c.max < 0 || count < c.max {
		if !c.child.Parse(s) {
			break
		}
		count++
	}
	return count >= c.min
}

// ---- Lazy ----

type lazyCombinator struct {
	build func() *Parser
	child *Parser
}

// Lazy defers construction of its target until first use, which is what
// lets a grammar's rules reference each other cyclically (§4.2). The
// target is resolved once and memoized.
func Lazy(build func() *Parser) *Parser {
	return newParser("lazy", &lazyCombinator{build: build})
}

func (c *lazyCombinator) resolve() *Parser {
	if c.child == nil {
		c.child = c.build()
	}
	return c.child
}

func (c *lazyCombinator) children() []*Parser { return []*Parser{c.resolve()} }

func (c *lazyCombinator) doParse(self *Parser, s *State) bool {
	return c.resolve().Parse(s)
}
