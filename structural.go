package peg

// ---- Separated repetition ----

type sepCombinator struct {
	item, sep *Parser
	min       int
	trailing  bool
}

// Sep matches item, then zero or more (sep item) pairs, succeeding iff at
// least min items were matched overall (§4.3). When trailing is false, a
// dangling separator is never consumed: when a matched sep is not followed
// by an item, the loop restores position, stack and log to before that
// sep and stops. When trailing is true, one such dangling
// separator may optionally be consumed after the last item.
func Sep(item, sep *Parser, min int, trailing bool) *Parser {
	return newParser(item.Name()+" sep by "+sep.Name(), &sepCombinator{item: item, sep: sep, min: min, trailing: trailing})
}

func (c *sepCombinator) children() []*Parser { return []*Parser{c.item, c.sep} }

func (c *sepCombinator) doParse(self *Parser, s *State) bool {
	count := 0
	for {
		pos0, size0, log0 := s.pos, s.stack.Size(), s.log.Length()
		if count > 0 {
			if !c.sep.Parse(s) {
				break
			}
		}
		if !c.item.Parse(s) {
			s.pos = pos0
			s.stack.Truncate(size0)
			s.log.Truncate(log0)
			break
		}
		count++
	}
	if c.trailing && count > 0 {
		c.sep.Parse(s)
	}
	return count >= c.min
}

// ---- Word ----

type wordCombinator struct {
	child *Parser
}

// Word matches child, then (when Options.TrackWhitespace is set) skips any
// run of trailing whitespace runes, so that higher-level rules never have
// to thread whitespace-skipping through every Seq by hand (§4.3). It does
// not record a token boundary; Token below does both.
func Word(child *Parser) *Parser {
	return newParser(child.Name()+" word", &wordCombinator{child: child})
}

func (c *wordCombinator) children() []*Parser { return []*Parser{c.child} }

func (c *wordCombinator) doParse(self *Parser, s *State) bool {
	if !c.child.Parse(s) {
		return false
	}
	skipTrailingWhitespace(s)
	return true
}

func skipTrailingWhitespace(s *State) {
	if s.options.TrackWhitespace && !s.input.IsToken() {
		for s.pos < s.input.Len() && isSpaceRune(s.input.Rune(s.pos)) {
			s.pos++
		}
	}
}

// ---- Token ----

type tokenCombinator struct {
	child *Parser
}

// Token matches child, skips trailing whitespace exactly as Word does, and
// additionally records a token boundary at the resulting position (§4.3):
// the well-formedness checker flags a Token whose child can match empty,
// since a token that can silently vanish is indistinguishable from the
// whitespace it is meant to be separated by, and the token-choice fast
// path shares the same boundary bookkeeping a matched TokenChoice
// alternative lands on.
func Token(child *Parser) *Parser {
	return newParser(child.Name()+" token", &tokenCombinator{child: child})
}

func (c *tokenCombinator) children() []*Parser { return []*Parser{c.child} }

func (c *tokenCombinator) doParse(self *Parser, s *State) bool {
	if !c.child.Parse(s) {
		return false
	}
	skipTrailingWhitespace(s)
	s.recordTokenBoundary(s.pos)
	return true
}

func isSpaceRune(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// ---- TokenChoice ----

type tokenChoiceCombinator struct {
	kinds []string
}

// TokenChoice matches one token whose Kind is any of kinds, a common case
// of Choice over TokenKind that avoids building one Parser per kind when a
// lexer-driven grammar just needs "one of these token classes" (§4.3). It
// compares the current token's Kind against kinds one by one, in order; it
// does not dispatch in constant time. A matched token is itself already at
// a token boundary, so a successful TokenChoice records one too.
func TokenChoice(kinds ...string) *Parser {
	return newParser("token-choice", &tokenChoiceCombinator{kinds: kinds})
}

func (c *tokenChoiceCombinator) children() []*Parser { return nil }

func (c *tokenChoiceCombinator) doParse(self *Parser, s *State) bool {
	if s.pos >= s.input.Len() {
		return s.failAt(s.pos, self.label)
	}
	got := s.input.TokenAt(s.pos).Kind
	for _, k := range c.kinds {
		if k == got {
			s.pos++
			s.recordTokenBoundary(s.pos)
			return true
		}
	}
	return s.failAt(s.pos, self.label)
}
