package peg

// Frame is the view a stack-action body gets onto the values its child
// pushed (§4.4). It never lets the body see or disturb values that were
// already on the stack before the child ran — those are reached instead
// through Lookback.
type Frame struct {
	s     *State
	base  int
	start int
}

// Len returns the number of values the child pushed.
func (f Frame) Len() int { return f.s.stack.Size() - f.base }

// At returns the i-th value the child pushed, 0-indexed from the bottom of
// the frame. It panics if i is out of range, the same contract Pop/Peek use
// elsewhere in the engine.
func (f Frame) At(i int) any {
	n := f.Len()
	if i < 0 || i >= n {
		panic("peg: Frame index out of range")
	}
	return f.s.stack.Peek(n - 1 - i)
}

// Values returns a copy of the values the child pushed, bottom first.
func (f Frame) Values() []any {
	out := make([]any, f.Len())
	for i := range out {
		out[i] = f.At(i)
	}
	return out
}

// Lookback returns the value k positions below the base of this frame,
// i.e. a value that was already on the stack before the child ran. Lookback
// (1) is the value immediately beneath the frame (§4.4).
func (f Frame) Lookback(k int) any {
	return f.s.stack.Peek(f.Len() - 1 + k)
}

// Span returns the raw input text the child just consumed, from where it
// started matching to the current position — useful when a body wants the
// literal source text instead of (or alongside) whatever values the child
// pushed, e.g. handing strconv a number's digits directly.
func (f Frame) Span() string {
	return f.s.input.Text(f.start, f.s.pos)
}

// stackActionCombinator runs child, then — provided it succeeded and
// nothing was thrown — runs body over the resulting Frame. A body that
// wants to fail the combinator must call State.Throw; returning normally
// always commits (§4.4: "user stack-action bodies can't fail ordinarily").
type stackActionCombinator struct {
	child *Parser
	body  func(f Frame, s *State)
}

func (c *stackActionCombinator) children() []*Parser { return []*Parser{c.child} }

func (c *stackActionCombinator) doParse(self *Parser, s *State) bool {
	start := s.pos
	base := s.stack.Size()
	if !c.child.Parse(s) {
		return false
	}
	c.body(Frame{s: s, base: base, start: start}, s)
	return s.thrown == nil
}

// Action wraps child with an arbitrary stack-action body, the general form
// the other constructors in this file specialize (§4.4).
func Action(child *Parser, body func(f Frame, s *State)) *Parser {
	return newParser(child.Name()+" action", &stackActionCombinator{child: child, body: body})
}

// Push runs child, then pushes the value fn computes from the resulting
// frame, leaving the frame's own values on the stack beneath it.
func Push(child *Parser, fn func(f Frame, s *State) any) *Parser {
	return Action(child, func(f Frame, s *State) {
		s.stack.Push(fn(f, s))
	})
}

// Collect runs child, then replaces every value it pushed with the single
// value fn computes from them — the combinator an arithmetic rule reaches
// for to fold "expr (op expr)*" into one AST node (§4.4).
func Collect(child *Parser, fn func(values []any) any) *Parser {
	return Action(child, func(f Frame, s *State) {
		values := f.Values()
		s.stack.Truncate(f.base)
		s.stack.Push(fn(values))
	})
}

// AsVal runs child, discards every value it pushed, and pushes the literal
// v in their place (§4.4).
func AsVal(child *Parser, v any) *Parser {
	return Action(child, func(f Frame, s *State) {
		s.stack.Truncate(f.base)
		s.stack.Push(v)
	})
}

// AsList runs child and replaces its pushed values with a single []any
// holding them, bottom first — the usual way a repetition's per-iteration
// pushes become one node (§4.4).
func AsList(child *Parser) *Parser {
	return Collect(child, func(values []any) any {
		return append([]any{}, values...)
	})
}

// AsBool runs child and pushes true iff it matched non-empty input, false
// otherwise, discarding whatever it pushed — the combinator an Opt/Rep
// match commonly feeds into when only presence, not content, matters
// (§4.4). Matched-ness is judged by input consumed, not by whether the
// child happened to push a value: a bare literal or predicate never
// pushes anything on its own but still "matched."
func AsBool(child *Parser) *Parser {
	return Action(child, func(f Frame, s *State) {
		matched := s.pos > f.start
		s.stack.Truncate(f.base)
		s.stack.Push(matched)
	})
}
