package peg

// State is the authoritative context for one parse run (§3). It is
// created fresh by Parse/ParseString/ParseTokens and discarded once the
// Result is built; it must never be shared across concurrent parses (§5).
type State struct {
	input Input

	pos int

	stack *valueStack
	log   *effectLog

	errorPos       int
	errorCallStack []string
	errorExpected  []string

	callStack []string

	options *Options
	thrown  *ThrownError

	metrics *Metrics

	tokenBoundaries []int

	pidx *posIndex
}

// NewState builds a fresh parse state over input using opts (nil means
// DefaultOptions()).
func NewState(input Input, opts *Options) *State {
	if opts == nil {
		opts = DefaultOptions()
	}
	s := &State{
		input:   input,
		stack:   newValueStack(),
		log:     newEffectLog(),
		options: opts,
	}
	if opts.Trace {
		if opts.Metrics == nil {
			opts.Metrics = newMetrics()
		}
		s.metrics = opts.Metrics
	}
	return s
}

// Pos returns the current input position.
func (s *State) Pos() int { return s.pos }

// Stack exposes the value stack to stack-action bodies.
func (s *State) Stack() *valueStack { return s.stack }

// Log exposes the side-effect log to stack-action bodies.
func (s *State) Log() *effectLog { return s.log }

// Input exposes the immutable input being parsed.
func (s *State) Input() Input { return s.input }

// Options returns the options this parse was configured with.
func (s *State) Options() *Options { return s.options }

// Thrown returns the fatal condition raised so far, if any.
func (s *State) Thrown() *ThrownError { return s.thrown }

// Throw records a fatal condition that unwinds the parse without further
// combinator execution (§4.4, §7). Stack-action bodies call this instead
// of returning an error, since their contract forbids ordinary failure.
func (s *State) Throw(label, message string) {
	if s.thrown != nil {
		return
	}
	s.thrown = &ThrownError{Label: label, Message: message, Span: s.spanAt(s.pos, s.pos)}
}

// recordTokenBoundary appends pos to the set of positions Token (and a
// matching TokenChoice) has landed on during this parse (§4.3). Like
// recordFailureAt this is never rolled back on backtrack: a boundary
// recorded by a Token match that later gets undone by an enclosing
// failure is harmless noise, not a correctness issue, since nothing
// downstream treats the list as anything but advisory.
func (s *State) recordTokenBoundary(pos int) {
	s.tokenBoundaries = append(s.tokenBoundaries, pos)
}

// TokenBoundaries returns a snapshot of every position recorded as a token
// boundary so far, in the order they were reached.
func (s *State) TokenBoundaries() []int {
	out := make([]int, len(s.tokenBoundaries))
	copy(out, s.tokenBoundaries)
	return out
}

// CallStack returns a snapshot of the parsers currently being invoked, most
// recent last. Empty unless Options.RecordCallStack is set.
func (s *State) CallStack() []string {
	out := make([]string, len(s.callStack))
	copy(out, s.callStack)
	return out
}

// ErrorPos returns the furthest position at which any combinator has
// failed so far.
func (s *State) ErrorPos() int { return s.errorPos }

// ErrorExpected returns the distinct "expected" descriptions primitive
// combinators reported while failing at ErrorPos, for an external
// formatter to render (§7: rendering itself is out of the engine's scope,
// but nothing stops it from consuming this).
func (s *State) ErrorExpected() []string {
	out := make([]string, len(s.errorExpected))
	copy(out, s.errorExpected)
	return out
}

// recordFailureAt updates the furthest-error tracking (§4.1, invariant 2).
// It is called by the combinator wrapper on every failing invocation,
// since a child may advance the cursor deep into a branch that ultimately
// backtracks. expected may be empty when the caller has no specific label
// to contribute (composite combinators like Sequence/Choice rely entirely
// on their children's own calls).
func (s *State) recordFailureAt(pos int, expected string) {
	switch {
	case pos > s.errorPos:
		s.errorPos = pos
		s.errorExpected = nil
		if expected != "" {
			s.errorExpected = append(s.errorExpected, expected)
		}
		if s.options.RecordCallStack {
			s.errorCallStack = s.CallStack()
		}
	case pos == s.errorPos && expected != "":
		for _, e := range s.errorExpected {
			if e == expected {
				return
			}
		}
		s.errorExpected = append(s.errorExpected, expected)
	}
}

// failAt is a convenience for primitive combinators: record the failure at
// pos with an expected-label and return false.
func (s *State) failAt(pos int, expected string) bool {
	s.recordFailureAt(pos, expected)
	return false
}

func (s *State) spanAt(start, end int) Span {
	if s.pidx == nil {
		s.pidx = newPosIndex(s.input.runes())
	}
	return s.pidx.Span(Range{Start: start, End: end}, len(s.input.runes()))
}
