package peg

// combinator is the variant-specific half of a Parser: the part that
// differs between Literal, Sequence, Choice, etc. Parser itself supplies
// the half that never differs — the snapshot/restore/error-tracking
// wrapper from §4.1. This mirrors the teacher's own split between the
// generic Parser struct (parser.go) and the free functions (ZeroOrMore,
// Choice, And, Not, ...) that call back into it, but collapses both into
// a single tagged-variant node as the base spec's design notes ask for:
// one combinator interface implementation per node kind, dispatched
// through Go's interface mechanism instead of an open class hierarchy.
type combinator interface {
	// doParse attempts the match starting at the state's current
	// position. It must not touch s.pos/stack/log bookkeeping beyond
	// what matching requires — Parser.Parse snapshots and restores around
	// every call; only combinators that undo a sub-parse inside one call
	// (Not, And, Sep, the precedence combinators) take snapshots of their
	// own.
	doParse(self *Parser, s *State) bool
	// children lists this node's immediate sub-parsers, in the order
	// the well-formedness checker and any visitor should consider them.
	children() []*Parser
}

// Parser is an immutable combinator graph node (§3). It is built once
// during grammar definition and may be shared across concurrent parses;
// only the transient State produced per Parse call is not shareable (§5).
type Parser struct {
	label string
	impl  combinator
}

func newParser(label string, impl combinator) *Parser {
	return &Parser{label: label, impl: impl}
}

// Name returns the parser's display name, typically a grammar-rule label
// assigned by the grammar author, or the combinator kind if anonymous.
func (p *Parser) Name() string {
	if p == nil {
		return "<nil>"
	}
	return p.label
}

// Named returns a copy of p with its display name set to name, letting a
// grammar author label an otherwise-anonymous combinator (e.g. the result
// of Seq(...) or Choice(...)) with a rule name for diagnostics.
func (p *Parser) Named(name string) *Parser {
	return &Parser{label: name, impl: p.impl}
}

// Children returns p's immediate sub-parsers.
func (p *Parser) Children() []*Parser {
	return p.impl.children()
}

// Parse is the uniform invocation contract every combinator honors (§4.1):
// on success it leaves state positioned after the match with any stack
// pushes/log appends in place; on failure it restores position, stack size
// and log length to their pre-call values, and folds the furthest
// position reached into the state's error tracking.
func (p *Parser) Parse(s *State) bool {
	if s.thrown != nil {
		return false
	}

	pos0 := s.pos
	size0 := s.stack.Size()
	log0 := s.log.Length()

	if s.options.RecordCallStack {
		s.callStack = append(s.callStack, p.label)
	}

	ok := p.impl.doParse(p, s)
	if s.thrown != nil {
		ok = false
	}

	if s.options.Trace {
		s.metrics.record(p.label, ok)
	}

	if !ok {
		s.recordFailureAt(s.pos, "")
		s.pos = pos0
		s.stack.Truncate(size0)
		s.log.Truncate(log0)
	}

	if s.options.RecordCallStack {
		s.callStack = s.callStack[:len(s.callStack)-1]
	}

	return ok
}
