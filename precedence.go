package peg

// InfixAlt is one infix alternative of a LeftExpr/RightExpr: an operator
// parser, the operand parser to match on its far side, and a function that
// folds (left, right) into the combined node. Only LeftExpr runs Right;
// RightExpr parses the right side by recursing into itself. Op and Right
// typically push nothing of their own onto the stack that Combine doesn't
// already receive explicitly — a grammar that needs the operator's own
// payload (e.g. which symbol matched) should have Op an Action that returns
// it through the closure, not the value stack.
type InfixAlt struct {
	Op      *Parser
	Right   *Parser
	Combine func(left any, right any) any
}

// SuffixAlt is a postfix alternative: an operator with no right operand,
// folded against the accumulated left value alone.
type SuffixAlt struct {
	Op      *Parser
	Combine func(left any) any
}

// precedenceCombinator implements both LeftExpr and RightExpr; the two
// differ only in how doParse recurses once the first operand is in hand,
// grounded on norswap.autumn.parsers.LeftAssoc/RightAssoc (original_source).
type precedenceCombinator struct {
	operand  *Parser
	infixes  []InfixAlt
	suffixes []SuffixAlt
	required bool
	right    bool
}

func (c *precedenceCombinator) children() []*Parser {
	out := []*Parser{c.operand}
	for _, a := range c.infixes {
		out = append(out, a.Op, a.Right)
	}
	for _, a := range c.suffixes {
		out = append(out, a.Op)
	}
	return out
}

// LeftExpr builds a left-associative precedence-climbing expression: an
// operand, then zero or more (when required is false) infix/suffix
// applications folded left to right. This replaces general left-recursion
// support: a grammar that would otherwise write "expr <- expr op expr /
// operand" writes LeftExpr(operand, ..., InfixAlt{op, operand, combine})
// instead, and the combinator loops rather than recursing (§4.5).
func LeftExpr(operand *Parser, required bool, infixes []InfixAlt, suffixes []SuffixAlt) *Parser {
	return newParser(operand.Name()+" left-expr", &precedenceCombinator{
		operand: operand, infixes: infixes, suffixes: suffixes, required: required, right: false,
	})
}

// RightExpr builds a right-associative precedence-climbing expression: an
// operand, then at most one infix application whose right side is the
// RightExpr itself, folded right to left as the recursion unwinds (§4.5).
func RightExpr(operand *Parser, required bool, infixes []InfixAlt, suffixes []SuffixAlt) *Parser {
	return newParser(operand.Name()+" right-expr", &precedenceCombinator{
		operand: operand, infixes: infixes, suffixes: suffixes, required: required, right: true,
	})
}

func (c *precedenceCombinator) doParse(self *Parser, s *State) bool {
	if c.right {
		return c.parseRight(self, s)
	}
	return c.parseLeft(self, s)
}

func (c *precedenceCombinator) parseLeft(self *Parser, s *State) bool {
	if !c.operand.Parse(s) {
		return false
	}
	applied := 0
	for {
		if ok := c.tryOneLeft(s); !ok {
			break
		}
		applied++
	}
	if c.required && applied == 0 {
		return s.failAt(s.pos, self.label)
	}
	return true
}

// tryOneLeft attempts a single infix or suffix application against the
// value currently on top of the stack, replacing it with the combined
// result on success.
func (c *precedenceCombinator) tryOneLeft(s *State) bool {
	for _, alt := range c.infixes {
		pos0, size0, log0 := s.pos, s.stack.Size(), s.log.Length()
		if !alt.Op.Parse(s) {
			continue
		}
		if !alt.Right.Parse(s) {
			s.pos = pos0
			s.stack.Truncate(size0)
			s.log.Truncate(log0)
			continue
		}
		right := s.stack.Pop()
		left := s.stack.Pop()
		s.stack.Push(alt.Combine(left, right))
		return true
	}
	for _, alt := range c.suffixes {
		if !alt.Op.Parse(s) {
			continue
		}
		left := s.stack.Pop()
		s.stack.Push(alt.Combine(left))
		return true
	}
	return false
}

func (c *precedenceCombinator) parseRight(self *Parser, s *State) bool {
	if !c.operand.Parse(s) {
		return false
	}
	for _, alt := range c.suffixes {
		pos0, size0, log0 := s.pos, s.stack.Size(), s.log.Length()
		if alt.Op.Parse(s) {
			left := s.stack.Pop()
			s.stack.Push(alt.Combine(left))
			return true
		}
		s.pos = pos0
		s.stack.Truncate(size0)
		s.log.Truncate(log0)
	}
	for _, alt := range c.infixes {
		pos0, size0, log0 := s.pos, s.stack.Size(), s.log.Length()
		if alt.Op.Parse(s) && c.parseRight(nil, s) {
			right := s.stack.Pop()
			left := s.stack.Pop()
			s.stack.Push(alt.Combine(left, right))
			return true
		}
		s.pos = pos0
		s.stack.Truncate(size0)
		s.log.Truncate(log0)
	}
	if c.required && self != nil {
		return s.failAt(s.pos, self.label)
	}
	return true
}

// TernaryInfix builds the InfixAlt for a ternary operator such as
// "cond ? then : else": open and close bracket the middle operand, and
// combine receives the left value, the middle value, and the final right
// value folded together. It is expressed as an ordinary InfixAlt whose Op
// is open and whose Right parser matches middle, close and right and
// pushes the (middle, right) pair that Combine unpacks, so it composes with
// LeftExpr without any special-casing in the precedence combinator itself.
// RightExpr never runs an alternative's Right parser, so a TernaryInfix
// alternative there does not parse the middle operand.
func TernaryInfix(open *Parser, middle *Parser, close *Parser, right *Parser, combine func(left, mid, right any) any) InfixAlt {
	bracketed := Collect(Seq(middle, close), func(values []any) any {
		return values[0]
	})
	return InfixAlt{
		Op:    open,
		Right: Collect(Seq(bracketed, right), func(values []any) any {
			return [2]any{values[0], values[1]}
		}),
		Combine: func(left any, packedRight any) any {
			pair := packedRight.([2]any)
			return combine(left, pair[0], pair[1])
		},
	}
}
