package peg

// Check runs the static well-formedness analysis over root's combinator
// graph (§4.6): it flags rules that can match the empty string inside an
// unbounded repetition (an infinite loop waiting to happen), tokens that
// can match the empty string (a silent-empty match at a token boundary),
// and rules that are left-recursive through ordinary Sequence/Choice
// nesting, since that would loop Parse forever rather than backtrack.
// LeftExpr/RightExpr are exempt from the left-recursion check on their own
// recursive edge — that recursion is exactly what precedence climbing is
// for, grounded on
// norswap.autumn's treatment of LeftAssoc/RightAssoc as not left-recursive
// even though the grammar they implement would be (original_source).
func Check(root *Parser) []Diagnostic {
	nullable := computeNullable(root)
	var diags []Diagnostic
	diags = append(diags, checkNullableRepetition(root, nullable, map[*Parser]bool{})...)
	diags = append(diags, checkLeftRecursion(root, nullable)...)
	return diags
}

// computeNullable finds every node that can match without consuming any
// input, by fixed-point iteration over the graph until no entry changes —
// the standard way to compute nullability in the presence of cycles
// (lazy rule references) where a single top-down pass would not terminate.
func computeNullable(root *Parser) map[*Parser]bool {
	nullable := map[*Parser]bool{}
	all := collectNodes(root, map[*Parser]bool{})
	for {
		changed := false
		for _, p := range all {
			if nullable[p] {
				continue
			}
			if nodeIsNullable(p, nullable) {
				nullable[p] = true
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return nullable
}

func collectNodes(p *Parser, seen map[*Parser]bool) []*Parser {
	if p == nil || seen[p] {
		return nil
	}
	seen[p] = true
	out := []*Parser{p}
	for _, c := range p.Children() {
		out = append(out, collectNodes(c, seen)...)
	}
	return out
}

func nodeIsNullable(p *Parser, nullable map[*Parser]bool) bool {
	switch impl := p.impl.(type) {
	case *literalCombinator:
		return len(impl.text) == 0
	case *anyCombinator, *runePredCombinator, *tokenPredCombinator, *tokenChoiceCombinator:
		return false
	case *notCombinator, *andCombinator, *optionalCombinator:
		return true
	case *sequenceCombinator:
		for _, item := range impl.items {
			if !nullable[item] {
				return false
			}
		}
		return true
	case *choiceCombinator:
		for _, alt := range impl.alts {
			if nullable[alt] {
				return true
			}
		}
		return false
	case *repetitionCombinator:
		return impl.min == 0 || nullable[impl.child]
	case *lazyCombinator:
		return nullable[impl.resolve()]
	case *sepCombinator:
		return impl.min == 0 || nullable[impl.item]
	case *wordCombinator:
		return nullable[impl.child]
	case *tokenCombinator:
		return nullable[impl.child]
	case *stackActionCombinator:
		return nullable[impl.child]
	case *precedenceCombinator:
		return nullable[impl.operand]
	default:
		return false
	}
}

// checkNullableRepetition flags any Rep (or Sep) whose child can match
// empty: such a node would iterate forever since the child succeeding
// without consuming never trips the "child failed" exit condition. It also
// flags a Token whose child can match empty: a token that can silently
// match nothing is indistinguishable from the whitespace it records a
// boundary against, the same silent-empty-match hazard in a different
// shape (§4.3, §4.6).
func checkNullableRepetition(p *Parser, nullable map[*Parser]bool, seen map[*Parser]bool) []Diagnostic {
	if p == nil || seen[p] {
		return nil
	}
	seen[p] = true
	var diags []Diagnostic
	switch impl := p.impl.(type) {
	case *repetitionCombinator:
		if nullable[impl.child] {
			diags = append(diags, Diagnostic{
				Kind:    DiagnosticNullableRepetition,
				Rule:    p.Name(),
				Message: p.Name() + ": repeated sub-parser can match the empty string",
			})
		}
	case *sepCombinator:
		if nullable[impl.item] {
			diags = append(diags, Diagnostic{
				Kind:    DiagnosticNullableRepetition,
				Rule:    p.Name(),
				Message: p.Name() + ": separated item can match the empty string",
			})
		}
	case *tokenCombinator:
		if nullable[impl.child] {
			diags = append(diags, Diagnostic{
				Kind:    DiagnosticNullableToken,
				Rule:    p.Name(),
				Message: p.Name() + ": token can match the empty string",
			})
		}
	}
	for _, c := range p.Children() {
		diags = append(diags, checkNullableRepetition(c, nullable, seen)...)
	}
	return diags
}

// checkLeftRecursion walks every node's left edge (the sub-parser(s) that
// can run at the node's own starting position without any other sub-parser
// having consumed input first) and flags a cycle back to a node already on
// that path, since such a cycle re-enters Parse at the same position with
// no progress and never returns (§4.6, §7).
func checkLeftRecursion(root *Parser, nullable map[*Parser]bool) []Diagnostic {
	var diags []Diagnostic
	visit(root, map[*Parser]bool{}, &diags, nullable)
	return diags
}

func visit(p *Parser, onPath map[*Parser]bool, diags *[]Diagnostic, nullable map[*Parser]bool) {
	if p == nil {
		return
	}
	if onPath[p] {
		*diags = append(*diags, Diagnostic{
			Kind:    DiagnosticLeftRecursion,
			Rule:    p.Name(),
			Message: p.Name() + ": left-recursive without an intervening consuming parser",
		})
		return
	}
	onPath[p] = true
	defer delete(onPath, p)

	for _, edge := range leftEdges(p, nullable) {
		visit(edge, onPath, diags, nullable)
	}
}

// leftEdges returns the sub-parsers reachable at p's own starting position
// before any input has been consumed. For Sequence this is its leading run
// of nullable items plus the first non-nullable one; for Choice it is every
// alternative; precedenceCombinator's own recursive Right edge in RightExpr
// is deliberately excluded, since the operator it's gated behind always
// consumes first.
func leftEdges(p *Parser, nullable map[*Parser]bool) []*Parser {
	switch impl := p.impl.(type) {
	case *sequenceCombinator:
		var out []*Parser
		for _, item := range impl.items {
			out = append(out, item)
			if !nullable[item] {
				break
			}
		}
		return out
	case *choiceCombinator:
		return impl.alts
	case *notCombinator:
		return []*Parser{impl.child}
	case *andCombinator:
		return []*Parser{impl.child}
	case *optionalCombinator:
		return []*Parser{impl.child}
	case *repetitionCombinator:
		return []*Parser{impl.child}
	case *sepCombinator:
		return []*Parser{impl.item}
	case *wordCombinator:
		return []*Parser{impl.child}
	case *tokenCombinator:
		return []*Parser{impl.child}
	case *stackActionCombinator:
		return []*Parser{impl.child}
	case *lazyCombinator:
		return []*Parser{impl.resolve()}
	case *precedenceCombinator:
		// Only the base operand can run at the node's own starting
		// position; every infix/suffix alternative is gated behind its
		// Op parser having already consumed input, so they are not
		// left edges even though RightExpr's Right may be this same
		// node.
		return []*Parser{impl.operand}
	default:
		return nil
	}
}
