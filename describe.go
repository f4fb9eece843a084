package peg

import "strings"

// Describe renders p's combinator graph as an indented tree, one node per
// line, cycles collapsed to "(see above)" — the same shape the teacher's
// value printer gave interned AST nodes, adapted here to combinator graphs
// instead of parsed values.
func Describe(p *Parser) string {
	var b strings.Builder
	describe(&b, p, 0, map[*Parser]bool{})
	return b.String()
}

func describe(b *strings.Builder, p *Parser, depth int, seen map[*Parser]bool) {
	b.WriteString(strings.Repeat("  ", depth))
	if p == nil {
		b.WriteString("<nil>\n")
		return
	}
	b.WriteString(p.Name())
	if seen[p] {
		b.WriteString(" (see above)\n")
		return
	}
	seen[p] = true
	children := p.Children()
	if len(children) == 0 {
		b.WriteByte('\n')
		return
	}
	b.WriteByte('\n')
	for _, c := range children {
		describe(b, c, depth+1, seen)
	}
}
