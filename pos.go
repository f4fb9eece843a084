package peg

import (
	"fmt"
	"sort"
)

const eof = -1

// Range is a half-open [Start, End) offset pair into whichever input is
// active (rune offsets for character input, element offsets for token
// input). It is kept as cheap as possible, matching the teacher's own
// two-int Range type.
type Range struct{ Start, End int }

func NewRange(start, end int) Range {
	return Range{Start: start, End: end}
}

func (r Range) String() string {
	if r.Start == r.End {
		return fmt.Sprintf("%d", r.Start)
	}
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

// Contains reports whether other is fully nested within r.
func (r Range) Contains(other Range) bool {
	return other.Start >= r.Start && other.End <= r.End
}

// Location is a human-facing 1-indexed line/column position.
type Location struct {
	Line   int
	Column int
	Cursor int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Span pairs the start and end Location of a Range, used for diagnostics
// and error rendering.
type Span struct{ Start, End Location }

func NewSpan(start, end Location) Span {
	return Span{Start: start, End: end}
}

func (s Span) String() string {
	if s.Start.Line == s.End.Line {
		if s.Start.Column == s.End.Column {
			return fmt.Sprintf("%d:%d", s.Start.Line, s.Start.Column)
		}
		return fmt.Sprintf("%d:%d..%d", s.Start.Line, s.Start.Column, s.End.Column)
	}
	return fmt.Sprintf("%d:%d..%d:%d", s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
}

// posIndex turns rune offsets into Locations. Built lazily from the input
// text the first time a span needs rendering, since a successful parse
// never needs one.
type posIndex struct {
	lineStart []int
}

func newPosIndex(runes []rune) *posIndex {
	lineStart := make([]int, 1, 64)
	lineStart[0] = 0
	for i, r := range runes {
		if r == '\n' {
			lineStart = append(lineStart, i+1)
		}
	}
	return &posIndex{lineStart: lineStart}
}

// LocationAt returns the 1-indexed line/column Location of the rune offset
// cursor, clamped to the input bounds.
func (pi *posIndex) LocationAt(cursor, inputLen int) Location {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > inputLen {
		cursor = inputLen
	}
	lineIdx := sort.Search(len(pi.lineStart), func(i int) bool {
		return pi.lineStart[i] > cursor
	}) - 1
	if lineIdx < 0 {
		lineIdx = 0
	}
	return Location{
		Line:   lineIdx + 1,
		Column: cursor - pi.lineStart[lineIdx] + 1,
		Cursor: cursor,
	}
}

func (pi *posIndex) Span(r Range, inputLen int) Span {
	return Span{Start: pi.LocationAt(r.Start, inputLen), End: pi.LocationAt(r.End, inputLen)}
}
