package peg

// LogEntry is one reversible mutation a stack action performs against
// user-owned state (e.g. a symbol table insert). Apply is invoked once,
// immediately, when the entry is appended; Undo is invoked by Truncate if
// the enclosing combinator ends up backtracking past this entry. An entry
// is never mutated after it is appended (§3).
type LogEntry struct {
	Apply func()
	Undo  func()
}

// effectLog is the append-only side-effect log (§3, §5). Truncating to a
// prior length rolls back every entry appended since, in reverse order, so
// that a later-succeeding branch never observes a partial effect window
// from a sibling that backtracked (invariant 6, §8).
type effectLog struct {
	entries []LogEntry
}

func newEffectLog() *effectLog {
	return &effectLog{}
}

// Append records entry and immediately runs its Apply closure, if any.
func (l *effectLog) Append(entry LogEntry) {
	if entry.Apply != nil {
		entry.Apply()
	}
	l.entries = append(l.entries, entry)
}

func (l *effectLog) Length() int {
	return len(l.entries)
}

// Truncate rolls the log back to length n, invoking Undo on every entry
// past n in reverse (last-applied, first-undone) order.
func (l *effectLog) Truncate(n int) {
	for i := len(l.entries) - 1; i >= n; i-- {
		if undo := l.entries[i].Undo; undo != nil {
			undo()
		}
	}
	l.entries = l.entries[:n]
}
