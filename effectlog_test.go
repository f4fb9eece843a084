package peg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectLogAppendRunsApplyImmediately(t *testing.T) {
	l := newEffectLog()
	applied := false
	l.Append(LogEntry{Apply: func() { applied = true }})
	assert.True(t, applied, "Apply should run the moment the entry is appended")
	assert.Equal(t, 1, l.Length())
}

func TestEffectLogTruncateUndoesInReverseOrder(t *testing.T) {
	l := newEffectLog()
	var order []int

	l.Append(LogEntry{
		Apply: func() { order = append(order, 1) },
		Undo:  func() { order = append(order, -1) },
	})
	l.Append(LogEntry{
		Apply: func() { order = append(order, 2) },
		Undo:  func() { order = append(order, -2) },
	})
	l.Append(LogEntry{
		Apply: func() { order = append(order, 3) },
		Undo:  func() { order = append(order, -3) },
	})
	require.Equal(t, []int{1, 2, 3}, order)

	l.Truncate(1)
	assert.Equal(t, []int{1, 2, 3, -3, -2}, order, "Undo must fire last-applied first")
	assert.Equal(t, 1, l.Length())
}

func TestEffectLogTruncateSkipsNilUndo(t *testing.T) {
	l := newEffectLog()
	l.Append(LogEntry{Apply: func() {}})
	assert.NotPanics(t, func() { l.Truncate(0) })
}

func TestEffectLogTruncateToSameLengthIsNoop(t *testing.T) {
	l := newEffectLog()
	calls := 0
	l.Append(LogEntry{Undo: func() { calls++ }})
	l.Truncate(1)
	assert.Equal(t, 0, calls)
}
