package peg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueStackPushPopPeek(t *testing.T) {
	s := newValueStack()
	assert.Equal(t, 0, s.Size())

	s.Push(1)
	s.Push(2)
	s.Push(3)
	require.Equal(t, 3, s.Size())
	assert.Equal(t, 3, s.Peek(0))
	assert.Equal(t, 2, s.Peek(1))
	assert.Equal(t, 1, s.Peek(2))

	assert.Equal(t, 3, s.Pop())
	assert.Equal(t, 2, s.Size())
}

func TestValueStackPopFrom(t *testing.T) {
	s := newValueStack()
	s.Push("a")
	base := s.Size()
	s.Push("b")
	s.Push("c")

	frame := s.PopFrom(base)
	assert.Equal(t, []any{"b", "c"}, frame)
	assert.Equal(t, 1, s.Size())
	assert.Equal(t, "a", s.Peek(0))
}

func TestValueStackPopFromBeyondSize(t *testing.T) {
	s := newValueStack()
	s.Push("a")
	assert.Nil(t, s.PopFrom(5))
}

func TestValueStackTruncate(t *testing.T) {
	s := newValueStack()
	s.Push(1)
	s.Push(2)
	s.Push(3)
	s.Truncate(1)
	assert.Equal(t, 1, s.Size())
	assert.Equal(t, 1, s.Peek(0))
}

func TestValueStackSnapshotIsIndependentCopy(t *testing.T) {
	s := newValueStack()
	s.Push(1)
	s.Push(2)

	snap := s.Snapshot()
	s.Push(3)

	assert.Equal(t, []any{1, 2}, snap)
	assert.Equal(t, 3, s.Size())
}
