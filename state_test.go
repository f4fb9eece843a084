package peg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState(text string) *State {
	return NewState(NewStringInput(text), DefaultOptions())
}

func TestStateRecordFailureAtTracksFurthest(t *testing.T) {
	s := newTestState("abc")
	s.recordFailureAt(1, "a")
	s.recordFailureAt(3, "b")
	s.recordFailureAt(2, "c")

	assert.Equal(t, 3, s.ErrorPos())
	assert.Equal(t, []string{"b"}, s.ErrorExpected())
}

func TestStateRecordFailureAtDedupsSamePosition(t *testing.T) {
	s := newTestState("abc")
	s.recordFailureAt(1, "digit")
	s.recordFailureAt(1, "letter")
	s.recordFailureAt(1, "digit")

	assert.Equal(t, []string{"digit", "letter"}, s.ErrorExpected())
}

func TestStateRecordFailureAtResetsExpectedOnNewFurthest(t *testing.T) {
	s := newTestState("abc")
	s.recordFailureAt(1, "digit")
	s.recordFailureAt(2, "letter")

	assert.Equal(t, []string{"letter"}, s.ErrorExpected())
}

func TestStateThrowIsSticky(t *testing.T) {
	s := newTestState("abc")
	s.Throw("bad", "first")
	s.Throw("worse", "second")

	require.NotNil(t, s.Thrown())
	assert.Equal(t, "bad", s.Thrown().Label, "the first Throw wins; later calls are no-ops")
}

func TestStateCallStackRecordingRespectsOption(t *testing.T) {
	opts := DefaultOptions().WithRecordCallStack(true)
	s := NewState(NewStringInput("x"), opts)

	inner := Lit("x").Named("leaf")
	outer := Seq(inner).Named("outer")
	outer.Parse(s)

	assert.Empty(t, s.CallStack(), "stack unwinds back to empty after a successful top-level parse")
}
