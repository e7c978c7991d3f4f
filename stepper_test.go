package gridpath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepper_TieBreakExpandsInDiscoveryOrder(t *testing.T) {
	g := newTestGrid(t, 3)
	start, goal := Cell{0, 0}, Cell{2, 2}
	placeEndpoints(g, start, goal)

	s, err := NewStepper(g, start, goal, Manhattan)
	require.NoError(t, err)

	snap, err := s.Step()
	require.NoError(t, err)
	assert.Equal(t, start, snap.Current)

	// south (1,0) and east (0,1) were both queued with f = 4; south was discovered first
	snap, err = s.Step()
	require.NoError(t, err)
	assert.Equal(t, Cell{1, 0}, snap.Current)

	snap, err = s.Step()
	require.NoError(t, err)
	assert.Equal(t, Cell{0, 1}, snap.Current)
	assert.Equal(t, 3, snap.StepIndex)
}

func TestStepper_StateQueries(t *testing.T) {
	g := newTestGrid(t, 4)
	start, goal := Cell{0, 0}, Cell{3, 3}
	placeEndpoints(g, start, goal)

	s, err := NewStepper(g, start, goal, Manhattan)
	require.NoError(t, err)
	assert.Equal(t, StatusRunning, s.Status())
	assert.Equal(t, 0.0, s.GCost(start))
	assert.True(t, math.IsInf(s.GCost(goal), 1))
	assert.Equal(t, 1, s.FrontierLen())

	_, err = s.Step()
	require.NoError(t, err)

	prev, ok := s.Predecessor(Cell{1, 0})
	require.True(t, ok)
	assert.Equal(t, start, prev)
	assert.Equal(t, 1.0, s.GCost(Cell{0, 1}))
	_, ok = s.Predecessor(start)
	assert.False(t, ok, "start never has a predecessor")

	assert.Equal(t, RoleOpen, g.Role(Cell{1, 0}))
	assert.Equal(t, RoleOpen, g.Role(Cell{0, 1}))
	assert.Equal(t, RoleStart, g.Role(start))
}

func TestStepper_DoneIsSticky(t *testing.T) {
	g := newTestGrid(t, 2)
	start, goal := Cell{0, 0}, Cell{0, 1}
	placeEndpoints(g, start, goal)

	s, err := NewStepper(g, start, goal, Chebyshev)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		if snap, err := s.Step(); err == nil && snap.Done {
			break
		}
	}
	require.Equal(t, StatusSucceeded, s.Status())

	snap, err := s.Step()
	require.NoError(t, err)
	assert.True(t, snap.Done)
	assert.Equal(t, StatusSucceeded, snap.Status)
	assert.Equal(t, []Cell{start}, s.Order())
	assert.Equal(t, RoleGoal, g.Role(goal), "goal marker survives being reached")
}

func TestStepper_CancelledStateIsFinal(t *testing.T) {
	g := newTestGrid(t, 4)
	placeEndpoints(g, Cell{0, 0}, Cell{3, 3})

	stop := false
	s, err := NewStepper(g, Cell{0, 0}, Cell{3, 3}, Manhattan, WithCancel(func() bool { return stop }))
	require.NoError(t, err)

	_, err = s.Step()
	require.NoError(t, err)

	stop = true
	_, err = s.Step()
	assert.ErrorIs(t, err, ErrCancelled)

	stop = false
	snap, err := s.Step()
	require.NoError(t, err)
	assert.True(t, snap.Done)
	assert.Equal(t, StatusCancelled, s.Status())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "exhausted", StatusExhausted.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "status(9)", Status(9).String())
}
