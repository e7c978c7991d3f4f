package gridpath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeuristics_Values(t *testing.T) {
	a, b := Cell{1, 2}, Cell{4, 6}
	tests := []struct {
		name string
		fn   Heuristic
		want float64
	}{
		{"manhattan", Manhattan, 7},
		{"euclidean", Euclidean, 5},
		{"chebyshev", Chebyshev, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.fn(a, b), 1e-9)
			assert.InDelta(t, tt.want, tt.fn(b, a), 1e-9, "should be symmetric")
			assert.Zero(t, tt.fn(a, a))
		})
	}
}

func TestHeuristics_AdmissibleOnOpenGrid(t *testing.T) {
	// on a wall-free 4-connected grid the true distance is the Manhattan distance
	cells := []Cell{{0, 0}, {3, 7}, {9, 9}, {5, 0}, {2, 2}}
	for _, kind := range HeuristicKinds {
		h := kind.Func()
		for _, a := range cells {
			for _, b := range cells {
				est := h(a, b)
				assert.GreaterOrEqual(t, est, 0.0)
				assert.LessOrEqual(t, est, Manhattan(a, b)+1e-9, "%s overestimates %v->%v", kind, a, b)
				if a != b {
					assert.Positive(t, est)
				}
			}
		}
	}
}

func TestHeuristicKind_NextWraps(t *testing.T) {
	assert.Equal(t, KindEuclidean, KindManhattan.Next())
	assert.Equal(t, KindChebyshev, KindEuclidean.Next())
	assert.Equal(t, KindManhattan, KindChebyshev.Next())
}

func TestParseHeuristic(t *testing.T) {
	kind, err := ParseHeuristic(" Euclidean ")
	require.NoError(t, err)
	assert.Equal(t, KindEuclidean, kind)

	_, err = ParseHeuristic("octile")
	assert.ErrorIs(t, err, ErrUnknownHeuristic)
}

func TestHeuristicKind_Func(t *testing.T) {
	a, b := Cell{0, 0}, Cell{3, 4}
	assert.Equal(t, 7.0, KindManhattan.Func()(a, b))
	assert.Equal(t, 5.0, KindEuclidean.Func()(a, b))
	assert.Equal(t, 4.0, KindChebyshev.Func()(a, b))
	assert.False(t, math.IsNaN(HeuristicKind(99).Func()(a, b)))
}
