package gridpath

import (
	"fmt"
	"math"
	"strings"
)

// Heuristic returns the estimated cost from cell a to cell b.
type Heuristic func(a, b Cell) float64

// Manhattan is the sum of the row and column distances.
func Manhattan(a, b Cell) float64 {
	return float64(absInt(a.Row-b.Row) + absInt(a.Col-b.Col))
}

// Euclidean is the straight-line distance.
func Euclidean(a, b Cell) float64 {
	dr := float64(a.Row - b.Row)
	dc := float64(a.Col - b.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

// Chebyshev is the larger of the row and column distances.
func Chebyshev(a, b Cell) float64 {
	return float64(max(absInt(a.Row-b.Row), absInt(a.Col-b.Col)))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// HeuristicKind names one of the built-in heuristics.
type HeuristicKind int

const (
	KindManhattan HeuristicKind = iota
	KindEuclidean
	KindChebyshev
)

// HeuristicKinds is the cycling order used by front ends.
var HeuristicKinds = []HeuristicKind{KindManhattan, KindEuclidean, KindChebyshev}

// Func returns the distance function for k. Unknown kinds fall back to Manhattan.
func (k HeuristicKind) Func() Heuristic {
	switch k {
	case KindEuclidean:
		return Euclidean
	case KindChebyshev:
		return Chebyshev
	default:
		return Manhattan
	}
}

func (k HeuristicKind) String() string {
	switch k {
	case KindManhattan:
		return "manhattan"
	case KindEuclidean:
		return "euclidean"
	case KindChebyshev:
		return "chebyshev"
	default:
		return fmt.Sprintf("heuristic(%d)", int(k))
	}
}

// Next returns the kind after k, wrapping to the first after the last.
func (k HeuristicKind) Next() HeuristicKind {
	for i, kind := range HeuristicKinds {
		if kind == k {
			return HeuristicKinds[(i+1)%len(HeuristicKinds)]
		}
	}
	return HeuristicKinds[0]
}

// ParseHeuristic resolves a case-insensitive heuristic name.
func ParseHeuristic(name string) (HeuristicKind, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, kind := range HeuristicKinds {
		if kind.String() == want {
			return kind, nil
		}
	}
	return KindManhattan, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}
