package gridpath

import (
	"fmt"

	"github.com/pdrpinto/gridpath/internal"
)

// Reconstruct walks predecessor back from goal and marks every cell strictly
// between goal and start as RolePath, calling onStep once per marked cell.
//
// The returned cells run from the goal's neighbour back toward the start,
// which is also the order they are revealed in. Endpoint roles are never
// overwritten.
func Reconstruct(grid *Grid, predecessor map[Cell]Cell, goal Cell, onStep StepFunc) ([]Cell, error) {
	if _, ok := predecessor[goal]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoPathRecorded, goal)
	}

	chain := internal.WalkBack(predecessor, goal)
	interior := chain[1 : len(chain)-1]
	for _, c := range interior {
		if !grid.Role(c).IsEndpoint() {
			grid.SetRole(c, RolePath)
		}
		if onStep != nil {
			onStep()
		}
	}
	return interior, nil
}
