package layout

import (
	"math/rand/v2"

	"github.com/pdrpinto/gridpath"
)

// WallOptions shapes the clustered random walls.
type WallOptions struct {
	Clusters int
	Steps    int
	Density  float64
}

var walkDirections = [4]gridpath.Cell{{Row: 1}, {Row: -1}, {Col: 1}, {Col: -1}}

// ScatterWalls drops clustered walls onto g by random walks and returns how
// many cells became walls. Start and goal cells are never walled.
func ScatterWalls(g *gridpath.Grid, rng *rand.Rand, opts WallOptions) int {
	size := g.Size()
	placed := 0
	for range opts.Clusters {
		p := gridpath.Cell{Row: rng.IntN(size), Col: rng.IntN(size)}
		for range opts.Steps {
			if rng.Float64() < opts.Density {
				if role := g.Role(p); role != gridpath.RoleWall && !role.IsEndpoint() {
					g.SetRole(p, gridpath.RoleWall)
					placed++
				}
			}
			d := walkDirections[rng.IntN(len(walkDirections))]
			np := gridpath.Cell{Row: p.Row + d.Row, Col: p.Col + d.Col}
			if g.InBounds(np) {
				p = np
			}
		}
	}
	return placed
}
