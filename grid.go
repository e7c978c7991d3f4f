package gridpath

import "fmt"

// directions lists the 4-connected offsets in expansion order: north, south, west, east.
var directions = [4]Cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is an N×N board of cells stored row-major.
//
// At most one cell holds RoleStart and at most one holds RoleGoal; SetRole
// demotes the previous holder when a new one is placed. Grid is not safe for
// concurrent use.
type Grid struct {
	size  int
	roles []Role
	start *Cell
	goal  *Cell
}

// NewGrid creates a size×size grid with every cell neutral.
func NewGrid(size int) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return &Grid{size: size, roles: make([]Role, size*size)}, nil
}

// Size returns the side length.
func (g *Grid) Size() int { return g.size }

// InBounds reports whether c lies on the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

func (g *Grid) index(c Cell) int {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("gridpath: cell %v out of bounds for size %d", c, g.size))
	}
	return c.Row*g.size + c.Col
}

// CellAt converts a row-major index back to a cell.
func (g *Grid) CellAt(i int) Cell { return Cell{Row: i / g.size, Col: i % g.size} }

// Role returns the current role of c.
func (g *Grid) Role(c Cell) Role { return g.roles[g.index(c)] }

// IsWall reports whether c blocks movement.
func (g *Grid) IsWall(c Cell) bool { return g.Role(c) == RoleWall }

// Start returns the cell holding RoleStart, if any.
func (g *Grid) Start() (Cell, bool) {
	if g.start == nil {
		return Cell{}, false
	}
	return *g.start, true
}

// Goal returns the cell holding RoleGoal, if any.
func (g *Grid) Goal() (Cell, bool) {
	if g.goal == nil {
		return Cell{}, false
	}
	return *g.goal, true
}

// SetRole tags c with r. Placing a start or goal moves it from its previous cell.
func (g *Grid) SetRole(c Cell, r Role) {
	i := g.index(c)
	switch g.roles[i] {
	case RoleStart:
		g.start = nil
	case RoleGoal:
		g.goal = nil
	}

	switch r {
	case RoleStart:
		if g.start != nil {
			g.roles[g.index(*g.start)] = RoleNeutral
		}
		cell := c
		g.start = &cell
	case RoleGoal:
		if g.goal != nil {
			g.roles[g.index(*g.goal)] = RoleNeutral
		}
		cell := c
		g.goal = &cell
	}
	g.roles[i] = r
}

// Clear resets c to neutral whatever it held.
func (g *Grid) Clear(c Cell) { g.SetRole(c, RoleNeutral) }

// ClearAll resets every cell, endpoints and walls included.
func (g *Grid) ClearAll() {
	for i := range g.roles {
		g.roles[i] = RoleNeutral
	}
	g.start, g.goal = nil, nil
}

// Neighbors returns the in-bounds, non-wall 4-connected neighbours of c
// in north, south, west, east order.
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(directions))
	for _, d := range directions {
		n := Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if g.InBounds(n) && g.roles[g.index(n)] != RoleWall {
			out = append(out, n)
		}
	}
	return out
}

// ResetSearchRoles returns every open, closed and path cell to neutral.
func (g *Grid) ResetSearchRoles() {
	for i, r := range g.roles {
		if r.IsSearchRole() {
			g.roles[i] = RoleNeutral
		}
	}
}

// Count returns how many cells currently hold r.
func (g *Grid) Count(r Role) int {
	n := 0
	for _, role := range g.roles {
		if role == r {
			n++
		}
	}
	return n
}
