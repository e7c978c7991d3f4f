package gridpath

import "fmt"

// Cell identifies a grid square by row and column.
type Cell struct {
	Row int
	Col int
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Role is the mutually exclusive tag carried by every cell.
type Role uint8

const (
	RoleNeutral Role = iota
	RoleStart
	RoleGoal
	RoleWall
	RoleOpen
	RoleClosed
	RolePath
)

var roleNames = [...]string{
	RoleNeutral: "neutral",
	RoleStart:   "start",
	RoleGoal:    "goal",
	RoleWall:    "wall",
	RoleOpen:    "open",
	RoleClosed:  "closed",
	RolePath:    "path",
}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return fmt.Sprintf("role(%d)", uint8(r))
}

// IsSearchRole reports whether the role is written by the engine during a run.
func (r Role) IsSearchRole() bool {
	return r == RoleOpen || r == RoleClosed || r == RolePath
}

// IsEndpoint reports whether the role marks the start or goal.
func (r Role) IsEndpoint() bool {
	return r == RoleStart || r == RoleGoal
}
