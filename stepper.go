package gridpath

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Status is the lifecycle state of one search run.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusSucceeded
	StatusExhausted
	StatusCancelled
	// StatusFailed means the goal was reached but no path could be rebuilt.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusSucceeded:
		return "succeeded"
	case StatusExhausted:
		return "exhausted"
	case StatusCancelled:
		return "cancelled"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// StepSnapshot describes the outcome of one Step call.
type StepSnapshot struct {
	Current   Cell
	StepIndex int
	Done      bool
	Status    Status
}

// Stepper owns the state of a single search and advances it one expansion at
// a time. The state is discarded with the Stepper; nothing outlives the run.
type Stepper struct {
	grid      *Grid
	start     Cell
	goal      Cell
	heuristic Heuristic
	opts      Options
	runID     string

	frontier  *Frontier
	closedSet map[Cell]bool
	cameFrom  map[Cell]Cell
	gScore    map[Cell]float64
	order     []Cell
	status    Status
}

// NewStepper validates the endpoints, clears the previous run's roles from
// grid and seeds the frontier with start.
func NewStepper(
	grid *Grid,
	start Cell,
	goal Cell,
	heuristic Heuristic,
	options ...Option,
) (*Stepper, error) {
	if err := validateEndpoints(grid, start, goal); err != nil {
		return nil, err
	}
	if heuristic == nil {
		heuristic = Manhattan
	}

	grid.ResetSearchRoles()
	s := &Stepper{
		grid:      grid,
		start:     start,
		goal:      goal,
		heuristic: heuristic,
		opts:      newOptions(options),
		runID:     uuid.NewString(),
		frontier:  NewFrontier(),
		closedSet: make(map[Cell]bool),
		cameFrom:  make(map[Cell]Cell),
		gScore:    map[Cell]float64{start: 0},
		status:    StatusRunning,
	}
	s.frontier.Push(start, heuristic(start, goal))
	return s, nil
}

func validateEndpoints(grid *Grid, start, goal Cell) error {
	switch {
	case grid == nil:
		return fmt.Errorf("%w: nil grid", ErrInvalidEndpoints)
	case start == goal:
		return fmt.Errorf("%w: start and goal are both %v", ErrInvalidEndpoints, start)
	case !grid.InBounds(start):
		return fmt.Errorf("%w: start %v out of bounds", ErrInvalidEndpoints, start)
	case !grid.InBounds(goal):
		return fmt.Errorf("%w: goal %v out of bounds", ErrInvalidEndpoints, goal)
	case grid.IsWall(start):
		return fmt.Errorf("%w: start %v is a wall", ErrInvalidEndpoints, start)
	case grid.IsWall(goal):
		return fmt.Errorf("%w: goal %v is a wall", ErrInvalidEndpoints, goal)
	}
	return nil
}

// Step advances the search by one node expansion.
//
// Stale frontier entries for cells already expanded are discarded without
// counting as a step. Once the goal is popped or the frontier runs dry the
// snapshot is marked Done and further calls are no-ops. ErrCancelled is
// returned when a cancel check fires.
func (s *Stepper) Step() (StepSnapshot, error) {
	if s.status != StatusRunning {
		return s.snapshot(Cell{}, true), nil
	}
	if s.opts.cancelled() {
		s.status = StatusCancelled
		return s.snapshot(Cell{}, true), ErrCancelled
	}

	for {
		current, err := s.frontier.PopMin()
		if errors.Is(err, ErrFrontierEmpty) {
			s.status = StatusExhausted
			return s.snapshot(Cell{}, true), nil
		}
		if s.closedSet[current] {
			continue
		}
		if current == s.goal {
			s.status = StatusSucceeded
			return s.snapshot(current, true), nil
		}

		s.expand(current)
		return s.snapshot(current, false), nil
	}
}

func (s *Stepper) expand(current Cell) {
	currentG := s.gScore[current]
	for _, neighbor := range s.grid.Neighbors(current) {
		if s.closedSet[neighbor] {
			continue
		}
		p := propose(current, currentG, neighbor, s.goal, s.heuristic)
		if gPrev, ok := s.gScore[neighbor]; ok && p.GScore >= gPrev {
			continue
		}
		s.gScore[p.ToNode] = p.GScore
		s.cameFrom[p.ToNode] = p.FromNode
		if !s.frontier.Contains(p.ToNode) {
			s.mark(p.ToNode, RoleOpen)
		}
		// a cheaper cost re-queues the cell; the older entry becomes stale
		s.frontier.Push(p.ToNode, p.FCost)
	}

	s.closedSet[current] = true
	s.order = append(s.order, current)
	if current != s.start {
		s.mark(current, RoleClosed)
	}
}

// mark sets a search role without overwriting the start or goal markers.
func (s *Stepper) mark(c Cell, r Role) {
	if c == s.start || c == s.goal || s.grid.Role(c).IsEndpoint() {
		return
	}
	s.grid.SetRole(c, r)
}

func (s *Stepper) snapshot(current Cell, done bool) StepSnapshot {
	return StepSnapshot{
		Current:   current,
		StepIndex: len(s.order),
		Done:      done,
		Status:    s.status,
	}
}

// RunID identifies this search in logs and metrics.
func (s *Stepper) RunID() string { return s.runID }

// Status returns the current lifecycle state.
func (s *Stepper) Status() Status { return s.status }

// GCost returns the cheapest known cost from start to c, or +Inf if unreached.
func (s *Stepper) GCost(c Cell) float64 {
	if g, ok := s.gScore[c]; ok {
		return g
	}
	return math.Inf(1)
}

// Predecessor returns the best-known previous cell on the path to c.
func (s *Stepper) Predecessor(c Cell) (Cell, bool) {
	p, ok := s.cameFrom[c]
	return p, ok
}

// Order returns the expanded cells in expansion order.
func (s *Stepper) Order() []Cell {
	out := make([]Cell, len(s.order))
	copy(out, s.order)
	return out
}

// FrontierLen returns the number of queued entries, stale ones included.
func (s *Stepper) FrontierLen() int { return s.frontier.Len() }
