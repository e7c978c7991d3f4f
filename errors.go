package gridpath

import "errors"

// Sentinel errors for grid and search operations.
var (
	// ErrInvalidSize is returned by NewGrid for a side length below one.
	ErrInvalidSize = errors.New("grid size must be positive")

	// ErrInvalidEndpoints is returned when start equals goal, either endpoint is
	// out of bounds, or either endpoint is a wall.
	ErrInvalidEndpoints = errors.New("invalid search endpoints")

	// ErrCancelled is returned when the cancel predicate fires during a run.
	// The grid keeps whatever open and closed roles the run had reached.
	ErrCancelled = errors.New("search cancelled")

	// ErrFrontierEmpty is returned by Frontier.PopMin when no entries remain.
	ErrFrontierEmpty = errors.New("frontier is empty")

	// ErrNoPathRecorded means the goal was reached without a recorded predecessor.
	// It signals a defect in the engine, never a user error.
	ErrNoPathRecorded = errors.New("no predecessor recorded for goal")

	// ErrUnknownHeuristic is returned by ParseHeuristic for an unrecognised name.
	ErrUnknownHeuristic = errors.New("unknown heuristic")
)
