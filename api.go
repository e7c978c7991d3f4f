package gridpath

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pdrpinto/gridpath/internal"
)

// StepFunc is invoked synchronously after every expansion and once per
// revealed path cell. It observes the grid and must not change any role.
type StepFunc func()

// Result contains the outcome of a search.
type Result struct {
	RunID    string
	Status   Status
	Path     []Cell // start to goal inclusive; nil unless Status is StatusSucceeded
	Cost     float64
	Expanded int
	Order    []Cell
}

// Options defines parameters for the search.
type Options struct {
	CancelChecks []func() bool
	Logger       *slog.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithCancel adds a predicate checked once before every expansion. A true
// result stops the run with ErrCancelled.
func WithCancel(check func() bool) Option {
	return func(options *Options) {
		if check != nil {
			options.CancelChecks = append(options.CancelChecks, check)
		}
	}
}

// WithContext cancels the run once ctx is done.
func WithContext(ctx context.Context) Option {
	return WithCancel(func() bool { return ctx.Err() != nil })
}

// WithLogger sets the logger used for run lifecycle records.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

func newOptions(options []Option) Options {
	opts := Options{Logger: slog.Default()}
	for _, o := range options {
		o(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return opts
}

func (o Options) cancelled() bool {
	for _, check := range o.CancelChecks {
		if check() {
			return true
		}
	}
	return false
}

// Run executes A* from start to goal on grid, then marks the path.
//
// Reaching the goal yields StatusSucceeded and exhausting the frontier yields
// StatusExhausted; both return a nil error. Invalid endpoints fail with
// ErrInvalidEndpoints before the grid is touched, and a fired cancel check
// returns ErrCancelled, leaving the partial open and closed roles in place.
func Run(
	grid *Grid,
	start Cell,
	goal Cell,
	heuristic Heuristic,
	onStep StepFunc,
	options ...Option,
) (Result, error) {
	began := time.Now()
	stepper, err := NewStepper(grid, start, goal, heuristic, options...)
	if err != nil {
		recordInvalidRun()
		return Result{Status: StatusIdle}, err
	}
	logger := stepper.opts.Logger.With(slog.String("run_id", stepper.runID))
	logger.Debug("search started",
		slog.String("start", start.String()),
		slog.String("goal", goal.String()),
		slog.Int("size", grid.Size()))

	for {
		snapshot, err := stepper.Step()
		if err != nil {
			result := stepper.result()
			logger.Info("search cancelled", slog.Int("expanded", result.Expanded))
			recordRun(result, time.Since(began))
			return result, err
		}
		if snapshot.Done {
			break
		}
		if onStep != nil {
			onStep()
		}
	}

	result, err := stepper.reveal(onStep)
	if err != nil {
		logger.Error("path reconstruction failed", slog.String("error", err.Error()))
	} else {
		logger.Debug("search finished",
			slog.String("status", result.Status.String()),
			slog.Int("expanded", result.Expanded),
			slog.Float64("cost", result.Cost),
			slog.Duration("elapsed", time.Since(began)))
	}
	recordRun(result, time.Since(began))
	return result, err
}

// reveal marks the path of a succeeded run and fills in Path and Cost. Other
// statuses pass through untouched. A goal without a recorded predecessor
// moves the run to StatusFailed.
func (s *Stepper) reveal(onStep StepFunc) (Result, error) {
	result := s.result()
	if result.Status != StatusSucceeded {
		return result, nil
	}

	interior, err := Reconstruct(s.grid, s.cameFrom, s.goal, onStep)
	if err != nil {
		s.status = StatusFailed
		result.Status = StatusFailed
		return result, fmt.Errorf("reconstruct path to %v: %w", s.goal, err)
	}

	path := make([]Cell, 0, len(interior)+2)
	path = append(path, s.goal)
	path = append(path, interior...)
	path = append(path, s.start)
	internal.Reverse(path)
	result.Path = path
	result.Cost = s.GCost(s.goal)
	return result, nil
}

func (s *Stepper) result() Result {
	return Result{
		RunID:    s.runID,
		Status:   s.status,
		Expanded: len(s.order),
		Order:    s.Order(),
	}
}
