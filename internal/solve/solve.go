// Package solve runs a search over a layout file without a window and prints
// the explored board.
package solve

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/internal/layout"
	"github.com/pdrpinto/gridpath/internal/render"
)

// Options configures one headless run.
type Options struct {
	LayoutPath string

	// Heuristic overrides both the layout's and the default heuristic when set.
	Heuristic string

	// DefaultHeuristic applies when neither Heuristic nor the layout names one.
	DefaultHeuristic gridpath.HeuristicKind

	// Styled colours the output with terminal escape sequences.
	Styled bool

	// Trace prints the board after every step callback.
	Trace bool

	Logger *slog.Logger
}

// Report summarises a headless run.
type Report struct {
	Heuristic gridpath.HeuristicKind
	Result    gridpath.Result
}

// Run loads the layout, searches it and writes the final board and a summary to w.
// An exhausted search is reported, not returned as an error.
func Run(ctx context.Context, w io.Writer, opts Options) (Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	board, err := layout.Load(opts.LayoutPath)
	if err != nil {
		return Report{}, err
	}

	kind, err := pickHeuristic(opts, board)
	if err != nil {
		return Report{}, err
	}
	report := Report{Heuristic: kind}

	renderer := render.Renderer{Styled: opts.Styled}
	var onStep gridpath.StepFunc
	if opts.Trace {
		step := 0
		onStep = func() {
			step++
			fmt.Fprintf(w, "step %d\n%s\n", step, renderer.Grid(board.Grid))
		}
	}

	result, err := gridpath.Run(board.Grid, board.Start, board.Goal, kind.Func(), onStep,
		gridpath.WithContext(ctx),
		gridpath.WithLogger(logger))
	report.Result = result
	if err != nil {
		return report, fmt.Errorf("search %s: %w", opts.LayoutPath, err)
	}

	fmt.Fprint(w, renderer.Grid(board.Grid))
	fmt.Fprintln(w, renderer.Legend())
	fmt.Fprintln(w, Summary(report))
	logger.Info("search finished",
		slog.String("run_id", result.RunID),
		slog.String("layout", opts.LayoutPath),
		slog.String("heuristic", kind.String()),
		slog.String("status", result.Status.String()),
		slog.Int("expanded", result.Expanded))
	return report, nil
}

func pickHeuristic(opts Options, board *layout.Board) (gridpath.HeuristicKind, error) {
	if opts.Heuristic != "" {
		return gridpath.ParseHeuristic(opts.Heuristic)
	}
	if board.Heuristic != nil {
		return *board.Heuristic, nil
	}
	return opts.DefaultHeuristic, nil
}

// Summary is the one-line outcome printed under the board.
func Summary(r Report) string {
	if r.Result.Status != gridpath.StatusSucceeded {
		return fmt.Sprintf("no path found (%s, %d expanded)", r.Heuristic, r.Result.Expanded)
	}
	return fmt.Sprintf("path found: cost %g, %d cells, %d expanded (%s)",
		r.Result.Cost, len(r.Result.Path), r.Result.Expanded, r.Heuristic)
}
