package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/pdrpinto/gridpath/internal/solve"
)

var (
	solveCmd = &cobra.Command{
		Use:   "solve [layout.yaml]",
		Short: "Search a layout file headlessly and print the explored board",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}

	solveHeuristic string
	solvePlain     bool
	solveTrace     bool
)

func init() {
	solveCmd.Flags().StringVar(&solveHeuristic, "heuristic", "",
		"manhattan, euclidean or chebyshev (overrides the layout)")
	solveCmd.Flags().BoolVar(&solvePlain, "plain", false, "disable colour output")
	solveCmd.Flags().BoolVar(&solveTrace, "trace", false, "print the board after every step")
}

func runSolve(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	styled := !solvePlain && isatty.IsTerminal(os.Stdout.Fd())
	_, err := solve.Run(ctx, cmd.OutOrStdout(), solve.Options{
		LayoutPath:       args[0],
		Heuristic:        solveHeuristic,
		DefaultHeuristic: cfg.HeuristicKind(),
		Styled:           styled,
		Trace:            solveTrace,
		Logger:           logger,
	})
	return err
}
