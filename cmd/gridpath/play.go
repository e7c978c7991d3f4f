package main

import (
	"github.com/spf13/cobra"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/internal/viz"
)

var (
	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Open the interactive board",
		Args:  cobra.NoArgs,
		RunE:  runPlay,
	}

	playSize      int
	playHeuristic string
	playSpeed     int
)

func init() {
	playCmd.Flags().IntVar(&playSize, "size", 0, "board side length in cells")
	playCmd.Flags().StringVar(&playHeuristic, "heuristic", "", "initial heuristic")
	playCmd.Flags().IntVar(&playSpeed, "steps-per-frame", 0, "search steps replayed per frame")
}

func runPlay(cmd *cobra.Command, args []string) error {
	settings := cfg
	if cmd.Flags().Changed("size") {
		settings.GridSize = playSize
	}
	if cmd.Flags().Changed("heuristic") {
		kind, err := gridpath.ParseHeuristic(playHeuristic)
		if err != nil {
			return err
		}
		settings.Heuristic = kind.String()
	}
	if cmd.Flags().Changed("steps-per-frame") {
		settings.StepsPerFrame = playSpeed
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	return viz.Run(settings, logger)
}
