// Command gridpath is an interactive A* pathfinding visualizer.
//
// Usage:
//
//	gridpath play                       # open the 40×40 board
//	gridpath play --size 60 --heuristic euclidean
//	gridpath solve board.yaml           # headless run over a layout file
//	gridpath solve board.yaml --trace   # print every step
//
// Settings come from --config (YAML or JSON), then GRIDPATH_* environment
// variables, then flags.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
