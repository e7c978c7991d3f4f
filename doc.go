// Package gridpath provides an incremental A* pathfinder over a uniform square grid.
//
// It exposes two main entry points:
//
//   - Run: search to completion, calling back after every expansion so a front end
//     can replay the exploration, then reveal the path cell by cell.
//   - Stepper: advance the search one expansion at a time to drive UIs or debugging tools.
//
// A Grid owns every cell's role. Front ends set start, goal and wall roles between
// runs; the engine only writes the open, closed and path roles, and clears them
// again at the beginning of each run.
package gridpath
