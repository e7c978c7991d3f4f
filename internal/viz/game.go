// Package viz is the windowed front end: it edits a board with the mouse and
// replays each search one expansion per frame.
//
// Controls:
//   - left click: place start, then goal, then walls (drag to paint)
//   - right click: erase
//   - space: search with the selected heuristic
//   - H: cycle heuristic, C: clear board, R: scatter random walls
//   - escape: cancel a running search, or quit
package viz

import (
	"fmt"
	"image/color"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/internal/config"
	"github.com/pdrpinto/gridpath/internal/layout"
	"github.com/pdrpinto/gridpath/internal/replay"
)

const (
	windowTitle = "A* Pathfinding Visualization"
	hudHeight   = 36
)

var (
	backgroundColor = color.RGBA{248, 248, 255, 255}
	gridLineColor   = color.RGBA{138, 43, 226, 255}
	hudColor        = color.RGBA{20, 20, 30, 255}
	roleColors      = map[gridpath.Role]color.RGBA{
		gridpath.RoleNeutral: {245, 222, 179, 255},
		gridpath.RoleStart:   {255, 165, 0, 255},
		gridpath.RoleGoal:    {64, 224, 208, 255},
		gridpath.RoleWall:    {20, 20, 20, 255},
		gridpath.RoleOpen:    {50, 205, 50, 255},
		gridpath.RoleClosed:  {220, 20, 60, 255},
		gridpath.RolePath:    {128, 0, 128, 255},
	}
)

// Game implements ebiten.Game over a single board.
type Game struct {
	cfg      config.Config
	logger   *slog.Logger
	rng      *rand.Rand
	grid     *gridpath.Grid
	kind     gridpath.HeuristicKind
	cellSize int
	session  *replay.Session
	status   string
}

// New builds an empty board from cfg.
func New(cfg config.Config, logger *slog.Logger) (*Game, error) {
	grid, err := gridpath.NewGrid(cfg.GridSize)
	if err != nil {
		return nil, err
	}
	seed := uint64(time.Now().UnixNano())
	return &Game{
		cfg:      cfg,
		logger:   logger,
		rng:      rand.New(rand.NewPCG(seed, seed>>1)),
		grid:     grid,
		kind:     cfg.HeuristicKind(),
		cellSize: cfg.WindowWidth / cfg.GridSize,
		status:   "place start and goal, then press space",
	}, nil
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.Config, logger *slog.Logger) error {
	game, err := New(cfg, logger)
	if err != nil {
		return err
	}
	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(windowTitle)
	logger.Info("visualizer started",
		slog.Int("grid_size", cfg.GridSize),
		slog.String("heuristic", game.kind.String()))
	return ebiten.RunGame(game)
}

func (g *Game) Update() error {
	if g.session != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.session.Cancel()
		}
		for range g.cfg.StepsPerFrame {
			if !g.session.Advance() {
				g.finishSearch()
				break
			}
		}
		return nil
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.startSearch()
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		g.kind = g.kind.Next()
		g.status = "heuristic: " + g.kind.String()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.grid.ClearAll()
		g.status = "board cleared"
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.grid.ResetSearchRoles()
		placed := layout.ScatterWalls(g.grid, g.rng, layout.WallOptions{
			Clusters: g.cfg.Walls.Clusters,
			Steps:    g.cfg.Walls.Steps,
			Density:  g.cfg.Walls.Density,
		})
		g.status = fmt.Sprintf("scattered %d walls", placed)
	}

	g.handleMouse()
	return nil
}

func (g *Game) handleMouse() {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	cell, ok := g.cellAt(ebiten.CursorPosition())
	if !ok {
		return
	}
	if right {
		g.grid.Clear(cell)
		return
	}
	g.edit(cell)
}

// edit applies a left click: start first, then goal, then walls.
func (g *Game) edit(cell gridpath.Cell) {
	role := g.grid.Role(cell)
	if role.IsEndpoint() || role == gridpath.RoleWall {
		return
	}
	if _, ok := g.grid.Start(); !ok {
		g.grid.SetRole(cell, gridpath.RoleStart)
		return
	}
	if _, ok := g.grid.Goal(); !ok {
		g.grid.SetRole(cell, gridpath.RoleGoal)
		return
	}
	g.grid.SetRole(cell, gridpath.RoleWall)
}

func (g *Game) cellAt(x, y int) (gridpath.Cell, bool) {
	if x < 0 || y < 0 || g.cellSize == 0 {
		return gridpath.Cell{}, false
	}
	cell := gridpath.Cell{Row: y / g.cellSize, Col: x / g.cellSize}
	return cell, g.grid.InBounds(cell)
}

func (g *Game) startSearch() {
	start, okStart := g.grid.Start()
	goal, okGoal := g.grid.Goal()
	if !okStart || !okGoal {
		g.status = "place both start and goal first"
		return
	}

	grid, heuristic, logger := g.grid, g.kind.Func(), g.logger
	g.session = replay.Start(func(onStep gridpath.StepFunc, cancelled func() bool) (gridpath.Result, error) {
		return gridpath.Run(grid, start, goal, heuristic, onStep,
			gridpath.WithCancel(cancelled),
			gridpath.WithLogger(logger))
	})
	g.status = "searching with " + g.kind.String() + " (esc cancels)"
}

func (g *Game) finishSearch() {
	outcome, _ := g.session.Outcome()
	g.session = nil

	result := outcome.Result
	switch {
	case outcome.Err != nil:
		g.status = outcome.Err.Error()
	case result.Status == gridpath.StatusSucceeded:
		g.status = fmt.Sprintf("path found: cost %.0f, %d expanded", result.Cost, result.Expanded)
	default:
		g.status = fmt.Sprintf("no path found, %d expanded", result.Expanded)
	}
	g.logger.Info("search finished",
		slog.String("run_id", result.RunID),
		slog.String("status", result.Status.String()),
		slog.Int("expanded", result.Expanded),
		slog.Float64("cost", result.Cost))
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	size := g.grid.Size()
	cs := float32(g.cellSize)
	for i := 0; i < size*size; i++ {
		cell := g.grid.CellAt(i)
		x, y := float32(cell.Col)*cs, float32(cell.Row)*cs
		vector.DrawFilledRect(screen, x, y, cs, cs, roleColors[g.grid.Role(cell)], false)
	}

	extent := float32(size) * cs
	for i := 0; i <= size; i++ {
		p := float32(i) * cs
		vector.StrokeLine(screen, 0, p, extent, p, 1, gridLineColor, false)
		vector.StrokeLine(screen, p, 0, p, extent, 1, gridLineColor, false)
	}

	hudY := int(extent) + 4
	vector.DrawFilledRect(screen, 0, extent+1, extent, hudHeight-1, hudColor, false)
	ebitenutil.DebugPrintAt(screen, g.status, 4, hudY)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("[%s] space: run  h: heuristic  r: walls  c: clear  esc: cancel/quit", g.kind), 4, hudY+16)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	side := g.cellSize * g.grid.Size()
	return side, side + hudHeight
}
