package layout

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridpath"
)

func TestParse_Board(t *testing.T) {
	doc := []byte(`
heuristic: chebyshev
rows:
  - "S . . #"
  - ". # . ."
  - ". # . ."
  - ". . . G"
`)
	board, err := Parse(doc)
	require.NoError(t, err)

	assert.Equal(t, 4, board.Grid.Size())
	assert.Equal(t, gridpath.Cell{Row: 0, Col: 0}, board.Start)
	assert.Equal(t, gridpath.Cell{Row: 3, Col: 3}, board.Goal)
	assert.Equal(t, 3, board.Grid.Count(gridpath.RoleWall))
	require.NotNil(t, board.Heuristic)
	assert.Equal(t, gridpath.KindChebyshev, *board.Heuristic)

	result, err := gridpath.Run(board.Grid, board.Start, board.Goal, board.Heuristic.Func(), nil)
	require.NoError(t, err)
	assert.Equal(t, gridpath.StatusSucceeded, result.Status)
	assert.Equal(t, 6.0, result.Cost)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want error
	}{
		{"empty", nil, ErrEmpty},
		{"ragged", []string{"S.", "G"}, ErrNotSquare},
		{"unknown glyph", []string{"S?", ".G"}, ErrUnknownGlyph},
		{"no start", []string{"..", ".G"}, ErrMissingStart},
		{"no goal", []string{"S.", ".."}, ErrMissingGoal},
		{"two starts", []string{"SS", ".G"}, ErrDuplicateCell},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRows(tt.rows)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParse_UnknownHeuristic(t *testing.T) {
	_, err := Parse([]byte("heuristic: octile\nrows: [\"SG\", \"..\"]\n"))
	assert.ErrorIs(t, err, gridpath.ErrUnknownHeuristic)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows:\n  - \"S#G\"\n  - \"...\"\n  - \"...\"\n"), 0o600))

	board, err := Load(path)
	require.NoError(t, err)
	assert.Nil(t, board.Heuristic)
	assert.Equal(t, gridpath.Cell{Row: 0, Col: 2}, board.Goal)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestScatterWalls(t *testing.T) {
	g, err := gridpath.NewGrid(20)
	require.NoError(t, err)
	g.SetRole(gridpath.Cell{Row: 0, Col: 0}, gridpath.RoleStart)
	g.SetRole(gridpath.Cell{Row: 19, Col: 19}, gridpath.RoleGoal)

	rng := rand.New(rand.NewPCG(1, 2))
	placed := ScatterWalls(g, rng, WallOptions{Clusters: 6, Steps: 150, Density: 0.5})

	assert.Positive(t, placed)
	assert.Equal(t, placed, g.Count(gridpath.RoleWall))
	assert.Equal(t, gridpath.RoleStart, g.Role(gridpath.Cell{Row: 0, Col: 0}))
	assert.Equal(t, gridpath.RoleGoal, g.Role(gridpath.Cell{Row: 19, Col: 19}))
}

func TestScatterWalls_ZeroDensity(t *testing.T) {
	g, err := gridpath.NewGrid(10)
	require.NoError(t, err)
	placed := ScatterWalls(g, rand.New(rand.NewPCG(3, 4)), WallOptions{Clusters: 4, Steps: 50})
	assert.Zero(t, placed)
}
