// Package layout reads board layouts for headless runs and scatters random walls.
//
// A layout is a YAML document:
//
//	heuristic: euclidean   # optional
//	rows:
//	  - "S..#"
//	  - ".#.."
//	  - ".#.."
//	  - "...G"
//
// Glyphs are '.' free, '#' wall, 'S' start and 'G' goal. Spaces inside a row
// are ignored. The board must be square and hold exactly one start and goal.
package layout

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/gridpath"
)

var (
	ErrEmpty         = errors.New("layout has no rows")
	ErrNotSquare     = errors.New("layout is not square")
	ErrUnknownGlyph  = errors.New("unknown glyph")
	ErrMissingStart  = errors.New("layout has no start")
	ErrMissingGoal   = errors.New("layout has no goal")
	ErrDuplicateCell = errors.New("layout has more than one start or goal")
)

// Document is the on-disk shape of a layout.
type Document struct {
	Heuristic string   `yaml:"heuristic"`
	Rows      []string `yaml:"rows"`
}

// Board is a parsed layout ready to search.
type Board struct {
	Grid      *gridpath.Grid
	Start     gridpath.Cell
	Goal      gridpath.Cell
	Heuristic *gridpath.HeuristicKind
}

// Load reads and parses the layout at path.
func Load(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	board, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse layout %s: %w", path, err)
	}
	return board, nil
}

// Parse decodes a YAML layout document.
func Parse(data []byte) (*Board, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	board, err := FromRows(doc.Rows)
	if err != nil {
		return nil, err
	}
	if doc.Heuristic != "" {
		kind, err := gridpath.ParseHeuristic(doc.Heuristic)
		if err != nil {
			return nil, err
		}
		board.Heuristic = &kind
	}
	return board, nil
}

// FromRows builds a board from glyph rows.
func FromRows(rows []string) (*Board, error) {
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	size := len(rows)
	grid, err := gridpath.NewGrid(size)
	if err != nil {
		return nil, err
	}

	var haveStart, haveGoal bool
	board := &Board{Grid: grid}
	for r, raw := range rows {
		row := strings.ReplaceAll(raw, " ", "")
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotSquare, r, len(row), size)
		}
		for c, glyph := range row {
			cell := gridpath.Cell{Row: r, Col: c}
			switch glyph {
			case '.':
			case '#':
				grid.SetRole(cell, gridpath.RoleWall)
			case 'S', 's':
				if haveStart {
					return nil, fmt.Errorf("%w: second start at %v", ErrDuplicateCell, cell)
				}
				haveStart = true
				board.Start = cell
				grid.SetRole(cell, gridpath.RoleStart)
			case 'G', 'g':
				if haveGoal {
					return nil, fmt.Errorf("%w: second goal at %v", ErrDuplicateCell, cell)
				}
				haveGoal = true
				board.Goal = cell
				grid.SetRole(cell, gridpath.RoleGoal)
			default:
				return nil, fmt.Errorf("%w %q at %v", ErrUnknownGlyph, glyph, cell)
			}
		}
	}

	if !haveStart {
		return nil, ErrMissingStart
	}
	if !haveGoal {
		return nil, ErrMissingGoal
	}
	return board, nil
}
