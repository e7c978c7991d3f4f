// Package render draws a grid's roles as terminal text.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pdrpinto/gridpath"
)

// Glyph returns the single-character symbol for a role.
func Glyph(r gridpath.Role) string {
	switch r {
	case gridpath.RoleStart:
		return "S"
	case gridpath.RoleGoal:
		return "G"
	case gridpath.RoleWall:
		return "#"
	case gridpath.RoleOpen:
		return "o"
	case gridpath.RoleClosed:
		return "x"
	case gridpath.RolePath:
		return "*"
	default:
		return "."
	}
}

var roleStyles = map[gridpath.Role]lipgloss.Style{
	gridpath.RoleNeutral: lipgloss.NewStyle().Foreground(lipgloss.Color("#F5DEB3")),
	gridpath.RoleStart:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA500")),
	gridpath.RoleGoal:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#40E0D0")),
	gridpath.RoleWall:    lipgloss.NewStyle().Foreground(lipgloss.Color("#444444")),
	gridpath.RoleOpen:    lipgloss.NewStyle().Foreground(lipgloss.Color("#32CD32")),
	gridpath.RoleClosed:  lipgloss.NewStyle().Foreground(lipgloss.Color("#DC143C")),
	gridpath.RolePath:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8A2BE2")),
}

// Renderer turns a grid into rows of glyphs, optionally coloured.
type Renderer struct {
	Styled bool
}

// Grid renders every row of g, separated by newlines, with a trailing newline.
func (r Renderer) Grid(g *gridpath.Grid) string {
	var b strings.Builder
	size := g.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(r.cell(g.Role(gridpath.Cell{Row: row, Col: col})))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (r Renderer) cell(role gridpath.Role) string {
	glyph := Glyph(role)
	if !r.Styled {
		return glyph
	}
	return roleStyles[role].Render(glyph)
}

// Legend lists glyphs and role names on one line.
func (r Renderer) Legend() string {
	roles := []gridpath.Role{
		gridpath.RoleStart, gridpath.RoleGoal, gridpath.RoleWall,
		gridpath.RoleOpen, gridpath.RoleClosed, gridpath.RolePath,
	}
	parts := make([]string, 0, len(roles))
	for _, role := range roles {
		parts = append(parts, r.cell(role)+" "+role.String())
	}
	return strings.Join(parts, "  ")
}
