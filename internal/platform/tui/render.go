package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/koala-run/internal/core"
)

// colorStyles maps the runner palette to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:    lipgloss.NewStyle(),
	core.ColorSky:        lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	core.ColorHill:       lipgloss.NewStyle().Foreground(lipgloss.Color("65")),
	core.ColorGround:     lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorPlayer:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	core.ColorObstacle:   lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	core.ColorAntagonist: lipgloss.NewStyle().Foreground(lipgloss.Color("52")),
	core.ColorHUD:        lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorDanger:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorVictory:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[start]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
