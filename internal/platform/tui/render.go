package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/retro-pong/internal/core"
)

// styleCache holds one lipgloss style per palette color.
var styleCache = map[core.Color]lipgloss.Style{}

// styleFor returns the style drawing cells of color c.
func styleFor(c core.Color) lipgloss.Style {
	if s, ok := styleCache[c]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if code := c.ANSI(); code != "" {
		s = s.Foreground(lipgloss.Color(code))
	}
	styleCache[c] = s
	return s
}

// Styles for text drawn outside the game screen.
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(core.ColorBrightCyan.ANSI()))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorGray.ANSI()))
	pickStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Each row is split into runs of one color so a run costs one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		runColor := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				sb.WriteString(styleFor(runColor).Render(run.String()))
				run.Reset()
				runColor = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		sb.WriteString(styleFor(runColor).Render(run.String()))
		run.Reset()
	}
	return sb.String()
}
