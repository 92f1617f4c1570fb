package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickbreak/internal/core"
)

// Palette maps screen colors to terminal styles. Colors missing from the
// palette render unstyled.
type Palette map[core.Color]lipgloss.Style

func fg(ansi string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ansi))
}

// DefaultPalette uses the 16 ANSI colors so the terminal theme decides the
// actual shades. Gray is from the 256-color ramp.
var DefaultPalette = Palette{
	core.ColorRed:          fg("1"),
	core.ColorGreen:        fg("2"),
	core.ColorYellow:       fg("3"),
	core.ColorBlue:         fg("4"),
	core.ColorMagenta:      fg("5"),
	core.ColorCyan:         fg("6"),
	core.ColorWhite:        fg("7"),
	core.ColorBrightRed:    fg("9"),
	core.ColorBrightGreen:  fg("10"),
	core.ColorBrightYellow: fg("11"),
	core.ColorBrightBlue:   fg("12"),
	core.ColorGray:         fg("245"),
}

// Render turns a screen buffer into terminal output. Each row is split into
// runs of one color so a styled run costs a single escape sequence.
func (p Palette) Render(s *core.Screen) string {
	rows := make([]string, s.Height())
	var run strings.Builder

	for y := range rows {
		var row strings.Builder
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width() && s.GetCell(x, y).Color == color; x++ {
				run.WriteRune(s.GetCell(x, y).Rune)
			}

			style, ok := p[color]
			if !ok || color == core.ColorDefault {
				row.WriteString(run.String())
				continue
			}
			row.WriteString(style.Render(run.String()))
		}
		rows[y] = row.String()
	}
	return strings.Join(rows, "\n")
}

// RenderScreen renders s with the default palette.
func RenderScreen(s *core.Screen) string {
	return DefaultPalette.Render(s)
}
