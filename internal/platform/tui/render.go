package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pushbox/internal/core"
	"github.com/vovakirdan/pushbox/internal/sokoban"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color are rendered as one run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}

// cellWidth is the number of screen columns per board cell. Two columns
// keep the board roughly square in most terminal fonts.
const cellWidth = 2

type glyph struct {
	text  string
	color core.Color
}

var boardGlyphs = map[sokoban.Cell]glyph{
	sokoban.Wall:           {"▓▓", core.ColorGray},
	sokoban.Floor:          {"  ", core.ColorDefault},
	sokoban.Box:            {"[]", core.ColorOrange},
	sokoban.Target:         {"··", core.ColorBrightRed},
	sokoban.Player:         {"<>", core.ColorBrightCyan},
	sokoban.BoxOnTarget:    {"[]", core.ColorBrightGreen},
	sokoban.PlayerOnTarget: {"<>", core.ColorBrightMagenta},
}

// drawBoard draws the grid with its top-left corner at (x0, y0).
// Cells past the end of a short row are left blank.
func drawBoard(dst *core.Screen, g sokoban.Grid, x0, y0 int) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.RowLen(y); x++ {
			gl := boardGlyphs[g.At(sokoban.P(x, y))]
			dst.DrawTextColored(x0+x*cellWidth, y0+y, gl.text, gl.color)
		}
	}
}

// boardRect returns where a grid is drawn inside area.
func boardRect(area core.Rect, g sokoban.Grid) core.Rect {
	return area.Centered(g.Width()*cellWidth, g.Height())
}

// screenToGrid converts a screen position to a grid position inside board.
func screenToGrid(board core.Rect, x, y int) (sokoban.Pos, bool) {
	if !board.Contains(x, y) {
		return sokoban.Pos{}, false
	}
	return sokoban.P((x-board.X)/cellWidth, y-board.Y), true
}
