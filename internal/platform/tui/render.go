package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/game"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// ScreenRenderer implements game.Renderer over a Screen buffer, scaling
// logical canvas coordinates down to terminal cells. Terminal cells are
// roughly twice as tall as wide; the independent x/y scale factors absorb
// that along with the canvas-to-cell ratio.
type ScreenRenderer struct {
	screen  *core.Screen
	canvasW float64
	canvasH float64
}

// NewScreenRenderer creates a renderer projecting a logical canvas of the
// given size onto the screen buffer.
func NewScreenRenderer(screen *core.Screen, canvasW, canvasH float64) *ScreenRenderer {
	return &ScreenRenderer{screen: screen, canvasW: canvasW, canvasH: canvasH}
}

func (r *ScreenRenderer) scale() (sx, sy float64) {
	return float64(r.screen.Width()) / r.canvasW, float64(r.screen.Height()) / r.canvasH
}

// Clear wipes the screen buffer.
func (r *ScreenRenderer) Clear() {
	r.screen.Clear()
}

// FillRect fills the projected rectangle. Rectangles never collapse below
// one cell, so small entities (rockets, bombs) stay visible at any size.
func (r *ScreenRenderer) FillRect(x, y, w, h float64, c core.Color) {
	x0, y0, cw, ch := r.project(x, y, w, h)
	r.screen.FillRect(x0, y0, cw, ch, '█', c)
}

// StrokeRect draws the projected rectangle's outline.
func (r *ScreenRenderer) StrokeRect(x, y, w, h float64, c core.Color) {
	x0, y0, cw, ch := r.project(x, y, w, h)
	r.screen.StrokeRect(x0, y0, cw, ch, c)
}

// Text draws a string anchored at the projected position.
func (r *ScreenRenderer) Text(text string, x, y float64, align game.TextAlign, c core.Color) {
	sx, sy := r.scale()
	cx := int(math.Round(x * sx))
	cy := int(math.Round(y * sy))

	switch align {
	case game.AlignCenter:
		cx -= len(text) / 2
	case game.AlignRight:
		cx -= len(text)
	}

	r.screen.DrawText(cx, cy, text, c)
}

func (r *ScreenRenderer) project(x, y, w, h float64) (cx, cy, cw, ch int) {
	sx, sy := r.scale()
	x0 := int(math.Round(x * sx))
	y0 := int(math.Round(y * sy))
	x1 := int(math.Round((x + w) * sx))
	y1 := int(math.Round((y + h) * sy))
	return x0, y0, max(x1-x0, 1), max(y1-y0, 1)
}
