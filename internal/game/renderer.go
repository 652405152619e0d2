package game

import "github.com/vovakirdan/tui-invaders/internal/core"

// TextAlign controls horizontal anchoring of drawn text.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// Renderer is the drawing surface the simulation paints into once per draw
// pass. Coordinates are logical canvas units; rectangle positions are
// top-left corners. Implementations must not block: draw calls are
// fire-and-forget and the simulation never reads anything back.
type Renderer interface {
	Clear()
	FillRect(x, y, w, h float64, c core.Color)
	StrokeRect(x, y, w, h float64, c core.Color)
	Text(text string, x, y float64, align TextAlign, c core.Color)
}
