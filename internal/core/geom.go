// Package core provides fundamental geometry and screen-buffer types for the
// invaders platform. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Vec2 is a 2D vector in playfield coordinates.
type Vec2 struct {
	X, Y float64
}

// Bounds is the playfield rectangle, in canvas coordinates.
// Computed once at initialisation and never mutated.
type Bounds struct {
	Left, Top, Right, Bottom float64
}

// Width returns the horizontal extent of the bounds.
func (b Bounds) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the bounds.
func (b Bounds) Height() float64 {
	return b.Bottom - b.Top
}

// CenteredBounds returns a playfield of the given size centered inside a
// canvas of the given size.
func CenteredBounds(canvasW, canvasH, fieldW, fieldH float64) Bounds {
	return Bounds{
		Left:   canvasW/2 - fieldW/2,
		Top:    canvasH/2 - fieldH/2,
		Right:  canvasW/2 + fieldW/2,
		Bottom: canvasH/2 + fieldH/2,
	}
}

// PointInBox reports whether the point (px, py) lies inside the box centered
// at (cx, cy) with the given width and height. Comparisons are inclusive on
// all four edges, so boundary contact counts as a hit.
func PointInBox(px, py, cx, cy, w, h float64) bool {
	return px >= cx-w/2 && px <= cx+w/2 &&
		py >= cy-h/2 && py <= cy+h/2
}

// BoxesOverlap reports whether two center-positioned boxes overlap, testing
// half extents on each axis. Shared edges (zero-width overlap) count as
// overlap, matching PointInBox.
func BoxesOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	if ax+aw/2 < bx-bw/2 || ax-aw/2 > bx+bw/2 {
		return false
	}
	if ay+ah/2 < by-bh/2 || ay-ah/2 > by+bh/2 {
		return false
	}
	return true
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Clamp restricts an int value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
