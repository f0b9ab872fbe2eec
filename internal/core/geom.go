// Package core holds the terminal-independent building blocks games draw
// with: runtime settings, input frames, the cell screen and cell geometry.
// It does not import Bubble Tea.
package core

// Rect is a block of screen cells, such as the cells a label covers.
type Rect struct {
	X, Y int // Top-left cell
	W, H int
}

// NewRect creates a rectangle at (x, y) that is w cells wide and h tall.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether the cell (x, y) is covered.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp limits v to [lo, hi]. When the range is empty lo wins.
func Clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// ClampF limits v to [lo, hi].
func ClampF(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}

// Round rounds half away from zero to the nearest cell.
func Round(val float64) int {
	if val < 0 {
		return -int(-val + 0.5)
	}
	return int(val + 0.5)
}
