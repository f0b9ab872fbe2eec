package seesaw

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Minimum terminal size the board fits into.
const (
	MinWidth  = 60
	MinHeight = 22
)

const (
	// Terminal cells are roughly twice as tall as wide.
	cellAspect = 0.5

	// The lower end of the board touches the ground at this tilt.
	groundAngle = 30.0
	pivotHeight = 3.0

	trayTop     = 4
	trayColumns = 3
	trayColStep = 9
	trayRowStep = 2
	trayMargin  = 6

	maxHalfLength = 36.0
)

// Layout holds the screen geometry of the board and trays.
type Layout struct {
	Width, Height  int
	PivotX, PivotY float64
	HalfLength     float64 // Distance from pivot to either end of the board, in cells

	// VScale squashes the board's vertical swing so a long board fits
	// between the trays and the ground.
	VScale float64
}

// NewLayout derives the geometry for a screen of the given size.
func NewLayout(width, height int) Layout {
	half := math.Max(4, math.Min(float64(width)/2-8, maxHalfLength))
	drop := half * math.Sin(mgl64.DegToRad(groundAngle))
	return Layout{
		Width:      width,
		Height:     height,
		PivotX:     float64(width / 2),
		PivotY:     float64(height) - 6,
		HalfLength: half,
		VScale:     math.Min(cellAspect, pivotHeight/drop),
	}
}

// GroundY is the row the pivot stands on.
func (l Layout) GroundY() int {
	return int(l.PivotY + pivotHeight)
}

// TooSmall reports whether the screen cannot fit the board.
func (l Layout) TooSmall() bool {
	return l.Width < MinWidth || l.Height < MinHeight
}

// SlotOffset returns the signed distance from the pivot of a slot. Slot 0 is
// nearest the end of the board.
func (l Layout) SlotOffset(side Side, slot int) float64 {
	L := l.HalfLength
	return side.sign() * (L*0.85 - float64(slot)*L*0.1)
}

// SlotLift returns the rows above the board for a slot; odd slots sit
// higher so neighbours do not overlap.
func SlotLift(slot int) float64 {
	return -2 - float64(slot%2)
}

// Spawn returns the tray position for the n-th piece of a side. The left
// tray fills from the left edge, the right tray mirrors it.
func (l Layout) Spawn(side Side, n int) (x, y float64) {
	col := n % trayColumns
	row := n / trayColumns
	y = float64(trayTop + row*trayRowStep)
	if side == SideLeft {
		return float64(trayMargin + col*trayColStep), y
	}
	return float64(l.Width - 1 - trayMargin - col*trayColStep), y
}

// rotation returns the board rotation for a tilt angle. Screen y grows
// downward, so the angle is negated to make a positive (left heavy) tilt
// drop the left end.
func rotation(angle float64) mgl64.Mat2 {
	return mgl64.Rotate2D(-mgl64.DegToRad(angle))
}

// Project maps a point on the board (offset from the pivot) to screen cells
// for the given tilt, then raises it by lift rows. Pieces stay upright.
func (l Layout) Project(angle, offset, lift float64) (x, y float64) {
	v := rotation(angle).Mul2x1(mgl64.Vec2{offset, 0})
	return l.PivotX + v.X(), l.PivotY + v.Y()*l.VScale + lift
}

// Slope returns the rows the board climbs or falls per column.
func (l Layout) Slope(angle float64) float64 {
	return math.Tan(-mgl64.DegToRad(angle)) * l.VScale
}

// End returns the screen position of one end of the board.
func (l Layout) End(angle float64, side Side) (x, y float64) {
	return l.Project(angle, side.sign()*l.HalfLength, 0)
}
