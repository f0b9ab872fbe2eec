package seesaw

import "fmt"

// Side identifies one arm of the seesaw.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns "left" or "right".
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// sign is -1 for the left arm and +1 for the right arm.
func (s Side) sign() float64 {
	if s == SideLeft {
		return -1
	}
	return 1
}

// Piece is a pumpkin. Pieces spawn in their side's tray and toggle between
// the tray and a slot on the board.
type Piece struct {
	ID     int     // 1-based; left pieces first, then right
	X, Y   float64 // Center position in screen cells
	Size   int     // Visual size (label padding)
	Weight int     // Kilograms
	Side   Side
	Tray   int // Index within the side's tray, fixes the spawn position
	Placed bool

	// Placement is set while the piece sits on the board.
	Placement *Placement
}

// Placement describes where a placed piece sits relative to the pivot.
type Placement struct {
	Offset float64 // Signed distance from the pivot along the board, negative on the left
	Lift   float64 // Rows above the board while level (negative = up)
	Slot   int
}

// Label is the text drawn for the piece, padded by its size.
func (p Piece) Label() string {
	return fmt.Sprintf("(%*s%d%*s)", p.Size-1, "", p.Weight, p.Size-1, "")
}

// Width returns the label width in cells.
func (p Piece) Width() int {
	return len(p.Label())
}

// clone returns a copy that does not share the placement.
func (p Piece) clone() Piece {
	if p.Placement != nil {
		pl := *p.Placement
		p.Placement = &pl
	}
	return p
}
