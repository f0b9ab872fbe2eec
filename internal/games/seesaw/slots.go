package seesaw

import "math/rand"

// SlotRow tracks occupancy of one arm's slots.
//
// Each slot counts its occupants. While the arm holds no more pieces than
// it has slots every occupied slot has exactly one occupant. Past capacity
// a random slot is shared, and the count keeps a later Release of one
// occupant from freeing a slot that another piece still holds.
type SlotRow struct {
	occupants []int
}

// NewSlotRow creates an empty row with the given capacity.
func NewSlotRow(capacity int) *SlotRow {
	return &SlotRow{occupants: make([]int, capacity)}
}

// Cap returns the number of slots.
func (r *SlotRow) Cap() int {
	return len(r.occupants)
}

// Acquire claims the first free slot. When every slot is taken it picks a
// random slot to stack onto and reports overflow.
func (r *SlotRow) Acquire(rng *rand.Rand) (index int, overflow bool) {
	for i, n := range r.occupants {
		if n == 0 {
			r.occupants[i] = 1
			return i, false
		}
	}
	index = rng.Intn(len(r.occupants))
	r.occupants[index]++
	return index, true
}

// Release drops one occupant from the slot. Out-of-range or empty slots are ignored.
func (r *SlotRow) Release(index int) {
	if index < 0 || index >= len(r.occupants) || r.occupants[index] == 0 {
		return
	}
	r.occupants[index]--
}

// Occupied reports whether the slot holds at least one piece.
func (r *SlotRow) Occupied(index int) bool {
	return index >= 0 && index < len(r.occupants) && r.occupants[index] > 0
}

// Occupancy returns a copy of the per-slot occupied flags.
func (r *SlotRow) Occupancy() []bool {
	out := make([]bool, len(r.occupants))
	for i, n := range r.occupants {
		out[i] = n > 0
	}
	return out
}

// OccupiedCount returns how many slots hold at least one piece.
func (r *SlotRow) OccupiedCount() int {
	count := 0
	for _, n := range r.occupants {
		if n > 0 {
			count++
		}
	}
	return count
}

// Pieces returns the total number of pieces in the row, stacked ones included.
func (r *SlotRow) Pieces() int {
	total := 0
	for _, n := range r.occupants {
		total += n
	}
	return total
}
