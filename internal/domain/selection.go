package domain

// SelectionRange is an ordered run of slots the user has picked: all on
// one date and one court, sorted ascending by start time, with no gaps,
// duplicates or overlaps between consecutive members. The zero value is
// an empty selection.
type SelectionRange []Slot

// IsEmpty returns true if no slots are selected
func (r SelectionRange) IsEmpty() bool {
	return len(r) == 0
}

// First returns the earliest slot of the selection; the selection must
// not be empty.
func (r SelectionRange) First() *Slot {
	return &r[0]
}

// Last returns the latest slot of the selection; the selection must not
// be empty.
func (r SelectionRange) Last() *Slot {
	return &r[len(r)-1]
}

// Contains returns true if a slot with the given ID is selected
func (r SelectionRange) Contains(slotID int64) bool {
	for i := range r {
		if r[i].ID == slotID {
			return true
		}
	}
	return false
}

// IsEdge returns true if the slot with the given ID is the first or the
// last member of the selection. Removing an edge member preserves
// contiguity; removing an interior member never does.
func (r SelectionRange) IsEdge(slotID int64) bool {
	if r.IsEmpty() {
		return false
	}
	return r.First().ID == slotID || r.Last().ID == slotID
}

// IsContiguous verifies the full selection invariant: same date, same
// court, ascending order and end[i] == start[i+1] for every adjacent
// pair. An empty or single-slot selection is trivially contiguous.
func (r SelectionRange) IsContiguous() bool {
	for i := 0; i+1 < len(r); i++ {
		if !r[i].AdjacentTo(&r[i+1]) {
			return false
		}
	}
	return true
}

// TotalHours returns the summed duration of the selected slots
func (r SelectionRange) TotalHours() float64 {
	var total float64
	for i := range r {
		total += r[i].DurationHours
	}
	return total
}
