package domain

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// SlotStatus represents the booking state of a slot
type SlotStatus string

const (
	SlotAvailable SlotStatus = "AVAILABLE"
	SlotBooked    SlotStatus = "BOOKED"
)

// Slot represents one bookable time window for one court on one date.
// Times are venue-local wall-clock values; slots never span midnight.
type Slot struct {
	ID            int64
	CourtID       int64
	VenueID       int64
	Date          time.Time // calendar date, time part zeroed
	StartTime     types.TimeString
	EndTime       types.TimeString
	DurationHours float64
	Status        SlotStatus
}

// IsAvailable returns true if the slot can still be booked
func (s *Slot) IsAvailable() bool {
	return s.Status == SlotAvailable
}

// IsBooked returns true if the slot has been taken
func (s *Slot) IsBooked() bool {
	return s.Status == SlotBooked
}

// SameDate returns true if both slots belong to the same calendar date
func (s *Slot) SameDate(other *Slot) bool {
	y1, m1, d1 := s.Date.Date()
	y2, m2, d2 := other.Date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// AdjacentTo returns true if other starts exactly where this slot ends,
// on the same court and date. Adjacency is derived from the times, never
// from an assumed slot granularity.
func (s *Slot) AdjacentTo(other *Slot) bool {
	return s.CourtID == other.CourtID &&
		s.SameDate(other) &&
		s.EndTime.Equal(other.StartTime)
}

// SortSlotsByStart sorts slots ascending by start time in place.
// Repository order is never relied upon.
func SortSlotsByStart(slots []Slot) {
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].StartTime.IsBefore(slots[j].StartTime)
	})
}
