package domain

import (
	"time"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed        BookingStatus = "confirmed"
	StatusCompleted        BookingStatus = "completed"
	StatusCancelledByUser  BookingStatus = "cancelled_by_user"
	StatusCancelledByVenue BookingStatus = "cancelled_by_venue"
	StatusNoShow           BookingStatus = "no_show"
)

// Booking represents a confirmed contiguous block of court time. It is
// created from a SelectionRange at submission and keeps denormalized
// pricing data for history.
type Booking struct {
	ID        int64
	Reference string // external uuid reference handed to the client
	UserID    int64
	VenueID   int64
	CourtID   int64

	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	SlotCount  int
	HourlyRate float64
	TotalPrice float64
	PeakRate   bool // rate tier the block was billed at

	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time

	Status    BookingStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slots
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByUser &&
		b.Status != StatusCancelledByVenue &&
		b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByUser || b.Status == StatusCancelledByVenue
}

// InactiveStatuses lists statuses whose bookings free their slots again
var InactiveStatuses = []BookingStatus{
	StatusCancelledByUser,
	StatusCancelledByVenue,
	StatusNoShow,
}
