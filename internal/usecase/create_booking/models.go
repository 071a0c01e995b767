package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// Request входные параметры создания бронирования
type Request struct {
	UserID  int64
	CourtID int64
	SlotIDs []int64
	Notes   *string
}

// Response результат создания бронирования
type Response struct {
	ID         int64            `json:"id"`
	Reference  string           `json:"reference"`
	UserID     int64            `json:"userId"`
	VenueID    int64            `json:"venueId"`
	CourtID    int64            `json:"courtId"`
	Date       time.Time        `json:"date"`
	StartTime  types.TimeString `json:"startTime"`
	EndTime    types.TimeString `json:"endTime"`
	SlotCount  int              `json:"slotCount"`
	HourlyRate float64          `json:"hourlyRate"`
	TotalPrice float64          `json:"totalPrice"`
	PeakRate   bool             `json:"peakRate"`
	Status     string           `json:"status"`
	Notes      *string          `json:"notes,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
}
