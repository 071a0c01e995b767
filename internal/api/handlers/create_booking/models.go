package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	createBooking "github.com/m04kA/SMC-CourtService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CourtID int64   `json:"courtId"`
	SlotIDs []int64 `json:"slotIds"`
	Notes   *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64   `json:"id"`
	Reference  string  `json:"reference"`
	UserID     int64   `json:"userId"`
	VenueID    int64   `json:"venueId"`
	CourtID    int64   `json:"courtId"`
	Date       string  `json:"date"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	SlotCount  int     `json:"slotCount"`
	HourlyRate float64 `json:"hourlyRate"`
	TotalPrice float64 `json:"totalPrice"`
	PeakRate   bool    `json:"peakRate"`
	Status     string  `json:"status"`
	Notes      *string `json:"notes,omitempty"`
	CreatedAt  string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// userID берется из контекста аутентификации, а не из тела запроса
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) *createBooking.Request {
	return &createBooking.Request{
		UserID:  userID,
		CourtID: r.CourtID,
		SlotIDs: r.SlotIDs,
		Notes:   r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:         resp.ID,
		Reference:  resp.Reference,
		UserID:     resp.UserID,
		VenueID:    resp.VenueID,
		CourtID:    resp.CourtID,
		Date:       resp.Date.Format(domain.DateFormat),
		StartTime:  resp.StartTime.String(),
		EndTime:    resp.EndTime.String(),
		SlotCount:  resp.SlotCount,
		HourlyRate: resp.HourlyRate,
		TotalPrice: resp.TotalPrice,
		PeakRate:   resp.PeakRate,
		Status:     resp.Status,
		Notes:      resp.Notes,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}
}
