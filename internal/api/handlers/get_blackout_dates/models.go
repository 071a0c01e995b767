package get_blackout_dates

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	blackoutDates "github.com/m04kA/SMC-CourtService/internal/usecase/blackout_dates"
)

// BlackoutDatesResponse HTTP response model
type BlackoutDatesResponse struct {
	VenueID  int64    `json:"venueId"`
	Capacity int      `json:"capacity"`
	Dates    []string `json:"dates"` // "2025-10-15", по возрастанию
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(venueID int64, fromStr, toStr string, capacity int) (*blackoutDates.Request, error) {
	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		return nil, err
	}

	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		return nil, err
	}

	return &blackoutDates.Request{
		VenueID:  venueID,
		From:     from,
		To:       to,
		Capacity: capacity,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *blackoutDates.Response) *BlackoutDatesResponse {
	dates := make([]string, 0, len(resp.Dates))
	for _, d := range resp.Dates {
		dates = append(dates, d.Format(domain.DateFormat))
	}

	return &BlackoutDatesResponse{
		VenueID:  resp.VenueID,
		Capacity: resp.Capacity,
		Dates:    dates,
	}
}
