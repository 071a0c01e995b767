package get_available_dates

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	getAvailableDates "github.com/m04kA/SMC-CourtService/internal/usecase/get_available_dates"
)

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	CourtID int64    `json:"courtId"`
	Dates   []string `json:"dates"` // "2025-10-15", по возрастанию
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(courtID int64, fromStr, toStr string) (*getAvailableDates.Request, error) {
	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		return nil, err
	}

	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableDates.Request{
		CourtID: courtID,
		From:    from,
		To:      to,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDates.Response) *AvailableDatesResponse {
	dates := make([]string, 0, len(resp.Dates))
	for _, d := range resp.Dates {
		dates = append(dates, d.Format(domain.DateFormat))
	}

	return &AvailableDatesResponse{
		CourtID: resp.CourtID,
		Dates:   dates,
	}
}
