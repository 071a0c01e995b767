package quote_price

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	quotePrice "github.com/m04kA/SMC-CourtService/internal/usecase/quote_price"
)

// QuotePriceRequest HTTP request model
type QuotePriceRequest struct {
	CourtID int64   `json:"courtId"`
	Date    string  `json:"date"` // "2025-10-15"
	SlotIDs []int64 `json:"slotIds"`
}

// QuotePriceResponse HTTP response model
type QuotePriceResponse struct {
	CourtID         int64   `json:"courtId"`
	SlotCount       int     `json:"slotCount"`
	HourlyRate      float64 `json:"hourlyRate"`
	Peak            bool    `json:"peak"`
	Total           float64 `json:"total"`
	DefaultsApplied bool    `json:"defaultsApplied"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuotePriceRequest) ToUseCaseRequest() (*quotePrice.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &quotePrice.Request{
		CourtID: r.CourtID,
		Date:    date,
		SlotIDs: r.SlotIDs,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quotePrice.Response) *QuotePriceResponse {
	return &QuotePriceResponse{
		CourtID:         resp.CourtID,
		SlotCount:       resp.SlotCount,
		HourlyRate:      resp.HourlyRate,
		Peak:            resp.Peak,
		Total:           resp.Total,
		DefaultsApplied: resp.DefaultsApplied,
	}
}
