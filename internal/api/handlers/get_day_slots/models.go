package get_day_slots

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	getDaySlots "github.com/m04kA/SMC-CourtService/internal/usecase/get_day_slots"
)

// SlotResponse HTTP модель одного слота
type SlotResponse struct {
	ID            int64   `json:"id"`
	CourtID       int64   `json:"courtId"`
	StartTime     string  `json:"startTime"` // "10:00"
	EndTime       string  `json:"endTime"`   // "11:00"
	DurationHours float64 `json:"durationHours"`
	Status        string  `json:"status"`
}

// DaySlotsResponse HTTP response model
type DaySlotsResponse struct {
	CourtID int64          `json:"courtId"`
	Date    string         `json:"date"`
	Slots   []SlotResponse `json:"slots"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(courtID int64, dateStr string) (*getDaySlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getDaySlots.Request{
		CourtID: courtID,
		Date:    date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySlots.Response) *DaySlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for i := range resp.Slots {
		slots = append(slots, FromDomainSlot(&resp.Slots[i]))
	}

	return &DaySlotsResponse{
		CourtID: resp.CourtID,
		Date:    resp.Date.Format(domain.DateFormat),
		Slots:   slots,
	}
}

// FromDomainSlot конвертирует domain слот в HTTP модель
func FromDomainSlot(s *domain.Slot) SlotResponse {
	return SlotResponse{
		ID:            s.ID,
		CourtID:       s.CourtID,
		StartTime:     s.StartTime.String(),
		EndTime:       s.EndTime.String(),
		DurationHours: s.DurationHours,
		Status:        string(s.Status),
	}
}
