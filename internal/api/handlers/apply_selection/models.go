package apply_selection

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	selectSlot "github.com/m04kA/SMC-CourtService/internal/usecase/select_slot"
)

// ApplySelectionRequest HTTP request model
type ApplySelectionRequest struct {
	CourtID         int64   `json:"courtId"`
	Date            string  `json:"date"` // "2025-10-15"
	SelectedSlotIDs []int64 `json:"selectedSlotIds"`
	ClickedSlotID   int64   `json:"clickedSlotId"`
	Mode            string  `json:"mode"` // "append" | "range"
}

// SelectedSlotResponse HTTP модель слота в выборе
type SelectedSlotResponse struct {
	ID        int64  `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ApplySelectionResponse HTTP response model
type ApplySelectionResponse struct {
	Selection []SelectedSlotResponse `json:"selection"`
	Rejected  bool                   `json:"rejected"`
	Reason    string                 `json:"reason,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ApplySelectionRequest) ToUseCaseRequest() (*selectSlot.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &selectSlot.Request{
		CourtID:         r.CourtID,
		Date:            date,
		SelectedSlotIDs: r.SelectedSlotIDs,
		ClickedSlotID:   r.ClickedSlotID,
		Mode:            selectSlot.Mode(r.Mode),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *selectSlot.Response) *ApplySelectionResponse {
	selection := make([]SelectedSlotResponse, 0, len(resp.Selection))
	for i := range resp.Selection {
		slot := &resp.Selection[i]
		selection = append(selection, SelectedSlotResponse{
			ID:        slot.ID,
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
		})
	}

	return &ApplySelectionResponse{
		Selection: selection,
		Rejected:  resp.Rejected,
		Reason:    string(resp.Reason),
	}
}
