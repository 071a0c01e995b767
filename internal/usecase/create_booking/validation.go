package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// validateRequest проверяет корректность входных данных
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}
	if len(req.SlotIDs) == 0 {
		return fmt.Errorf("%w: at least one slot is required", ErrInvalidInput)
	}
	if len(req.SlotIDs) > domain.MaxSelectionSlots {
		return fmt.Errorf("%w: at most %d slots per booking", ErrInvalidInput, domain.MaxSelectionSlots)
	}
	seen := make(map[int64]struct{}, len(req.SlotIDs))
	for _, id := range req.SlotIDs {
		if id <= 0 {
			return fmt.Errorf("%w: slot id must be positive", ErrInvalidInput)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: duplicate slot id %d", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// validateBlock проверяет, что заблокированные слоты образуют валидный
// непрерывный блок одного корта на одну дату и все свободны
// Слоты должны быть отсортированы по времени начала
func validateBlock(slots []domain.Slot, courtID int64, expected int) error {
	if len(slots) != expected {
		return ErrSlotNotFound
	}
	first := &slots[0]
	for i := range slots {
		s := &slots[i]
		if s.CourtID != courtID {
			return fmt.Errorf("%w: slot %d belongs to another court", ErrInvalidInput, s.ID)
		}
		if !s.SameDate(first) {
			return fmt.Errorf("%w: slots span multiple dates", ErrNotContiguous)
		}
		if !s.IsAvailable() {
			return ErrSlotNotAvailable
		}
	}
	if !domain.SelectionRange(slots).IsContiguous() {
		return ErrNotContiguous
	}
	return nil
}

// validateLeadTime проверяет, что начало блока строго позже now + leadTime
// Ограничение действует только для бронирований на текущий день
func validateLeadTime(first *domain.Slot, now time.Time, leadTimeHours int) error {
	y1, m1, d1 := first.Date.Date()
	y2, m2, d2 := now.Date()
	if y1 != y2 || m1 != m2 || d1 != d2 {
		return nil
	}
	start, err := first.StartTime.At(first.Date)
	if err != nil {
		return fmt.Errorf("%w: malformed slot start time: %v", ErrInternal, err)
	}
	cutoff := now.Add(time.Duration(leadTimeHours) * time.Hour)
	if !start.After(cutoff) {
		return ErrTooLateToBook
	}
	return nil
}
