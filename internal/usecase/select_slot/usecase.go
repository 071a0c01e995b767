package select_slot

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// UseCase use case для изменения выбора слотов
//
// Сам движок выбора - чистая функция без состояния: текущий выбор приходит
// от вызывающей стороны и возвращается обратно. Мутации одной пользовательской
// сессии последовательны - каждый следующий вызов строится на результате
// предыдущего
type UseCase struct {
	slotRepo      SlotRepository
	timeProvider  TimeProvider
	leadTimeHours int
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, leadTimeHours int, logger Logger) *UseCase {
	return &UseCase{
		slotRepo:      slotRepo,
		timeProvider:  &RealTimeProvider{},
		leadTimeHours: leadTimeHours,
		logger:        logger,
	}
}

// Execute выполняет use case применения клика к выбору
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SelectSlot: court=%d, date=%s, selected=%d, clicked=%d, mode=%s",
		req.CourtID, req.Date.Format(domain.DateFormat), len(req.SelectedSlotIDs), req.ClickedSlotID, req.Mode)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SelectSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем слоты активной даты - список кандидатов для проверок
	daySlots, err := uc.slotRepo.GetByCourtAndDate(ctx, req.CourtID, req.Date)
	if err != nil {
		uc.logger.Error("SelectSlot: failed to get slots for court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}

	// 4. Применяем lead time: кандидаты - это то, что видит пользователь
	candidates := filterSelectable(daySlots, req.Date, now, uc.leadTimeHours)

	// 5. Восстанавливаем текущий выбор и кликнутый слот из списка кандидатов
	byID := make(map[int64]domain.Slot, len(candidates))
	for i := range candidates {
		byID[candidates[i].ID] = candidates[i]
	}

	selection := make(domain.SelectionRange, 0, len(req.SelectedSlotIDs))
	for _, id := range req.SelectedSlotIDs {
		slot, ok := byID[id]
		if !ok {
			// Выбранный ранее слот выпал из окна lead time или исчез -
			// базовое состояние устарело, вызывающая сторона должна
			// начать выбор заново
			uc.logger.Warn("SelectSlot: selected slot id=%d no longer selectable", id)
			return nil, fmt.Errorf("%w: selected slot %d is no longer selectable", ErrInvalidSelection, id)
		}
		selection = append(selection, slot)
	}

	domain.SortSlotsByStart(selection)
	if !selection.IsContiguous() {
		uc.logger.Warn("SelectSlot: incoming selection is not contiguous")
		return nil, ErrInvalidSelection
	}

	clicked, ok := byID[req.ClickedSlotID]
	if !ok {
		// Клик по слоту вне списка кандидатов - ожидаемый отказ,
		// а не ошибка: слот мог уйти за lead time между рендером и кликом
		uc.logger.Info("SelectSlot: clicked slot id=%d not selectable, rejecting", req.ClickedSlotID)
		return &Response{Selection: selection, Rejected: true, Reason: ReasonSlotUnknown}, nil
	}

	// 6. Применяем клик
	result := tryApply(selection, candidates, clicked, req.Mode)

	if result.Rejected {
		uc.logger.Info("SelectSlot: rejected, reason=%s", result.Reason)
	} else {
		uc.logger.Info("SelectSlot: accepted, selection size %d -> %d", len(selection), len(result.Selection))
	}

	return &Response{
		Selection: result.Selection,
		Rejected:  result.Rejected,
		Reason:    result.Reason,
	}, nil
}

func validateRequest(req *Request) error {
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.ClickedSlotID <= 0 {
		return fmt.Errorf("%w: clickedSlotID must be positive", ErrInvalidInput)
	}
	if req.Mode != ModeAppend && req.Mode != ModeRange {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, req.Mode)
	}
	if len(req.SelectedSlotIDs) > domain.MaxSelectionSlots {
		return fmt.Errorf("%w: selection exceeds %d slots", ErrInvalidInput, domain.MaxSelectionSlots)
	}
	return nil
}

// filterSelectable отбирает слоты даты, доступные для выбора с учетом
// lead time (см. get_day_slots: для сегодняшней даты слот должен начинаться
// строго позже now + leadTime)
func filterSelectable(slots []domain.Slot, date time.Time, now time.Time, leadTimeHours int) []domain.Slot {
	result := make([]domain.Slot, 0, len(slots))

	applyLeadTime := isSameDay(date, now)
	cutoff := now.Add(time.Duration(leadTimeHours) * time.Hour)

	for i := range slots {
		if !isSameDay(slots[i].Date, date) {
			continue
		}
		if applyLeadTime {
			start, err := slots[i].StartTime.At(date)
			if err != nil {
				continue
			}
			if !start.After(cutoff) {
				continue
			}
		}
		result = append(result, slots[i])
	}

	domain.SortSlotsByStart(result)

	return result
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
