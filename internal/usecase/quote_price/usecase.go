package quote_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	courtsRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/courts"
)

// UseCase use case для расчета стоимости выбранного блока слотов
type UseCase struct {
	slotRepo  SlotRepository
	courtRepo CourtRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, courtRepo CourtRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo:  slotRepo,
		courtRepo: courtRepo,
		logger:    logger,
	}
}

// Execute выполняет use case расчета стоимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuotePrice: court=%d, date=%s, slots=%d",
		req.CourtID, req.Date.Format(domain.DateFormat), len(req.SlotIDs))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuotePrice: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем корт с ценовым профилем
	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtsRepo.ErrCourtNotFound) {
			uc.logger.Warn("QuotePrice: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("QuotePrice: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 3. Восстанавливаем выбор из слотов даты
	daySlots, err := uc.slotRepo.GetByCourtAndDate(ctx, req.CourtID, req.Date)
	if err != nil {
		uc.logger.Error("QuotePrice: failed to get slots for court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}

	byID := make(map[int64]domain.Slot, len(daySlots))
	for i := range daySlots {
		byID[daySlots[i].ID] = daySlots[i]
	}

	selection := make(domain.SelectionRange, 0, len(req.SlotIDs))
	for _, id := range req.SlotIDs {
		slot, ok := byID[id]
		if !ok {
			uc.logger.Warn("QuotePrice: slot id=%d not found on date", id)
			return nil, fmt.Errorf("%w: slot %d", ErrSlotNotFound, id)
		}
		selection = append(selection, slot)
	}

	// 4. Выбор обязан быть непрерывным блоком
	domain.SortSlotsByStart(selection)
	if !selection.IsContiguous() {
		uc.logger.Warn("QuotePrice: selection is not contiguous")
		return nil, ErrInvalidSelection
	}

	// 5. Считаем стоимость по ставке первого слота
	quote := computeQuote(selection, court.Profile)

	if quote.DefaultsApplied {
		uc.logger.Info("QuotePrice: default pricing profile values applied for court=%d", req.CourtID)
	}
	uc.logger.Info("QuotePrice: court=%d, slots=%d, rate=%.2f (peak=%t), total=%.2f",
		req.CourtID, quote.SlotCount, quote.HourlyRate, quote.Peak, quote.Total)

	return &Response{
		CourtID:         req.CourtID,
		SlotCount:       quote.SlotCount,
		HourlyRate:      quote.HourlyRate,
		Peak:            quote.Peak,
		Total:           quote.Total,
		DefaultsApplied: quote.DefaultsApplied,
	}, nil
}

func validateRequest(req *Request) error {
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if len(req.SlotIDs) == 0 {
		return fmt.Errorf("%w: at least one slot is required", ErrInvalidInput)
	}
	if len(req.SlotIDs) > domain.MaxSelectionSlots {
		return fmt.Errorf("%w: selection exceeds %d slots", ErrInvalidInput, domain.MaxSelectionSlots)
	}
	return nil
}
