package get_available_dates

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	courtsRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/courts"
)

// UseCase use case для построения календаря доступных дат корта
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

// Execute выполняет use case получения доступных дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDates: court=%d, from=%s, to=%s",
		req.CourtID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableDates: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование корта
	if _, err := uc.courtRepo.GetByID(ctx, req.CourtID); err != nil {
		if errors.Is(err, courtsRepo.ErrCourtNotFound) {
			uc.logger.Warn("GetAvailableDates: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetAvailableDates: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 3. Получаем слоты корта за период
	slots, err := uc.slotRepo.GetByCourtAndDateRange(ctx, req.CourtID, req.From, req.To)
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to get slots for court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}

	// 4. Выбираем даты, на которые есть хотя бы один свободный слот
	dates := availableDates(slots)

	uc.logger.Info("GetAvailableDates: court=%d has %d available dates in range", req.CourtID, len(dates))

	return &Response{
		CourtID: req.CourtID,
		Dates:   dates,
	}, nil
}

func validateRequest(req *Request) error {
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}
	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: date range is required", ErrInvalidInput)
	}
	if req.To.Before(req.From) {
		return fmt.Errorf("%w: range end is before range start", ErrInvalidInput)
	}
	return nil
}
