package get_day_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	courtsRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/courts"
)

// UseCase use case для получения слотов корта на дату с учетом lead time
type UseCase struct {
	slotRepo      SlotRepository
	courtRepo     CourtRepository
	timeProvider  TimeProvider
	leadTimeHours int
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
// leadTimeHours приходит из конфигурации сервиса, а не из констант в коде
func NewUseCase(slotRepo SlotRepository, courtRepo CourtRepository, leadTimeHours int, logger Logger) *UseCase {
	return &UseCase{
		slotRepo:      slotRepo,
		courtRepo:     courtRepo,
		timeProvider:  &RealTimeProvider{},
		leadTimeHours: leadTimeHours,
		logger:        logger,
	}
}

// Execute выполняет use case получения слотов на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySlots: court=%d, date=%s", req.CourtID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDaySlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем существование корта
	if _, err := uc.courtRepo.GetByID(ctx, req.CourtID); err != nil {
		if errors.Is(err, courtsRepo.ErrCourtNotFound) {
			uc.logger.Warn("GetDaySlots: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetDaySlots: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 4. Получаем слоты корта на дату
	slots, err := uc.slotRepo.GetByCourtAndDate(ctx, req.CourtID, req.Date)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to get slots for court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}

	// 5. Фильтруем по дате и lead time, сортируем по времени начала
	filtered := filterSlotsForDate(slots, req.Date, now, uc.leadTimeHours)

	uc.logger.Info("GetDaySlots: court=%d, date=%s: %d of %d slots selectable",
		req.CourtID, req.Date.Format(domain.DateFormat), len(filtered), len(slots))

	return &Response{
		CourtID: req.CourtID,
		Date:    req.Date,
		Slots:   filtered,
	}, nil
}

func validateRequest(req *Request) error {
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
