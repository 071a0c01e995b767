package venue_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	courtsRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/courts"
)

// UseCase use case для расчета доступности площадки на дату
type UseCase struct {
	feed             SlotFeed
	courtRepo        CourtRepository
	timeProvider     TimeProvider
	leadTimeHours    int
	perCourtCapacity int
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(feed SlotFeed, courtRepo CourtRepository, leadTimeHours, perCourtCapacity int, logger Logger) *UseCase {
	return &UseCase{
		feed:             feed,
		courtRepo:        courtRepo,
		timeProvider:     &RealTimeProvider{},
		leadTimeHours:    leadTimeHours,
		perCourtCapacity: perCourtCapacity,
		logger:           logger,
	}
}

// Execute выполняет use case доступности площадки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("VenueAvailability: venue=%d, date=%s, capacity=%d",
		req.VenueID, req.Date.Format(domain.DateFormat), req.Capacity)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("VenueAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем корты площадки
	courts, err := uc.courtRepo.GetByVenue(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, courtsRepo.ErrVenueNotFound) {
			uc.logger.Warn("VenueAvailability: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("VenueAvailability: failed to get courts for venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get courts: %v", ErrInternal, err)
	}
	if len(courts) == 0 {
		// Площадка без кортов неотличима от отсутствующей
		uc.logger.Warn("VenueAvailability: venue id=%d has no courts", req.VenueID)
		return nil, ErrVenueNotFound
	}

	// 4. Веерная загрузка слотов всех кортов через фид
	courtIDs := make([]int64, len(courts))
	for i := range courts {
		courtIDs[i] = courts[i].ID
	}

	slots, err := uc.feed.LoadVenueDay(ctx, req.VenueID, req.Date, courtIDs)
	if err != nil {
		uc.logger.Error("VenueAvailability: failed to load slots for venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to load slots: %v", ErrInternal, err)
	}

	// 5. Применяем lead time к объединенному списку
	selectable := filterSelectable(slots, req.Date, now, uc.leadTimeHours)

	// 6. Строим почасовую сетку по рабочим часам опорного корта
	requiredCourts := requiredCourtCount(req.Capacity, uc.perCourtCapacity)
	reference, _ := courts[0].Profile.Normalized()
	buckets := buildHourBuckets(reference, selectable, requiredCourts)

	satisfied := canSatisfy(len(courts), uc.perCourtCapacity, req.Capacity, buckets, requiredCourts)

	uc.logger.Info("VenueAvailability: venue=%d, date=%s: %d slots, %d buckets, canSatisfy=%t",
		req.VenueID, req.Date.Format(domain.DateFormat), len(selectable), len(buckets), satisfied)

	return &Response{
		VenueID:        req.VenueID,
		Date:           req.Date,
		RequiredCourts: requiredCourts,
		CanSatisfy:     satisfied,
		Slots:          selectable,
		HourBuckets:    buckets,
	}, nil
}

func validateRequest(req *Request) error {
	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	return nil
}
