package blackout_dates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	courtsRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/courts"
	"github.com/m04kA/SMC-CourtService/pkg/cache"
)

// UseCase use case для расчета blackout дат площадки
//
// Результат кешируется в Redis, но ключ кеша включает ВСЕ параметры
// пересчета (площадка, период, вместимость) - смена любого из них
// гарантированно приводит к новому ключу, устаревший набор дат по
// другим параметрам отдан быть не может
type UseCase struct {
	slotRepo         SlotRepository
	courtRepo        CourtRepository
	cache            Cache
	cacheTTL         time.Duration
	timeProvider     TimeProvider
	leadTimeHours    int
	perCourtCapacity int
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
// cache может быть nil - тогда каждый запрос считается заново
func NewUseCase(
	slotRepo SlotRepository,
	courtRepo CourtRepository,
	cacheClient Cache,
	cacheTTL time.Duration,
	leadTimeHours int,
	perCourtCapacity int,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:         slotRepo,
		courtRepo:        courtRepo,
		cache:            cacheClient,
		cacheTTL:         cacheTTL,
		timeProvider:     &RealTimeProvider{},
		leadTimeHours:    leadTimeHours,
		perCourtCapacity: perCourtCapacity,
		logger:           logger,
	}
}

// Execute выполняет use case расчета blackout дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BlackoutDates: venue=%d, from=%s, to=%s, capacity=%d",
		req.VenueID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat), req.Capacity)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BlackoutDates: validation failed: %v", err)
		return nil, err
	}

	// 2. Пробуем кеш
	key := cacheKey(req)
	if uc.cache != nil {
		var cached []string
		err := uc.cache.Get(ctx, key, &cached)
		if err == nil {
			dates, parseErr := parseDates(cached)
			if parseErr == nil {
				uc.logger.Info("BlackoutDates: cache hit for %s (%d dates)", key, len(dates))
				return &Response{VenueID: req.VenueID, Capacity: req.Capacity, Dates: dates}, nil
			}
			uc.logger.Warn("BlackoutDates: corrupt cache entry %s: %v", key, parseErr)
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			// Недоступный кеш не роняет запрос
			uc.logger.Warn("BlackoutDates: cache get failed for %s: %v", key, err)
		}
	}

	// 3. Получаем корты площадки
	courts, err := uc.courtRepo.GetByVenue(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, courtsRepo.ErrVenueNotFound) {
			uc.logger.Warn("BlackoutDates: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("BlackoutDates: failed to get courts for venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get courts: %v", ErrInternal, err)
	}
	if len(courts) == 0 {
		// Площадка без кортов неотличима от отсутствующей
		uc.logger.Warn("BlackoutDates: venue id=%d has no courts", req.VenueID)
		return nil, ErrVenueNotFound
	}

	// 4. Получаем слоты площадки за период одним запросом
	slots, err := uc.slotRepo.GetByVenueAndDateRange(ctx, req.VenueID, req.From, req.To)
	if err != nil {
		uc.logger.Error("BlackoutDates: failed to get slots for venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}

	// 5. Считаем blackout даты
	now := uc.timeProvider.Now()
	dates := computeBlackoutDates(courts, slots, req.From, req.To, req.Capacity, uc.perCourtCapacity, now, uc.leadTimeHours)

	// 6. Кладем в кеш
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, formatDates(dates), uc.cacheTTL); err != nil {
			uc.logger.Warn("BlackoutDates: cache set failed for %s: %v", key, err)
		}
	}

	uc.logger.Info("BlackoutDates: venue=%d: %d blackout dates in range", req.VenueID, len(dates))

	return &Response{
		VenueID:  req.VenueID,
		Capacity: req.Capacity,
		Dates:    dates,
	}, nil
}

func validateRequest(req *Request) error {
	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}
	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: date range is required", ErrInvalidInput)
	}
	if req.To.Before(req.From) {
		return fmt.Errorf("%w: range end is before range start", ErrInvalidInput)
	}
	if req.To.Sub(req.From) > domain.MaxBlackoutRangeDays*24*time.Hour {
		return fmt.Errorf("%w: at most %d days", ErrRangeTooWide, domain.MaxBlackoutRangeDays)
	}
	if req.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	return nil
}

// cacheKey включает площадку, период и вместимость - все параметры,
// при смене которых набор blackout дат обязан пересчитаться
func cacheKey(req *Request) string {
	return fmt.Sprintf("blackout:v%d:%s:%s:c%d",
		req.VenueID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat), req.Capacity)
}

func formatDates(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format(domain.DateFormat)
	}
	return out
}

func parseDates(raw []string) ([]time.Time, error) {
	out := make([]time.Time, len(raw))
	for i, s := range raw {
		d, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}
