package blackout_dates

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// GetByVenueAndDateRange получает слоты всех кортов площадки за период
	GetByVenueAndDateRange(ctx context.Context, venueID int64, from, to time.Time) ([]domain.Slot, error)
}

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByVenue(ctx context.Context, venueID int64) ([]domain.Court, error)
}

// Cache интерфейс кеша (cache-aside поверх Redis); может быть nil
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
