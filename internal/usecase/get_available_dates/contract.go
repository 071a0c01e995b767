package get_available_dates

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// GetByCourtAndDateRange получает все слоты корта за период (включительно)
	GetByCourtAndDateRange(ctx context.Context, courtID int64, from, to time.Time) ([]domain.Slot, error)
}

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
