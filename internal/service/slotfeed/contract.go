package slotfeed

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// SlotSource источник слотов (репозиторий или удаленный сервис)
type SlotSource interface {
	GetByCourtAndDate(ctx context.Context, courtID int64, date time.Time) ([]domain.Slot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
