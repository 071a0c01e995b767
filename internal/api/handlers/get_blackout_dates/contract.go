package get_blackout_dates

import (
	"context"

	blackoutDates "github.com/m04kA/SMC-CourtService/internal/usecase/blackout_dates"
)

type BlackoutDatesUseCase interface {
	Execute(ctx context.Context, req *blackoutDates.Request) (*blackoutDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
