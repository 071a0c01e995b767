package apply_selection

import (
	"context"

	selectSlot "github.com/m04kA/SMC-CourtService/internal/usecase/select_slot"
)

type SelectSlotUseCase interface {
	Execute(ctx context.Context, req *selectSlot.Request) (*selectSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
