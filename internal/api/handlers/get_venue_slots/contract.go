package get_venue_slots

import (
	"context"

	venueAvailability "github.com/m04kA/SMC-CourtService/internal/usecase/venue_availability"
)

type VenueAvailabilityUseCase interface {
	Execute(ctx context.Context, req *venueAvailability.Request) (*venueAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
