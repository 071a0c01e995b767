package domain

import "github.com/m04kA/SMC-CourtService/pkg/types"

// Default pricing values applied when a court profile field is missing.
// Documented fallback, surfaced through PricingProfile.Normalized.
const (
	DefaultPeakHourlyPrice    = 80.0
	DefaultOffPeakHourlyPrice = 50.0
)

// Default peak window applied when a court profile omits it.
const (
	DefaultPeakStartTime = types.TimeString("16:00")
	DefaultPeakEndTime   = types.TimeString("20:00")
)

// Booking policy defaults; overridable through service configuration.
const (
	DefaultLeadTimeHours    = 2 // minimum notice for same-day slots
	DefaultPerCourtCapacity = 8 // players one court can seat
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxSelectionSlots           = 12 // longest bookable contiguous block
	MaxBlackoutRangeDays        = 92 // longest blackout scan window
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
