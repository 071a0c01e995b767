package domain

import "github.com/m04kA/SMC-CourtService/pkg/types"

// PricingProfile holds a court's operating hours and peak-pricing
// configuration. The peak window may wrap past midnight
// (PeakStartTime > PeakEndTime, e.g. 22:00-02:00).
type PricingProfile struct {
	OpeningTime        types.TimeString
	ClosingTime        types.TimeString
	PeakStartTime      types.TimeString
	PeakEndTime        types.TimeString
	PeakHourlyPrice    float64
	OffPeakHourlyPrice float64
}

// Normalized returns a copy with every missing field replaced by the
// documented defaults, and a flag reporting whether any default was
// applied. Callers surface the flag instead of silently substituting.
func (p PricingProfile) Normalized() (PricingProfile, bool) {
	applied := false

	if p.PeakStartTime.IsZero() || p.PeakEndTime.IsZero() {
		p.PeakStartTime = DefaultPeakStartTime
		p.PeakEndTime = DefaultPeakEndTime
		applied = true
	}
	if p.PeakHourlyPrice <= 0 {
		p.PeakHourlyPrice = DefaultPeakHourlyPrice
		applied = true
	}
	if p.OffPeakHourlyPrice <= 0 {
		p.OffPeakHourlyPrice = DefaultOffPeakHourlyPrice
		applied = true
	}

	return p, applied
}

// IsPeak reports whether a slot starting at start falls inside the peak
// window [PeakStartTime, PeakEndTime). A window whose start is later
// than its end crosses midnight and matches either side of it.
func (p PricingProfile) IsPeak(start types.TimeString) bool {
	if !p.PeakStartTime.IsAfter(p.PeakEndTime) {
		return !start.IsBefore(p.PeakStartTime) && start.IsBefore(p.PeakEndTime)
	}
	// Overnight window, e.g. 22:00-02:00.
	return !start.IsBefore(p.PeakStartTime) || start.IsBefore(p.PeakEndTime)
}

// HourlyRate returns the rate applicable to a slot starting at start
func (p PricingProfile) HourlyRate(start types.TimeString) float64 {
	if p.IsPeak(start) {
		return p.PeakHourlyPrice
	}
	return p.OffPeakHourlyPrice
}
