package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

func TestPricingProfile_Normalized(t *testing.T) {
	tests := []struct {
		name        string
		profile     PricingProfile
		wantApplied bool
		wantPeak    float64
		wantOffPeak float64
	}{
		{
			name: "complete profile untouched",
			profile: PricingProfile{
				PeakStartTime:      "17:00",
				PeakEndTime:        "21:00",
				PeakHourlyPrice:    120,
				OffPeakHourlyPrice: 70,
			},
			wantApplied: false,
			wantPeak:    120,
			wantOffPeak: 70,
		},
		{
			name:        "empty profile gets all defaults",
			profile:     PricingProfile{},
			wantApplied: true,
			wantPeak:    DefaultPeakHourlyPrice,
			wantOffPeak: DefaultOffPeakHourlyPrice,
		},
		{
			name: "missing prices only",
			profile: PricingProfile{
				PeakStartTime: "16:00",
				PeakEndTime:   "20:00",
			},
			wantApplied: true,
			wantPeak:    DefaultPeakHourlyPrice,
			wantOffPeak: DefaultOffPeakHourlyPrice,
		},
		{
			name: "missing peak window only",
			profile: PricingProfile{
				PeakHourlyPrice:    90,
				OffPeakHourlyPrice: 60,
			},
			wantApplied: true,
			wantPeak:    90,
			wantOffPeak: 60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, applied := tt.profile.Normalized()
			assert.Equal(t, tt.wantApplied, applied)
			assert.Equal(t, tt.wantPeak, got.PeakHourlyPrice)
			assert.Equal(t, tt.wantOffPeak, got.OffPeakHourlyPrice)
			assert.False(t, got.PeakStartTime.IsZero())
			assert.False(t, got.PeakEndTime.IsZero())
		})
	}
}

func TestPricingProfile_IsPeak(t *testing.T) {
	daytime := PricingProfile{
		PeakStartTime:      "16:00",
		PeakEndTime:        "20:00",
		PeakHourlyPrice:    80,
		OffPeakHourlyPrice: 50,
	}
	// Peak window crossing midnight.
	overnight := PricingProfile{
		PeakStartTime:      "22:00",
		PeakEndTime:        "02:00",
		PeakHourlyPrice:    80,
		OffPeakHourlyPrice: 50,
	}

	tests := []struct {
		name    string
		profile PricingProfile
		start   types.TimeString
		want    bool
	}{
		{name: "daytime before window", profile: daytime, start: "15:00", want: false},
		{name: "daytime window start inclusive", profile: daytime, start: "16:00", want: true},
		{name: "daytime inside window", profile: daytime, start: "19:00", want: true},
		{name: "daytime window end exclusive", profile: daytime, start: "20:00", want: false},
		{name: "overnight late evening", profile: overnight, start: "23:00", want: true},
		{name: "overnight window start inclusive", profile: overnight, start: "22:00", want: true},
		{name: "overnight after midnight", profile: overnight, start: "01:00", want: true},
		{name: "overnight end exclusive", profile: overnight, start: "02:00", want: false},
		{name: "overnight midday", profile: overnight, start: "12:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.profile.IsPeak(tt.start))
		})
	}
}

func TestPricingProfile_HourlyRate(t *testing.T) {
	profile := PricingProfile{
		PeakStartTime:      "16:00",
		PeakEndTime:        "20:00",
		PeakHourlyPrice:    80,
		OffPeakHourlyPrice: 50,
	}

	assert.Equal(t, 80.0, profile.HourlyRate("18:00"))
	assert.Equal(t, 50.0, profile.HourlyRate("10:00"))
}
