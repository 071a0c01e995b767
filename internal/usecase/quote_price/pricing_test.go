package quote_price

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

var testProfile = domain.PricingProfile{
	OpeningTime:        "08:00",
	ClosingTime:        "22:00",
	PeakStartTime:      "17:00",
	PeakEndTime:        "21:00",
	PeakHourlyPrice:    90,
	OffPeakHourlyPrice: 50,
}

func hourlySelection(start types.TimeString, count int) domain.SelectionRange {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	sel := make(domain.SelectionRange, 0, count)
	for i := 0; i < count; i++ {
		s, _ := start.AddMinutes(i * 60)
		e, _ := s.AddMinutes(60)
		sel = append(sel, domain.Slot{
			ID:        int64(i + 1),
			CourtID:   7,
			Date:      date,
			StartTime: s,
			EndTime:   e,
			Status:    domain.SlotAvailable,
		})
	}
	return sel
}

func TestComputeQuote(t *testing.T) {
	tests := []struct {
		name     string
		start    types.TimeString
		count    int
		wantRate float64
		wantPeak bool
	}{
		{
			name:     "off peak block",
			start:    "10:00",
			count:    3,
			wantRate: 50,
			wantPeak: false,
		},
		{
			name:     "peak block",
			start:    "18:00",
			count:    2,
			wantRate: 90,
			wantPeak: true,
		},
		{
			// Блок начинается до пика и заходит в него: ставка
			// определяется по первому слоту, весь блок вне пика
			name:     "block crossing into peak keeps first slot rate",
			start:    "15:00",
			count:    4,
			wantRate: 50,
			wantPeak: false,
		},
		{
			// Первый слот пиковый - весь блок по пиковой ставке
			name:     "block starting in peak keeps peak rate",
			start:    "20:00",
			count:    2,
			wantRate: 90,
			wantPeak: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := computeQuote(hourlySelection(tt.start, tt.count), testProfile)

			assert.Equal(t, tt.count, quote.SlotCount)
			assert.Equal(t, tt.wantRate, quote.HourlyRate)
			assert.Equal(t, tt.wantPeak, quote.Peak)
			assert.Equal(t, tt.wantRate*float64(tt.count), quote.Total)
			assert.False(t, quote.DefaultsApplied)
		})
	}
}

func TestComputeQuote_EmptyProfileUsesDefaults(t *testing.T) {
	quote := computeQuote(hourlySelection("17:00", 2), domain.PricingProfile{})

	require.True(t, quote.DefaultsApplied)
	// 17:00 попадает в дефолтное пиковое окно 16:00-20:00
	assert.True(t, quote.Peak)
	assert.Equal(t, domain.DefaultPeakHourlyPrice, quote.HourlyRate)
	assert.Equal(t, domain.DefaultPeakHourlyPrice*2, quote.Total)
}

func TestComputeQuote_EmptySelection(t *testing.T) {
	quote := computeQuote(domain.SelectionRange{}, testProfile)

	assert.Zero(t, quote.SlotCount)
	assert.Zero(t, quote.Total)
	assert.False(t, quote.Peak)
}

func TestUseCase_Execute(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	slots := hourlySelection("10:00", 4)

	court := &domain.Court{ID: 7, VenueID: 1, Name: "Корт 1", Profile: testProfile}
	uc := NewUseCase(&fakeSlotRepo{slots: slots}, &fakeCourtRepo{court: court}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		CourtID: 7,
		Date:    date,
		SlotIDs: []int64{1, 2, 3},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.SlotCount)
	assert.Equal(t, 50.0, resp.HourlyRate)
	assert.Equal(t, 150.0, resp.Total)
	assert.False(t, resp.Peak)
	assert.False(t, resp.DefaultsApplied)

	// Слот вне даты
	_, err = uc.Execute(context.Background(), &Request{
		CourtID: 7,
		Date:    date,
		SlotIDs: []int64{1, 99},
	})
	require.ErrorIs(t, err, ErrSlotNotFound)

	// Разрыв в выборе
	_, err = uc.Execute(context.Background(), &Request{
		CourtID: 7,
		Date:    date,
		SlotIDs: []int64{1, 3},
	})
	require.ErrorIs(t, err, ErrInvalidSelection)
}

type fakeSlotRepo struct {
	slots []domain.Slot
}

func (f *fakeSlotRepo) GetByCourtAndDate(_ context.Context, _ int64, _ time.Time) ([]domain.Slot, error) {
	return f.slots, nil
}

type fakeCourtRepo struct {
	court *domain.Court
}

func (f *fakeCourtRepo) GetByID(_ context.Context, _ int64) (*domain.Court, error) {
	return f.court, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
