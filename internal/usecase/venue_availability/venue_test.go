package venue_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

func TestRequiredCourtCount(t *testing.T) {
	tests := []struct {
		name             string
		capacity         int
		perCourtCapacity int
		want             int
	}{
		{name: "fits one court", capacity: 6, perCourtCapacity: 8, want: 1},
		{name: "exact multiple", capacity: 16, perCourtCapacity: 8, want: 2},
		{name: "rounds up", capacity: 20, perCourtCapacity: 8, want: 3},
		{name: "single player", capacity: 1, perCourtCapacity: 8, want: 1},
		{name: "zero capacity", capacity: 0, perCourtCapacity: 8, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, requiredCourtCount(tt.capacity, tt.perCourtCapacity))
		})
	}
}

func courtSlot(id, courtID int64, start types.TimeString, status domain.SlotStatus) domain.Slot {
	end, _ := start.AddMinutes(60)
	return domain.Slot{
		ID:            id,
		CourtID:       courtID,
		VenueID:       1,
		Date:          time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
		StartTime:     start,
		EndTime:       end,
		DurationHours: 1,
		Status:        status,
	}
}

func TestBuildHourBuckets(t *testing.T) {
	reference := domain.PricingProfile{
		OpeningTime: "10:00",
		ClosingTime: "13:00",
	}

	// Корт 1 свободен в 10 и 11, корт 2 - только в 10, в 12 оба заняты
	slots := []domain.Slot{
		courtSlot(1, 1, "10:00", domain.SlotAvailable),
		courtSlot(2, 1, "11:00", domain.SlotAvailable),
		courtSlot(3, 1, "12:00", domain.SlotBooked),
		courtSlot(4, 2, "10:00", domain.SlotAvailable),
		courtSlot(5, 2, "11:00", domain.SlotBooked),
		courtSlot(6, 2, "12:00", domain.SlotBooked),
	}

	buckets := buildHourBuckets(reference, slots, 2)

	require.Len(t, buckets, 3)

	assert.Equal(t, types.TimeString("10:00"), buckets[0].StartTime)
	assert.ElementsMatch(t, []int64{1, 2}, buckets[0].AvailableCourtIDs)
	assert.True(t, buckets[0].Satisfies)

	assert.Equal(t, types.TimeString("11:00"), buckets[1].StartTime)
	assert.ElementsMatch(t, []int64{1}, buckets[1].AvailableCourtIDs)
	assert.False(t, buckets[1].Satisfies)

	assert.Equal(t, types.TimeString("12:00"), buckets[2].StartTime)
	assert.Empty(t, buckets[2].AvailableCourtIDs)
	assert.False(t, buckets[2].Satisfies)
}

func TestBuildHourBuckets_EmptyProfile(t *testing.T) {
	buckets := buildHourBuckets(domain.PricingProfile{}, nil, 1)
	assert.Empty(t, buckets)
}

func TestCanSatisfy(t *testing.T) {
	buckets := []HourBucket{
		{AvailableCourtIDs: []int64{1}},
		{AvailableCourtIDs: []int64{1, 2, 3}},
	}

	// Вместимости хватает и есть час с тремя свободными кортами
	assert.True(t, canSatisfy(3, 8, 20, buckets, 3))

	// Суммарной вместимости площадки не хватает в принципе
	assert.False(t, canSatisfy(2, 8, 20, buckets, 3))

	// Вместимость есть, но нет часа с нужным числом свободных кортов
	sparse := []HourBucket{{AvailableCourtIDs: []int64{1}}}
	assert.False(t, canSatisfy(3, 8, 20, sparse, 3))
}

func TestUseCase_Execute(t *testing.T) {
	date := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)

	courts := []domain.Court{
		{ID: 1, VenueID: 1, Profile: domain.PricingProfile{OpeningTime: "10:00", ClosingTime: "12:00"}},
		{ID: 2, VenueID: 1, Profile: domain.PricingProfile{OpeningTime: "10:00", ClosingTime: "12:00"}},
		{ID: 3, VenueID: 1, Profile: domain.PricingProfile{OpeningTime: "10:00", ClosingTime: "12:00"}},
	}

	// В 10:00 свободны все три корта
	slots := []domain.Slot{
		courtSlot(1, 1, "10:00", domain.SlotAvailable),
		courtSlot(2, 2, "10:00", domain.SlotAvailable),
		courtSlot(3, 3, "10:00", domain.SlotAvailable),
		courtSlot(4, 1, "11:00", domain.SlotBooked),
		courtSlot(5, 2, "11:00", domain.SlotAvailable),
		courtSlot(6, 3, "11:00", domain.SlotBooked),
	}

	uc := NewUseCase(&fakeFeed{slots: slots}, &fakeCourtRepo{courts: courts}, 2, 8, nopLogger{})
	uc.timeProvider = fixedTime{now}

	resp, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: date, Capacity: 20})
	require.NoError(t, err)

	// ceil(20/8) = 3 корта
	assert.Equal(t, 3, resp.RequiredCourts)
	assert.True(t, resp.CanSatisfy)
	require.Len(t, resp.HourBuckets, 2)
	assert.True(t, resp.HourBuckets[0].Satisfies)
	assert.False(t, resp.HourBuckets[1].Satisfies)
	assert.Len(t, resp.Slots, 6)

	// 25 игроков трем кортам не разместить
	resp, err = uc.Execute(context.Background(), &Request{VenueID: 1, Date: date, Capacity: 25})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.RequiredCourts)
	assert.False(t, resp.CanSatisfy)
}

func TestUseCase_Execute_VenueWithoutCourts(t *testing.T) {
	date := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)

	// Репозиторий вернул пустой список без ошибки - площадки фактически нет
	uc := NewUseCase(&fakeFeed{}, &fakeCourtRepo{courts: []domain.Court{}}, 2, 8, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: date, Capacity: 8})
	require.ErrorIs(t, err, ErrVenueNotFound)
}

type fakeFeed struct {
	slots []domain.Slot
}

func (f *fakeFeed) LoadVenueDay(_ context.Context, _ int64, _ time.Time, _ []int64) ([]domain.Slot, error) {
	return f.slots, nil
}

type fakeCourtRepo struct {
	courts []domain.Court
}

func (f *fakeCourtRepo) GetByVenue(_ context.Context, _ int64) ([]domain.Court, error) {
	return f.courts, nil
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
