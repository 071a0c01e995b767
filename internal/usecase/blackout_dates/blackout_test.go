package blackout_dates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/cache"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

var testCourts = []domain.Court{
	{ID: 1, VenueID: 1, Profile: domain.PricingProfile{OpeningTime: "10:00", ClosingTime: "12:00"}},
	{ID: 2, VenueID: 1, Profile: domain.PricingProfile{OpeningTime: "10:00", ClosingTime: "12:00"}},
}

func daySlot(id, courtID int64, date time.Time, start types.TimeString, status domain.SlotStatus) domain.Slot {
	end, _ := start.AddMinutes(60)
	return domain.Slot{
		ID:            id,
		CourtID:       courtID,
		VenueID:       1,
		Date:          date,
		StartTime:     start,
		EndTime:       end,
		DurationHours: 1,
		Status:        status,
	}
}

func TestComputeBlackoutDates(t *testing.T) {
	day1 := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	day3 := day1.AddDate(0, 0, 2)
	now := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)

	// day1: оба корта свободны в 10:00 - окно есть.
	// day2: в каждом часе свободен лишь один корт - окна нет.
	// day3: слотов нет вообще - окна нет
	slots := []domain.Slot{
		daySlot(1, 1, day1, "10:00", domain.SlotAvailable),
		daySlot(2, 2, day1, "10:00", domain.SlotAvailable),
		daySlot(3, 1, day2, "10:00", domain.SlotAvailable),
		daySlot(4, 2, day2, "10:00", domain.SlotBooked),
		daySlot(5, 1, day2, "11:00", domain.SlotBooked),
		daySlot(6, 2, day2, "11:00", domain.SlotAvailable),
	}

	// capacity 16 при 8 на корт: нужны оба корта одновременно
	dates := computeBlackoutDates(testCourts, slots, day1, day3, 16, 8, now, 2)

	require.Len(t, dates, 2)
	assert.Equal(t, day2, dates[0])
	assert.Equal(t, day3, dates[1])
}

func TestComputeBlackoutDates_CapacityExceedsVenue(t *testing.T) {
	day1 := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	day3 := day1.AddDate(0, 0, 2)
	now := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)

	slots := []domain.Slot{
		daySlot(1, 1, day1, "10:00", domain.SlotAvailable),
		daySlot(2, 2, day1, "10:00", domain.SlotAvailable),
	}

	// Два корта по 8 мест не примут 20 игроков ни в какой день
	dates := computeBlackoutDates(testCourts, slots, day1, day3, 20, 8, now, 2)

	require.Len(t, dates, 3)
	assert.Equal(t, day1, dates[0])
	assert.Equal(t, day3, dates[2])
}

func TestComputeBlackoutDates_LeadTimeOnToday(t *testing.T) {
	today := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)

	// Единственное общее окно 10:00 уже внутри lead time (9:00 + 2ч),
	// поэтому сегодня - blackout
	slots := []domain.Slot{
		daySlot(1, 1, today, "10:00", domain.SlotAvailable),
		daySlot(2, 2, today, "10:00", domain.SlotAvailable),
	}

	dates := computeBlackoutDates(testCourts, slots, today, today, 16, 8, now, 2)

	require.Len(t, dates, 1)
	assert.Equal(t, today, dates[0])
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeSlotRepo{}, &fakeCourtRepo{courts: testCourts}, nil, 0, 2, 8, nopLogger{})

	from := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{
		VenueID:  1,
		From:     from,
		To:       from.AddDate(0, 0, domain.MaxBlackoutRangeDays+10),
		Capacity: 8,
	})
	require.ErrorIs(t, err, ErrRangeTooWide)

	_, err = uc.Execute(context.Background(), &Request{
		VenueID:  1,
		From:     from,
		To:       from.AddDate(0, 0, -1),
		Capacity: 8,
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{VenueID: 1, From: from, To: from, Capacity: 0})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_VenueWithoutCourts(t *testing.T) {
	from := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)

	// Репозиторий вернул пустой список без ошибки - площадки фактически нет
	uc := NewUseCase(&fakeSlotRepo{}, &fakeCourtRepo{courts: []domain.Court{}}, nil, 0, 2, 8, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{VenueID: 1, From: from, To: from, Capacity: 8})
	require.ErrorIs(t, err, ErrVenueNotFound)
}

func TestUseCase_Execute_CacheRoundTrip(t *testing.T) {
	day1 := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	now := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)

	slotRepo := &fakeSlotRepo{slots: []domain.Slot{
		daySlot(1, 1, day1, "10:00", domain.SlotAvailable),
		daySlot(2, 2, day1, "10:00", domain.SlotAvailable),
	}}
	memCache := &fakeCache{entries: make(map[string][]string)}

	uc := NewUseCase(slotRepo, &fakeCourtRepo{courts: testCourts}, memCache, time.Minute, 2, 8, nopLogger{})
	uc.timeProvider = fixedTime{now}

	req := &Request{VenueID: 1, From: day1, To: day2, Capacity: 16}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Dates, 1)
	assert.Equal(t, day2, resp.Dates[0])
	assert.Equal(t, 1, slotRepo.calls)

	// Повторный запрос отвечает из кеша без похода в хранилище
	resp, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Dates, 1)
	assert.Equal(t, day2, resp.Dates[0])
	assert.Equal(t, 1, slotRepo.calls)

	// Другая вместимость - другой ключ, пересчет заново
	_, err = uc.Execute(context.Background(), &Request{VenueID: 1, From: day1, To: day2, Capacity: 8})
	require.NoError(t, err)
	assert.Equal(t, 2, slotRepo.calls)
}

type fakeSlotRepo struct {
	slots []domain.Slot
	calls int
}

func (f *fakeSlotRepo) GetByVenueAndDateRange(_ context.Context, _ int64, _, _ time.Time) ([]domain.Slot, error) {
	f.calls++
	return f.slots, nil
}

type fakeCourtRepo struct {
	courts []domain.Court
}

func (f *fakeCourtRepo) GetByVenue(_ context.Context, _ int64) ([]domain.Court, error) {
	return f.courts, nil
}

type fakeCache struct {
	entries map[string][]string
}

func (f *fakeCache) Get(_ context.Context, key string, dest interface{}) error {
	val, ok := f.entries[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	*dest.(*[]string) = val
	return nil
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	f.entries[key] = value.([]string)
	return nil
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
