package get_day_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

func slotAt(id int64, date time.Time, start, end string) domain.Slot {
	return domain.Slot{
		ID:            id,
		CourtID:       7,
		VenueID:       1,
		Date:          date,
		StartTime:     types.TimeString(start),
		EndTime:       types.TimeString(end),
		DurationHours: 1,
		Status:        domain.SlotAvailable,
	}
}

func TestFilterSlotsForDate_LeadTimeToday(t *testing.T) {
	// now = 10:00, lead time = 2ч, граница отсечения 12:00
	now := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	today := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	slots := []domain.Slot{
		slotAt(1, today, "11:30", "12:30"), // раньше границы
		slotAt(2, today, "12:00", "13:00"), // ровно на границе, не строго позже
		slotAt(3, today, "12:01", "13:01"), // строго позже границы
		slotAt(4, today, "18:00", "19:00"),
	}

	got := filterSlotsForDate(slots, today, now, 2)

	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(4), got[1].ID)
}

func TestFilterSlotsForDate_FutureDateNotFiltered(t *testing.T) {
	now := time.Date(2025, 10, 15, 23, 0, 0, 0, time.UTC)
	tomorrow := time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)

	// Завтрашний слот в 00:30 попал бы под now+2ч, но lead time
	// действует только для сегодняшней даты
	slots := []domain.Slot{
		slotAt(1, tomorrow, "00:30", "01:30"),
		slotAt(2, tomorrow, "08:00", "09:00"),
	}

	got := filterSlotsForDate(slots, tomorrow, now, 2)

	require.Len(t, got, 2)
}

func TestFilterSlotsForDate_DropsOtherDatesAndSorts(t *testing.T) {
	now := time.Date(2025, 10, 10, 8, 0, 0, 0, time.UTC)
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	otherDate := time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)

	slots := []domain.Slot{
		slotAt(2, date, "14:00", "15:00"),
		slotAt(3, otherDate, "09:00", "10:00"),
		slotAt(1, date, "09:00", "10:00"),
	}

	got := filterSlotsForDate(slots, date, now, 2)

	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
}
