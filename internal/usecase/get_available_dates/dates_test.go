package get_available_dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

func slotOn(date time.Time, status domain.SlotStatus) domain.Slot {
	return domain.Slot{
		CourtID:   7,
		Date:      date,
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("11:00"),
		Status:    status,
	}
}

func TestAvailableDates(t *testing.T) {
	d1 := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)
	d3 := time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC)

	slots := []domain.Slot{
		// d3 раньше в списке, чем d1 - порядок репозитория не важен
		slotOn(d3, domain.SlotAvailable),
		slotOn(d1, domain.SlotAvailable),
		slotOn(d1, domain.SlotAvailable),
		// d2 полностью занята и в календарь не попадает
		slotOn(d2, domain.SlotBooked),
	}

	got := availableDates(slots)

	require.Len(t, got, 2)
	assert.True(t, got[0].Equal(d1))
	assert.True(t, got[1].Equal(d3))
}

func TestAvailableDates_Empty(t *testing.T) {
	assert.Empty(t, availableDates(nil))
	assert.Empty(t, availableDates([]domain.Slot{
		slotOn(time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), domain.SlotBooked),
	}))
}
