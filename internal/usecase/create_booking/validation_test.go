package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

func TestValidateRequest(t *testing.T) {
	valid := func() *Request {
		return &Request{UserID: 10, CourtID: 7, SlotIDs: []int64{1, 2}}
	}

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, validateRequest(valid()))
	})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "missing user", mutate: func(r *Request) { r.UserID = 0 }},
		{name: "missing court", mutate: func(r *Request) { r.CourtID = -1 }},
		{name: "no slots", mutate: func(r *Request) { r.SlotIDs = nil }},
		{name: "duplicate slot", mutate: func(r *Request) { r.SlotIDs = []int64{1, 1} }},
		{name: "non positive slot id", mutate: func(r *Request) { r.SlotIDs = []int64{1, 0} }},
		{name: "too many slots", mutate: func(r *Request) {
			ids := make([]int64, domain.MaxSelectionSlots+1)
			for i := range ids {
				ids[i] = int64(i + 1)
			}
			r.SlotIDs = ids
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)
			require.ErrorIs(t, validateRequest(req), ErrInvalidInput)
		})
	}
}

func blockSlot(id int64, start types.TimeString, status domain.SlotStatus) domain.Slot {
	end, _ := start.AddMinutes(60)
	return domain.Slot{
		ID:            id,
		CourtID:       7,
		VenueID:       1,
		Date:          time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
		StartTime:     start,
		EndTime:       end,
		DurationHours: 1,
		Status:        status,
	}
}

func TestValidateBlock(t *testing.T) {
	block := []domain.Slot{
		blockSlot(1, "10:00", domain.SlotAvailable),
		blockSlot(2, "11:00", domain.SlotAvailable),
		blockSlot(3, "12:00", domain.SlotAvailable),
	}

	require.NoError(t, validateBlock(block, 7, 3))

	t.Run("missing slot row", func(t *testing.T) {
		require.ErrorIs(t, validateBlock(block, 7, 4), ErrSlotNotFound)
	})

	t.Run("foreign court", func(t *testing.T) {
		foreign := append([]domain.Slot{}, block...)
		foreign[1].CourtID = 8
		require.ErrorIs(t, validateBlock(foreign, 7, 3), ErrInvalidInput)
	})

	t.Run("mixed dates", func(t *testing.T) {
		mixed := append([]domain.Slot{}, block...)
		mixed[2].Date = mixed[2].Date.AddDate(0, 0, 1)
		require.ErrorIs(t, validateBlock(mixed, 7, 3), ErrNotContiguous)
	})

	t.Run("booked slot", func(t *testing.T) {
		taken := append([]domain.Slot{}, block...)
		taken[1].Status = domain.SlotBooked
		require.ErrorIs(t, validateBlock(taken, 7, 3), ErrSlotNotAvailable)
	})

	t.Run("gap in block", func(t *testing.T) {
		gapped := []domain.Slot{
			blockSlot(1, "10:00", domain.SlotAvailable),
			blockSlot(3, "12:00", domain.SlotAvailable),
		}
		require.ErrorIs(t, validateBlock(gapped, 7, 2), ErrNotContiguous)
	})
}

func TestValidateLeadTime(t *testing.T) {
	now := time.Date(2025, 10, 20, 10, 0, 0, 0, time.UTC)

	t.Run("today inside lead time", func(t *testing.T) {
		first := blockSlot(1, "11:30", domain.SlotAvailable)
		require.ErrorIs(t, validateLeadTime(&first, now, 2), ErrTooLateToBook)
	})

	t.Run("today on the boundary", func(t *testing.T) {
		// Начало ровно now + leadTime не проходит: нужно строго позже
		first := blockSlot(1, "12:00", domain.SlotAvailable)
		require.ErrorIs(t, validateLeadTime(&first, now, 2), ErrTooLateToBook)
	})

	t.Run("today beyond lead time", func(t *testing.T) {
		first := blockSlot(1, "13:00", domain.SlotAvailable)
		assert.NoError(t, validateLeadTime(&first, now, 2))
	})

	t.Run("future date exempt", func(t *testing.T) {
		first := blockSlot(1, "08:00", domain.SlotAvailable)
		first.Date = first.Date.AddDate(0, 0, 1)
		assert.NoError(t, validateLeadTime(&first, now, 2))
	})
}
