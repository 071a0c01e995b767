package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

func testSlot(id int64, courtID int64, start, end string) Slot {
	return Slot{
		ID:            id,
		CourtID:       courtID,
		VenueID:       1,
		Date:          time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     types.TimeString(start),
		EndTime:       types.TimeString(end),
		DurationHours: 1,
		Status:        SlotAvailable,
	}
}

func TestSlot_AdjacentTo(t *testing.T) {
	a := testSlot(1, 7, "10:00", "11:00")
	b := testSlot(2, 7, "11:00", "12:00")
	gap := testSlot(3, 7, "13:00", "14:00")
	otherCourt := testSlot(4, 8, "11:00", "12:00")
	otherDate := testSlot(5, 7, "11:00", "12:00")
	otherDate.Date = otherDate.Date.AddDate(0, 0, 1)

	assert.True(t, a.AdjacentTo(&b))
	assert.False(t, b.AdjacentTo(&a))
	assert.False(t, a.AdjacentTo(&gap))
	assert.False(t, a.AdjacentTo(&otherCourt))
	assert.False(t, a.AdjacentTo(&otherDate))
}

func TestSelectionRange_IsContiguous(t *testing.T) {
	tests := []struct {
		name      string
		selection SelectionRange
		want      bool
	}{
		{name: "empty", selection: SelectionRange{}, want: true},
		{name: "single", selection: SelectionRange{testSlot(1, 7, "10:00", "11:00")}, want: true},
		{
			name: "contiguous run",
			selection: SelectionRange{
				testSlot(1, 7, "10:00", "11:00"),
				testSlot(2, 7, "11:00", "12:00"),
				testSlot(3, 7, "12:00", "13:00"),
			},
			want: true,
		},
		{
			name: "gap in the middle",
			selection: SelectionRange{
				testSlot(1, 7, "10:00", "11:00"),
				testSlot(3, 7, "12:00", "13:00"),
			},
			want: false,
		},
		{
			name: "different courts",
			selection: SelectionRange{
				testSlot(1, 7, "10:00", "11:00"),
				testSlot(2, 8, "11:00", "12:00"),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.selection.IsContiguous())
		})
	}
}

func TestSelectionRange_EdgesAndContains(t *testing.T) {
	sel := SelectionRange{
		testSlot(1, 7, "10:00", "11:00"),
		testSlot(2, 7, "11:00", "12:00"),
		testSlot(3, 7, "12:00", "13:00"),
	}

	assert.True(t, sel.Contains(2))
	assert.False(t, sel.Contains(99))

	assert.True(t, sel.IsEdge(1))
	assert.True(t, sel.IsEdge(3))
	assert.False(t, sel.IsEdge(2))
	assert.False(t, SelectionRange{}.IsEdge(1))

	assert.Equal(t, int64(1), sel.First().ID)
	assert.Equal(t, int64(3), sel.Last().ID)
	assert.Equal(t, 3.0, sel.TotalHours())
}

func TestSortSlotsByStart(t *testing.T) {
	slots := []Slot{
		testSlot(3, 7, "12:00", "13:00"),
		testSlot(1, 7, "10:00", "11:00"),
		testSlot(2, 7, "11:00", "12:00"),
	}

	SortSlotsByStart(slots)

	assert.Equal(t, int64(1), slots[0].ID)
	assert.Equal(t, int64(2), slots[1].ID)
	assert.Equal(t, int64(3), slots[2].ID)
}
