package select_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// daySlots строит сетку часовых слотов 10:00-16:00 одного корта
func daySlots(booked ...int64) []domain.Slot {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	bookedSet := make(map[int64]bool, len(booked))
	for _, id := range booked {
		bookedSet[id] = true
	}

	slots := make([]domain.Slot, 0, 6)
	for i := 0; i < 6; i++ {
		start := types.TimeString("10:00")
		start, _ = start.AddMinutes(i * 60)
		end, _ := start.AddMinutes(60)

		status := domain.SlotAvailable
		id := int64(i + 1)
		if bookedSet[id] {
			status = domain.SlotBooked
		}

		slots = append(slots, domain.Slot{
			ID:            id,
			CourtID:       7,
			VenueID:       1,
			Date:          date,
			StartTime:     start,
			EndTime:       end,
			DurationHours: 1,
			Status:        status,
		})
	}
	return slots
}

func pick(slots []domain.Slot, ids ...int64) domain.SelectionRange {
	sel := make(domain.SelectionRange, 0, len(ids))
	for _, id := range ids {
		for i := range slots {
			if slots[i].ID == id {
				sel = append(sel, slots[i])
			}
		}
	}
	return sel
}

func byID(slots []domain.Slot, id int64) domain.Slot {
	for i := range slots {
		if slots[i].ID == id {
			return slots[i]
		}
	}
	panic("slot not found")
}

func selectionIDs(sel domain.SelectionRange) []int64 {
	ids := make([]int64, 0, len(sel))
	for i := range sel {
		ids = append(ids, sel[i].ID)
	}
	return ids
}

func TestTryApplyAppend_GrowAndShrink(t *testing.T) {
	slots := daySlots()

	// Первый клик по пустому выбору
	res := tryApply(nil, slots, byID(slots, 2), ModeAppend)
	require.False(t, res.Rejected)
	assert.Equal(t, []int64{2}, selectionIDs(res.Selection))

	// Добавление соседа справа
	res = tryApply(res.Selection, slots, byID(slots, 3), ModeAppend)
	require.False(t, res.Rejected)
	assert.Equal(t, []int64{2, 3}, selectionIDs(res.Selection))

	// Добавление соседа слева
	res = tryApply(res.Selection, slots, byID(slots, 1), ModeAppend)
	require.False(t, res.Rejected)
	assert.Equal(t, []int64{1, 2, 3}, selectionIDs(res.Selection))

	// Повторный клик по краю снимает его
	res = tryApply(res.Selection, slots, byID(slots, 3), ModeAppend)
	require.False(t, res.Rejected)
	assert.Equal(t, []int64{1, 2}, selectionIDs(res.Selection))
}

func TestTryApplyAppend_Rejections(t *testing.T) {
	slots := daySlots(4)

	tests := []struct {
		name      string
		selection domain.SelectionRange
		clicked   domain.Slot
		reason    RejectReason
	}{
		{
			name:      "non adjacent slot breaks contiguity",
			selection: pick(slots, 1, 2),
			clicked:   byID(slots, 5),
			reason:    ReasonNotContiguous,
		},
		{
			name:      "interior removal breaks contiguity",
			selection: pick(slots, 1, 2, 3),
			clicked:   byID(slots, 2),
			reason:    ReasonNotContiguous,
		},
		{
			name:      "booked neighbour",
			selection: pick(slots, 3),
			clicked:   byID(slots, 4),
			reason:    ReasonSlotUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tryApply(tt.selection, slots, tt.clicked, ModeAppend)
			require.True(t, res.Rejected)
			assert.Equal(t, tt.reason, res.Reason)
			// При отказе выбор возвращается без изменений
			assert.Equal(t, selectionIDs(tt.selection), selectionIDs(res.Selection))
		})
	}
}

func TestTryApplyAppend_DifferentDate(t *testing.T) {
	slots := daySlots()
	selection := pick(slots, 1)

	other := byID(slots, 2)
	other.Date = other.Date.AddDate(0, 0, 1)

	res := tryApply(selection, slots, other, ModeAppend)
	require.True(t, res.Rejected)
	assert.Equal(t, ReasonDifferentDate, res.Reason)
}

func TestTryApplyRange_ExtendAndShrink(t *testing.T) {
	slots := daySlots()

	// Пустой выбор: диапазон из одного слота
	res := tryApply(nil, slots, byID(slots, 2), ModeRange)
	require.False(t, res.Rejected)
	assert.Equal(t, []int64{2}, selectionIDs(res.Selection))

	// Клик дальше конца растягивает диапазон со всеми промежуточными
	res = tryApply(res.Selection, slots, byID(slots, 5), ModeRange)
	require.False(t, res.Rejected)
	assert.Equal(t, []int64{2, 3, 4, 5}, selectionIDs(res.Selection))

	// Клик внутри сжимает диапазон с конца
	res = tryApply(res.Selection, slots, byID(slots, 3), ModeRange)
	require.False(t, res.Rejected)
	assert.Equal(t, []int64{2, 3}, selectionIDs(res.Selection))

	// Клик до начала расширяет влево
	res = tryApply(res.Selection, slots, byID(slots, 1), ModeRange)
	require.False(t, res.Rejected)
	assert.Equal(t, []int64{1, 2, 3}, selectionIDs(res.Selection))
}

func TestTryApplyRange_ClearOnSoleSlot(t *testing.T) {
	slots := daySlots()
	selection := pick(slots, 3)

	res := tryApply(selection, slots, byID(slots, 3), ModeRange)
	require.False(t, res.Rejected)
	assert.Empty(t, res.Selection)
}

func TestTryApplyRange_BookedSlotInSpan(t *testing.T) {
	// Слот 3 занят: диапазон 1..5 материализовать нельзя
	slots := daySlots(3)
	selection := pick(slots, 1)

	res := tryApply(selection, slots, byID(slots, 5), ModeRange)
	require.True(t, res.Rejected)
	assert.Equal(t, ReasonSlotUnavailable, res.Reason)
	assert.Equal(t, []int64{1}, selectionIDs(res.Selection))
}

func TestUseCase_Execute(t *testing.T) {
	date := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)

	slots := daySlots()
	for i := range slots {
		slots[i].Date = date
	}

	uc := NewUseCase(&fakeSlotRepo{slots: slots}, 2, nopLogger{})
	uc.timeProvider = fixedTime{now}

	// Корректный клик добавляет соседний слот
	resp, err := uc.Execute(context.Background(), &Request{
		CourtID:         7,
		Date:            date,
		SelectedSlotIDs: []int64{1},
		ClickedSlotID:   2,
		Mode:            ModeAppend,
	})
	require.NoError(t, err)
	require.False(t, resp.Rejected)
	assert.Equal(t, []int64{1, 2}, selectionIDs(resp.Selection))

	// Клик по несуществующему слоту - ожидаемый отказ
	resp, err = uc.Execute(context.Background(), &Request{
		CourtID:         7,
		Date:            date,
		SelectedSlotIDs: []int64{1},
		ClickedSlotID:   99,
		Mode:            ModeAppend,
	})
	require.NoError(t, err)
	require.True(t, resp.Rejected)
	assert.Equal(t, ReasonSlotUnknown, resp.Reason)

	// Выбор с разрывом - устаревшее состояние, это ошибка
	_, err = uc.Execute(context.Background(), &Request{
		CourtID:         7,
		Date:            date,
		SelectedSlotIDs: []int64{1, 3},
		ClickedSlotID:   4,
		Mode:            ModeAppend,
	})
	require.ErrorIs(t, err, ErrInvalidSelection)
}

type fakeSlotRepo struct {
	slots []domain.Slot
}

func (f *fakeSlotRepo) GetByCourtAndDate(_ context.Context, _ int64, _ time.Time) ([]domain.Slot, error) {
	return f.slots, nil
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
