package slotfeed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

type stubSource struct {
	byCourt map[int64][]domain.Slot
	err     error
}

func (s *stubSource) GetByCourtAndDate(_ context.Context, courtID int64, _ time.Time) ([]domain.Slot, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byCourt[courtID], nil
}

func slot(id, courtID int64) domain.Slot {
	return domain.Slot{
		ID:        id,
		CourtID:   courtID,
		VenueID:   1,
		Date:      time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "11:00",
		Status:    domain.SlotAvailable,
	}
}

func TestFeed_LoadVenueDay_MergesCourts(t *testing.T) {
	date := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	source := &stubSource{byCourt: map[int64][]domain.Slot{
		1: {slot(1, 1), slot(2, 1)},
		2: {slot(3, 2)},
	}}

	feed := NewFeed(source, nopLogger{})

	merged, err := feed.LoadVenueDay(context.Background(), 1, date, []int64{1, 2})
	require.NoError(t, err)
	require.Len(t, merged, 3)

	// Результат опубликован как снимок
	snap, ok := feed.Snapshot(1, date)
	require.True(t, ok)
	assert.Equal(t, merged, snap)

	// На другую дату снимка нет
	_, ok = feed.Snapshot(1, date.AddDate(0, 0, 1))
	assert.False(t, ok)
}

func TestFeed_LoadVenueDay_SourceError(t *testing.T) {
	date := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	sourceErr := errors.New("db down")
	feed := NewFeed(&stubSource{err: sourceErr}, nopLogger{})

	_, err := feed.LoadVenueDay(context.Background(), 1, date, []int64{1})
	require.ErrorIs(t, err, sourceErr)

	_, ok := feed.Snapshot(1, date)
	assert.False(t, ok)
}

func TestFeed_StaleLoadDoesNotOverwriteSnapshot(t *testing.T) {
	date := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	source := &stubSource{byCourt: map[int64][]domain.Slot{1: {slot(1, 1)}}}
	feed := NewFeed(source, nopLogger{})

	key := feedKey(1, date)

	// Старая загрузка получила токен, затем началась новая
	staleToken := feed.begin(key)
	freshToken := feed.begin(key)

	fresh := []domain.Slot{slot(2, 1)}
	require.True(t, feed.publish(key, freshToken, fresh))

	// Запоздавший ответ старой загрузки отбрасывается
	assert.False(t, feed.publish(key, staleToken, []domain.Slot{slot(1, 1)}))

	snap, ok := feed.Snapshot(1, date)
	require.True(t, ok)
	assert.Equal(t, fresh, snap)
}

func TestFeed_KeysAreIndependent(t *testing.T) {
	date := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	feed := NewFeed(&stubSource{}, nopLogger{})

	tokenA := feed.begin(feedKey(1, date))
	tokenB := feed.begin(feedKey(2, date))

	// Новая загрузка по другой площадке не вытесняет эту
	assert.True(t, feed.publish(feedKey(1, date), tokenA, []domain.Slot{slot(1, 1)}))
	assert.True(t, feed.publish(feedKey(2, date), tokenB, []domain.Slot{slot(2, 5)}))
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
