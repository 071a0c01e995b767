package slotfeed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// Feed выполняет веерную загрузку слотов по кортам площадки и держит
// последний снимок на каждую пару (площадка, дата)
//
// Загрузки вытесняются более новыми: каждый запрос получает монотонно
// растущий токен, и снимок обновляет только ответ с актуальным токеном.
// Побеждает ПОСЛЕДНИЙ ЗАПРОС, а не последний пришедший ответ - медленный
// старый ответ не может затереть результат более нового запроса
type Feed struct {
	source SlotSource
	logger Logger

	mu     sync.Mutex
	next   uint64
	tokens map[string]uint64        // ключ -> актуальный токен
	snaps  map[string][]domain.Slot // ключ -> последний опубликованный снимок
}

// NewFeed создает новый экземпляр фида слотов
func NewFeed(source SlotSource, logger Logger) *Feed {
	return &Feed{
		source: source,
		logger: logger,
		tokens: make(map[string]uint64),
		snaps:  make(map[string][]domain.Slot),
	}
}

// LoadVenueDay загружает слоты всех кортов площадки на дату
//
// Каждый корт загружается независимым запросом. Результат возвращается
// вызывающей стороне всегда; общий снимок обновляется только если за время
// загрузки не начался более новый запрос по тому же ключу
func (f *Feed) LoadVenueDay(ctx context.Context, venueID int64, date time.Time, courtIDs []int64) ([]domain.Slot, error) {
	key := feedKey(venueID, date)
	token := f.begin(key)

	type fetchResult struct {
		slots []domain.Slot
		err   error
	}

	results := make([]fetchResult, len(courtIDs))

	var wg sync.WaitGroup
	for i, courtID := range courtIDs {
		wg.Add(1)
		go func(i int, courtID int64) {
			defer wg.Done()
			slots, err := f.source.GetByCourtAndDate(ctx, courtID, date)
			results[i] = fetchResult{slots: slots, err: err}
		}(i, courtID)
	}
	wg.Wait()

	merged := make([]domain.Slot, 0)
	for i := range results {
		if results[i].err != nil {
			// Ошибка репозитория пробрасывается без повторов
			return nil, fmt.Errorf("slotfeed: court %d: %w", courtIDs[i], results[i].err)
		}
		merged = append(merged, results[i].slots...)
	}

	if !f.publish(key, token, merged) {
		f.logger.Info("slotfeed: superseded load discarded for %s (token=%d)", key, token)
	}

	return merged, nil
}

// Snapshot возвращает последний опубликованный снимок по ключу
func (f *Feed) Snapshot(venueID int64, date time.Time) ([]domain.Slot, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	snap, ok := f.snaps[feedKey(venueID, date)]
	return snap, ok
}

// begin выдает новый токен и делает все прежние загрузки по ключу устаревшими
func (f *Feed) begin(key string) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.next++
	f.tokens[key] = f.next
	return f.next
}

// publish записывает снимок, только если токен всё ещё актуален
func (f *Feed) publish(key string, token uint64, slots []domain.Slot) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.tokens[key] != token {
		return false
	}
	f.snaps[key] = slots
	return true
}

func feedKey(venueID int64, date time.Time) string {
	return fmt.Sprintf("%d:%s", venueID, date.Format(domain.DateFormat))
}
