package get_available_dates

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// availableDates возвращает уникальные даты, на которые есть хотя бы один
// свободный слот. Дата без свободных слотов (всё занято или корт закрыт)
// в календаре не появляется.
func availableDates(slots []domain.Slot) []time.Time {
	seen := make(map[string]time.Time)

	for i := range slots {
		if !slots[i].IsAvailable() {
			continue
		}
		key := slots[i].Date.Format(domain.DateFormat)
		if _, ok := seen[key]; !ok {
			seen[key] = dateOnly(slots[i].Date)
		}
	}

	dates := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	return dates
}

// dateOnly обнуляет время, оставляя только календарную дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
