package get_day_slots

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// filterSlotsForDate отбирает слоты на указанную дату и применяет правило
// минимального времени до начала (lead time)
//
// Правило действует ТОЛЬКО если запрошенная дата - сегодня: слот остаётся,
// если его начало СТРОГО позже now + leadTime. Для будущих дат фильтрация
// по времени не применяется
//
// Примеры (now = 10:00, leadTime = 2ч):
// - слот сегодня в 11:30 → отбрасывается (раньше 12:00)
// - слот сегодня в 12:00 → отбрасывается (не строго позже)
// - слот сегодня в 12:01 → остаётся
// - слот завтра в 08:00 → остаётся независимо от now
func filterSlotsForDate(slots []domain.Slot, date time.Time, now time.Time, leadTimeHours int) []domain.Slot {
	result := make([]domain.Slot, 0, len(slots))

	applyLeadTime := isSameDay(date, now)
	cutoff := now.Add(time.Duration(leadTimeHours) * time.Hour)

	for i := range slots {
		if !isSameDay(slots[i].Date, date) {
			continue
		}

		if applyLeadTime {
			start, err := slots[i].StartTime.At(date)
			if err != nil {
				// Слот с нечитаемым временем не показываем
				continue
			}
			if !start.After(cutoff) {
				continue
			}
		}

		result = append(result, slots[i])
	}

	// Порядок репозитория не гарантирован, сортируем сами
	domain.SortSlotsByStart(result)

	return result
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
