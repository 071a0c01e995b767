package blackout_dates

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// requiredCourtCount возвращает, сколько кортов нужно, чтобы разместить
// capacity игроков при вместимости perCourtCapacity на корт
func requiredCourtCount(capacity, perCourtCapacity int) int {
	if capacity <= 0 {
		return 0
	}
	return (capacity + perCourtCapacity - 1) / perCourtCapacity
}

// computeBlackoutDates возвращает даты периода, на которые площадка не
// может разместить capacity игроков ни в одном временном окне
//
// Дата попадает в blackout, если НИ один час рабочей сетки не имеет
// одновременно requiredCourts свободных кортов. Если суммарная вместимость
// всех кортов меньше capacity, в blackout попадает весь период
func computeBlackoutDates(
	courts []domain.Court,
	slots []domain.Slot,
	from, to time.Time,
	capacity, perCourtCapacity int,
	now time.Time,
	leadTimeHours int,
) []time.Time {
	blackout := make([]time.Time, 0)
	required := requiredCourtCount(capacity, perCourtCapacity)

	// Вместимости не хватает в принципе: blackout на весь период
	if len(courts)*perCourtCapacity < capacity {
		for d := dateOnly(from); !d.After(to); d = d.AddDate(0, 0, 1) {
			blackout = append(blackout, d)
		}
		return blackout
	}

	// Рабочие часы опорного корта, как и в сетке доступности площадки
	reference, _ := courts[0].Profile.Normalized()

	slotsByDate := make(map[string][]domain.Slot)
	for i := range slots {
		key := slots[i].Date.Format(domain.DateFormat)
		slotsByDate[key] = append(slotsByDate[key], slots[i])
	}

	for d := dateOnly(from); !d.After(to); d = d.AddDate(0, 0, 1) {
		daySlots := slotsByDate[d.Format(domain.DateFormat)]
		selectable := selectableSlots(daySlots, d, now, leadTimeHours)

		if !dateHasWindow(reference, selectable, required) {
			blackout = append(blackout, d)
		}
	}

	return blackout
}

// dateHasWindow проверяет, есть ли на дате хотя бы один час рабочей
// сетки, в котором свободно не меньше required кортов одновременно
func dateHasWindow(reference domain.PricingProfile, slots []domain.Slot, required int) bool {
	if reference.OpeningTime.IsZero() || reference.ClosingTime.IsZero() {
		return false
	}

	for cur := reference.OpeningTime; cur.IsBefore(reference.ClosingTime); {
		end, err := cur.AddMinutes(60)
		if err != nil || end.IsAfter(reference.ClosingTime) {
			break
		}
		if countCourtsCoveringHour(slots, cur, end) >= required {
			return true
		}
		cur = end
	}

	return false
}

// countCourtsCoveringHour считает корты со свободным слотом, целиком
// покрывающим час [start, end)
func countCourtsCoveringHour(slots []domain.Slot, start, end types.TimeString) int {
	seen := make(map[int64]bool)

	for i := range slots {
		if !slots[i].IsAvailable() {
			continue
		}
		if slots[i].StartTime.IsAfter(start) || slots[i].EndTime.IsBefore(end) {
			continue
		}
		seen[slots[i].CourtID] = true
	}

	return len(seen)
}

// selectableSlots применяет lead time к слотам даты (правило актуально
// только если дата - сегодня)
func selectableSlots(slots []domain.Slot, date time.Time, now time.Time, leadTimeHours int) []domain.Slot {
	if !isSameDay(date, now) {
		return slots
	}

	cutoff := now.Add(time.Duration(leadTimeHours) * time.Hour)
	result := make([]domain.Slot, 0, len(slots))

	for i := range slots {
		start, err := slots[i].StartTime.At(date)
		if err != nil {
			continue
		}
		if start.After(cutoff) {
			result = append(result, slots[i])
		}
	}

	return result
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// dateOnly обнуляет время, оставляя только календарную дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
