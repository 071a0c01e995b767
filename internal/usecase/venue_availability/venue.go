package venue_availability

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

// buildHourBuckets строит почасовую сетку доступности площадки
//
// Рабочие часы берутся у ОДНОГО опорного корта (первого в списке), а не
// как объединение часов всех кортов. Если часы кортов различаются, сетка
// может занижать или завышать реальную доступность - известное ограничение
// текущего поведения, сохранено сознательно
func buildHourBuckets(reference domain.PricingProfile, slots []domain.Slot, requiredCourts int) []HourBucket {
	if reference.OpeningTime.IsZero() || reference.ClosingTime.IsZero() {
		return []HourBucket{}
	}

	buckets := make([]HourBucket, 0)

	for cur := reference.OpeningTime; cur.IsBefore(reference.ClosingTime); {
		end, err := cur.AddMinutes(60)
		if err != nil || end.IsAfter(reference.ClosingTime) {
			break
		}

		buckets = append(buckets, HourBucket{
			StartTime:         cur,
			EndTime:           end,
			AvailableCourtIDs: courtsCoveringHour(slots, cur, end),
		})
		cur = end
	}

	for i := range buckets {
		buckets[i].Satisfies = len(buckets[i].AvailableCourtIDs) >= requiredCourts
	}

	return buckets
}

// courtsCoveringHour возвращает корты, у которых есть свободный слот,
// целиком покрывающий час [start, end)
func courtsCoveringHour(slots []domain.Slot, start, end types.TimeString) []int64 {
	seen := make(map[int64]bool)
	courts := make([]int64, 0)

	for i := range slots {
		if !slots[i].IsAvailable() {
			continue
		}
		if slots[i].StartTime.IsAfter(start) || slots[i].EndTime.IsBefore(end) {
			continue
		}
		if !seen[slots[i].CourtID] {
			seen[slots[i].CourtID] = true
			courts = append(courts, slots[i].CourtID)
		}
	}

	return courts
}

// canSatisfy проверяет, может ли площадка принять capacity игроков:
// суммарная вместимость кортов достаточна И хотя бы в одном часе сетки
// свободно не меньше requiredCourts кортов одновременно
func canSatisfy(courtCount, perCourtCapacity, capacity int, buckets []HourBucket, requiredCourts int) bool {
	if courtCount*perCourtCapacity < capacity {
		return false
	}
	for i := range buckets {
		if len(buckets[i].AvailableCourtIDs) >= requiredCourts {
			return true
		}
	}
	return false
}

// filterSelectable отбирает слоты с учетом lead time, как в календаре
// одиночного корта (см. get_day_slots)
func filterSelectable(slots []domain.Slot, date time.Time, now time.Time, leadTimeHours int) []domain.Slot {
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
				continue
			}
			if !start.After(cutoff) {
				continue
			}
		}
		result = append(result, slots[i])
	}

	domain.SortSlotsByStart(result)

	return result
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
