package quote_price

import "github.com/m04kA/SMC-CourtService/internal/domain"

// Quote результат расчета стоимости непрерывного блока слотов
type Quote struct {
	SlotCount       int
	HourlyRate      float64
	Peak            bool
	Total           float64
	DefaultsApplied bool
}

// computeQuote рассчитывает стоимость выбора по профилю корта
//
// Ставка определяется ОДИН раз - по времени начала ПЕРВОГО слота - и
// умножается на количество слотов. Блок, пересекающий границу пиковой
// зоны, целиком оплачивается по ставке первого слота. Это сознательное
// сохранение текущего поведения тарификации; выставление каждого слота
// по его собственной ставке - открытый продуктовый вопрос
func computeQuote(selection domain.SelectionRange, profile domain.PricingProfile) Quote {
	normalized, defaultsApplied := profile.Normalized()

	if selection.IsEmpty() {
		return Quote{DefaultsApplied: defaultsApplied}
	}

	start := selection.First().StartTime
	peak := normalized.IsPeak(start)
	rate := normalized.HourlyRate(start)

	return Quote{
		SlotCount:       len(selection),
		HourlyRate:      rate,
		Peak:            peak,
		Total:           rate * float64(len(selection)),
		DefaultsApplied: defaultsApplied,
	}
}
