package quote_price

import "time"

// Request модель запроса на расчет стоимости выбора
type Request struct {
	CourtID int64     // ID корта
	Date    time.Time // Дата выбора
	SlotIDs []int64   // Выбранные слоты (непрерывный блок)
}

// Response модель ответа с рассчитанной стоимостью
type Response struct {
	CourtID         int64   // ID корта
	SlotCount       int     // Количество слотов в блоке
	HourlyRate      float64 // Примененная ставка за слот
	Peak            bool    // Ставка пиковая или нет
	Total           float64 // Итоговая стоимость блока
	DefaultsApplied bool    // Использовались ли дефолтные значения профиля
}
