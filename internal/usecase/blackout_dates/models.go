package blackout_dates

import "time"

// Request модель запроса blackout дат площадки
type Request struct {
	VenueID  int64     // ID площадки
	From     time.Time // Начало периода (без времени)
	To       time.Time // Конец периода (включительно)
	Capacity int       // Сколько игроков нужно разместить
}

// Response модель ответа со списком blackout дат
type Response struct {
	VenueID  int64       // ID площадки
	Capacity int         // Запрошенная вместимость
	Dates    []time.Time // Даты, когда площадка НЕ может принять всех игроков
}
