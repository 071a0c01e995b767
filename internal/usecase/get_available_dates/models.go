package get_available_dates

import "time"

// Request модель запроса на получение доступных дат корта
type Request struct {
	CourtID int64     // ID корта
	From    time.Time // Начало периода (без времени)
	To      time.Time // Конец периода (включительно)
}

// Response модель ответа со списком дат, где есть хотя бы один свободный слот
type Response struct {
	CourtID int64       // ID корта
	Dates   []time.Time // Даты по возрастанию
}
