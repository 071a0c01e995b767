package get_day_slots

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// Request модель запроса на получение слотов корта на дату
type Request struct {
	CourtID int64     // ID корта
	Date    time.Time // Дата (без времени)
}

// Response модель ответа со списком слотов, доступных для выбора
type Response struct {
	CourtID int64         // ID корта
	Date    time.Time     // Запрошенная дата
	Slots   []domain.Slot // Слоты по возрастанию времени начала
}
