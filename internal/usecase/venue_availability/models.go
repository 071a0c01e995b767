package venue_availability

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// Request модель запроса доступности площадки на дату
type Request struct {
	VenueID  int64     // ID площадки
	Date     time.Time // Дата (без времени)
	Capacity int       // Сколько игроков нужно разместить
}

// Response модель ответа с доступностью площадки
type Response struct {
	VenueID        int64         // ID площадки
	Date           time.Time     // Запрошенная дата
	RequiredCourts int           // Сколько кортов нужно под capacity
	CanSatisfy     bool          // Может ли площадка принять всех игроков
	Slots          []domain.Slot // Слоты всех кортов, помеченные courtID
	HourBuckets    []HourBucket  // Почасовая сетка доступности
}

// HourBucket один час сетки доступности площадки
type HourBucket struct {
	StartTime         types.TimeString // Начало часа
	EndTime           types.TimeString // Конец часа
	AvailableCourtIDs []int64          // Корты со свободным слотом, покрывающим час
	Satisfies         bool             // Хватает ли свободных кортов под capacity
}
