package select_slot

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// Mode режим взаимодействия с выбором слотов
type Mode string

const (
	// ModeAppend одиночные клики: добавление/снятие соседних слотов
	ModeAppend Mode = "append"

	// ModeRange построение диапазона: клик двигает границы выбора
	ModeRange Mode = "range"
)

// RejectReason причина отказа в изменении выбора
type RejectReason string

const (
	ReasonDifferentDate   RejectReason = "different_date"   // клик по слоту другой даты при непустом выборе
	ReasonNotContiguous   RejectReason = "not_contiguous"   // изменение нарушает непрерывность выбора
	ReasonSlotUnavailable RejectReason = "slot_unavailable" // в диапазон попадает занятый слот
	ReasonSlotUnknown     RejectReason = "slot_unknown"     // слота нет в списке слотов активной даты
)

// Result результат попытки изменить выбор
//
// Отказ - это ожидаемый исход взаимодействия, а не ошибка: он возвращается
// явным флагом с причиной, чтобы вызывающая сторона могла показать отклик
// пользователю. При отказе Selection - это НЕИЗМЕНЕННЫЙ исходный выбор
type Result struct {
	Selection domain.SelectionRange
	Rejected  bool
	Reason    RejectReason
}

func accepted(selection domain.SelectionRange) Result {
	return Result{Selection: selection}
}

func rejected(selection domain.SelectionRange, reason RejectReason) Result {
	return Result{Selection: selection, Rejected: true, Reason: reason}
}

// Request модель запроса на изменение выбора
type Request struct {
	CourtID         int64     // ID корта
	Date            time.Time // Активная дата выбора
	SelectedSlotIDs []int64   // Текущий выбор (ID слотов по возрастанию времени)
	ClickedSlotID   int64     // Слот, по которому кликнули
	Mode            Mode      // Режим взаимодействия
}

// Response модель ответа с новым состоянием выбора
type Response struct {
	Selection domain.SelectionRange // Новый (или прежний при отказе) выбор
	Rejected  bool                  // Было ли изменение отклонено
	Reason    RejectReason          // Причина отказа, если был
}
