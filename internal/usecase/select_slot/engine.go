package select_slot

import (
	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// tryApply применяет клик по слоту к текущему выбору
//
// candidates - полный список слотов активной даты (отсортированный по
// времени начала), по нему проверяются непрерывность и доступность.
// При любом отказе возвращается исходный выбор без изменений
func tryApply(selection domain.SelectionRange, candidates []domain.Slot, clicked domain.Slot, mode Mode) Result {
	switch mode {
	case ModeRange:
		return tryApplyRange(selection, candidates, clicked)
	default:
		return tryApplyAppend(selection, clicked)
	}
}

// tryApplyAppend реализует режим одиночных кликов
//
// Клик по краевому слоту выбора снимает его; клик по внутреннему слоту
// отклоняется (удаление разорвало бы выбор). Клик по невыбранному слоту
// пробует добавить его: выбор пересортировывается и проверяется инвариант
// непрерывности целиком, поэтому практически выбор растет на один соседний
// слот за клик - несоседний кандидат проверку не пройдет
func tryApplyAppend(selection domain.SelectionRange, clicked domain.Slot) Result {
	// Клик по другой дате допустим только для пустого выбора
	if !selection.IsEmpty() && !selection.First().SameDate(&clicked) {
		return rejected(selection, ReasonDifferentDate)
	}

	// Снятие выбранного слота
	if selection.Contains(clicked.ID) {
		if !selection.IsEdge(clicked.ID) {
			return rejected(selection, ReasonNotContiguous)
		}
		next := make(domain.SelectionRange, 0, len(selection)-1)
		for i := range selection {
			if selection[i].ID != clicked.ID {
				next = append(next, selection[i])
			}
		}
		return accepted(next)
	}

	// Добавлять можно только свободный слот
	if !clicked.IsAvailable() {
		return rejected(selection, ReasonSlotUnavailable)
	}

	// Пробное добавление: сортируем и проверяем инвариант целиком
	next := make(domain.SelectionRange, 0, len(selection)+1)
	next = append(next, selection...)
	next = append(next, clicked)
	domain.SortSlotsByStart(next)

	if !next.IsContiguous() {
		return rejected(selection, ReasonNotContiguous)
	}

	return accepted(next)
}

// tryApplyRange реализует режим построения диапазона
//
// Клик до начала диапазона расширяет его влево, после конца - вправо,
// внутри - сжимает с конца. Диапазон материализуется как полная
// непрерывная последовательность слотов между границами включительно;
// операция проходит, только если КАЖДЫЙ слот пролёта присутствует в
// списке слотов даты и свободен
func tryApplyRange(selection domain.SelectionRange, candidates []domain.Slot, clicked domain.Slot) Result {
	// Пустой выбор: диапазон из одного слота
	if selection.IsEmpty() {
		if !clicked.IsAvailable() {
			return rejected(selection, ReasonSlotUnavailable)
		}
		return accepted(domain.SelectionRange{clicked})
	}

	if !selection.First().SameDate(&clicked) {
		return rejected(selection, ReasonDifferentDate)
	}

	// Клик по единственному выбранному слоту снимает выбор
	if len(selection) == 1 && selection.First().ID == clicked.ID {
		return accepted(domain.SelectionRange{})
	}

	// Вычисляем границы нового диапазона по времени начала
	lo := selection.First().StartTime
	hi := selection.Last().StartTime

	switch {
	case clicked.StartTime.IsBefore(lo):
		lo = clicked.StartTime
	default:
		// Клик после конца растягивает диапазон, клик внутри сжимает
		// его с конца - в обоих случаях новая правая граница это клик
		hi = clicked.StartTime
	}

	span, reason := materializeSpan(candidates, lo, hi)
	if reason != "" {
		return rejected(selection, reason)
	}

	return accepted(span)
}

// materializeSpan собирает непрерывную последовательность слотов между
// границами включительно. Возвращает причину отказа, если последовательность
// разорвана или содержит занятый слот
func materializeSpan(candidates []domain.Slot, lo, hi types.TimeString) (domain.SelectionRange, RejectReason) {
	span := make(domain.SelectionRange, 0)

	for i := range candidates {
		start := candidates[i].StartTime
		if start.IsBefore(lo) || start.IsAfter(hi) {
			continue
		}
		if !candidates[i].IsAvailable() {
			return nil, ReasonSlotUnavailable
		}
		span = append(span, candidates[i])
	}

	if len(span) == 0 {
		return nil, ReasonSlotUnknown
	}

	domain.SortSlotsByStart(span)

	// Границы должны совпасть и пролёт обязан быть сплошным
	if !span.First().StartTime.Equal(lo) || !span.Last().StartTime.Equal(hi) {
		return nil, ReasonSlotUnknown
	}
	if !span.IsContiguous() {
		return nil, ReasonNotContiguous
	}

	return span, ""
}
