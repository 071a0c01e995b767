package create_booking

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrSlotNotFound возвращается, когда один из выбранных слотов не найден
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrSlotNotAvailable возвращается, когда один из выбранных слотов уже занят
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrNotContiguous возвращается, когда выбранные слоты не образуют непрерывный блок
	ErrNotContiguous = errors.New("create_booking: slots do not form a contiguous block")

	// ErrTooLateToBook возвращается, когда начало блока нарушает lead time
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
