package quote_price

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("court not found")

	// ErrSlotNotFound возвращается, когда слот выбора не найден на дате
	ErrSlotNotFound = errors.New("selected slot not found")

	// ErrInvalidSelection возвращается, когда выбор не является
	// непрерывным блоком слотов одной даты
	ErrInvalidSelection = errors.New("selection violates contiguity invariant")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
