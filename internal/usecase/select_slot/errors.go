package select_slot

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidSelection возвращается, когда переданный текущий выбор
	// сам по себе нарушает инвариант (не наша мутация, а ошибка вызова)
	ErrInvalidSelection = errors.New("selection violates contiguity invariant")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
