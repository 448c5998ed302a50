package get_available_starts

import "errors"

var (
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("get_available_starts: invalid input data")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("get_available_starts: internal error")
)
