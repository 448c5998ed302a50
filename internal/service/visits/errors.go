package visits

import "errors"

var (
	// ErrVisitNotFound возвращается, когда визит не найден
	ErrVisitNotFound = errors.New("visit not found")

	// ErrCannotCancel возвращается, когда визит не может быть отменён
	ErrCannotCancel = errors.New("visit cannot be cancelled")

	// ErrCapacityExceeded возвращается, когда новый размер группы не помещается
	ErrCapacityExceeded = errors.New("room capacity exceeded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrReminderFailed возвращается, когда напоминание не удалось отправить
	ErrReminderFailed = errors.New("reminder delivery failed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
