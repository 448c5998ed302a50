package create_booking

import "errors"

var (
	// ErrNoSlotDefined возвращается, когда на запрошенную дату/время нет слота
	ErrNoSlotDefined = errors.New("create_booking: no slot defined for requested date")

	// ErrDayBlocked возвращается, когда день административно закрыт
	ErrDayBlocked = errors.New("create_booking: day is blocked")

	// ErrCapacityExceeded возвращается, когда зал не вмещает группу
	// в какой-то момент запрошенного интервала
	ErrCapacityExceeded = errors.New("create_booking: room capacity exceeded")

	// ErrOutsideOperatingHours возвращается, когда визит не помещается в часы работы
	ErrOutsideOperatingHours = errors.New("create_booking: visit does not fit operating hours")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
