package mailer

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailer client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса рассылки
	ErrInvalidResponse = errors.New("mailer client: invalid response")

	// ErrNoRecipient возвращается, когда у визита не указан email
	ErrNoRecipient = errors.New("mailer client: visit has no customer email")
)
