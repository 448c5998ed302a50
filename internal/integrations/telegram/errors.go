package telegram

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("telegram client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе Bot API
	ErrInvalidResponse = errors.New("telegram client: invalid response")

	// ErrNotConfigured возвращается, когда токен или chat_id не настроены
	ErrNotConfigured = errors.New("telegram client: bot token or chat id not configured")
)
