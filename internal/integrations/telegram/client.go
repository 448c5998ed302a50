package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент Telegram Bot API для служебных уведомлений персоналу
type Client struct {
	apiURL     string
	token      string
	chatID     int64
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Telegram
func NewClient(apiURL, token string, chatID int64, timeout time.Duration, log Logger) *Client {
	return &Client{
		apiURL: apiURL,
		token:  token,
		chatID: chatID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendMessage отправляет текстовое сообщение в настроенный чат
func (c *Client) SendMessage(ctx context.Context, text string) error {
	if c.token == "" || c.chatID == 0 {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(sendMessageRequest{
		ChatID: c.chatID,
		Text:   text,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal message: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.apiURL, c.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !apiResp.OK {
		return fmt.Errorf("%w: error_code=%d: %s", ErrInvalidResponse, apiResp.ErrorCode, apiResp.Description)
	}

	return nil
}
