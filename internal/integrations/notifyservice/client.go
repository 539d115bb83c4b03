package notifyservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с сервисом уведомлений
// Доставка уведомлений всегда best-effort: сбой доставки никогда не должен
// ломать операцию, которая его породила
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Notify отправляет уведомление получателю
func (c *Client) Notify(ctx context.Context, recipientID int64, kind EventKind, payload Payload) error {
	url := fmt.Sprintf("%s/internal/notifications", c.baseURL)

	body, err := json.Marshal(notificationRequest{
		EventID:     uuid.NewString(),
		RecipientID: recipientID,
		EventKind:   kind,
		Payload:     payload,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted, http.StatusNoContent:
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}

// NotifyBestEffort отправляет уведомление, проглатывая любые ошибки доставки
// Единственный след сбоя - запись в лог
func (c *Client) NotifyBestEffort(ctx context.Context, recipientID int64, kind EventKind, payload Payload) {
	if err := c.Notify(ctx, recipientID, kind, payload); err != nil {
		c.log.Error("NotifyService unavailable, dropping %s notification for recipient=%d: %v",
			kind, recipientID, err)
		return
	}
	c.log.Info("Notification %s delivered to recipient=%d", kind, recipientID)
}
