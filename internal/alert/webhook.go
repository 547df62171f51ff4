package alert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"homecare-chatbot/pkg"
)

// WebhookSink posts alerts as JSON to clinician webhook URLs.  The body
// carries the structured payload plus the rendered message so simple
// receivers (pagers, chat bridges) can forward the text as-is.
type WebhookSink struct {
	client *http.Client
}

// NewWebhookSink builds a sink with the given per-request timeout.
func NewWebhookSink(timeout time.Duration) *WebhookSink {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WebhookSink{client: &http.Client{Timeout: timeout}}
}

type webhookBody struct {
	pkg.AlertPayload
	Message string `json:"message"`
}

// Deliver implements Sink.
func (s *WebhookSink) Deliver(ctx context.Context, recipient string, a pkg.AlertPayload) error {
	body, err := json.Marshal(webhookBody{AlertPayload: a, Message: Message(a)})
	if err != nil {
		return fmt.Errorf("marshal alert: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, recipient, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build alert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post alert: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("alert recipient returned %d", resp.StatusCode)
	}
	return nil
}
