// Package notify implements the Notifier port. The default implementation
// posts to an SMS gateway webhook; the noop variant serves local development
// and tests.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/core/ports"
)

// SMSWebhookNotifier delivers notifications by posting to an HTTP gateway.
type SMSWebhookNotifier struct {
	url    string
	token  string
	client *http.Client
}

// NewSMSWebhookNotifier creates a notifier targeting the given gateway URL.
func NewSMSWebhookNotifier(url, token string) *SMSWebhookNotifier {
	return &SMSWebhookNotifier{
		url:   strings.TrimSpace(url),
		token: strings.TrimSpace(token),
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

func (s *SMSWebhookNotifier) Notify(ctx context.Context, n ports.Notification) error {
	if s.url == "" {
		return errors.New("sms webhook url not configured")
	}

	payload := map[string]string{
		"to":   n.Recipient,
		"body": n.Message,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sms webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// NoopNotifier discards notifications. Used when no gateway is configured.
type NoopNotifier struct{}

func (NoopNotifier) Notify(context.Context, ports.Notification) error {
	return nil
}
