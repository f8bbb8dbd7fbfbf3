// Package slack implements the webhook sink: one lead submission becomes one
// block-formatted message posted to an incoming webhook.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kitchencraft/site-api/internal/contact"
	"github.com/kitchencraft/site-api/pkg/logging"
)

// Config controls the Slack client.
type Config struct {
	WebhookURL string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *logging.Logger
}

// Client posts messages to a Slack incoming webhook.
type Client struct {
	webhookURL string
	httpClient *http.Client
	logger     *logging.Logger
}

// New creates a configured Client.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.WebhookURL) == "" {
		return nil, errors.New("slack: webhook URL is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		webhookURL: cfg.WebhookURL,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

type textObject struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type block struct {
	Type   string       `json:"type"`
	Text   *textObject  `json:"text,omitempty"`
	Fields []textObject `json:"fields,omitempty"`
}

type webhookMessage struct {
	Text   string  `json:"text"`
	Blocks []block `json:"blocks"`
}

// Send posts the lead as a summary line plus a structured field block.
func (c *Client) Send(ctx context.Context, sub contact.Submission, ictx contact.IntegrationContext) error {
	fileText := "—"
	if ictx.FileURL != "" {
		fileText = fmt.Sprintf("<%s|Відкрити файл>", ictx.FileURL)
	}

	msg := webhookMessage{
		Text: contact.Title(sub),
		Blocks: []block{
			{Type: "section", Text: &textObject{Type: "mrkdwn", Text: "*Нова заявка з сайту*"}},
			{Type: "section", Fields: []textObject{
				{Type: "mrkdwn", Text: "*Імʼя*\n" + sub.Name},
				{Type: "mrkdwn", Text: "*Телефон*\n" + sub.Phone},
				{Type: "mrkdwn", Text: "*Email*\n" + orDash(sub.Email)},
				{Type: "mrkdwn", Text: "*Бюджет*\n" + orDash(sub.Budget)},
				{Type: "mrkdwn", Text: "*Канал*\n" + sub.PreferredContact},
			}},
			{Type: "section", Text: &textObject{Type: "mrkdwn", Text: "*Повідомлення*\n" + sub.Message}},
			{Type: "section", Text: &textObject{Type: "mrkdwn", Text: "*Файл*\n" + fileText}},
		},
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("slack: marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("slack: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("slack: post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("slack: webhook returned %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	c.logger.Info("slack notification sent")
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
