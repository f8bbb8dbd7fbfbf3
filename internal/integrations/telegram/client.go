// Package telegram implements the chat sink: one lead submission becomes one
// bot message in the managers' channel.
package telegram

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

const defaultAPIURL = "https://api.telegram.org"

// Config controls the Telegram client.
type Config struct {
	APIURL     string
	BotToken   string
	ChatID     string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *logging.Logger
}

// Client sends messages through the Telegram Bot API.
type Client struct {
	apiURL     string
	botToken   string
	chatID     string
	httpClient *http.Client
	logger     *logging.Logger
}

// New creates a configured Client.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BotToken) == "" || strings.TrimSpace(cfg.ChatID) == "" {
		return nil, errors.New("telegram: bot token and chat id are required")
	}
	apiURL := strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/")
	if apiURL == "" {
		apiURL = defaultAPIURL
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
		apiURL:     apiURL,
		botToken:   cfg.BotToken,
		chatID:     cfg.ChatID,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// Send posts the formatted lead text as one chat message.
func (c *Client) Send(ctx context.Context, sub contact.Submission, ictx contact.IntegrationContext) error {
	body, err := json.Marshal(sendMessageRequest{
		ChatID: c.chatID,
		Text:   contact.FormatText(sub, ictx),
	})
	if err != nil {
		return fmt.Errorf("telegram: marshal message: %w", err)
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", c.apiURL, c.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("telegram: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram: send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("telegram: sendMessage returned %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	c.logger.Info("telegram notification sent", "chat_id", c.chatID)
	return nil
}
