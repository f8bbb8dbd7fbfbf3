// Package pipedrive implements the CRM sink: one lead submission becomes a
// person, a lead referencing the person, and a note with the message details.
package pipedrive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kitchencraft/site-api/internal/contact"
	"github.com/kitchencraft/site-api/pkg/logging"
)

const defaultBaseURL = "https://api.pipedrive.com/v1"

// Config controls the Pipedrive client.
type Config struct {
	BaseURL    string
	APIToken   string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *logging.Logger
}

// Client talks to the Pipedrive REST API.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
	logger     *logging.Logger
}

// New creates a configured Client.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIToken) == "" {
		return nil, errors.New("pipedrive: API token is required")
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
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
		baseURL:    baseURL,
		apiToken:   cfg.APIToken,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

type contactValue struct {
	Value   string `json:"value"`
	Primary bool   `json:"primary"`
}

type createPersonRequest struct {
	Name  string         `json:"name"`
	Email []contactValue `json:"email,omitempty"`
	Phone []contactValue `json:"phone,omitempty"`
}

type createLeadRequest struct {
	Title    string `json:"title"`
	PersonID int64  `json:"person_id"`
}

type createNoteRequest struct {
	LeadID  string `json:"lead_id"`
	Content string `json:"content"`
}

// Send pushes one submission into the CRM. The three calls are one logical
// operation: failure at any step fails the whole sink invocation, and a
// partially created person is accepted as a known side effect.
func (c *Client) Send(ctx context.Context, sub contact.Submission, ictx contact.IntegrationContext) error {
	person := createPersonRequest{Name: sub.Name}
	if sub.Email != "" {
		person.Email = []contactValue{{Value: sub.Email, Primary: true}}
	}
	if sub.Phone != "" {
		person.Phone = []contactValue{{Value: sub.Phone, Primary: true}}
	}

	var personResp struct {
		Data struct {
			ID int64 `json:"id"`
		} `json:"data"`
	}
	if err := c.post(ctx, "/persons", person, &personResp); err != nil {
		return err
	}
	if personResp.Data.ID == 0 {
		return errors.New("pipedrive: person created without ID")
	}

	var leadResp struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	lead := createLeadRequest{Title: contact.Title(sub), PersonID: personResp.Data.ID}
	if err := c.post(ctx, "/leads", lead, &leadResp); err != nil {
		return err
	}
	if leadResp.Data.ID == "" {
		return errors.New("pipedrive: lead created without ID")
	}

	note := createNoteRequest{
		LeadID: leadResp.Data.ID,
		Content: strings.Join([]string{
			"Повідомлення: " + sub.Message,
			"Бюджет: " + orDash(sub.Budget),
			"Файл: " + orDash(ictx.FileURL),
		}, "\n"),
	}
	if err := c.post(ctx, "/notes", note, nil); err != nil {
		return err
	}

	c.logger.Info("pipedrive lead synced", "person_id", personResp.Data.ID, "lead_id", leadResp.Data.ID)
	return nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("pipedrive: marshal %s body: %w", path, err)
	}

	endpoint := c.baseURL + path + "?api_token=" + url.QueryEscape(c.apiToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("pipedrive: build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("pipedrive: %s request: %w", path, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("pipedrive: %s returned %d: %s", path, resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("pipedrive: decode %s response: %w", path, err)
		}
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
