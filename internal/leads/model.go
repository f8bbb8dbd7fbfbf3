package leads

import (
	"strings"
	"time"
)

// Preferred contact channels accepted by the site form.
const (
	ContactPhone    = "phone"
	ContactTelegram = "telegram"
	ContactEmail    = "email"
)

// Lead is one persisted contact-request submission.
type Lead struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	Email            *string   `json:"email"`
	Message          string    `json:"message"`
	PreferredContact string    `json:"preferred_contact"`
	Budget           *string   `json:"budget"`
	FileURL          *string   `json:"file_url"`
	CRMSynced        bool      `json:"crm_synced"`
	ChatSynced       bool      `json:"chat_synced"`
	WebhookSynced    bool      `json:"webhook_synced"`
	CreatedAt        time.Time `json:"created_at"`
}

// CreateLeadRecord is the write request for one lead row. It is produced by
// the contact pipeline after validation and fan-out, so the sync flags are
// already final.
type CreateLeadRecord struct {
	Name             string
	Phone            string
	Email            string
	Message          string
	PreferredContact string
	Budget           string
	FileURL          string
	CRMSynced        bool
	ChatSynced       bool
	WebhookSynced    bool
}

// Validate guards the repository against records that bypassed the form
// validator. It is intentionally looser than the form rules.
func (r *CreateLeadRecord) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrInvalidName
	}
	if strings.TrimSpace(r.Phone) == "" {
		return ErrMissingContact
	}
	if strings.TrimSpace(r.Message) == "" {
		return ErrMissingMessage
	}
	return nil
}

// nullable maps empty strings to NULL columns.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
