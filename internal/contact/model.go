// Package contact implements the lead-submission pipeline behind the site's
// contact form: validation, attachment upload, fan-out to the configured
// notification integrations, and persistence of the lead record.
package contact

import (
	"context"

	"github.com/kitchencraft/site-api/internal/storage"
)

// Submission is a validated (or to-be-validated) contact-form payload.
type Submission struct {
	Name             string
	Phone            string
	Email            string
	Message          string
	PreferredContact string
	Budget           string
	Attachment       *storage.File
}

// IntegrationContext carries the single cross-cutting fact produced by the
// uploader: the resolved attachment URL. Empty means no attachment. It is
// read-only for every sink.
type IntegrationContext struct {
	FileURL string
}

// Sink is one outbound notification integration (CRM, chat bot, webhook).
type Sink interface {
	Send(ctx context.Context, sub Submission, ictx IntegrationContext) error
}

// Uploader stores an attachment and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, f storage.File) (string, error)
}

// Sink identifiers as they appear in API responses and warnings.
const (
	SinkCRM     = "crm"
	SinkChat    = "chat"
	SinkWebhook = "webhook"
)

// SinkStatus is the per-sink outcome of one submission.
type SinkStatus struct {
	Enabled bool   `json:"enabled"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// IntegrationStatus aggregates all sink outcomes.
type IntegrationStatus struct {
	CRM     SinkStatus `json:"crm"`
	Chat    SinkStatus `json:"chat"`
	Webhook SinkStatus `json:"webhook"`
}

// State is the terminal state of one submission.
type State int

const (
	// StateInvalid means validation rejected the submission; nothing ran.
	StateInvalid State = iota
	// StateSucceeded means the lead was persisted and every enabled sink succeeded.
	StateSucceeded
	// StatePartial means the lead was persisted but at least one enabled sink
	// failed, or no sink is configured at all.
	StatePartial
	// StateFailed means the upload or the persistence write failed; the
	// submission was not (fully) captured.
	StateFailed
)

// Outcome is the pipeline's result for one submission. User-facing message
// selection and localization happen at the HTTP layer.
type Outcome struct {
	State             State
	FieldErrors       map[string][]string
	Status            IntegrationStatus
	FailedSinks       []string
	NoSinksConfigured bool
	FileURL           string
	LeadID            string
}
