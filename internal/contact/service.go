package contact

import (
	"context"
	"fmt"
	"sync"

	"github.com/kitchencraft/site-api/internal/leads"
	"github.com/kitchencraft/site-api/internal/observability/metrics"
	"github.com/kitchencraft/site-api/pkg/logging"
)

// Service orchestrates one submission: validate, upload the attachment,
// fan out to every enabled sink, persist the lead. A nil sink is a disabled
// sink; a nil uploader disables attachments.
type Service struct {
	uploader Uploader
	crm      Sink
	chat     Sink
	webhook  Sink
	repo     leads.Repository
	logger   *logging.Logger
	metrics  *metrics.ContactMetrics
}

// NewService wires the pipeline.
func NewService(uploader Uploader, crm, chat, webhook Sink, repo leads.Repository, logger *logging.Logger, m *metrics.ContactMetrics) *Service {
	if repo == nil {
		panic("contact: leads repository required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		uploader: uploader,
		crm:      crm,
		chat:     chat,
		webhook:  webhook,
		repo:     repo,
		logger:   logger,
		metrics:  m,
	}
}

// Submit runs the full pipeline. The returned error is non-nil only for
// pipeline-fatal failures (upload, persistence); sink failures surface inside
// the Outcome. On validation rejection the Outcome carries field errors and
// nothing else runs.
func (s *Service) Submit(ctx context.Context, sub Submission) (Outcome, error) {
	if fieldErrs := Validate(sub); fieldErrs != nil {
		s.metrics.ObserveSubmission("invalid")
		return Outcome{State: StateInvalid, FieldErrors: fieldErrs}, nil
	}

	var out Outcome

	if sub.Attachment != nil {
		if s.uploader == nil {
			s.metrics.ObserveSubmission("failed")
			return Outcome{State: StateFailed}, fmt.Errorf("contact: attachment received but storage is not configured")
		}
		url, err := s.uploader.Upload(ctx, *sub.Attachment)
		if err != nil {
			s.logger.Error("attachment upload failed", "error", err)
			s.metrics.ObserveSubmission("failed")
			return Outcome{State: StateFailed}, fmt.Errorf("contact: upload attachment: %w", err)
		}
		out.FileURL = url
	}

	ictx := IntegrationContext{FileURL: out.FileURL}
	out.Status, out.FailedSinks = s.fanOut(ctx, sub, ictx)
	out.NoSinksConfigured = !out.Status.CRM.Enabled && !out.Status.Chat.Enabled && !out.Status.Webhook.Enabled

	rec := &leads.CreateLeadRecord{
		Name:             sub.Name,
		Phone:            sub.Phone,
		Email:            sub.Email,
		Message:          sub.Message,
		PreferredContact: sub.PreferredContact,
		Budget:           sub.Budget,
		FileURL:          out.FileURL,
		CRMSynced:        out.Status.CRM.Success,
		ChatSynced:       out.Status.Chat.Success,
		WebhookSynced:    out.Status.Webhook.Success,
	}
	lead, err := s.repo.Create(ctx, rec)
	if err != nil {
		s.logger.Error("lead persistence failed", "error", err)
		s.metrics.ObserveSubmission("failed")
		out.State = StateFailed
		return out, fmt.Errorf("contact: persist lead: %w", err)
	}
	out.LeadID = lead.ID

	if len(out.FailedSinks) == 0 && !out.NoSinksConfigured {
		out.State = StateSucceeded
		s.metrics.ObserveSubmission("succeeded")
	} else {
		out.State = StatePartial
		s.metrics.ObserveSubmission("partial")
	}

	s.logger.Info("lead captured",
		"lead_id", lead.ID,
		"crm_synced", rec.CRMSynced,
		"chat_synced", rec.ChatSynced,
		"webhook_synced", rec.WebhookSynced,
		"has_file", out.FileURL != "",
	)
	return out, nil
}

type sinkResult struct {
	name string
	err  error
}

// fanOut dispatches every enabled sink concurrently and waits for all of them
// to settle. One sink's failure never cancels a sibling; a panicking sink is
// recorded as a failed one.
func (s *Service) fanOut(ctx context.Context, sub Submission, ictx IntegrationContext) (IntegrationStatus, []string) {
	status := IntegrationStatus{}

	dispatch := []struct {
		name   string
		sink   Sink
		status *SinkStatus
	}{
		{SinkCRM, s.crm, &status.CRM},
		{SinkChat, s.chat, &status.Chat},
		{SinkWebhook, s.webhook, &status.Webhook},
	}

	var wg sync.WaitGroup
	results := make([]sinkResult, len(dispatch))
	for i, d := range dispatch {
		if d.sink == nil {
			continue
		}
		d.status.Enabled = true
		wg.Add(1)
		go func(i int, name string, sink Sink) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					results[i] = sinkResult{name, normalizeError(r, "sink panicked")}
				}
			}()
			results[i] = sinkResult{name, sink.Send(ctx, sub, ictx)}
		}(i, d.name, d.sink)
	}
	wg.Wait()

	var failed []string
	for i, d := range dispatch {
		if !d.status.Enabled {
			continue
		}
		if err := results[i].err; err != nil {
			d.status.Error = err.Error()
			failed = append(failed, d.name)
			s.logger.Error("integration failed", "sink", d.name, "error", err)
			s.metrics.ObserveSink(d.name, "error")
		} else {
			d.status.Success = true
			s.metrics.ObserveSink(d.name, "ok")
		}
	}
	return status, failed
}
