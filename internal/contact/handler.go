package contact

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/kitchencraft/site-api/internal/i18n"
	"github.com/kitchencraft/site-api/internal/storage"
	"github.com/kitchencraft/site-api/pkg/logging"
)

// maxFormMemory bounds the multipart parse; larger attachments spill to disk.
const maxFormMemory = 10 << 20

// maxAttachmentSize is the hard cap on one uploaded file.
const maxAttachmentSize = 20 << 20

// SubmissionResult is the response body for POST /api/contact.
type SubmissionResult struct {
	Success      bool                `json:"success"`
	Message      string              `json:"message"`
	Errors       map[string][]string `json:"errors,omitempty"`
	Warnings     []string            `json:"warnings,omitempty"`
	Integrations *IntegrationStatus  `json:"integrationStatus,omitempty"`
}

// Handler adapts HTTP form submissions to the pipeline.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates the contact-form handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

// Submit handles POST /api/contact multipart submissions.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	msgs := i18n.Resolve(r.URL.Query().Get("locale"), r.Header.Get("Accept-Language"))

	sub, err := parseForm(r)
	if err != nil {
		h.logger.Error("malformed contact form", "error", err)
		writeResult(w, http.StatusBadRequest, SubmissionResult{
			Success: false,
			Message: msgs.InvalidForm,
		})
		return
	}

	out, err := h.service.Submit(r.Context(), sub)
	switch out.State {
	case StateInvalid:
		writeResult(w, http.StatusUnprocessableEntity, SubmissionResult{
			Success: false,
			Message: msgs.ValidationFailed,
			Errors:  out.FieldErrors,
		})
	case StateFailed:
		// Detail stays in the server log; the visitor gets a generic message.
		writeResult(w, http.StatusInternalServerError, SubmissionResult{
			Success: false,
			Message: msgs.SubmitFailed,
		})
	case StateSucceeded:
		status := out.Status
		writeResult(w, http.StatusOK, SubmissionResult{
			Success:      true,
			Message:      msgs.SubmitSuccess,
			Integrations: &status,
		})
	case StatePartial:
		status := out.Status
		writeResult(w, http.StatusOK, SubmissionResult{
			Success:      true,
			Message:      msgs.SubmitPartial,
			Warnings:     buildWarnings(out, msgs),
			Integrations: &status,
		})
	default:
		h.logger.Error("unexpected pipeline state", "state", out.State, "error", err)
		writeResult(w, http.StatusInternalServerError, SubmissionResult{
			Success: false,
			Message: msgs.SubmitFailed,
		})
	}
}

func buildWarnings(out Outcome, msgs i18n.Messages) []string {
	var warnings []string
	if out.NoSinksConfigured {
		warnings = append(warnings, msgs.NoIntegrations)
	}
	for _, sink := range out.FailedSinks {
		warnings = append(warnings, fmt.Sprintf(msgs.IntegrationFailed, sink))
	}
	return warnings
}

// parseForm extracts the submission from a multipart request. Errors here mean
// structurally unparseable input, not field-level validation failures.
func parseForm(r *http.Request) (Submission, error) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return Submission{}, fmt.Errorf("contact: parse multipart form: %w", err)
	}

	sub := Submission{
		Name:             field(r, "name"),
		Phone:            field(r, "phone"),
		Email:            field(r, "email"),
		Message:          field(r, "message"),
		PreferredContact: field(r, "preferredContact"),
		Budget:           field(r, "budget"),
	}

	file, header, err := r.FormFile("file")
	if err == http.ErrMissingFile {
		return sub, nil
	}
	if err != nil {
		return Submission{}, fmt.Errorf("contact: read file part: %w", err)
	}
	defer file.Close()

	if header.Size > maxAttachmentSize {
		return Submission{}, fmt.Errorf("contact: attachment too large: %d bytes", header.Size)
	}
	data, err := io.ReadAll(io.LimitReader(file, maxAttachmentSize+1))
	if err != nil {
		return Submission{}, fmt.Errorf("contact: read attachment: %w", err)
	}
	// An empty file part is treated as no attachment.
	if len(data) == 0 {
		return sub, nil
	}

	sub.Attachment = &storage.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        int64(len(data)),
		Data:        data,
	}
	return sub, nil
}

func field(r *http.Request, name string) string {
	return strings.TrimSpace(r.FormValue(name))
}

func writeResult(w http.ResponseWriter, code int, res SubmissionResult) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(res)
}
