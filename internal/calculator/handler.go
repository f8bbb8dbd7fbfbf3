package calculator

import (
	"encoding/json"
	"net/http"

	"github.com/kitchencraft/site-api/pkg/logging"
)

// Handler serves the calculator quote endpoint.
type Handler struct {
	config Config
	logger *logging.Logger
}

// NewHandler creates a quote handler over the given pricing config.
func NewHandler(config Config, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{config: config, logger: logger}
}

// QuoteResponse is the response body for POST /api/calculator/quote.
type QuoteResponse struct {
	Success bool              `json:"success"`
	Quote   *Quote            `json:"quote,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Quote handles POST /api/calculator/quote.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil {
		h.writeResponse(w, http.StatusBadRequest, QuoteResponse{
			Success: false,
			Errors:  map[string]string{"body": "invalid JSON"},
		})
		return
	}

	quote, fieldErrors := h.config.Price(req)
	if fieldErrors != nil {
		h.writeResponse(w, http.StatusUnprocessableEntity, QuoteResponse{
			Success: false,
			Errors:  fieldErrors,
		})
		return
	}

	h.logger.Info("calculator quote computed", "total", quote.Total, "items", len(quote.Items))
	h.writeResponse(w, http.StatusOK, QuoteResponse{Success: true, Quote: &quote})
}

func (h *Handler) writeResponse(w http.ResponseWriter, status int, body QuoteResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode quote response", "error", err)
	}
}
