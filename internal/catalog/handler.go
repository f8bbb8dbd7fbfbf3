package catalog

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kitchencraft/site-api/pkg/logging"
)

// Handler serves the public catalog endpoints.
type Handler struct {
	repo   Repository
	logger *logging.Logger
}

// NewHandler creates a catalog handler.
func NewHandler(repo Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, logger: logger}
}

// ListResponse is the catalog response body.
type ListResponse struct {
	Projects []LocalizedProject `json:"projects"`
	Locale   string             `json:"locale"`
}

// List handles GET /api/projects.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.repo.All)
}

// Featured handles GET /api/projects/featured.
func (h *Handler) Featured(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.repo.Featured)
}

// respond localizes and writes a project list. A repository failure degrades
// to an empty list so the site keeps rendering.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, fetch func(context.Context) ([]*Project, error)) {
	locale := NormalizeLocale(r.URL.Query().Get("locale"))

	projects, err := fetch(r.Context())
	if err != nil {
		h.logger.Error("failed to fetch projects", "error", err)
		projects = nil
	}

	localized := make([]LocalizedProject, 0, len(projects))
	for _, p := range projects {
		localized = append(localized, p.Localize(locale))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ListResponse{Projects: localized, Locale: locale})
}
