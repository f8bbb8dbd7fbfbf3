package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"

	"github.com/kitchencraft/site-api/pkg/logging"
)

func sampleProject() *Project {
	uk := "Кухня Модерн"
	en := "Modern kitchen"
	descUK := "Мінімалістична кухня"
	return &Project{
		ID:            "p-1",
		TitleUK:       &uk,
		TitleEN:       &en,
		DescriptionUK: &descUK,
	}
}

func TestLocalizeFallbackChain(t *testing.T) {
	p := sampleProject()

	if got := p.Localize("uk").Title; got != "Кухня Модерн" {
		t.Errorf("uk title = %q", got)
	}
	if got := p.Localize("en").Title; got != "Modern kitchen" {
		t.Errorf("en title = %q", got)
	}
	// No Polish translation: falls back to Ukrainian.
	if got := p.Localize("pl").Title; got != "Кухня Модерн" {
		t.Errorf("pl fallback title = %q", got)
	}
	// Untranslated description falls back too.
	if got := p.Localize("en").Description; got != "Мінімалістична кухня" {
		t.Errorf("en fallback description = %q", got)
	}

	empty := &Project{ID: "p-2"}
	if got := empty.Localize("uk").Title; got != "Kitchen project" {
		t.Errorf("default title = %q", got)
	}
}

func TestNormalizeLocale(t *testing.T) {
	for input, want := range map[string]string{
		"uk": "uk", "pl": "pl", "en": "en", "de": "uk", "": "uk",
	} {
		if got := NormalizeLocale(input); got != want {
			t.Errorf("NormalizeLocale(%q) = %q, want %q", input, got, want)
		}
	}
}

func projectRows() *pgxmock.Rows {
	uk := "Кухня Лофт"
	return pgxmock.NewRows([]string{"id", "slug", "title_uk", "title_pl", "title_en", "description_uk", "description_pl", "description_en", "price_start", "image_url", "is_featured"}).
		AddRow("p-1", nil, &uk, nil, nil, nil, nil, nil, nil, nil, true)
}

func TestPostgresFeatured(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgx mock: %v", err)
	}
	defer mock.Close()

	repo := newPostgresRepositoryWithQuerier(mock)
	mock.ExpectQuery("SELECT .+ FROM projects WHERE is_featured").WillReturnRows(projectRows())

	projects, err := repo.Featured(context.Background())
	if err != nil {
		t.Fatalf("featured failed: %v", err)
	}
	if len(projects) != 1 || !projects[0].IsFeatured {
		t.Fatalf("unexpected projects: %+v", projects)
	}
}

type stubRepo struct {
	projects []*Project
	err      error
}

func (s stubRepo) All(context.Context) ([]*Project, error)      { return s.projects, s.err }
func (s stubRepo) Featured(context.Context) ([]*Project, error) { return s.projects, s.err }

func TestHandlerListLocalizes(t *testing.T) {
	h := NewHandler(stubRepo{projects: []*Project{sampleProject()}}, logging.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/projects?locale=en", nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	var resp ListResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Locale != "en" {
		t.Errorf("locale = %s", resp.Locale)
	}
	if len(resp.Projects) != 1 || resp.Projects[0].Title != "Modern kitchen" {
		t.Errorf("unexpected projects: %+v", resp.Projects)
	}
}

func TestHandlerDegradesToEmptyList(t *testing.T) {
	h := NewHandler(stubRepo{err: errors.New("db down")}, logging.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("catalog errors must not surface, got %d", w.Code)
	}
	var resp ListResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Projects == nil || len(resp.Projects) != 0 {
		t.Errorf("expected empty array, got %+v", resp.Projects)
	}
}
