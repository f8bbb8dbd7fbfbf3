package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kitchencraft/site-api/internal/leads"
	"github.com/kitchencraft/site-api/pkg/logging"
)

func multipartBody(t *testing.T, fields map[string]string, fileName string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if fileName != "" {
		fw, err := w.CreateFormFile("file", fileName)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := fw.Write(fileContent); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func validFields() map[string]string {
	return map[string]string{
		"name":             "Олена",
		"phone":            "+380671234567",
		"email":            "olena@example.com",
		"message":          "Хочу кухню з островом на 14 кв.м",
		"preferredContact": "phone",
		"budget":           "5000-7000",
	}
}

func newTestHandler(crm, chat, webhook Sink, repo leads.Repository) *Handler {
	if repo == nil {
		repo = leads.NewInMemoryRepository()
	}
	svc := NewService(nil, crm, chat, webhook, repo, logging.Default(), nil)
	return NewHandler(svc, logging.Default())
}

func TestSubmitHandlerSuccess(t *testing.T) {
	h := newTestHandler(okSink(nil), okSink(nil), okSink(nil), nil)

	body, contentType := multipartBody(t, validFields(), "", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/contact", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	h.Submit(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body)
	}

	var res SubmissionResult
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !res.Success {
		t.Errorf("expected success, got %+v", res)
	}
	if res.Message != "Дякуємо! Менеджер звʼяжеться з вами" {
		t.Errorf("unexpected message: %s", res.Message)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("no warnings expected, got %v", res.Warnings)
	}
	if res.Integrations == nil || !res.Integrations.CRM.Success {
		t.Errorf("expected integration status, got %+v", res.Integrations)
	}
}

func TestSubmitHandlerValidationErrors(t *testing.T) {
	h := newTestHandler(nil, nil, nil, nil)

	fields := validFields()
	fields["name"] = "A"
	body, contentType := multipartBody(t, fields, "", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/contact", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	h.Submit(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}

	var res SubmissionResult
	json.NewDecoder(w.Body).Decode(&res)
	if res.Success {
		t.Error("expected failure")
	}
	if len(res.Errors["name"]) == 0 {
		t.Errorf("expected name field errors, got %v", res.Errors)
	}
}

func TestSubmitHandlerPartial(t *testing.T) {
	h := newTestHandler(failSink("pipedrive: status 500"), nil, nil, nil)

	body, contentType := multipartBody(t, validFields(), "", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/contact?locale=en", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	h.Submit(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for partial success, got %d", w.Code)
	}

	var res SubmissionResult
	json.NewDecoder(w.Body).Decode(&res)
	if !res.Success {
		t.Error("partial success still reports success=true")
	}
	if res.Integrations.CRM.Success || res.Integrations.CRM.Error == "" {
		t.Errorf("unexpected crm status: %+v", res.Integrations.CRM)
	}
	found := false
	for _, wmsg := range res.Warnings {
		if strings.Contains(wmsg, "crm") {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings should mention crm: %v", res.Warnings)
	}
	// Disabled sinks never appear in warnings.
	for _, wmsg := range res.Warnings {
		if strings.Contains(wmsg, "chat") || strings.Contains(wmsg, "webhook") {
			t.Errorf("disabled sink leaked into warnings: %v", res.Warnings)
		}
	}
}

func TestSubmitHandlerNoIntegrationsWarning(t *testing.T) {
	h := newTestHandler(nil, nil, nil, nil)

	body, contentType := multipartBody(t, validFields(), "", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/contact?locale=en", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	h.Submit(w, req)

	var res SubmissionResult
	json.NewDecoder(w.Body).Decode(&res)
	if !res.Success {
		t.Error("zero configured sinks is still a (partial) success")
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "No integrations") {
		t.Errorf("expected no-integrations warning, got %v", res.Warnings)
	}
}

func TestSubmitHandlerPersistenceFailure(t *testing.T) {
	h := newTestHandler(okSink(nil), nil, nil, failingRepo{})

	body, contentType := multipartBody(t, validFields(), "", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/contact", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	h.Submit(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var res SubmissionResult
	json.NewDecoder(w.Body).Decode(&res)
	if res.Success {
		t.Error("persistence failure must report success=false")
	}
	if strings.Contains(res.Message, "insert rejected") {
		t.Error("internal error detail must not leak to the caller")
	}
}

func TestSubmitHandlerMalformedBody(t *testing.T) {
	h := newTestHandler(nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("not multipart"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")
	w := httptest.NewRecorder()

	h.Submit(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed form, got %d", w.Code)
	}
	var res SubmissionResult
	json.NewDecoder(w.Body).Decode(&res)
	if res.Success || res.Errors != nil {
		t.Errorf("malformed input is a generic error, not field errors: %+v", res)
	}
}

func TestSubmitHandlerWithAttachment(t *testing.T) {
	const fileURL = "https://example/test.png"
	repo := leads.NewInMemoryRepository()
	svc := NewService(&fakeUploader{url: fileURL}, okSink(nil), nil, nil, repo, logging.Default(), nil)
	h := NewHandler(svc, logging.Default())

	body, contentType := multipartBody(t, validFields(), "sketch.png", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/contact", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	h.Submit(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body)
	}

	all, err := repo.List(context.Background(), 10, 0)
	if err != nil || len(all) != 1 {
		t.Fatalf("expected one persisted lead, got %d (%v)", len(all), err)
	}
	if all[0].FileURL == nil || *all[0].FileURL != fileURL {
		t.Errorf("persisted file_url = %v, want %q", all[0].FileURL, fileURL)
	}
}

func TestSubmitHandlerLocalizedMessages(t *testing.T) {
	h := newTestHandler(okSink(nil), nil, nil, nil)

	body, contentType := multipartBody(t, validFields(), "", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/contact", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept-Language", "pl-PL,pl;q=0.9")
	w := httptest.NewRecorder()

	h.Submit(w, req)

	var res SubmissionResult
	json.NewDecoder(w.Body).Decode(&res)
	if !strings.Contains(res.Message, "Dziękujemy") {
		t.Errorf("expected Polish message, got %s", res.Message)
	}
}
