package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/xiaoxiongflippy/AI-project-Text-Correction/internal/cleaner"
	"github.com/xiaoxiongflippy/AI-project-Text-Correction/internal/config"
)

func newTestServer() *Server {
	cfg := &config.ServerConfig{Host: "localhost", Port: 8080}
	return NewServer(cleaner.DefaultOptions(), cfg, zap.NewNop())
}

func postJSON(t *testing.T, h http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleClean(t *testing.T) {
	srv := newTestServer()
	router := srv.Router()

	rec := postJSON(t, router, "/api/v1/clean", map[string]interface{}{
		"text": "# 标题\n\n这是**重点**内容。",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp cleanResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.RequestID == "" {
		t.Error("expected non-empty request_id")
	}
	if strings.Contains(resp.Text, "#") || strings.Contains(resp.Text, "**") {
		t.Errorf("markdown not stripped: %q", resp.Text)
	}
	if resp.Score < 0 || resp.Score > 100 {
		t.Errorf("score out of range: %d", resp.Score)
	}
	if resp.Band == "" {
		t.Error("expected non-empty band")
	}
}

func TestHandleCleanOverrides(t *testing.T) {
	srv := newTestServer()
	router := srv.Router()

	rec := postJSON(t, router, "/api/v1/clean", map[string]interface{}{
		"text":             "# 标题",
		"remove_markdown":  false,
		"indent_paragraph": false,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp cleanResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resp.Text, "#") {
		t.Errorf("markdown stripped despite override: %q", resp.Text)
	}
}

func TestHandleCleanBadRequest(t *testing.T) {
	srv := newTestServer()
	router := srv.Router()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/clean", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	rec = postJSON(t, router, "/api/v1/clean", map[string]interface{}{"text": ""})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty text: status = %d, want 400", rec.Code)
	}
}

func TestHandleDiagnose(t *testing.T) {
	srv := newTestServer()
	router := srv.Router()

	rec := postJSON(t, router, "/api/v1/diagnose", map[string]interface{}{
		"text": "中文内容，mixed punctuation. 结束",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp diagnoseResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Score < 0 || resp.Score > 100 {
		t.Errorf("score out of range: %d", resp.Score)
	}
	if len(resp.Warnings) == 0 {
		t.Error("expected a punctuation consistency warning")
	}
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer()
	router := srv.Router()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp["status"] != "ok" {
		t.Errorf("status = %q, want ok", resp["status"])
	}
}
