package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/404reese/vynk/pkg/logging"
)

func TestRequestLoggerInjectsChildLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	var seen *slog.Logger
	probe := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logging.FromContext(r.Context())
		seen.Info("inside handler")
		w.WriteHeader(http.StatusNoContent)
	})

	handler := RequestLogger(log)(probe)
	req := httptest.NewRequest("GET", "/rooms", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if seen == nil {
		t.Fatal("handler saw no logger in context")
	}

	out := buf.String()
	if !strings.Contains(out, "request started") {
		t.Errorf("missing request start log, got: %s", out)
	}
	// The injected child logger carries the request attributes.
	if !strings.Contains(out, `"path":"/rooms"`) || !strings.Contains(out, "inside handler") {
		t.Errorf("child logger missing request attrs, got: %s", out)
	}
}
