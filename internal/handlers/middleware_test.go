package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoggingSetsRequestID(t *testing.T) {
	handler := Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/api/health", nil))

	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", w.Code)
	}
	if w.Header().Get("X-Request-Id") == "" {
		t.Error("expected X-Request-Id header to be set")
	}
}

func TestCORS(t *testing.T) {
	origin := "https://example.github.io"
	called := false
	handler := CORS(origin, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	t.Run("sets allow origin on normal requests", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/api/lessons", nil))

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != origin {
			t.Errorf("expected origin %q, got %q", origin, got)
		}
		if !called {
			t.Error("expected wrapped handler to be called")
		}
	})

	t.Run("answers preflight without calling handler", func(t *testing.T) {
		called = false
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("OPTIONS", "/api/lessons", nil))

		if w.Code != http.StatusNoContent {
			t.Errorf("expected 204 for preflight, got %d", w.Code)
		}
		if called {
			t.Error("preflight should not reach the wrapped handler")
		}
	})
}
