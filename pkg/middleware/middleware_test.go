package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vitrine-ai/vitrine/pkg/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestApplyOrder(t *testing.T) {
	var order []string

	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	sys := middleware.New()
	sys.Use(tag("first"))
	sys.Use(tag("second"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	sys.Apply(okHandler()).ServeHTTP(rec, req)

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("middleware order: got %v, want [first second]", order)
	}
}

func TestBasicAuthAllowsValidCredential(t *testing.T) {
	cfg := &middleware.AuthConfig{Username: "admin", Password: "hunter2", Realm: "admin"}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	req.SetBasicAuth("admin", "hunter2")

	middleware.BasicAuth(cfg)(okHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}
}

func TestBasicAuthRejections(t *testing.T) {
	cfg := &middleware.AuthConfig{Username: "admin", Password: "hunter2", Realm: "admin"}

	tests := []struct {
		name string
		set  func(r *http.Request)
	}{
		{"no credential", func(r *http.Request) {}},
		{"wrong password", func(r *http.Request) { r.SetBasicAuth("admin", "wrong") }},
		{"wrong user", func(r *http.Request) { r.SetBasicAuth("root", "hunter2") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/", nil)
			tt.set(req)

			middleware.BasicAuth(cfg)(okHandler()).ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status: got %d, want 401", rec.Code)
			}
			if rec.Header().Get("WWW-Authenticate") == "" {
				t.Error("missing WWW-Authenticate challenge")
			}
		})
	}
}

func TestAuthConfigFinalize(t *testing.T) {
	cfg := &middleware.AuthConfig{Username: "admin", Password: "secret"}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}
	if cfg.Realm != "admin" {
		t.Errorf("realm: got %q, want admin", cfg.Realm)
	}
}

func TestAuthConfigRequiresCredential(t *testing.T) {
	cfg := &middleware.AuthConfig{Username: "admin"}
	if err := cfg.Finalize(nil); err == nil {
		t.Error("expected error for missing password")
	}
}

func TestCORSDisabledPassesThrough(t *testing.T) {
	cfg := &middleware.CORSConfig{Enabled: false}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "http://example.com")

	middleware.CORS(cfg)(okHandler()).ServeHTTP(rec, req)

	if rec.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("disabled CORS should not set headers")
	}
}

func TestCORSAllowedOrigin(t *testing.T) {
	cfg := &middleware.CORSConfig{Enabled: true, Origins: []string{"http://example.com"}}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "http://example.com")

	middleware.CORS(cfg)(okHandler()).ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://example.com" {
		t.Errorf("allow-origin: got %q, want http://example.com", got)
	}
}
