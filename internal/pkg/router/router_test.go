package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/archsol/portfolio-api/internal/pkg/config"
	"github.com/archsol/portfolio-api/internal/pkg/goerror"
	"github.com/archsol/portfolio-api/internal/pkg/instrument"
	"github.com/archsol/portfolio-api/internal/pkg/uid"
)

func newTestRouter(t *testing.T, yaml string) *Router {
	t.Helper()

	if yaml == "" {
		yaml = "app:\n  name: Portfolio API\n"
	}

	cfg, err := config.NewViperFromBytes("yaml", []byte(yaml))
	if err != nil {
		t.Fatalf("failed to build config: %v", err)
	}

	return NewRouter(Config{
		Config:     cfg,
		UUID:       uid.NewUUID(),
		Instrument: instrument.NewNoop(),
	})
}

func TestRouter_Encoding(t *testing.T) {
	t.Run("payload is written as-is", func(t *testing.T) {
		// Arrange
		r := newTestRouter(t, "")
		r.GET("/api/thing", func(_ *Request) (any, error) {
			return map[string]string{"projects": "26+"}, nil
		})

		// Act
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/thing", nil))

		// Assert
		if rec.Code != http.StatusOK {
			t.Fatalf("status %d", rec.Code)
		}
		var got map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if got["projects"] != "26+" {
			t.Fatalf("body %q is not the raw payload", rec.Body.String())
		}
		if strings.Contains(rec.Body.String(), `"data"`) {
			t.Fatal("payload must not be wrapped in an envelope")
		}
	})

	t.Run("nil payload yields no content", func(t *testing.T) {
		r := newTestRouter(t, "")
		r.GET("/api/empty", func(_ *Request) (any, error) {
			return nil, nil
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/empty", nil))

		if rec.Code != http.StatusNoContent {
			t.Fatalf("status %d, want 204", rec.Code)
		}
	})

	t.Run("verification failure maps to bad request", func(t *testing.T) {
		// Arrange
		r := newTestRouter(t, "")
		r.POST("/api/verify", func(_ *Request) (any, error) {
			return nil, goerror.NewBusiness("Security verification failed. Please try again.", goerror.CodeVerificationFailed)
		})

		// Act
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/verify", nil))

		// Assert
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status %d, want 400", rec.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if got["message"] != "Security verification failed. Please try again." {
			t.Fatalf("body %q", rec.Body.String())
		}
	})

	t.Run("unknown error maps to internal server error", func(t *testing.T) {
		r := newTestRouter(t, "")
		r.GET("/api/fail", func(_ *Request) (any, error) {
			return nil, http.ErrBodyNotAllowed
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/fail", nil))

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status %d, want 500", rec.Code)
		}
	})

	t.Run("unknown endpoint", func(t *testing.T) {
		r := newTestRouter(t, "")

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status %d, want 404", rec.Code)
		}
	})

	t.Run("root banner", func(t *testing.T) {
		r := newTestRouter(t, "")

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Portfolio API") {
			t.Fatalf("banner %q does not name the service", rec.Body.String())
		}
	})
}

func TestRouter_APIKeyAuth(t *testing.T) {
	const authYAML = `
app:
  name: Portfolio API
auth:
  enabled: true
  api_key: key-1
  api_secret: secret-1
`

	register := func(r *Router) {
		r.POST("/api/contact/send-email", func(_ *Request) (any, error) {
			return map[string]bool{"success": true}, nil
		})
	}

	t.Run("missing credentials are rejected", func(t *testing.T) {
		// Arrange
		r := newTestRouter(t, authYAML)
		register(r)
		req := httptest.NewRequest(http.MethodPost, "/api/contact/send-email", nil)
		req.Host = "portfolio.example.dev"

		// Act
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		// Assert
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status %d, want 401", rec.Code)
		}
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		r := newTestRouter(t, authYAML)
		register(r)
		req := httptest.NewRequest(http.MethodPost, "/api/contact/send-email", nil)
		req.Host = "portfolio.example.dev"
		req.Header.Set("X-API-Key", "key-1")
		req.Header.Set("X-API-Secret", "wrong")

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status %d, want 401", rec.Code)
		}
	})

	t.Run("valid credentials pass", func(t *testing.T) {
		r := newTestRouter(t, authYAML)
		register(r)
		req := httptest.NewRequest(http.MethodPost, "/api/contact/send-email", nil)
		req.Host = "portfolio.example.dev"
		req.Header.Set("X-API-Key", "key-1")
		req.Header.Set("X-API-Secret", "secret-1")

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status %d, want 200: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("direct ip access bypasses the check", func(t *testing.T) {
		r := newTestRouter(t, authYAML)
		register(r)
		req := httptest.NewRequest(http.MethodPost, "/api/contact/send-email", nil)
		req.Host = "192.0.2.10:8080"

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status %d, want 200 for direct IP access", rec.Code)
		}
	})

	t.Run("unprotected endpoints stay open", func(t *testing.T) {
		r := newTestRouter(t, authYAML)
		r.GET("/api/portfolio/stats", func(_ *Request) (any, error) {
			return map[string]string{"projects": "26+"}, nil
		})
		req := httptest.NewRequest(http.MethodGet, "/api/portfolio/stats", nil)
		req.Host = "portfolio.example.dev"

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status %d, want 200 without credentials", rec.Code)
		}
	})

	t.Run("auth disabled leaves everything open", func(t *testing.T) {
		r := newTestRouter(t, "app:\n  name: Portfolio API\nauth:\n  enabled: false\n")
		register(r)
		req := httptest.NewRequest(http.MethodPost, "/api/contact/send-email", nil)
		req.Host = "portfolio.example.dev"

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status %d, want 200 with auth disabled", rec.Code)
		}
	})
}
