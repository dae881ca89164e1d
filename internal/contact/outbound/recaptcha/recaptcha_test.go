package recaptcha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/archsol/portfolio-api/internal/pkg/instrument"
)

func newTestVerifier(t *testing.T, handler http.HandlerFunc, secret string) *Verifier {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(Config{Secret: secret, Endpoint: srv.URL}, instrument.NewNoop())
}

func TestVerifier_Verify(t *testing.T) {
	t.Run("accepts without calling out when secret is empty", func(t *testing.T) {
		// Arrange
		called := false
		v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
			called = true
		}, "")

		// Act
		res := v.Verify(context.Background(), "any-token", "203.0.113.9")

		// Assert
		if !res.Valid {
			t.Fatal("expected dev-mode acceptance")
		}
		if called {
			t.Fatal("verification service should not be called without a secret")
		}
	})

	t.Run("valid token above threshold", func(t *testing.T) {
		// Arrange
		v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseForm(); err != nil {
				t.Errorf("parse form: %v", err)
			}
			if r.PostForm.Get("secret") != "s3cret" || r.PostForm.Get("response") != "tok" {
				t.Errorf("unexpected form %v", r.PostForm)
			}
			if r.PostForm.Get("remoteip") != "203.0.113.9" {
				t.Errorf("missing remoteip in %v", r.PostForm)
			}
			w.Write([]byte(`{"success":true,"score":0.9,"action":"contact"}`))
		}, "s3cret")

		// Act
		res := v.Verify(context.Background(), "tok", "203.0.113.9")

		// Assert
		if !res.Valid || res.Score != 0.9 {
			t.Fatalf("got %+v, want valid with score 0.9", res)
		}
	})

	t.Run("rejected token reports error codes", func(t *testing.T) {
		// Arrange
		v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":false,"error-codes":["invalid-input-response"]}`))
		}, "s3cret")

		// Act
		res := v.Verify(context.Background(), "tok", "")

		// Assert
		if res.Valid {
			t.Fatal("expected rejection")
		}
		if !strings.Contains(res.Reason, "invalid-input-response") {
			t.Fatalf("reason %q does not carry the error code", res.Reason)
		}
	})

	t.Run("low score is rejected", func(t *testing.T) {
		// Arrange
		v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":true,"score":0.1}`))
		}, "s3cret")

		// Act
		res := v.Verify(context.Background(), "tok", "")

		// Assert
		if res.Valid {
			t.Fatal("expected rejection for low score")
		}
		if !strings.Contains(res.Reason, "below threshold") {
			t.Fatalf("unexpected reason %q", res.Reason)
		}
	})

	t.Run("service error fails closed", func(t *testing.T) {
		// Arrange
		v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}, "s3cret")

		// Act
		res := v.Verify(context.Background(), "tok", "")

		// Assert
		if res.Valid {
			t.Fatal("expected closed failure on upstream error")
		}
	})

	t.Run("unreachable service fails closed", func(t *testing.T) {
		// Arrange
		v := New(Config{Secret: "s3cret", Endpoint: "http://127.0.0.1:1"}, instrument.NewNoop())

		// Act
		res := v.Verify(context.Background(), "tok", "")

		// Assert
		if res.Valid {
			t.Fatal("expected closed failure when service is unreachable")
		}
	})
}
