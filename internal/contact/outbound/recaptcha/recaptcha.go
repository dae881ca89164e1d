// Package recaptcha verifies captcha tokens against the Google siteverify API.
package recaptcha

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/archsol/portfolio-api/internal/contact/entity"
	"github.com/archsol/portfolio-api/internal/pkg/instrument"
)

const (
	defaultEndpoint  = "https://www.google.com/recaptcha/api/siteverify"
	defaultThreshold = 0.5
	defaultTimeout   = 10 * time.Second
)

// Config configures the verifier.
type Config struct {
	// Secret is the server-side captcha secret. Empty disables verification:
	// every token is accepted, which is the intended development-mode behavior.
	Secret string
	// Threshold is the minimum acceptable score. Zero means 0.5.
	Threshold float64
	// Endpoint overrides the verification URL, mainly for tests.
	Endpoint string
	// Timeout bounds the verification HTTP call. Zero means 10 seconds.
	Timeout time.Duration
}

// Verifier calls the remote captcha service. Network failures and malformed
// responses fail closed: the token is treated as invalid.
type Verifier struct {
	cfg    Config
	client *http.Client
	ins    instrument.Instrumentation
}

// New constructs a Verifier.
func New(cfg Config, ins instrument.Instrumentation) *Verifier {
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	if cfg.Threshold <= 0 {
		cfg.Threshold = defaultThreshold
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Verifier{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		ins:    ins,
	}
}

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	Score      float64  `json:"score"`
	Action     string   `json:"action"`
	Hostname   string   `json:"hostname"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify checks a token with the remote service.
func (v *Verifier) Verify(ctx context.Context, token, remoteIP string) entity.CaptchaResult {
	ctx, span := v.ins.Tracer("contact.outbound.recaptcha").Start(ctx, "Verify")
	defer span.End()

	if v.cfg.Secret == "" {
		slog.WarnContext(ctx, "captcha secret is not configured, accepting token without verification")
		return entity.CaptchaResult{Valid: true, Reason: "verification disabled"}
	}

	form := url.Values{}
	form.Set("secret", v.cfg.Secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.cfg.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return v.fail(ctx, span, fmt.Errorf("build siteverify request: %w", err))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return v.fail(ctx, span, fmt.Errorf("call siteverify: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return v.fail(ctx, span, fmt.Errorf("siteverify returned status %d", resp.StatusCode))
	}

	var sv siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&sv); err != nil {
		return v.fail(ctx, span, fmt.Errorf("decode siteverify response: %w", err))
	}

	if !sv.Success {
		reason := "token rejected"
		if len(sv.ErrorCodes) > 0 {
			reason = "token rejected: " + strings.Join(sv.ErrorCodes, ", ")
		}
		return entity.CaptchaResult{Valid: false, Score: sv.Score, Reason: reason}
	}

	if sv.Score < v.cfg.Threshold {
		return entity.CaptchaResult{
			Valid:  false,
			Score:  sv.Score,
			Reason: fmt.Sprintf("score %.2f below threshold %.2f", sv.Score, v.cfg.Threshold),
		}
	}

	return entity.CaptchaResult{Valid: true, Score: sv.Score}
}

func (v *Verifier) fail(ctx context.Context, span trace.Span, err error) entity.CaptchaResult {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	slog.ErrorContext(ctx, "captcha verification call failed", "error", err)
	return entity.CaptchaResult{Valid: false, Reason: err.Error()}
}
