package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/archsol/portfolio-api/internal/contact/entity"
	"github.com/archsol/portfolio-api/internal/pkg/config"
	"github.com/archsol/portfolio-api/internal/pkg/goerror"
	"github.com/archsol/portfolio-api/internal/pkg/goroutine"
	"github.com/archsol/portfolio-api/internal/pkg/instrument"
	"github.com/archsol/portfolio-api/internal/pkg/mail"
	"github.com/archsol/portfolio-api/internal/pkg/ratelimit"
	"github.com/archsol/portfolio-api/internal/pkg/validator"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

type fakeNumberID struct {
	next int64
}

func (f *fakeNumberID) Generate() int64 {
	f.next++
	return f.next
}

type fakeMail struct {
	mu         sync.Mutex
	configured bool
	failFor    map[string]error // keyed by first recipient
	sent       []mail.Message
}

func (f *fakeMail) Configured() bool {
	return f.configured
}

func (f *fakeMail) Send(_ context.Context, msg mail.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(msg.To) > 0 {
		if err, ok := f.failFor[msg.To[0]]; ok {
			return err
		}
	}

	f.sent = append(f.sent, msg)
	return nil
}

type fakeCaptcha struct {
	result entity.CaptchaResult
	calls  int
}

func (f *fakeCaptcha) Verify(_ context.Context, _, _ string) entity.CaptchaResult {
	f.calls++
	return f.result
}

type auditEntry struct {
	id     int64
	status entity.AuditStatus
	detail string
}

type fakeAudit struct {
	mu      sync.Mutex
	created []entity.AuditRecord
	updates []auditEntry
}

func (f *fakeAudit) CreateRecord(_ context.Context, rec entity.AuditRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, rec)
	return nil
}

func (f *fakeAudit) UpdateRecordStatus(_ context.Context, id int64, status entity.AuditStatus, detail string, _ time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, auditEntry{id: id, status: status, detail: detail})
	return nil
}

type fixture struct {
	uc      *Usecase
	mail    *fakeMail
	captcha *fakeCaptcha
	audit   *fakeAudit
	clock   *fakeClock
}

func newFixture(t *testing.T, yaml string) *fixture {
	t.Helper()

	if yaml == "" {
		yaml = `
contact:
  recipient: owner@example.dev
  subject_prefix: "[Portfolio]"
  reply_to: owner@example.dev
`
	}

	cfg, err := config.NewViperFromBytes("yaml", []byte(yaml))
	if err != nil {
		t.Fatalf("failed to build config: %v", err)
	}

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	clk := &fakeClock{now: time.Date(2026, time.April, 1, 9, 0, 0, 0, time.UTC)}
	fm := &fakeMail{configured: true, failFor: map[string]error{}}
	fc := &fakeCaptcha{result: entity.CaptchaResult{Valid: true, Score: 0.9}}
	fa := &fakeAudit{}

	uc := NewContact(Dependency{
		Config:     cfg,
		UID:        &fakeNumberID{},
		Clock:      clk,
		Validator:  v10,
		Goroutine:  goroutine.NewManager(4),
		RepoMail:   fm,
		RepoAudit:  fa,
		Captcha:    fc,
		Limiter:    ratelimit.New(ratelimit.Config{Window: time.Hour, Max: 10, Cooldown: time.Second}, clk),
		Instrument: instrument.NewNoop(),
	})

	return &fixture{uc: uc, mail: fm, captcha: fc, audit: fa, clock: clk}
}

func validInput() SendEmailInput {
	return SendEmailInput{
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Message:   "I would like to discuss a project with you.",
		SourceIP:  "203.0.113.9",
		UserAgent: "test-agent",
	}
}

func TestUsecase_SendEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path sends notification and confirmation", func(t *testing.T) {
		// Arrange
		f := newFixture(t, "")
		in := validInput()
		in.RecaptchaToken = "tok"

		// Act
		out, err := f.uc.SendEmail(ctx, in)

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Success || out.Message != msgSent {
			t.Fatalf("got %+v", out)
		}
		if f.captcha.calls != 1 {
			t.Fatalf("captcha verified %d times, want 1", f.captcha.calls)
		}
		if len(f.mail.sent) != 2 {
			t.Fatalf("sent %d emails, want 2", len(f.mail.sent))
		}
		if f.mail.sent[0].To[0] != "owner@example.dev" {
			t.Errorf("notification went to %v", f.mail.sent[0].To)
		}
		if f.mail.sent[0].ReplyTo != "ada@example.com" {
			t.Errorf("notification reply-to is %q, want the visitor address", f.mail.sent[0].ReplyTo)
		}
		if f.mail.sent[1].To[0] != "ada@example.com" {
			t.Errorf("confirmation went to %v", f.mail.sent[1].To)
		}
		if len(f.audit.updates) != 1 || f.audit.updates[0].status != entity.AuditStatusSent {
			t.Errorf("audit updates %+v, want a single sent entry", f.audit.updates)
		}
	})

	t.Run("validation failure", func(t *testing.T) {
		// Arrange
		f := newFixture(t, "")
		in := validInput()
		in.Email = "not-an-email"

		// Act
		_, err := f.uc.SendEmail(ctx, in)

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeInvalidInput {
			t.Fatalf("got %v, want invalid input error", err)
		}
		if len(f.mail.sent) != 0 {
			t.Fatal("no email should be sent on validation failure")
		}
	})

	t.Run("rejected captcha token stops the pipeline", func(t *testing.T) {
		// Arrange
		f := newFixture(t, "")
		f.captcha.result = entity.CaptchaResult{Valid: false, Reason: "low score"}
		in := validInput()
		in.RecaptchaToken = "bad"

		// Act
		_, err := f.uc.SendEmail(ctx, in)

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeVerificationFailed {
			t.Fatalf("got %v, want verification failure", err)
		}
		if gerr.Msg() != msgVerificationFailed {
			t.Fatalf("message %q", gerr.Msg())
		}
		if len(f.mail.sent) != 0 {
			t.Fatal("no email should be sent after a rejected token")
		}
	})

	t.Run("malformed local challenge is rejected", func(t *testing.T) {
		// Arrange
		f := newFixture(t, "")
		in := validInput()
		in.LocalCaptcha = []byte(`{"type":"other"}`)

		// Act
		_, err := f.uc.SendEmail(ctx, in)

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeVerificationFailed {
			t.Fatalf("got %v, want verification failure", err)
		}
		if gerr.Msg() != msgLocalVerificationFailed {
			t.Fatalf("message %q", gerr.Msg())
		}
	})

	t.Run("well-formed local challenge passes without remote call", func(t *testing.T) {
		// Arrange
		f := newFixture(t, "")
		in := validInput()
		in.LocalCaptcha = []byte(`{"type":"local_captcha","captcha_id":"c1","user_answer":"7"}`)

		// Act
		out, err := f.uc.SendEmail(ctx, in)

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Success {
			t.Fatalf("got %+v", out)
		}
		if f.captcha.calls != 0 {
			t.Fatal("remote verifier should not run for local challenges")
		}
	})

	t.Run("no evidence at all is allowed through", func(t *testing.T) {
		// Arrange
		f := newFixture(t, "")

		// Act
		out, err := f.uc.SendEmail(ctx, validInput())

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Success {
			t.Fatalf("got %+v", out)
		}
		if f.captcha.calls != 0 {
			t.Fatal("remote verifier should not run without a token")
		}
	})

	t.Run("unconfigured transport degrades to an unavailable result", func(t *testing.T) {
		// Arrange
		f := newFixture(t, "")
		f.mail.configured = false

		// Act
		out, err := f.uc.SendEmail(ctx, validInput())

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Success || out.Message != msgUnavailable {
			t.Fatalf("got %+v", out)
		}
		if len(f.audit.updates) != 1 || f.audit.updates[0].status != entity.AuditStatusFailed {
			t.Errorf("audit updates %+v", f.audit.updates)
		}
	})

	t.Run("notification failure reports unavailable", func(t *testing.T) {
		// Arrange
		f := newFixture(t, "")
		f.mail.failFor["owner@example.dev"] = errors.New("connection refused")

		// Act
		out, err := f.uc.SendEmail(ctx, validInput())

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Success || out.Message != msgUnavailable {
			t.Fatalf("got %+v", out)
		}
		if len(f.mail.sent) != 0 {
			t.Fatal("confirmation must not be attempted after a notification failure")
		}
	})

	t.Run("confirmation failure is a partial success", func(t *testing.T) {
		// Arrange
		f := newFixture(t, "")
		in := validInput()
		f.mail.failFor[in.Email] = errors.New("mailbox full")

		// Act
		out, err := f.uc.SendEmail(ctx, in)

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Success || out.Message != msgPartial {
			t.Fatalf("got %+v", out)
		}
		if len(f.audit.updates) != 1 || f.audit.updates[0].status != entity.AuditStatusPartial {
			t.Errorf("audit updates %+v", f.audit.updates)
		}
	})

	t.Run("rate limited submission returns the limiter reason", func(t *testing.T) {
		// Arrange
		f := newFixture(t, "")
		if _, err := f.uc.SendEmail(ctx, validInput()); err != nil {
			t.Fatalf("seed send failed: %v", err)
		}
		f.mail.mu.Lock()
		f.mail.sent = nil
		f.mail.mu.Unlock()

		// Act: still inside the one second cooldown.
		out, err := f.uc.SendEmail(ctx, validInput())

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Success {
			t.Fatal("expected rate limited result")
		}
		if !strings.Contains(out.Message, "wait") {
			t.Fatalf("message %q does not mention the wait", out.Message)
		}
		if len(f.mail.sent) != 0 {
			t.Fatal("no email should be sent while rate limited")
		}
	})
}
