package usecase

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/archsol/portfolio-api/internal/contact/emailtpl"
	"github.com/archsol/portfolio-api/internal/contact/entity"
	"github.com/archsol/portfolio-api/internal/pkg/goerror"
	"github.com/archsol/portfolio-api/internal/pkg/mail"
)

const (
	msgSent        = "Thank you for your message! I'll get back to you soon."
	msgPartial     = "Your message was received! The confirmation email could not be delivered to your address, but I'll get back to you soon."
	msgUnavailable = "Email service is temporarily unavailable. Please try again later or reach out directly."

	msgVerificationFailed      = "Security verification failed. Please try again."
	msgLocalVerificationFailed = "Security verification failed. Please solve the math question correctly."
)

type SendEmailInput struct {
	Name        string `validate:"required,notblank,min=2,max=100"`
	Email       string `validate:"required,email,max=254"`
	Company     string `validate:"max=200"`
	Role        string `validate:"max=200"`
	ProjectType string `validate:"max=200"`
	Budget      string `validate:"max=200"`
	Timeline    string `validate:"max=200"`
	Message     string `validate:"required,notblank,min=10,max=2000"`

	RecaptchaToken string
	LocalCaptcha   []byte
	SourceIP       string
	UserAgent      string
}

type SendEmailOutput struct {
	Success   bool
	Message   string
	Timestamp time.Time
}

// SendEmail runs the full contact pipeline: validation, anti-abuse
// verification, rate limiting, and delivery of the notification plus the
// visitor confirmation. Rate limiting and an unconfigured transport are
// reported as Success=false results, not errors; only verification and
// validation failures surface as errors.
func (s *Usecase) SendEmail(ctx context.Context, in SendEmailInput) (*SendEmailOutput, error) {
	ctx, span := s.startSpan(ctx, "SendEmail")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if err := s.verifyEvidence(ctx, in); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	auditID := s.uid.Generate()
	s.auditCreate(ctx, entity.AuditRecord{
		ID:          auditID,
		Name:        in.Name,
		Email:       in.Email,
		Company:     in.Company,
		ProjectType: in.ProjectType,
		Status:      entity.AuditStatusReceived,
		SourceIP:    in.SourceIP,
		UserAgent:   in.UserAgent,
		CreatedAt:   now,
	})

	if s.cfg.GetBool("contact.async_dispatch") {
		s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
			s.dispatch(ctx, in, auditID, now)
			return nil
		})

		return &SendEmailOutput{Success: true, Message: msgSent, Timestamp: now}, nil
	}

	ok, msg := s.dispatch(ctx, in, auditID, now)

	return &SendEmailOutput{Success: ok, Message: msg, Timestamp: s.clock.Now()}, nil
}

// verifyEvidence applies the anti-abuse policy. Submissions without any
// evidence are allowed through for clients that predate captcha support.
func (s *Usecase) verifyEvidence(ctx context.Context, in SendEmailInput) error {
	ev, err := entity.ParseEvidence(in.RecaptchaToken, in.LocalCaptcha)
	if err != nil {
		slog.WarnContext(ctx, "contact local challenge rejected", "error", err)
		return goerror.NewBusiness(msgLocalVerificationFailed, goerror.CodeVerificationFailed)
	}

	switch ev.Kind {
	case entity.EvidenceRemoteToken:
		res := s.captcha.Verify(ctx, ev.Token, in.SourceIP)
		if !res.Valid {
			slog.WarnContext(ctx, "contact captcha token rejected", "reason", res.Reason, "score", res.Score)
			return goerror.NewBusiness(msgVerificationFailed, goerror.CodeVerificationFailed)
		}
	case entity.EvidenceLocalChallenge:
		// The arithmetic answer was checked in the browser against a
		// challenge the browser generated, so only the payload shape can
		// be verified here.
		slog.DebugContext(ctx, "contact local challenge accepted", "challenge_id", ev.ChallengeID)
	case entity.EvidenceNone:
		slog.DebugContext(ctx, "contact submission carries no anti-abuse evidence")
	}

	return nil
}

func (s *Usecase) dispatch(ctx context.Context, in SendEmailInput, auditID int64, receivedAt time.Time) (bool, string) {
	if d := s.limiter.Allow(); !d.Allowed {
		slog.WarnContext(ctx, "contact email rate limited", "retry_after", d.RetryAfter, "reason", d.Reason)
		s.countDispatch(ctx, "rate_limited")
		s.auditUpdate(ctx, auditID, entity.AuditStatusRejected, d.Reason)
		return false, d.Reason
	}

	if !s.repoMail.Configured() {
		slog.WarnContext(ctx, "smtp transport is not configured, contact email dropped")
		s.countDispatch(ctx, "unconfigured")
		s.auditUpdate(ctx, auditID, entity.AuditStatusFailed, "smtp transport not configured")
		return false, msgUnavailable
	}

	if err := s.sendNotification(ctx, in, receivedAt); err != nil {
		slog.ErrorContext(ctx, "failed to send contact notification email", "audit_id", auditID, "error", err)
		s.countDispatch(ctx, "failed")
		s.auditUpdate(ctx, auditID, entity.AuditStatusFailed, err.Error())
		return false, msgUnavailable
	}

	if err := s.sendConfirmation(ctx, in, receivedAt); err != nil {
		slog.ErrorContext(ctx, "failed to send contact confirmation email", "audit_id", auditID, "error", err)
		s.countDispatch(ctx, "partial")
		s.auditUpdate(ctx, auditID, entity.AuditStatusPartial, err.Error())
		return true, msgPartial
	}

	s.countDispatch(ctx, "sent")
	s.auditUpdate(ctx, auditID, entity.AuditStatusSent, "")

	return true, msgSent
}

func (s *Usecase) sendNotification(ctx context.Context, in SendEmailInput, receivedAt time.Time) error {
	rendered, err := emailtpl.RenderNotification(s.cfg.GetString("contact.subject_prefix"), emailtpl.NotificationData{
		Name:        in.Name,
		Email:       in.Email,
		Company:     in.Company,
		Role:        in.Role,
		ProjectType: in.ProjectType,
		Budget:      in.Budget,
		Timeline:    in.Timeline,
		Message:     in.Message,
		SourceIP:    in.SourceIP,
		WebsiteURL:  s.cfg.GetString("contact.website_url"),
		ReceivedAt:  receivedAt,
	})
	if err != nil {
		return err
	}

	return s.repoMail.Send(ctx, mail.Message{
		To:       []string{s.cfg.GetString("contact.recipient")},
		Cc:       s.cfg.GetArray("contact.cc"),
		Bcc:      s.cfg.GetArray("contact.bcc"),
		ReplyTo:  in.Email,
		Subject:  rendered.Subject,
		HTMLBody: rendered.HTML,
		TextBody: rendered.Text,
	})
}

func (s *Usecase) sendConfirmation(ctx context.Context, in SendEmailInput, receivedAt time.Time) error {
	rendered, err := emailtpl.RenderConfirmation(emailtpl.ConfirmationData{
		Name:          in.Name,
		ProjectType:   in.ProjectType,
		OperatorName:  s.cfg.GetString("contact.operator_name"),
		OperatorEmail: s.cfg.GetString("contact.reply_to"),
		WebsiteURL:    s.cfg.GetString("contact.website_url"),
		ReceivedAt:    receivedAt,
	})
	if err != nil {
		return err
	}

	replyTo := s.cfg.GetString("contact.reply_to")
	if replyTo == "" {
		replyTo = s.cfg.GetString("contact.recipient")
	}

	return s.repoMail.Send(ctx, mail.Message{
		To:       []string{in.Email},
		ReplyTo:  replyTo,
		Subject:  rendered.Subject,
		HTMLBody: rendered.HTML,
		TextBody: rendered.Text,
	})
}

func (s *Usecase) countDispatch(ctx context.Context, outcome string) {
	if s.dispatchCounter == nil {
		return
	}

	s.dispatchCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
