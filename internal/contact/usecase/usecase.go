package usecase

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/archsol/portfolio-api/internal/contact/entity"
	"github.com/archsol/portfolio-api/internal/pkg/clock"
	"github.com/archsol/portfolio-api/internal/pkg/config"
	"github.com/archsol/portfolio-api/internal/pkg/goroutine"
	"github.com/archsol/portfolio-api/internal/pkg/instrument"
	"github.com/archsol/portfolio-api/internal/pkg/mail"
	"github.com/archsol/portfolio-api/internal/pkg/ratelimit"
	"github.com/archsol/portfolio-api/internal/pkg/uid"
	"github.com/archsol/portfolio-api/internal/pkg/validator"
)

type repoMail interface {
	Send(ctx context.Context, msg mail.Message) error
	Configured() bool
}

type repoAudit interface {
	CreateRecord(ctx context.Context, rec entity.AuditRecord) error
	UpdateRecordStatus(ctx context.Context, id int64, status entity.AuditStatus, detail string, at time.Time) error
}

type captchaVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) entity.CaptchaResult
}

type Usecase struct {
	cfg       config.Config
	uid       uid.NumberID
	clock     clock.Clocker
	validator validator.Validator
	goroutine *goroutine.Manager
	repoMail  repoMail
	repoAudit repoAudit // nil when the audit trail is disabled
	captcha   captchaVerifier
	limiter   *ratelimit.Limiter
	ins       instrument.Instrumentation

	dispatchCounter metric.Int64Counter
}

type Dependency struct {
	Config     config.Config
	UID        uid.NumberID
	Clock      clock.Clocker
	Validator  validator.Validator
	Goroutine  *goroutine.Manager
	RepoMail   repoMail
	RepoAudit  repoAudit
	Captcha    captchaVerifier
	Limiter    *ratelimit.Limiter
	Instrument instrument.Instrumentation
}

func NewContact(dep Dependency) *Usecase {
	counter, err := dep.Instrument.Meter("contact").Int64Counter("contact.email.dispatch",
		metric.WithDescription("Contact email dispatch outcomes"))
	if err != nil {
		slog.Warn("failed to create contact dispatch counter", "error", err)
	}

	return &Usecase{
		cfg:             dep.Config,
		uid:             dep.UID,
		clock:           dep.Clock,
		validator:       dep.Validator,
		goroutine:       dep.Goroutine,
		repoMail:        dep.RepoMail,
		repoAudit:       dep.RepoAudit,
		captcha:         dep.Captcha,
		limiter:         dep.Limiter,
		ins:             dep.Instrument,
		dispatchCounter: counter,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("contact.usecase").Start(ctx, name)
}

func (s *Usecase) auditCreate(ctx context.Context, rec entity.AuditRecord) {
	if s.repoAudit == nil {
		return
	}

	if err := s.repoAudit.CreateRecord(ctx, rec); err != nil {
		slog.ErrorContext(ctx, "failed to create contact audit record", "id", rec.ID, "error", err)
	}
}

func (s *Usecase) auditUpdate(ctx context.Context, id int64, status entity.AuditStatus, detail string) {
	if s.repoAudit == nil {
		return
	}

	if err := s.repoAudit.UpdateRecordStatus(ctx, id, status, detail, s.clock.Now()); err != nil {
		slog.ErrorContext(ctx, "failed to update contact audit record", "id", id, "status", status.String(), "error", err)
	}
}
