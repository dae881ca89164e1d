package contact

import (
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/archsol/portfolio-api/internal/contact/inbound"
	"github.com/archsol/portfolio-api/internal/contact/outbound/db"
	"github.com/archsol/portfolio-api/internal/contact/outbound/email"
	"github.com/archsol/portfolio-api/internal/contact/outbound/recaptcha"
	"github.com/archsol/portfolio-api/internal/contact/usecase"
	"github.com/archsol/portfolio-api/internal/pkg/clock"
	"github.com/archsol/portfolio-api/internal/pkg/config"
	"github.com/archsol/portfolio-api/internal/pkg/goroutine"
	"github.com/archsol/portfolio-api/internal/pkg/instrument"
	"github.com/archsol/portfolio-api/internal/pkg/mail"
	"github.com/archsol/portfolio-api/internal/pkg/ratelimit"
	"github.com/archsol/portfolio-api/internal/pkg/router"
	"github.com/archsol/portfolio-api/internal/pkg/uid"
	"github.com/archsol/portfolio-api/internal/pkg/validator"
)

type Dependency struct {
	// AuditColl is the MongoDB collection for the audit trail; nil disables it.
	AuditColl  *mongo.Collection
	Config     config.Config
	Instrument instrument.Instrumentation
	UID        uid.NumberID
	Clock      clock.Clocker
	Goroutine  *goroutine.Manager
	Validator  validator.Validator
	Router     *router.Router
	Mail       mail.Mail
}

func New(dep Dependency) error {
	repoMail := email.New(dep.Mail, dep.Instrument)

	captcha := recaptcha.New(recaptcha.Config{
		Secret:    dep.Config.GetString("recaptcha.secret_key"),
		Threshold: dep.Config.GetFloat64("recaptcha.score_threshold"),
		Endpoint:  dep.Config.GetString("recaptcha.verify_url"),
		Timeout:   dep.Config.GetSecond("recaptcha.timeout_seconds"),
	}, dep.Instrument)

	limiter := ratelimit.New(ratelimit.Config{
		Window:   dep.Config.GetSecond("contact.rate_limit_window_seconds"),
		Max:      dep.Config.GetInt("contact.rate_limit_max"),
		Cooldown: dep.Config.GetSecond("contact.cooldown_seconds"),
	}, dep.Clock)

	ucDep := usecase.Dependency{
		Config:     dep.Config,
		UID:        dep.UID,
		Clock:      dep.Clock,
		Validator:  dep.Validator,
		Goroutine:  dep.Goroutine,
		RepoMail:   repoMail,
		Captcha:    captcha,
		Limiter:    limiter,
		Instrument: dep.Instrument,
	}
	if dep.AuditColl != nil {
		ucDep.RepoAudit = db.NewAudit(dep.AuditColl, dep.Instrument)
	}

	inbound.RegisterHTTPEndpoint(dep.Router, usecase.NewContact(ucDep))

	return nil
}
