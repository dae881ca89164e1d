package app

import (
	"log/slog"
	"os"

	"github.com/archsol/portfolio-api/internal/contact"
	"github.com/archsol/portfolio-api/internal/portfolio"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.portfolio.enabled") {
		if err := portfolio.New(portfolio.Dependency{
			Instrument: a.ins,
			Router:     a.router,
		}); err != nil {
			slog.Error("failed to init module portfolio", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.contact.enabled") {
		if err := contact.New(contact.Dependency{
			AuditColl:  a.auditColl,
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			Clock:      a.clock,
			Goroutine:  a.goroutine,
			Validator:  a.validator,
			Router:     a.router,
			Mail:       a.mail,
		}); err != nil {
			slog.Error("failed to init module contact", "error", err)
			os.Exit(1)
		}
	}
}
