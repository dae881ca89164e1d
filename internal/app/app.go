package app

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/archsol/portfolio-api/internal/pkg/clock"
	"github.com/archsol/portfolio-api/internal/pkg/config"
	"github.com/archsol/portfolio-api/internal/pkg/goroutine"
	"github.com/archsol/portfolio-api/internal/pkg/instrument"
	"github.com/archsol/portfolio-api/internal/pkg/mail"
	"github.com/archsol/portfolio-api/internal/pkg/router"
	"github.com/archsol/portfolio-api/internal/pkg/uid"
	"github.com/archsol/portfolio-api/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	uid       uid.NumberID
	uuid      uid.StringID

	// resources
	mail        mail.Mail
	auditClient *mongo.Client
	auditColl   *mongo.Collection

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initMail()
	app.initAudit()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
