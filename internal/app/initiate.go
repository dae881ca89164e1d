package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"
	"github.com/sethvargo/go-retry"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/archsol/portfolio-api/internal/pkg/clock"
	"github.com/archsol/portfolio-api/internal/pkg/config"
	"github.com/archsol/portfolio-api/internal/pkg/goroutine"
	"github.com/archsol/portfolio-api/internal/pkg/instrument"
	"github.com/archsol/portfolio-api/internal/pkg/mail"
	"github.com/archsol/portfolio-api/internal/pkg/router"
	"github.com/archsol/portfolio-api/internal/pkg/uid"
	"github.com/archsol/portfolio-api/internal/pkg/validator"
)

func (a *App) initConfig() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "/config/config.yaml"
		if os.Getenv("LOCAL") == "true" {
			path = "./config/config.yaml"
		}
	}

	cfg, err := config.NewViper(path)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("app.tz"))

	a.config = cfg
}

func (a *App) initInstrument() {
	ins, err := instrument.New(context.Background(), &instrument.Config{
		Enabled:          true,
		ServiceName:      a.config.GetString("instrument.service_name"),
		ServiceVersion:   a.config.GetString("instrument.service_version"),
		Environment:      a.config.GetString("instrument.env"),
		OTLPEndpoint:     a.config.GetString("instrument.otlp_endpoint"),
		OTLPSecure:       a.config.GetBool("instrument.otlp_secure"),
		TraceSampleRatio: a.config.GetFloat64("instrument.trace_sample_ratio"),
		MetricsInterval:  a.config.GetSecond("instrument.metric_interval_seconds"),
		MaskFields:       a.config.GetArray("instrument.log_mask_fields"),
	})
	if err != nil {
		slog.Error("failed to init instrumentation", "error", err)
		os.Exit(1)
	}
	a.ins = ins
}

func (a *App) initLibraries() {
	a.clock = clock.New()
	a.uuid = uid.NewUUID()
	a.goroutine = goroutine.NewManager(a.config.GetInt("app.server.max_goroutine"))

	validator, err := validator.NewV10Validator()
	if err != nil {
		slog.Error("failed to init validation v10 validator", "error", err)
		os.Exit(1)
	}
	a.validator = validator

	snow, err := uid.NewSnowflake()
	if err != nil {
		slog.Error("failed to init uid number snowflake", "error", err)
		os.Exit(1)
	}
	a.uid = snow
}

// initMail builds the SMTP transport. Missing credentials are not fatal; the
// contact module reports "email unavailable" until they are configured.
func (a *App) initMail() {
	smtp := mail.NewSMTP(mail.SMTPConfig{
		Host:        a.config.GetString("smtp.host"),
		Port:        a.config.GetInt("smtp.port"),
		Username:    a.config.GetString("smtp.username"),
		Password:    a.config.GetString("smtp.password"),
		From:        a.config.GetString("smtp.from"),
		ImplicitTLS: a.config.GetBool("smtp.use_ssl"),
		StartTLS:    a.config.GetBool("smtp.use_tls"),
		SkipVerify:  !a.config.GetBool("smtp.verify_cert"),
		DisableAuth: !a.config.GetBool("smtp.auth"),
		Timeout:     a.config.GetSecond("smtp.timeout_seconds"),
	})

	if !smtp.Configured() {
		slog.Warn("smtp transport is not fully configured, contact emails will be unavailable",
			"host", a.config.GetString("smtp.host"))
	}

	a.mail = smtp
}

// initAudit connects the optional MongoDB audit trail. Connection problems
// only disable auditing; the rest of the service keeps running.
func (a *App) initAudit() {
	if !a.config.GetBool("audit.enabled") {
		return
	}

	url := a.config.GetString("audit.mongo_url")
	if url == "" {
		slog.Warn("audit is enabled but audit.mongo_url is empty, audit trail disabled")
		return
	}

	client, err := mongo.Connect(options.Client().ApplyURI(url))
	if err != nil {
		slog.Error("failed to create mongo client, audit trail disabled", "error", err)
		return
	}

	b := retry.WithMaxRetries(3, retry.NewFibonacci(500*time.Millisecond))
	err = retry.Do(a.ctx, b, func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		if err := client.Ping(pingCtx, nil); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		slog.Error("failed to ping mongo, audit trail disabled", "error", err)
		//nolint:errcheck // best effort cleanup
		client.Disconnect(context.Background())
		return
	}

	a.auditClient = client
	a.auditColl = client.
		Database(a.config.GetString("audit.database")).
		Collection(a.config.GetString("audit.collection"))
}

func (a *App) initHTTPServer() {
	a.router = router.NewRouter(router.Config{
		Config:     a.config,
		UUID:       a.uuid,
		Instrument: a.ins,
	})

	a.registerHealthEndpoints()

	routerWithCORS := cors.New(cors.Options{
		AllowedOrigins: a.config.GetArray("app.server.cors"),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(a.router)

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("app.server.http.address"),
		Handler:           routerWithCORS,
		ReadTimeout:       a.config.GetSecond("app.server.http.read_timeout_seconds"),
		ReadHeaderTimeout: a.config.GetSecond("app.server.http.read_header_timeout_seconds"),
		WriteTimeout:      a.config.GetSecond("app.server.http.write_timeout_seconds"),
		IdleTimeout:       a.config.GetSecond("app.server.http.idle_timeout_seconds"),
	}
}

func (a *App) initClosers() {
	a.closers = []struct {
		name string
		fn   func(context.Context) error
	}{
		{
			name: "Instrument",
			fn: func(ctx context.Context) error {
				return a.ins.Shutdown(ctx)
			},
		},
		{
			name: "Mail",
			fn: func(context.Context) error {
				return a.mail.Close()
			},
		},
		{
			name: "AuditDB",
			fn: func(ctx context.Context) error {
				if a.auditClient == nil {
					return nil
				}

				return a.auditClient.Disconnect(ctx)
			},
		},
		{
			name: "Config",
			fn: func(context.Context) error {
				return a.config.Close()
			},
		},
	}
}
