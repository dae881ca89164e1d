package app

import (
	"time"

	"github.com/archsol/portfolio-api/internal/pkg/router"
)

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type apiHealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// registerHealthEndpoints exposes the container probe and the API health
// detail. Degraded dependencies never fail the probe; the service stays up
// and reports them instead.
func (a *App) registerHealthEndpoints() {
	a.router.GET("/health", func(_ *router.Request) (any, error) {
		return healthResponse{Status: "healthy", Timestamp: a.clock.Now().UTC()}, nil
	})

	a.router.GET("/api/health", func(_ *router.Request) (any, error) {
		email := "configured"
		if !a.mail.Configured() {
			email = "not configured"
		}

		audit := "disabled"
		if a.auditColl != nil {
			audit = "connected"
		}

		return apiHealthResponse{
			Status:    "healthy",
			Timestamp: a.clock.Now().UTC(),
			Services: map[string]string{
				"email": email,
				"audit": audit,
			},
		}, nil
	})
}
