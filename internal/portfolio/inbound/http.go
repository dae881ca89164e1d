package inbound

import (
	"github.com/archsol/portfolio-api/internal/pkg/router"
)

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/portfolio/stats", end.GetStats)
	r.GET("/api/portfolio/skills", end.ListSkills)
	r.GET("/api/portfolio/projects", end.GetProjects)
}
