package inbound

import (
	"github.com/archsol/portfolio-api/internal/pkg/router"
)

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/contact/send-email", end.SendEmail)
}
