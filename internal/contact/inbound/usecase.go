package inbound

import (
	"context"

	"github.com/archsol/portfolio-api/internal/contact/usecase"
)

type uc interface {
	SendEmail(ctx context.Context, in usecase.SendEmailInput) (*usecase.SendEmailOutput, error)
}
