package inbound

import (
	"net"

	"github.com/archsol/portfolio-api/internal/contact/usecase"
	"github.com/archsol/portfolio-api/internal/pkg/router"
)

type HTTPEndpoint struct {
	uc uc
}

// SendEmail accepts a contact-form submission and dispatches the email pair.
// @Summary Send contact email
// @Description Validates the submission, applies anti-abuse checks and rate limiting, then emails the site owner and a confirmation to the visitor. Rate-limited or degraded outcomes are reported with success=false and HTTP 200.
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body SendEmailRequest true "Contact submission"
// @Success 200 {object} SendEmailResponse "Dispatch outcome"
// @Failure 400 {object} router.errorResponse "Security verification failed"
// @Failure 401 {object} router.errorResponse "Missing or invalid API credentials"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/contact/send-email [post]
func (h *HTTPEndpoint) SendEmail(r *router.Request) (any, error) {
	var req SendEmailRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	out, err := h.uc.SendEmail(r.Context(), usecase.SendEmailInput{
		Name:           req.Name,
		Email:          req.Email,
		Company:        req.Company,
		Role:           req.Role,
		ProjectType:    req.ProjectType,
		Budget:         req.Budget,
		Timeline:       req.Timeline,
		Message:        req.Message,
		RecaptchaToken: req.RecaptchaToken,
		LocalCaptcha:   req.LocalCaptcha,
		SourceIP:       clientIP(r),
		UserAgent:      r.UserAgent(),
	})
	if err != nil {
		return nil, err
	}

	return SendEmailResponse{
		Success:   out.Success,
		Message:   out.Message,
		Timestamp: out.Timestamp,
	}, nil
}

// clientIP returns the caller address; the IP middleware already resolved
// proxy headers into RemoteAddr.
func clientIP(r *router.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
