package inbound

import (
	"encoding/json"
	"time"
)

type SendEmailRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	ProjectType string `json:"projectType"`
	Budget      string `json:"budget"`
	Timeline    string `json:"timeline"`
	Message     string `json:"message"`

	RecaptchaToken string `json:"recaptcha_token"`
	// LocalCaptcha is passed through opaque; some clients send a JSON object,
	// others a JSON-encoded string.
	LocalCaptcha json.RawMessage `json:"local_captcha" swaggertype:"object"`
}

type SendEmailResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
