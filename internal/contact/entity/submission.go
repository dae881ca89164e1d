package entity

import "time"

// Submission is a contact-form message received from the website.
type Submission struct {
	Name        string
	Email       string
	Company     string
	Role        string
	ProjectType string
	Budget      string
	Timeline    string
	Message     string

	SourceIP   string
	UserAgent  string
	ReceivedAt time.Time
}

// CaptchaResult is the outcome of verifying a remote captcha token.
type CaptchaResult struct {
	// Valid reports whether the token passed verification.
	Valid bool
	// Score is the risk score returned by the verification service, when any.
	Score float64
	// Reason explains a rejection for logging; empty on success.
	Reason string
}
