package mail

import (
	"context"
	"crypto/rand"
	"crypto/tls"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"
)

var (
	// ErrSMTPNotConfigured is returned when Send is called without host, port,
	// or credentials configured.
	ErrSMTPNotConfigured = errors.New("smtp transport is not configured")
	// ErrSMTPNoRecipients is returned when To/Cc/Bcc are all empty.
	ErrSMTPNoRecipients = errors.New("no recipients provided")
	// ErrSMTPNoSender is returned when both Message.From and the configured default From are empty.
	ErrSMTPNoSender = errors.New("no sender provided")
)

const defaultSMTPTimeout = 30 * time.Second

// SMTPConfig configures the SMTP implementation.
type SMTPConfig struct {
	// Host is the SMTP server hostname.
	Host string
	// Port is the SMTP server port.
	Port int
	// Username is the SMTP authentication username.
	Username string
	// Password is the SMTP authentication password.
	Password string
	// From is the default sender when Message.From is empty.
	From string
	// ImplicitTLS opens a TLS session from the first byte (SMTPS, port 465).
	ImplicitTLS bool
	// StartTLS upgrades a plaintext session via the STARTTLS command (port 587).
	// Ignored when ImplicitTLS is set.
	StartTLS bool
	// SkipVerify disables server certificate verification on TLS sessions.
	SkipVerify bool
	// DisableAuth skips authentication even when credentials are present,
	// for relays that accept unauthenticated mail.
	DisableAuth bool
	// Timeout bounds the whole SMTP session. Zero means 30 seconds.
	Timeout time.Duration
}

// SMTP is a Mail implementation backed by net/smtp.
//
// Construction never fails on missing configuration; Configured reports
// whether Send can work, so the application can boot without credentials
// and degrade at request time.
type SMTP struct {
	cfg     SMTPConfig
	addr    string
	timeout time.Duration
	auth    smtp.Auth
}

// NewSMTP constructs an SMTP mail sender.
func NewSMTP(cfg SMTPConfig) *SMTP {
	var auth smtp.Auth
	if cfg.Username != "" && cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultSMTPTimeout
	}

	return &SMTP{
		cfg:     cfg,
		addr:    fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		timeout: timeout,
		auth:    auth,
	}
}

// Configured reports whether the transport can deliver mail.
func (s *SMTP) Configured() bool {
	if s.cfg.Host == "" || s.cfg.Port == 0 {
		return false
	}
	if s.cfg.DisableAuth {
		return true
	}
	return s.auth != nil
}

// Send delivers a message over SMTP.
func (s *SMTP) Send(ctx context.Context, msg Message) error {
	if !s.Configured() {
		return ErrSMTPNotConfigured
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	recipients := append([]string{}, msg.To...)
	recipients = append(recipients, msg.Cc...)
	recipients = append(recipients, msg.Bcc...)

	if len(recipients) == 0 {
		return ErrSMTPNoRecipients
	}

	from := msg.From
	if from == "" {
		from = s.cfg.From
	}
	if from == "" {
		return ErrSMTPNoSender
	}

	body, contentType := buildBody(msg)

	var headers []string
	headers = append(headers, fmt.Sprintf("From: %s", from))
	headers = append(headers, fmt.Sprintf("To: %s", strings.Join(msg.To, ", ")))
	if len(msg.Cc) > 0 {
		headers = append(headers, fmt.Sprintf("Cc: %s", strings.Join(msg.Cc, ", ")))
	}
	if msg.ReplyTo != "" {
		headers = append(headers, fmt.Sprintf("Reply-To: %s", msg.ReplyTo))
	}
	headers = append(headers, fmt.Sprintf("Subject: %s", msg.Subject))
	headers = append(headers, "MIME-Version: 1.0")
	headers = append(headers, fmt.Sprintf("Content-Type: %s", contentType))

	raw := strings.Join(headers, "\r\n") + "\r\n\r\n" + body

	client, err := s.dial(ctx)
	if err != nil {
		return fmt.Errorf("smtp dial %s: %w", s.addr, err)
	}
	defer client.Close()

	if !s.cfg.ImplicitTLS && s.cfg.StartTLS {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(s.tlsConfig()); err != nil {
				return fmt.Errorf("smtp starttls: %w", err)
			}
		}
	}

	if !s.cfg.DisableAuth && s.auth != nil {
		if err := client.Auth(s.auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(from); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	for _, rcpt := range recipients {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("smtp rcpt %s: %w", rcpt, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write([]byte(raw)); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close data: %w", err)
	}

	return client.Quit()
}

// Close implements io.Closer for interface compatibility.
func (s *SMTP) Close() error {
	return nil
}

// dial opens the transport connection, with TLS from the first byte when
// ImplicitTLS is set. The session deadline covers every subsequent command.
func (s *SMTP) dial(ctx context.Context) (*smtp.Client, error) {
	deadline := time.Now().Add(s.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	dialer := &net.Dialer{Timeout: s.timeout}

	var conn net.Conn
	var err error
	if s.cfg.ImplicitTLS {
		conn, err = tls.DialWithDialer(dialer, "tcp", s.addr, s.tlsConfig())
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", s.addr)
	}
	if err != nil {
		return nil, err
	}

	if err := conn.SetDeadline(deadline); err != nil {
		conn.Close()
		return nil, err
	}

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		conn.Close()
		return nil, err
	}

	return client, nil
}

func (s *SMTP) tlsConfig() *tls.Config {
	return &tls.Config{
		ServerName:         s.cfg.Host,
		InsecureSkipVerify: s.cfg.SkipVerify, //nolint:gosec // operator opt-in for relays with self-signed certs
	}
}

func buildBody(msg Message) (body string, contentType string) {
	if msg.HTMLBody != "" && msg.TextBody != "" {
		boundary := multipartBoundary()
		var sb strings.Builder
		sb.WriteString("This is a multipart message in MIME format.\r\n")
		fmt.Fprintf(&sb, "--%s\r\n", boundary)
		sb.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
		sb.WriteString("\r\n")
		sb.WriteString(msg.TextBody)
		sb.WriteString("\r\n")
		fmt.Fprintf(&sb, "--%s\r\n", boundary)
		sb.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
		sb.WriteString("\r\n")
		sb.WriteString(msg.HTMLBody)
		sb.WriteString("\r\n")
		fmt.Fprintf(&sb, "--%s--", boundary)
		return sb.String(), fmt.Sprintf("multipart/alternative; boundary=%s", boundary)
	}

	if msg.HTMLBody != "" {
		return msg.HTMLBody, "text/html; charset=UTF-8"
	}

	return msg.TextBody, "text/plain; charset=UTF-8"
}

func multipartBoundary() string {
	var b [12]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "mail-boundary-fallback"
	}
	return "mail-boundary-" + hex.EncodeToString(b[:])
}
