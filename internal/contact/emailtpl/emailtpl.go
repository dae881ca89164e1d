// Package emailtpl renders the contact-form email pair: the notification sent
// to the site owner and the confirmation sent back to the visitor.
//
// Templates are parsed once at init, so a broken template fails the process at
// startup instead of at send time. Rendering is pure; the same data always
// produces the same output.
package emailtpl

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"
	"time"
)

// Rendered is a subject line plus both body representations of one email.
type Rendered struct {
	Subject string
	HTML    string
	Text    string
}

// NotificationData feeds the owner notification templates.
type NotificationData struct {
	Name        string
	Email       string
	Company     string
	Role        string
	ProjectType string
	Budget      string
	Timeline    string
	Message     string
	SourceIP    string
	WebsiteURL  string
	ReceivedAt  time.Time
}

// ConfirmationData feeds the visitor auto-reply templates.
type ConfirmationData struct {
	Name          string
	ProjectType   string
	OperatorName  string
	OperatorEmail string
	WebsiteURL    string
	ReceivedAt    time.Time
}

// RenderNotification builds the email delivered to the site owner.
func RenderNotification(subjectPrefix string, d NotificationData) (Rendered, error) {
	subject := subjectPrefix
	if d.ProjectType != "" {
		subject += " " + d.ProjectType + " -"
	}
	subject = strings.TrimSpace(subject + " " + d.Name)

	view := notificationView{NotificationData: d, When: formatWhen(d.ReceivedAt)}

	html, err := execute(notificationHTML, view)
	if err != nil {
		return Rendered{}, fmt.Errorf("render notification html: %w", err)
	}

	text, err := executeText(notificationText, view)
	if err != nil {
		return Rendered{}, fmt.Errorf("render notification text: %w", err)
	}

	return Rendered{Subject: subject, HTML: html, Text: text}, nil
}

// RenderConfirmation builds the auto-reply delivered to the visitor.
func RenderConfirmation(d ConfirmationData) (Rendered, error) {
	view := confirmationView{ConfirmationData: d, When: formatWhen(d.ReceivedAt)}

	html, err := execute(confirmationHTML, view)
	if err != nil {
		return Rendered{}, fmt.Errorf("render confirmation html: %w", err)
	}

	text, err := executeText(confirmationText, view)
	if err != nil {
		return Rendered{}, fmt.Errorf("render confirmation text: %w", err)
	}

	return Rendered{
		Subject: fmt.Sprintf("Thank you for reaching out, %s!", d.Name),
		HTML:    html,
		Text:    text,
	}, nil
}

type notificationView struct {
	NotificationData
	When string
}

type confirmationView struct {
	ConfirmationData
	When string
}

func formatWhen(t time.Time) string {
	return t.Format("January 2, 2006 at 15:04 MST")
}

func execute(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func executeText(t *texttemplate.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
