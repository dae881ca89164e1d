package emailtpl

import (
	"strings"
	"testing"
	"time"
)

var receivedAt = time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC)

func TestRenderNotification(t *testing.T) {
	t.Run("full submission", func(t *testing.T) {
		// Arrange
		data := NotificationData{
			Name:        "Ada Lovelace",
			Email:       "ada@example.com",
			Company:     "Analytical Engines",
			Role:        "CTO",
			ProjectType: "Cloud Migration",
			Budget:      "$10k-$25k",
			Timeline:    "Q2",
			Message:     "We need help moving to the cloud.",
			SourceIP:    "203.0.113.9",
			WebsiteURL:  "https://example.dev",
			ReceivedAt:  receivedAt,
		}

		// Act
		out, err := RenderNotification("[Portfolio]", data)

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Subject != "[Portfolio] Cloud Migration - Ada Lovelace" {
			t.Fatalf("unexpected subject %q", out.Subject)
		}
		for _, want := range []string{"Ada Lovelace", "ada@example.com", "Analytical Engines", "Cloud Migration", "$10k-$25k", "203.0.113.9"} {
			if !strings.Contains(out.HTML, want) {
				t.Errorf("html is missing %q", want)
			}
			if !strings.Contains(out.Text, want) {
				t.Errorf("text is missing %q", want)
			}
		}
	})

	t.Run("optional fields are omitted", func(t *testing.T) {
		// Arrange
		data := NotificationData{
			Name:       "Bob",
			Email:      "bob@example.com",
			Message:    "Hello there, quick question.",
			ReceivedAt: receivedAt,
		}

		// Act
		out, err := RenderNotification("[Portfolio]", data)

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Subject != "[Portfolio] Bob" {
			t.Fatalf("unexpected subject %q", out.Subject)
		}
		for _, absent := range []string{"Company", "Budget", "Timeline", "Project Type"} {
			if strings.Contains(out.HTML, absent) {
				t.Errorf("html should not mention %q", absent)
			}
		}
	})

	t.Run("html input is escaped", func(t *testing.T) {
		// Arrange
		data := NotificationData{
			Name:       "<script>alert(1)</script>",
			Email:      "x@example.com",
			Message:    "msg body here",
			ReceivedAt: receivedAt,
		}

		// Act
		out, err := RenderNotification("[Portfolio]", data)

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(out.HTML, "<script>") {
			t.Fatal("html body contains unescaped markup")
		}
	})

	t.Run("rendering is deterministic", func(t *testing.T) {
		data := NotificationData{Name: "Ada", Email: "a@example.com", Message: "same input", ReceivedAt: receivedAt}
		first, err := RenderNotification("[P]", data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := RenderNotification("[P]", data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first != second {
			t.Fatal("same data rendered differently")
		}
	})
}

func TestRenderConfirmation(t *testing.T) {
	// Arrange
	data := ConfirmationData{
		Name:          "Ada",
		ProjectType:   "Cloud Migration",
		OperatorName:  "Jordan Smith",
		OperatorEmail: "jordan@example.dev",
		WebsiteURL:    "https://example.dev",
		ReceivedAt:    receivedAt,
	}

	// Act
	out, err := RenderConfirmation(data)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Subject != "Thank you for reaching out, Ada!" {
		t.Fatalf("unexpected subject %q", out.Subject)
	}
	for _, want := range []string{"Hi Ada", "Cloud Migration", "Jordan Smith", "jordan@example.dev", "24-48 hours"} {
		if !strings.Contains(out.HTML, want) {
			t.Errorf("html is missing %q", want)
		}
	}
	if !strings.Contains(out.Text, "Jordan Smith") {
		t.Error("text is missing the operator name")
	}
}
