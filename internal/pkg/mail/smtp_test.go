package mail

import (
	"context"
	"strings"
	"testing"
)

func TestSMTP_Configured(t *testing.T) {
	tests := []struct {
		name string
		cfg  SMTPConfig
		want bool
	}{
		{
			name: "missing host",
			cfg:  SMTPConfig{Port: 587, Username: "u", Password: "p"},
			want: false,
		},
		{
			name: "missing credentials",
			cfg:  SMTPConfig{Host: "smtp.example.com", Port: 587},
			want: false,
		},
		{
			name: "credentials present",
			cfg:  SMTPConfig{Host: "smtp.example.com", Port: 587, Username: "u", Password: "p"},
			want: true,
		},
		{
			name: "open relay without auth",
			cfg:  SMTPConfig{Host: "relay.internal", Port: 25, DisableAuth: true},
			want: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewSMTP(tc.cfg).Configured(); got != tc.want {
				t.Fatalf("Configured() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSMTP_Send_NotConfigured(t *testing.T) {
	// Arrange
	s := NewSMTP(SMTPConfig{})

	// Act
	err := s.Send(context.Background(), Message{To: []string{"a@example.com"}})

	// Assert
	if err != ErrSMTPNotConfigured {
		t.Fatalf("got %v, want ErrSMTPNotConfigured", err)
	}
}

func TestBuildBody(t *testing.T) {
	t.Run("both bodies produce multipart alternative", func(t *testing.T) {
		// Arrange
		msg := Message{TextBody: "plain", HTMLBody: "<p>rich</p>"}

		// Act
		body, contentType := buildBody(msg)

		// Assert
		if !strings.HasPrefix(contentType, "multipart/alternative; boundary=") {
			t.Fatalf("unexpected content type %q", contentType)
		}
		boundary := strings.TrimPrefix(contentType, "multipart/alternative; boundary=")
		if strings.Count(body, "--"+boundary) != 3 {
			t.Fatalf("expected two parts and a terminator in body:\n%s", body)
		}
		if !strings.Contains(body, "plain") || !strings.Contains(body, "<p>rich</p>") {
			t.Fatal("body is missing a part")
		}
	})

	t.Run("html only", func(t *testing.T) {
		body, contentType := buildBody(Message{HTMLBody: "<p>rich</p>"})
		if contentType != "text/html; charset=UTF-8" || body != "<p>rich</p>" {
			t.Fatalf("got (%q, %q)", body, contentType)
		}
	})

	t.Run("text only", func(t *testing.T) {
		body, contentType := buildBody(Message{TextBody: "plain"})
		if contentType != "text/plain; charset=UTF-8" || body != "plain" {
			t.Fatalf("got (%q, %q)", body, contentType)
		}
	})
}
