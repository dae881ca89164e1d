package entity

import (
	"errors"
	"testing"
)

func TestParseEvidence(t *testing.T) {
	t.Run("remote token wins over local payload", func(t *testing.T) {
		// Arrange
		local := []byte(`{"type":"local_captcha","captcha_id":"c1","user_answer":"7"}`)

		// Act
		ev, err := ParseEvidence("tok-123", local)

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.Kind != EvidenceRemoteToken || ev.Token != "tok-123" {
			t.Fatalf("got %+v, want remote token evidence", ev)
		}
	})

	t.Run("both absent yields none", func(t *testing.T) {
		ev, err := ParseEvidence("", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.Kind != EvidenceNone {
			t.Fatalf("got kind %v, want EvidenceNone", ev.Kind)
		}
	})

	t.Run("local challenge object", func(t *testing.T) {
		ev, err := ParseEvidence("", []byte(`{"type":"local_captcha","captcha_id":"c1","user_answer":12}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.Kind != EvidenceLocalChallenge || ev.ChallengeID != "c1" || ev.Answer != "12" {
			t.Fatalf("got %+v", ev)
		}
	})

	t.Run("local challenge as json-encoded string", func(t *testing.T) {
		ev, err := ParseEvidence("", []byte(`"{\"type\":\"local_captcha\",\"captcha_id\":\"c2\",\"user_answer\":\"3\"}"`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.Kind != EvidenceLocalChallenge || ev.ChallengeID != "c2" || ev.Answer != "3" {
			t.Fatalf("got %+v", ev)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		_, err := ParseEvidence("", []byte(`{not json`))
		if !errors.Is(err, ErrEvidenceMalformed) {
			t.Fatalf("got %v, want ErrEvidenceMalformed", err)
		}
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := ParseEvidence("", []byte(`{"type":"image_captcha","captcha_id":"c1","user_answer":"7"}`))
		if !errors.Is(err, ErrEvidenceWrongType) {
			t.Fatalf("got %v, want ErrEvidenceWrongType", err)
		}
	})

	t.Run("missing answer", func(t *testing.T) {
		_, err := ParseEvidence("", []byte(`{"type":"local_captcha","captcha_id":"c1"}`))
		if !errors.Is(err, ErrEvidenceIncomplete) {
			t.Fatalf("got %v, want ErrEvidenceIncomplete", err)
		}
	})

	t.Run("blank answer", func(t *testing.T) {
		_, err := ParseEvidence("", []byte(`{"type":"local_captcha","captcha_id":"c1","user_answer":"  "}`))
		if !errors.Is(err, ErrEvidenceIncomplete) {
			t.Fatalf("got %v, want ErrEvidenceIncomplete", err)
		}
	})
}
