package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// EvidenceKind distinguishes the anti-abuse proof attached to a submission.
type EvidenceKind int

const (
	// EvidenceNone means the submission carried no anti-abuse proof at all.
	// Kept for clients that predate captcha support.
	EvidenceNone EvidenceKind = iota
	// EvidenceRemoteToken is a token checked against the remote captcha service.
	EvidenceRemoteToken
	// EvidenceLocalChallenge is an answer to a browser-side arithmetic challenge.
	EvidenceLocalChallenge
)

var (
	// ErrEvidenceMalformed indicates the local challenge payload is not valid JSON.
	ErrEvidenceMalformed = errors.New("local challenge payload is not valid json")
	// ErrEvidenceWrongType indicates the payload declares an unknown challenge type.
	ErrEvidenceWrongType = errors.New("local challenge payload has an unexpected type")
	// ErrEvidenceIncomplete indicates the payload is missing the challenge id or answer.
	ErrEvidenceIncomplete = errors.New("local challenge payload is missing id or answer")
)

const localChallengeType = "local_captcha"

// AntiAbuseEvidence is the parsed anti-abuse material of a submission.
// Token is set for EvidenceRemoteToken; ChallengeID and Answer for
// EvidenceLocalChallenge.
type AntiAbuseEvidence struct {
	Kind        EvidenceKind
	Token       string
	ChallengeID string
	Answer      string
}

type localChallengePayload struct {
	Type       string `json:"type"`
	CaptchaID  string `json:"captcha_id"`
	UserAnswer any    `json:"user_answer"`
}

// ParseEvidence classifies the anti-abuse material on a request. A remote
// token wins when both forms are present; both absent yields EvidenceNone.
//
// The local payload may arrive as a JSON object or as a JSON-encoded string
// holding one, depending on the client.
func ParseEvidence(token string, localPayload []byte) (AntiAbuseEvidence, error) {
	if token != "" {
		return AntiAbuseEvidence{Kind: EvidenceRemoteToken, Token: token}, nil
	}

	if len(localPayload) == 0 {
		return AntiAbuseEvidence{Kind: EvidenceNone}, nil
	}

	raw := localPayload
	var nested string
	if err := json.Unmarshal(raw, &nested); err == nil {
		raw = []byte(nested)
	}

	var p localChallengePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return AntiAbuseEvidence{}, ErrEvidenceMalformed
	}

	if p.Type != localChallengeType {
		return AntiAbuseEvidence{}, ErrEvidenceWrongType
	}

	answer := strings.TrimSpace(stringify(p.UserAnswer))
	if p.CaptchaID == "" || answer == "" {
		return AntiAbuseEvidence{}, ErrEvidenceIncomplete
	}

	return AntiAbuseEvidence{
		Kind:        EvidenceLocalChallenge,
		ChallengeID: p.CaptchaID,
		Answer:      answer,
	}, nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return fmt.Sprintf("%g", t)
	default:
		return fmt.Sprint(t)
	}
}
