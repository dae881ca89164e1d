package entity

import "time"

// AuditStatus tracks a submission through the email pipeline.
type AuditStatus string

const (
	// AuditStatusReceived marks a submission that passed verification.
	AuditStatusReceived AuditStatus = "received"
	// AuditStatusSent marks both notification and confirmation delivered.
	AuditStatusSent AuditStatus = "sent"
	// AuditStatusPartial marks the notification delivered without confirmation.
	AuditStatusPartial AuditStatus = "partial"
	// AuditStatusRejected marks a submission stopped by the rate limiter.
	AuditStatusRejected AuditStatus = "rejected"
	// AuditStatusFailed marks a submission that could not be delivered.
	AuditStatusFailed AuditStatus = "failed"
)

// String returns the status as stored in the audit trail.
func (s AuditStatus) String() string {
	return string(s)
}

// AuditRecord is the persisted trail of one submission.
type AuditRecord struct {
	ID          int64
	Name        string
	Email       string
	Company     string
	ProjectType string
	Status      AuditStatus
	Detail      string
	SourceIP    string
	UserAgent   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
