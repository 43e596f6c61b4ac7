package domain

import "time"

// VerificationSession ties a caller's phone number to its pending one-time
// code. Sessions live in process memory only — a restart drops all pending
// verifications (known limitation).
type VerificationSession struct {
	PhoneNumber string
	Code        string
	Attempts    int
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// VerificationResult classifies the outcome of a code check.
type VerificationResult string

const (
	ResultSuccess         VerificationResult = "success"
	ResultMismatch        VerificationResult = "mismatch"
	ResultNoSession       VerificationResult = "no_session"
	ResultExpired         VerificationResult = "expired"
	ResultTooManyAttempts VerificationResult = "too_many_attempts"
)

// Audit event names recorded for the verification trail.
const (
	AuditEventStart       = "start"
	AuditEventCheck       = "check"
	AuditEventRateLimited = "rate_limited"
)

// VerificationAudit is one immutable row in the verification audit trail.
// PK: audit_id. ExpiresAt is a Unix timestamp used as DynamoDB TTL.
type VerificationAudit struct {
	AuditID     string    `json:"id" dynamodbav:"audit_id"`
	PhoneNumber string    `json:"phone_number" dynamodbav:"phone_number"`
	Event       string    `json:"event" dynamodbav:"event"` // "start" | "check" | "rate_limited"
	Result      string    `json:"result,omitempty" dynamodbav:"result"`
	CreatedAt   time.Time `json:"created" dynamodbav:"created_at"`
	ExpiresAt   int64     `json:"-" dynamodbav:"expires_at"` // TTL (Unix seconds)
}
