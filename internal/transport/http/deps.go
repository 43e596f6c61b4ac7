package http

import (
	"github.com/go-ivr-verify/internal/infrastructure/dynamo"
	"github.com/go-ivr-verify/internal/infrastructure/smtp"
	"github.com/go-ivr-verify/internal/infrastructure/sns"
)

// Deps holds all infrastructure dependencies for the router.
// SMSSender, Mailer and AuditRepo may be nil; the features backed by them
// degrade gracefully.
type Deps struct {
	SMSSender sns.SMSSender
	Mailer    smtp.Mailer
	AuditRepo *dynamo.AuditRepo
}
