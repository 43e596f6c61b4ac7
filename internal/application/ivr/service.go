package ivr

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-ivr-verify/internal/domain"
	"github.com/go-ivr-verify/internal/pkg/id"
	"github.com/twilio/twilio-go/twiml"
)

// auditRetention is how long audit rows are kept before DynamoDB TTL drops them.
const auditRetention = 90 * 24 * time.Hour

// SessionStore is the orchestrator's view of the verification session store.
type SessionStore interface {
	StartSession(phoneNumber string) (string, error)
	CheckCode(phoneNumber, submitted string) domain.VerificationResult
	HasSession(phoneNumber string) bool
}

// RateLimiter gates verification starts per caller.
type RateLimiter interface {
	Allow(phoneNumber string) bool
}

// SMSSender dispatches a single outbound text message.
type SMSSender interface {
	SendSMS(ctx context.Context, to, message string) error
}

// Mailer delivers internal alert mail.
type Mailer interface {
	SendEmail(to, subject, body string) error
}

// AuditLog appends immutable verification audit events.
type AuditLog interface {
	Record(ctx context.Context, a *domain.VerificationAudit) error
}

// Service drives the verification call tree. It is stateless between
// webhooks: each method reconstructs context solely from the caller's phone
// number and the digits or text submitted in that step.
type Service interface {
	AnswerCall(ctx context.Context, from string) (string, error)
	HandleMenuChoice(ctx context.Context, from, digits string) (string, error)
	VerifyCode(ctx context.Context, from, digits string) (string, error)
	HandleSMS(ctx context.Context, from, body string) (string, error)
}

// ServiceDeps carries the orchestrator's collaborators. SMSSender, Mailer and
// Audit may be nil; the corresponding feature degrades with a logged warning.
type ServiceDeps struct {
	Sessions     SessionStore
	Limiter      RateLimiter
	SMSSender    SMSSender
	Mailer       Mailer
	Audit        AuditLog
	BusinessName string
	SupportEmail string
	SMSTimeout   time.Duration
}

type service struct {
	deps ServiceDeps
}

func NewService(deps ServiceDeps) Service {
	return &service{deps: deps}
}

// AnswerCall handles a call-start event: rate-limit gate, then the menu.
func (s *service) AnswerCall(ctx context.Context, from string) (string, error) {
	if !s.deps.Limiter.Allow(from) {
		slog.Info("verification call rate limited", "from", from)
		s.recordAudit(ctx, from, domain.AuditEventRateLimited, "")
		return twiml.Voice([]twiml.Element{
			say(msgRateLimited),
			twiml.VoiceHangup{},
		})
	}

	gather := twiml.VoiceGather{
		NumDigits: menuNumDigits,
		Action:    PathChoice,
		Method:    "POST",
		Timeout:   menuTimeout,
		InnerElements: []twiml.Element{
			say(msgMenu),
		},
	}

	return twiml.Voice([]twiml.Element{
		say(fmt.Sprintf(msgWelcome, s.deps.BusinessName)),
		gather,
		// Reached only if the gather times out without input.
		say(msgNoSelection),
		twiml.VoiceHangup{},
	})
}

// HandleMenuChoice handles the digit gathered from the menu.
func (s *service) HandleMenuChoice(ctx context.Context, from, digits string) (string, error) {
	switch digits {
	case "1":
		return s.startVerification(ctx, from)
	case "2":
		s.notifySupport(from)
		return twiml.Voice([]twiml.Element{
			say(msgHoldForAgent),
			// No transfer integration yet; the support team gets a callback
			// alert instead.
			say(msgAgentUnavailable),
			twiml.VoiceHangup{},
		})
	default:
		slog.Info("invalid menu selection", "from", from, "digits", digits)
		return twiml.Voice([]twiml.Element{
			say(msgInvalidSelection),
			twiml.VoiceHangup{},
		})
	}
}

func (s *service) startVerification(ctx context.Context, from string) (string, error) {
	code, err := s.deps.Sessions.StartSession(from)
	if err != nil {
		slog.Error("failed to start verification session", "from", from, "err", err)
		return technicalDifficulty()
	}
	s.recordAudit(ctx, from, domain.AuditEventStart, "")

	if err := s.dispatchCode(ctx, from, code); err != nil {
		slog.Error("failed to send verification SMS", "from", from, "err", err)
		return technicalDifficulty()
	}
	slog.Info("verification SMS sent", "from", from)

	gather := twiml.VoiceGather{
		NumDigits: codeNumDigits,
		Action:    PathVerifyCode,
		Method:    "POST",
		Timeout:   codeTimeout,
		InnerElements: []twiml.Element{
			say(msgEnterCode),
		},
	}

	return twiml.Voice([]twiml.Element{
		say(msgCodeSent),
		gather,
		say(msgNoCode),
		twiml.VoiceHangup{},
	})
}

// dispatchCode sends the code SMS, bounded by the configured timeout.
// A failed dispatch is terminal for this call; there is no retry.
func (s *service) dispatchCode(ctx context.Context, to, code string) error {
	if s.deps.SMSSender == nil {
		return fmt.Errorf("sms dispatch: %w", domain.ErrUnavailable)
	}
	sendCtx, cancel := context.WithTimeout(ctx, s.deps.SMSTimeout)
	defer cancel()
	body := fmt.Sprintf(smsCodeBody, s.deps.BusinessName, code)
	return s.deps.SMSSender.SendSMS(sendCtx, to, body)
}

// VerifyCode handles the gathered 6-digit code entry.
func (s *service) VerifyCode(ctx context.Context, from, digits string) (string, error) {
	result := s.deps.Sessions.CheckCode(from, digits)
	slog.Info("verification code checked", "from", from, "result", result)
	s.recordAudit(ctx, from, domain.AuditEventCheck, result)

	var msg string
	switch result {
	case domain.ResultSuccess:
		msg = msgVerifySuccess
	case domain.ResultMismatch:
		msg = msgVerifyMismatch
	case domain.ResultExpired:
		msg = msgVerifyExpired
	case domain.ResultTooManyAttempts:
		msg = msgVerifyTooManyAttempts
	default:
		msg = msgVerifyNoSession
	}

	return twiml.Voice([]twiml.Element{
		say(msg),
		twiml.VoiceHangup{},
	})
}

// HandleSMS handles inbound text messages: a small command surface for
// support guidance and session status.
func (s *service) HandleSMS(ctx context.Context, from, body string) (string, error) {
	var reply string
	switch strings.ToLower(strings.TrimSpace(body)) {
	case "help", "support":
		reply = fmt.Sprintf(smsHelpReply, s.deps.BusinessName)
	case "status":
		if s.deps.Sessions.HasSession(from) {
			reply = smsStatusPendingReply
		} else {
			reply = smsStatusNoneReply
		}
	default:
		reply = fmt.Sprintf(smsDefaultReply, s.deps.BusinessName)
	}

	return twiml.Messages([]twiml.Element{
		twiml.MessagingMessage{Body: reply},
	})
}

// notifySupport emails a callback request to the support inbox. Best-effort:
// the call flow does not depend on delivery.
func (s *service) notifySupport(from string) {
	if s.deps.Mailer == nil || s.deps.SupportEmail == "" {
		slog.Warn("agent requested but no support mailer configured", "from", from)
		return
	}
	subject := "IVR callback request"
	body := fmt.Sprintf("Caller %s requested a customer service representative at %s.",
		from, time.Now().UTC().Format(time.RFC3339))
	if err := s.deps.Mailer.SendEmail(s.deps.SupportEmail, subject, body); err != nil {
		slog.Warn("failed to send support callback alert", "from", from, "err", err)
		return
	}
	slog.Info("support callback alert sent", "from", from)
}

// recordAudit appends a trail row. Best-effort: audit failures never affect
// the call.
func (s *service) recordAudit(ctx context.Context, phone, event string, result domain.VerificationResult) {
	if s.deps.Audit == nil {
		return
	}
	now := time.Now().UTC()
	a := &domain.VerificationAudit{
		AuditID:     id.New(),
		PhoneNumber: phone,
		Event:       event,
		Result:      string(result),
		CreatedAt:   now,
		ExpiresAt:   now.Add(auditRetention).Unix(),
	}
	if err := s.deps.Audit.Record(ctx, a); err != nil {
		slog.Warn("failed to record verification audit event", "phone", phone, "event", event, "err", err)
	}
}

func say(text string) twiml.VoiceSay {
	return twiml.VoiceSay{
		Message:  text,
		Voice:    promptVoice,
		Language: promptLanguage,
	}
}

func technicalDifficulty() (string, error) {
	return twiml.Voice([]twiml.Element{
		say(msgTechnicalDifficulty),
		twiml.VoiceHangup{},
	})
}
