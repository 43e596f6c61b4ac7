package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-ivr-verify/internal/application/ivr"
	"github.com/go-ivr-verify/internal/application/verification"
	"github.com/go-ivr-verify/internal/config"
	"github.com/go-ivr-verify/internal/transport/http/handler"
	appmiddleware "github.com/go-ivr-verify/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Twilio-Signature"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	sessions := verification.NewStore(cfg.SessionTTL, cfg.MaxAttempts)
	callGate := verification.NewRateLimiter(cfg.RateLimitWindow)

	// Avoid a typed-nil repo hiding behind a non-nil interface.
	var auditLog ivr.AuditLog
	if deps.AuditRepo != nil {
		auditLog = deps.AuditRepo
	}

	ivrSvc := ivr.NewService(ivr.ServiceDeps{
		Sessions:     sessions,
		Limiter:      callGate,
		SMSSender:    deps.SMSSender,
		Mailer:       deps.Mailer,
		Audit:        auditLog,
		BusinessName: cfg.BusinessName,
		SupportEmail: cfg.SupportEmail,
		SMSTimeout:   cfg.SMSTimeout,
	})

	healthH := handler.NewHealthHandler(cfg)
	callH := handler.NewCallHandler(ivrSvc)
	smsH := handler.NewSMSHandler(ivrSvc)

	// 5 requests/second, burst of 10 — transport-level protection on the
	// webhook surface.
	webhookRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)
	signature := appmiddleware.TwilioSignature(cfg.TwilioAuthToken, cfg.PublicBaseURL)

	r.Get("/", healthH.Home)
	r.Get("/health", healthH.Status)

	r.Group(func(r chi.Router) {
		r.Use(webhookRL.Limit)
		r.Use(signature)

		r.Post(ivr.PathIncomingCall, callH.Incoming)
		r.Post(ivr.PathChoice, callH.Choice)
		r.Post(ivr.PathVerifyCode, callH.Verify)
		r.Post(ivr.PathIncomingSMS, smsH.Incoming)
	})

	return r
}
