package handler

import (
	"net/http"

	"github.com/go-ivr-verify/internal/application/ivr"
	"github.com/go-ivr-verify/internal/config"
)

const serviceVersion = "1.0.0"

// HealthHandler serves the service-description and health-check endpoints.
type HealthHandler struct {
	businessName string
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{businessName: cfg.BusinessName}
}

func (h *HealthHandler) Status(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, StatusEnvelope{
		Status:       "healthy",
		Service:      "Business IVR Verification Service",
		BusinessName: h.businessName,
		Version:      serviceVersion,
		Features: []string{
			"Identity verification",
			"Customer support routing",
			"Rate limiting",
			"Session management",
			"Security compliance",
		},
	})
}

func (h *HealthHandler) Home(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, ServiceInfoEnvelope{
		Service:      "Business IVR Verification Service",
		Description:  "Automated identity verification over voice and SMS",
		BusinessName: h.businessName,
		Endpoints: map[string]string{
			"POST " + ivr.PathIncomingCall: "handle incoming verification calls",
			"POST " + ivr.PathChoice:       "process the verification menu choice",
			"POST " + ivr.PathVerifyCode:   "verify the entered identity verification code",
			"POST " + ivr.PathIncomingSMS:  "handle incoming SMS messages",
			"GET /health":                  "system health check",
		},
	})
}
