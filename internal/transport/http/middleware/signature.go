package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	twclient "github.com/twilio/twilio-go/client"
)

// TwilioSignature validates the X-Twilio-Signature header on webhook
// callbacks so only the telephony provider can drive the call tree.
// An empty auth token disables validation (local development).
func TwilioSignature(authToken, baseURL string) func(http.Handler) http.Handler {
	if authToken == "" {
		slog.Warn("TWILIO_AUTH_TOKEN not set; webhook signature validation disabled")
		return func(next http.Handler) http.Handler { return next }
	}

	validator := twclient.NewRequestValidator(authToken)
	base := strings.TrimRight(baseURL, "/")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseForm(); err != nil {
				writeJSONError(w, http.StatusBadRequest, "malformed form body")
				return
			}
			params := make(map[string]string, len(r.PostForm))
			for k := range r.PostForm {
				params[k] = r.PostForm.Get(k)
			}
			// The signature covers the full externally visible URL.
			url := base + r.URL.RequestURI()
			if !validator.Validate(url, params, r.Header.Get("X-Twilio-Signature")) {
				slog.Warn("rejected webhook with invalid signature", "path", r.URL.Path, "ip", realIP(r))
				writeJSONError(w, http.StatusForbidden, "invalid webhook signature")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
