package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-ivr-verify/internal/application/ivr"
)

// SMSHandler handles inbound text-message webhooks.
type SMSHandler struct {
	svc ivr.Service
}

func NewSMSHandler(svc ivr.Service) *SMSHandler {
	return &SMSHandler{svc: svc}
}

func (h *SMSHandler) Incoming(w http.ResponseWriter, r *http.Request) {
	ev, ok := parseCallEvent(w, r)
	if !ok {
		return
	}
	slog.Info("support SMS received", "from", ev.From)
	doc, err := h.svc.HandleSMS(r.Context(), ev.From, ev.Body)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build response")
		return
	}
	writeTwiML(w, doc)
}
