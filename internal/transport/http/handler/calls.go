package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-ivr-verify/internal/application/ivr"
	"github.com/go-ivr-verify/internal/domain"
	"github.com/go-ivr-verify/internal/pkg/validate"
)

// CallHandler handles the voice webhook callbacks that drive the
// verification call tree.
type CallHandler struct {
	svc ivr.Service
}

func NewCallHandler(svc ivr.Service) *CallHandler {
	return &CallHandler{svc: svc}
}

// Incoming handles the call-start event.
func (h *CallHandler) Incoming(w http.ResponseWriter, r *http.Request) {
	ev, ok := parseCallEvent(w, r)
	if !ok {
		return
	}
	slog.Info("verification call received", "from", ev.From)
	doc, err := h.svc.AnswerCall(r.Context(), ev.From)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build response")
		return
	}
	writeTwiML(w, doc)
}

// Choice handles the menu digit gathered after the welcome prompt.
func (h *CallHandler) Choice(w http.ResponseWriter, r *http.Request) {
	ev, ok := parseCallEvent(w, r)
	if !ok {
		return
	}
	slog.Info("verification choice received", "from", ev.From, "digits", ev.Digits)
	doc, err := h.svc.HandleMenuChoice(r.Context(), ev.From, ev.Digits)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build response")
		return
	}
	writeTwiML(w, doc)
}

// Verify handles the 6-digit code entry.
func (h *CallHandler) Verify(w http.ResponseWriter, r *http.Request) {
	ev, ok := parseCallEvent(w, r)
	if !ok {
		return
	}
	slog.Info("verification attempt received", "from", ev.From)
	doc, err := h.svc.VerifyCode(r.Context(), ev.From, ev.Digits)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build response")
		return
	}
	writeTwiML(w, doc)
}

// parseCallEvent extracts and validates the webhook form fields shared by all
// call steps. On failure it writes the error response and returns ok=false.
func parseCallEvent(w http.ResponseWriter, r *http.Request) (domain.CallEvent, bool) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "malformed form body")
		return domain.CallEvent{}, false
	}
	ev := domain.CallEvent{
		From:   r.PostFormValue("From"),
		Digits: r.PostFormValue("Digits"),
		Body:   r.PostFormValue("Body"),
	}
	if err := validate.Struct(&ev); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return domain.CallEvent{}, false
	}
	return ev, true
}
