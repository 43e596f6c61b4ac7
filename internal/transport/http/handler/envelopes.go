package handler

import (
	"encoding/json"
	"net/http"
)

// MessageEnvelope is the generic JSON response wrapper.
type MessageEnvelope struct {
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	ErrorCode int    `json:"error_code,omitempty"`
}

// StatusEnvelope is the health-check payload.
type StatusEnvelope struct {
	Status       string   `json:"status"`
	Service      string   `json:"service"`
	BusinessName string   `json:"business_name"`
	Version      string   `json:"version"`
	Features     []string `json:"features"`
}

// ServiceInfoEnvelope describes the service and its endpoints.
type ServiceInfoEnvelope struct {
	Service      string            `json:"service"`
	Description  string            `json:"description"`
	BusinessName string            `json:"business_name"`
	Endpoints    map[string]string `json:"endpoints"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}

// writeTwiML writes a voice/messaging markup document. The provider expects
// text/xml.
func writeTwiML(w http.ResponseWriter, doc string) {
	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}
