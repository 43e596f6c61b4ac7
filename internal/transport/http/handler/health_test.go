package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-ivr-verify/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_ReportsHealthyWithFeatures(t *testing.T) {
	h := NewHealthHandler(&config.Config{BusinessName: "Acme Verification"})

	rec := httptest.NewRecorder()
	h.Status(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var env StatusEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "healthy", env.Status)
	assert.Equal(t, "Acme Verification", env.BusinessName)
	assert.Contains(t, env.Features, "Identity verification")
	assert.Contains(t, env.Features, "Rate limiting")
}

func TestHome_ListsEndpoints(t *testing.T) {
	h := NewHealthHandler(&config.Config{BusinessName: "Acme Verification"})

	rec := httptest.NewRecorder()
	h.Home(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var env ServiceInfoEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Contains(t, env.Endpoints, "POST /incoming-call")
	assert.Contains(t, env.Endpoints, "POST /verify_code")
}
