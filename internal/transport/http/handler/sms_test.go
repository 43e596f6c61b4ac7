package handler

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSMSIncoming_ForwardsBody(t *testing.T) {
	svc := &mockIVRService{}
	svc.On("HandleSMS", mock.Anything, "+15551234567", "status").Return(sampleDoc, nil)

	rec := postWebhook(t, NewSMSHandler(svc).Incoming, url.Values{
		"From": {"+15551234567"},
		"Body": {"status"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/xml", rec.Header().Get("Content-Type"))
	svc.AssertExpectations(t)
}

func TestSMSIncoming_MissingFromRejected(t *testing.T) {
	svc := &mockIVRService{}

	rec := postWebhook(t, NewSMSHandler(svc).Incoming, url.Values{"Body": {"help"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "HandleSMS", mock.Anything, mock.Anything, mock.Anything)
}
