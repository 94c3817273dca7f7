package controllers

import (
	"context"
	"net/http"
	"testing"

	"groupschedule/internal/delivery/http/helpers"
	"groupschedule/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResponseService struct {
	err          error
	lastPublicID string
	lastInput    domain.ResponseInput
}

func (f *fakeResponseService) SubmitResponse(ctx context.Context, publicID string, in domain.ResponseInput) error {
	f.lastPublicID = publicID
	f.lastInput = in
	return f.err
}

func TestResponseController_SubmitResponse(t *testing.T) {
	t.Run("accepts bare and annotated answers", func(t *testing.T) {
		svc := &fakeResponseService{}
		c := NewResponseController(testLogger, svc)
		body := `{"name":"Taro","answers":{"o1":"ok","o2":{"status":"maybe","note":"after 7pm"}}}`
		rec := serve("POST /events/{publicId}/responses", c.SubmitResponse, http.MethodPost, "/events/abc/responses", body)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())
		assert.Equal(t, "abc", svc.lastPublicID)
		assert.Equal(t, "Taro", svc.lastInput.Name)
		assert.Equal(t, domain.Answer{Status: domain.StatusOK}, svc.lastInput.Answers["o1"])
		assert.Equal(t, domain.StatusMaybe, svc.lastInput.Answers["o2"].Status)
		require.NotNil(t, svc.lastInput.Answers["o2"].Note)
		assert.Equal(t, "after 7pm", *svc.lastInput.Answers["o2"].Note)
	})

	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantError  string
	}{
		{name: "malformed answers", body: `{"name":"Taro","answers":{"o1":7}}`, wantStatus: http.StatusBadRequest, wantError: helpers.MsgInvalidBody},
		{name: "validation", body: `{"name":"","answers":{}}`, svcErr: domain.NewValidationError("name is required"), wantStatus: http.StatusBadRequest, wantError: "name is required"},
		{name: "unknown event", body: `{"name":"Taro","answers":{"o1":"ok"}}`, svcErr: domain.ErrNotFound, wantStatus: http.StatusNotFound, wantError: helpers.MsgNotFound},
		{name: "storage", body: `{"name":"Taro","answers":{"o1":"ok"}}`, svcErr: domain.ErrStorage, wantStatus: http.StatusInternalServerError, wantError: helpers.MsgInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewResponseController(testLogger, &fakeResponseService{err: tt.svcErr})
			rec := serve("POST /events/{publicId}/responses", c.SubmitResponse, http.MethodPost, "/events/abc/responses", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rec))
		})
	}
}
