package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innocurve/models"
	"innocurve/services/chat"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeChatService struct {
	resp   *models.ChatResponse
	err    error
	called bool
}

func (f *fakeChatService) HandleMessage(_ context.Context, _ models.ChatRequest) (*models.ChatResponse, error) {
	f.called = true
	return f.resp, f.err
}

func postChat(t *testing.T, svc chat.ChatService, body string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.POST("/api/chat", NewChatHandler(svc).HandleChat)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	svc := &fakeChatService{}

	for _, body := range []string{`{}`, `{"message":""}`, `{"message":"   "}`} {
		w := postChat(t, svc, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
		assert.False(t, svc.called, "service must not run for body %s", body)

		var payload map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
		assert.NotEmpty(t, payload["error"])
	}
}

func TestChatPassesThroughServiceResponse(t *testing.T) {
	svc := &fakeChatService{resp: &models.ChatResponse{
		Response:            "상담 예약을 진행할까요? 원하시면 '예'라고 말씀해주세요.",
		ShowReservationForm: false,
	}}

	w := postChat(t, svc, `{"message":"예약하고 싶어요","language":"ko"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var payload models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, svc.resp.Response, payload.Response)
	assert.False(t, payload.ShowReservationForm)
}

func TestChatServiceFailureIsServerError(t *testing.T) {
	svc := &fakeChatService{err: errors.New("generation failed")}

	w := postChat(t, svc, `{"message":"안녕하세요"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, chat.LocaleFor("ko").ServerError, payload["error"])
}
