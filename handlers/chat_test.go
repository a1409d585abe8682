package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatEndpointGreeting(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/chat", map[string]string{"message": "hello"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Contains(t, body["response"], "dashboard component assistant")
	assert.NotEmpty(t, body["session_id"])
	assert.NotNil(t, body["chat_id"])
	assert.Equal(t, "rule_based", body["model_used"])
	assert.Nil(t, body["component_suggestion"])
}

func TestChatEndpointComponentRequest(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/chat", map[string]string{
		"message":    "Create a chart showing sales data updated every 10 minutes",
		"session_id": "sess-1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "sess-1", body["session_id"])

	suggestion, ok := body["component_suggestion"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "chart_sales", suggestion["name"])
	assert.Equal(t, "chart", suggestion["component_type"])
	assert.Equal(t, "10 min", suggestion["interval"])

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "mysql", data["source"])
	assert.Equal(t, float64(2), data["count"])
}

func TestChatEndpointInvalidBody(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatEndpointNeverErrorsOnContent(t *testing.T) {
	r := newTestRouter(t)

	// Unintelligible input still gets a 200 with the help response.
	w := doJSON(t, r, http.MethodPost, "/api/chat", map[string]string{"message": "xyzzy plugh"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.NotEmpty(t, body["response"])
	assert.Nil(t, body["component_suggestion"])
}

func TestChatHistoryEndpoint(t *testing.T) {
	r := newTestRouter(t)

	for _, msg := range []string{"hi", "add a sales chart"} {
		w := doJSON(t, r, http.MethodPost, "/api/chat", map[string]string{
			"message":    msg,
			"session_id": "sess-h",
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/chat/history/sess-h", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "sess-h", body["session_id"])
	assert.Equal(t, float64(2), body["total_count"])

	chats, ok := body["chats"].([]interface{})
	require.True(t, ok)
	require.Len(t, chats, 2)
	newest := chats[0].(map[string]interface{})
	assert.Equal(t, "add a sales chart", newest["user_message"])
}

func TestChatHistoryEmptySession(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/chat/history/no-such-session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(0), body["total_count"])
}

func TestChatStatisticsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/chat", map[string]string{"message": "hi", "session_id": "s"})
	doJSON(t, r, http.MethodPost, "/api/chat", map[string]string{"message": "add a sales chart", "session_id": "s"})

	w := doJSON(t, r, http.MethodGet, "/api/chat/statistics?session_id=s", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(2), body["total_chats"])
	assert.Equal(t, float64(1), body["chats_with_suggestions"])
	assert.Equal(t, float64(50), body["suggestion_rate"])
}

func TestChatSearchEndpoint(t *testing.T) {
	r := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/chat", map[string]string{"message": "add a sales chart"})
	doJSON(t, r, http.MethodPost, "/api/chat", map[string]string{"message": "show user metrics"})

	w := doJSON(t, r, http.MethodGet, "/api/chat/search?q=sales", nil)
	require.Equal(t, http.StatusOK, w.Code)
	chats := decodeList(t, w)
	require.Len(t, chats, 1)
	assert.Equal(t, "add a sales chart", chats[0]["user_message"])

	// Missing search term.
	w = doJSON(t, r, http.MethodGet, "/api/chat/search", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatMessageGetAndDelete(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/chat", map[string]string{"message": "hi"})
	require.Equal(t, http.StatusOK, w.Code)
	chatID := decode(t, w)["chat_id"].(float64)

	path := fmt.Sprintf("/api/chat/messages/%d", int(chatID))

	w = doJSON(t, r, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hi", decode(t, w)["user_message"])

	w = doJSON(t, r, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, r, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthAndRoot(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])

	w = doJSON(t, r, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode(t, w)["message"])
}
