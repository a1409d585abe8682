package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"dashcomposer/assistant"
	"dashcomposer/db"
	"dashcomposer/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := db.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	orchestrator := assistant.NewOrchestrator(nil)
	h := New(
		service.NewChatService(database, orchestrator, 10),
		service.NewComponentService(database),
	)

	r := gin.New()
	r.GET("/", h.RootHandler)
	r.GET("/health", h.HealthHandler)

	r.POST("/api/chat", h.ChatHandler)
	r.GET("/api/chat/history/:session_id", h.ChatHistoryHandler)
	r.GET("/api/chat/statistics", h.ChatStatisticsHandler)
	r.GET("/api/chat/search", h.ChatSearchHandler)
	r.GET("/api/chat/messages/:id", h.GetChatMessageHandler)
	r.DELETE("/api/chat/messages/:id", h.DeleteChatMessageHandler)

	r.POST("/api/components", h.CreateComponentHandler)
	r.GET("/api/components", h.ListComponentsHandler)
	r.GET("/api/components/:id", h.GetComponentHandler)
	r.PUT("/api/components/:id", h.UpdateComponentHandler)
	r.DELETE("/api/components/:id", h.DeleteComponentHandler)
	r.GET("/api/components/type/:component_type", h.ComponentsByTypeHandler)
	r.GET("/api/components/source/:data_source", h.ComponentsBySourceHandler)
	r.GET("/api/components/interval/:interval", h.ComponentsByIntervalHandler)
	r.GET("/api/components/search", h.SearchComponentsHandler)
	r.GET("/api/components/recent", h.RecentComponentsHandler)
	r.GET("/api/components/statistics", h.ComponentStatisticsHandler)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
