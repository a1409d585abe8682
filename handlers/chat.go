package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dashcomposer/db"
	"dashcomposer/models"
)

// ChatHandler processes a chat message through the component pipeline.
// Pipeline failures never surface as server errors here; the service
// always produces a well-formed degraded response.
// @Summary      Process a chat message
// @Description  Send a natural language message and get back a response with an optional component suggestion and sample data
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request  body      models.ChatRequest   true  "Chat request"
// @Success      200      {object}  models.ChatResponse
// @Failure      400      {object}  map[string]string  "Invalid request body"
// @Router       /api/chat [post]
func (h *Handlers) ChatHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	response := h.chat.ProcessMessage(c.Request.Context(), req)
	c.JSON(http.StatusOK, response)
}

// ChatHistoryHandler returns persisted chats for a session.
// @Summary      Get chat history for a session
// @Tags         Chat
// @Produce      json
// @Param        session_id  path      string  true   "Session ID"
// @Param        limit       query     int     false  "Maximum number of chats"  default(50)
// @Success      200         {object}  models.ChatHistoryResponse
// @Router       /api/chat/history/{session_id} [get]
func (h *Handlers) ChatHistoryHandler(c *gin.Context) {
	sessionID := c.Param("session_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	history, err := h.chat.History(sessionID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load chat history"})
		return
	}
	c.JSON(http.StatusOK, history)
}

// ChatStatisticsHandler returns aggregate chat metrics.
// @Summary      Get chat statistics
// @Tags         Chat
// @Produce      json
// @Param        session_id  query     string  false  "Restrict statistics to one session"
// @Success      200         {object}  models.ChatStatistics
// @Router       /api/chat/statistics [get]
func (h *Handlers) ChatStatisticsHandler(c *gin.Context) {
	stats, err := h.chat.Statistics(c.Query("session_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ChatSearchHandler searches chats by message or response text.
// @Summary      Search chats
// @Tags         Chat
// @Produce      json
// @Param        q           query     string  true   "Search term"
// @Param        session_id  query     string  false  "Restrict to one session"
// @Param        skip        query     int     false  "Records to skip"
// @Param        limit       query     int     false  "Maximum records"  default(100)
// @Success      200         {array}   models.Chat
// @Router       /api/chat/search [get]
func (h *Handlers) ChatSearchHandler(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	chats, err := h.chat.Search(term, c.Query("session_id"), skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search chats"})
		return
	}
	c.JSON(http.StatusOK, chats)
}

// GetChatMessageHandler returns one persisted chat by id.
// @Summary      Get a chat message
// @Tags         Chat
// @Produce      json
// @Param        id   path      int  true  "Chat ID"
// @Success      200  {object}  models.Chat
// @Failure      404  {object}  map[string]string
// @Router       /api/chat/messages/{id} [get]
func (h *Handlers) GetChatMessageHandler(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chat id"})
		return
	}
	chat, err := h.chat.Get(id)
	if errors.Is(err, db.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chat not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load chat"})
		return
	}
	c.JSON(http.StatusOK, chat)
}

// DeleteChatMessageHandler deletes one persisted chat by id.
// @Summary      Delete a chat message
// @Tags         Chat
// @Param        id   path      int  true  "Chat ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/chat/messages/{id} [delete]
func (h *Handlers) DeleteChatMessageHandler(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chat id"})
		return
	}
	err = h.chat.Delete(id)
	if errors.Is(err, db.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chat not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete chat"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Chat deleted successfully"})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
