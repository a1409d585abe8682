package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"dashcomposer/assistant"
	"dashcomposer/db"
	"dashcomposer/models"
)

// ChatService runs the chat pipeline for incoming messages and owns the
// persisted chat records.
type ChatService struct {
	db           *db.DB
	orchestrator *assistant.Orchestrator
	historyLimit int
	log          *logrus.Entry
}

func NewChatService(database *db.DB, orchestrator *assistant.Orchestrator, historyLimit int) *ChatService {
	if historyLimit <= 0 {
		historyLimit = 10
	}
	return &ChatService{
		db:           database,
		orchestrator: orchestrator,
		historyLimit: historyLimit,
		log:          logrus.WithField("component", "chat_service"),
	}
}

// ProcessMessage runs one message through the orchestrator, persists the
// resulting chat row and assembles the response. A storage failure is
// logged and the response still goes out (without a chat id); the chat
// endpoint must never fail because of the pipeline.
func (s *ChatService) ProcessMessage(ctx context.Context, req models.ChatRequest) models.ChatResponse {
	start := time.Now()

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	history, err := s.db.ChatsBySession(sessionID, s.historyLimit)
	if err != nil {
		s.log.WithError(err).Warn("failed to load chat history, continuing without context")
		history = nil
	}
	s.log.WithFields(logrus.Fields{
		"session_id": sessionID,
		"history":    len(history),
	}).Info("processing chat message")

	result := s.orchestrator.Process(ctx, req.Message, history)
	processingTime := int(time.Since(start).Milliseconds())

	chat := models.Chat{
		SessionID:           sessionID,
		UserMessage:         req.Message,
		AgentResponse:       result.Response,
		Intent:              models.ToJSONMap(result.Intent),
		ComponentSuggestion: models.ToJSONMap(result.Suggestion),
		DataPreview:         models.ToJSONMap(result.Data),
		ProcessingTimeMs:    processingTime,
		ModelUsed:           result.ModelUsed,
	}

	var chatID *uint
	if err := s.db.CreateChat(&chat); err != nil {
		s.log.WithError(err).Error("failed to store chat record")
	} else {
		chatID = &chat.ID
	}

	return models.ChatResponse{
		Response:            result.Response,
		ComponentSuggestion: result.Suggestion,
		Data:                result.Data,
		Intent:              result.Intent,
		SessionID:           sessionID,
		ChatID:              chatID,
		ProcessingTimeMs:    processingTime,
		ModelUsed:           result.ModelUsed,
	}
}

// History returns the most recent chats for a session, newest first.
func (s *ChatService) History(sessionID string, limit int) (models.ChatHistoryResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	chats, err := s.db.ChatsBySession(sessionID, limit)
	if err != nil {
		return models.ChatHistoryResponse{}, err
	}
	return models.ChatHistoryResponse{
		SessionID:  sessionID,
		Chats:      chats,
		TotalCount: len(chats),
	}, nil
}

func (s *ChatService) Statistics(sessionID string) (models.ChatStatistics, error) {
	return s.db.ChatStatistics(sessionID)
}

func (s *ChatService) Search(term, sessionID string, skip, limit int) ([]models.Chat, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.db.SearchChats(term, sessionID, skip, limit)
}

func (s *ChatService) Get(id uint) (*models.Chat, error) {
	return s.db.GetChat(id)
}

func (s *ChatService) Delete(id uint) error {
	return s.db.DeleteChat(id)
}
