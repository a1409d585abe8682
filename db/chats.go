package db

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"dashcomposer/models"
)

func (d *DB) CreateChat(chat *models.Chat) error {
	if err := d.gorm.Create(chat).Error; err != nil {
		return fmt.Errorf("failed to create chat: %w", err)
	}
	return nil
}

func (d *DB) GetChat(id uint) (*models.Chat, error) {
	var chat models.Chat
	err := d.gorm.First(&chat, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get chat: %w", err)
	}
	return &chat, nil
}

func (d *DB) DeleteChat(id uint) error {
	result := d.gorm.Delete(&models.Chat{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete chat: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ChatsBySession returns the most recent chats for a session, newest
// first.
func (d *DB) ChatsBySession(sessionID string, limit int) ([]models.Chat, error) {
	var chats []models.Chat
	err := d.gorm.
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Limit(limit).
		Find(&chats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list chats for session: %w", err)
	}
	return chats, nil
}

func (d *DB) SearchChats(term, sessionID string, skip, limit int) ([]models.Chat, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	query := d.gorm.Model(&models.Chat{}).
		Where("LOWER(user_message) LIKE ? OR LOWER(agent_response) LIKE ?", pattern, pattern)
	if sessionID != "" {
		query = query.Where("session_id = ?", sessionID)
	}
	var chats []models.Chat
	err := query.Order("created_at DESC").Offset(skip).Limit(limit).Find(&chats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search chats: %w", err)
	}
	return chats, nil
}

// ChatStatistics aggregates counts and timings, optionally restricted to
// one session.
func (d *DB) ChatStatistics(sessionID string) (models.ChatStatistics, error) {
	scope := func() *gorm.DB {
		q := d.gorm.Model(&models.Chat{})
		if sessionID != "" {
			q = q.Where("session_id = ?", sessionID)
		}
		return q
	}

	var stats models.ChatStatistics
	if err := scope().Count(&stats.TotalChats).Error; err != nil {
		return stats, fmt.Errorf("failed to count chats: %w", err)
	}

	var avg *float64
	if err := scope().Select("AVG(processing_time_ms)").Scan(&avg).Error; err != nil {
		return stats, fmt.Errorf("failed to average processing time: %w", err)
	}
	if avg != nil {
		stats.AverageProcessingTime = *avg
	}

	// A nil JSON map can be stored as the literal text 'null' rather than
	// a SQL NULL depending on the driver, so both spellings are absent.
	if err := scope().Where("component_suggestion IS NOT NULL AND component_suggestion != 'null'").Count(&stats.ChatsWithSuggestions).Error; err != nil {
		return stats, fmt.Errorf("failed to count chats with suggestions: %w", err)
	}

	if stats.TotalChats > 0 {
		stats.SuggestionRate = float64(stats.ChatsWithSuggestions) / float64(stats.TotalChats) * 100
	}
	return stats, nil
}
