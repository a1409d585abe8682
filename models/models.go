package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Intent actions produced by the rule-based extractor.
const (
	ActionAddChart  = "add_chart"
	ActionAddTable  = "add_table"
	ActionAddMetric = "add_metric"
	ActionUnknown   = "unknown"
)

// Result sources for a processed chat message.
const (
	SourceRules = "rule_based"
	SourceAgent = "agent"
)

// Component is a persisted dashboard visualization descriptor.
type Component struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	Name          string            `gorm:"size:255;not null;uniqueIndex" json:"name"`
	ComponentType string            `gorm:"size:100;not null" json:"component_type"` // chart, table, metric
	Query         string            `gorm:"type:text;not null" json:"query"`
	Fields        datatypes.JSONMap `json:"fields,omitempty"`
	Interval      string            `gorm:"size:50" json:"interval,omitempty"` // e.g. "10 min", "1 hour"
	DataSource    string            `gorm:"size:50;not null" json:"data_source"` // mysql, mongodb, csv
	Description   string            `gorm:"type:text" json:"description,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func (Component) TableName() string {
	return "components"
}

// Chat is a persisted record of one processed chat message. Rows are
// created once per message and never mutated.
type Chat struct {
	ID                  uint              `gorm:"primaryKey" json:"id"`
	SessionID           string            `gorm:"size:36;index" json:"session_id"`
	UserMessage         string            `gorm:"type:text;not null" json:"user_message"`
	AgentResponse       string            `gorm:"type:text" json:"agent_response"`
	Intent              datatypes.JSONMap `json:"intent,omitempty"`
	ComponentSuggestion datatypes.JSONMap `json:"component_suggestion,omitempty"`
	DataPreview         datatypes.JSONMap `json:"data_preview,omitempty"`
	ProcessingTimeMs    int               `gorm:"column:processing_time_ms" json:"processing_time_ms"`
	ModelUsed           string            `gorm:"size:100" json:"model_used"`
	CreatedAt           time.Time         `gorm:"index" json:"created_at"`
}

func (Chat) TableName() string {
	return "chats"
}

// Intent is the structured interpretation of a user's free-text request.
// It is recomputed per message and never persisted directly (the chat row
// keeps a JSON copy).
type Intent struct {
	Action        string `json:"action"`
	ComponentType string `json:"component_type,omitempty"`
	DataSource    string `json:"data_source,omitempty"`
	QueryTopic    string `json:"query_topic,omitempty"`
	Interval      string `json:"interval,omitempty"`
}

// ComponentSuggestion is the synthesized descriptor offered back to the
// user. The fields shape depends on the component type.
type ComponentSuggestion struct {
	Name          string                 `json:"name"`
	ComponentType string                 `json:"component_type"`
	Query         string                 `json:"query"`
	Fields        map[string]interface{} `json:"fields"`
	Interval      string                 `json:"interval,omitempty"`
	DataSource    string                 `json:"data_source"`
	Description   string                 `json:"description"`
}

// DataStub is a fixed placeholder dataset standing in for a real
// data-source integration. Count always equals len(Data).
type DataStub struct {
	Source string                   `json:"source"`
	Data   []map[string]interface{} `json:"data"`
	Count  int                      `json:"count"`
}

// ChatResult is the unified outcome of processing one message, whether it
// came from the rule-based pipeline or the agent delegation path. The
// agent path leaves Suggestion and Data nil.
type ChatResult struct {
	Source     string               `json:"source"`
	Response   string               `json:"response"`
	ModelUsed  string               `json:"model_used"`
	Intent     *Intent              `json:"intent,omitempty"`
	Suggestion *ComponentSuggestion `json:"component_suggestion,omitempty"`
	Data       *DataStub            `json:"data,omitempty"`
}

type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

type ChatResponse struct {
	Response            string               `json:"response"`
	ComponentSuggestion *ComponentSuggestion `json:"component_suggestion,omitempty"`
	Data                *DataStub            `json:"data,omitempty"`
	Intent              *Intent              `json:"intent,omitempty"`
	SessionID           string               `json:"session_id"`
	ChatID              *uint                `json:"chat_id,omitempty"`
	ProcessingTimeMs    int                  `json:"processing_time_ms"`
	ModelUsed           string               `json:"model_used,omitempty"`
}

type ChatHistoryResponse struct {
	SessionID  string `json:"session_id"`
	Chats      []Chat `json:"chats"`
	TotalCount int    `json:"total_count"`
}

type ChatStatistics struct {
	TotalChats            int64   `json:"total_chats"`
	AverageProcessingTime float64 `json:"average_processing_time_ms"`
	ChatsWithSuggestions  int64   `json:"chats_with_suggestions"`
	SuggestionRate        float64 `json:"suggestion_rate"`
}

type ComponentCreateRequest struct {
	Name          string                 `json:"name" binding:"required"`
	ComponentType string                 `json:"component_type" binding:"required"`
	Query         string                 `json:"query" binding:"required"`
	Fields        map[string]interface{} `json:"fields,omitempty"`
	Interval      string                 `json:"interval,omitempty"`
	DataSource    string                 `json:"data_source" binding:"required"`
	Description   string                 `json:"description,omitempty"`
}

// ComponentUpdateRequest carries a partial update; nil fields are left
// untouched.
type ComponentUpdateRequest struct {
	Name          *string                `json:"name,omitempty"`
	ComponentType *string                `json:"component_type,omitempty"`
	Query         *string                `json:"query,omitempty"`
	Fields        map[string]interface{} `json:"fields,omitempty"`
	Interval      *string                `json:"interval,omitempty"`
	DataSource    *string                `json:"data_source,omitempty"`
	Description   *string                `json:"description,omitempty"`
}

type ComponentStatistics struct {
	TotalComponents int64            `json:"total_components"`
	ByType          map[string]int64 `json:"by_type"`
	ByDataSource    map[string]int64 `json:"by_data_source"`
}

// ToJSONMap converts any JSON-serializable value into a JSON column value.
// Nil input (or a nil pointer) maps to a NULL column.
func ToJSONMap(v interface{}) datatypes.JSONMap {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil || string(raw) == "null" {
		return nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}
