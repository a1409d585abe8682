package ai

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"dashcomposer/models"
)

func TestFormatHistoryEmpty(t *testing.T) {
	assert.Equal(t, "No previous conversation context.", FormatHistory(nil))
}

func TestFormatHistoryRendersTurns(t *testing.T) {
	history := []models.Chat{
		{UserMessage: "second", AgentResponse: "reply two"},
		{UserMessage: "first", AgentResponse: "reply one"},
	}

	out := FormatHistory(history)

	// Storage order is newest first; the prompt replays oldest first.
	firstIdx := strings.Index(out, `"first"`)
	secondIdx := strings.Index(out, `"second"`)
	assert.Greater(t, firstIdx, -1)
	assert.Greater(t, secondIdx, firstIdx)
	assert.Contains(t, out, "message 3 in the conversation")
}

func TestFormatHistoryWindowsToLastFive(t *testing.T) {
	var history []models.Chat
	for i := 0; i < 8; i++ {
		history = append(history, models.Chat{
			UserMessage:   fmt.Sprintf("msg-%d", i),
			AgentResponse: "ok",
		})
	}

	out := FormatHistory(history)

	// Newest five (indexes 0-4) are kept, older ones dropped.
	assert.Contains(t, out, "msg-0")
	assert.Contains(t, out, "msg-4")
	assert.NotContains(t, out, "msg-5")
	assert.Contains(t, out, "message 9 in the conversation")
}

func TestFormatHistoryIncludesIntentContext(t *testing.T) {
	history := []models.Chat{{
		UserMessage:   "add chart for sales",
		AgentResponse: "done",
		Intent:        map[string]interface{}{"action": "add_chart"},
	}}

	out := FormatHistory(history)
	assert.Contains(t, out, "Intent:")
	assert.Contains(t, out, "add_chart")
}

func TestBuildPrompts(t *testing.T) {
	system, user := BuildPlannerPrompt("add chart", "No previous conversation context.")
	assert.Contains(t, system, "planner")
	assert.Contains(t, user, "add chart")

	system, user = BuildResponderPrompt("add chart", "plan text", "context")
	assert.Contains(t, system, "assistant")
	assert.Contains(t, user, "plan text")
	assert.Contains(t, user, "add chart")
}
