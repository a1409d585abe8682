package ai

import (
	"fmt"
	"strings"

	"dashcomposer/models"
)

const historyWindow = 5

// BuildPlannerPrompt returns the system and user prompts for the
// planning stage. The planner is asked for a JSON intent block so the
// extraction fallback has something structured to find.
func BuildPlannerPrompt(message, conversationContext string) (string, string) {
	system := `You are a dashboard component planner. Analyze the user's request and decide whether they want to create a dashboard component (chart, table or metric), which data source is involved (mysql, mongodb or csv), what topic the data covers, and how often it should refresh.

Respond with a short plan followed by a single JSON object of the form:
{"action": "add_chart|add_table|add_metric|unknown", "component_type": "chart|table|metric", "data_source": "mysql|mongodb|csv", "query_topic": "...", "interval": "<N> min|hour|day"}
Omit keys you cannot determine.`

	user := fmt.Sprintf("Conversation so far:\n%s\n\nUser request: %s", conversationContext, message)
	return system, user
}

// BuildResponderPrompt returns the prompts for the reply stage.
func BuildResponderPrompt(message, plan, conversationContext string) (string, string) {
	system := `You are a friendly dashboard component assistant. Using the analysis plan below, write a concise, helpful reply to the user. Confirm what will be built when the plan identifies a component, otherwise answer the question or explain what you can do. Plain text only, no JSON.`

	user := fmt.Sprintf("Conversation so far:\n%s\n\nAnalysis plan:\n%s\n\nUser request: %s",
		conversationContext, plan, message)
	return system, user
}

// FormatHistory renders the last few chat turns for prompt context.
// History arrives newest first from storage and is replayed oldest
// first here.
func FormatHistory(history []models.Chat) string {
	if len(history) == 0 {
		return "No previous conversation context."
	}

	recent := history
	if len(recent) > historyWindow {
		recent = recent[:historyWindow]
	}

	var lines []string
	for i := len(recent) - 1; i >= 0; i-- {
		chat := recent[i]
		line := fmt.Sprintf("Message %d: User: %q | Assistant: %q",
			len(recent)-i, chat.UserMessage, chat.AgentResponse)

		var context []string
		if len(chat.Intent) > 0 {
			context = append(context, fmt.Sprintf("Intent: %v", map[string]interface{}(chat.Intent)))
		}
		if len(chat.ComponentSuggestion) > 0 {
			context = append(context, fmt.Sprintf("Component: %v", map[string]interface{}(chat.ComponentSuggestion)))
		}
		if len(context) > 0 {
			line += " (" + strings.Join(context, "; ") + ")"
		}
		lines = append(lines, line)
	}

	note := fmt.Sprintf("[Note: this is message %d in the conversation.]", len(history)+1)
	return strings.Join(lines, "\n") + "\n" + note
}
