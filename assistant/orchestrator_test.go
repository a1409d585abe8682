package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashcomposer/models"
)

type fakeAgent struct {
	reply  string
	intent map[string]interface{}
	err    error
}

func (f *fakeAgent) ProcessMessage(ctx context.Context, message string, history []models.Chat) (string, map[string]interface{}, error) {
	return f.reply, f.intent, f.err
}

func (f *fakeAgent) Model() string {
	return "fake-model"
}

func TestProcessGreetingShortCircuits(t *testing.T) {
	o := NewOrchestrator(nil)

	for _, greeting := range []string{"hi", "hello", "hey", "HELLO", "  Hey  ", "good morning"} {
		result := o.Process(context.Background(), greeting, nil)
		assert.Contains(t, result.Response, "dashboard component assistant", "greeting %q", greeting)
		assert.Nil(t, result.Suggestion)
		assert.Nil(t, result.Data)
	}

	// A greeting embedded in a longer message does not short-circuit.
	result := o.Process(context.Background(), "hello, add chart for sales", nil)
	assert.NotNil(t, result.Suggestion)
}

func TestProcessGreetingIgnoresHistory(t *testing.T) {
	o := NewOrchestrator(nil)
	history := []models.Chat{{UserMessage: "add chart for sales", AgentResponse: "done"}}

	result := o.Process(context.Background(), "hi", history)
	assert.Contains(t, result.Response, "dashboard component assistant")
	assert.Nil(t, result.Suggestion)
	assert.Nil(t, result.Data)
}

func TestProcessUnknownIntentReturnsHelp(t *testing.T) {
	o := NewOrchestrator(nil)

	result := o.Process(context.Background(), "what is the meaning of life", nil)
	assert.Contains(t, result.Response, "charts, tables and metrics")
	assert.Nil(t, result.Suggestion)
	assert.Nil(t, result.Data)
	require.NotNil(t, result.Intent)
	assert.Equal(t, models.ActionUnknown, result.Intent.Action)
}

func TestProcessChartEndToEnd(t *testing.T) {
	o := NewOrchestrator(nil)

	result := o.Process(context.Background(), "add chart which shows latest sales details and updates every 10 min", nil)

	require.NotNil(t, result.Intent)
	assert.Equal(t, models.ActionAddChart, result.Intent.Action)
	assert.Equal(t, "chart", result.Intent.ComponentType)
	assert.Equal(t, "sales", result.Intent.QueryTopic)
	assert.Equal(t, "10 min", result.Intent.Interval)
	assert.Equal(t, "mysql", result.Intent.DataSource)

	require.NotNil(t, result.Suggestion)
	assert.Equal(t, "chart_sales", result.Suggestion.Name)
	assert.Equal(t, "mysql", result.Suggestion.DataSource)
	assert.Equal(t, "10 min", result.Suggestion.Interval)

	require.NotNil(t, result.Data)
	assert.Equal(t, "mysql", result.Data.Source)
	assert.Equal(t, len(result.Data.Data), result.Data.Count)

	assert.Contains(t, result.Response, "chart")
	assert.Contains(t, result.Response, "10 min")
}

func TestProcessMetricEndToEnd(t *testing.T) {
	o := NewOrchestrator(nil)

	result := o.Process(context.Background(), "add metric for revenue tracking", nil)

	require.NotNil(t, result.Intent)
	assert.Equal(t, models.ActionAddMetric, result.Intent.Action)
	assert.Equal(t, "metric", result.Intent.ComponentType)
	assert.Equal(t, "revenue", result.Intent.QueryTopic)

	require.NotNil(t, result.Suggestion)
	assert.Equal(t, "metric_revenue", result.Suggestion.Name)

	// Interval missing, confirmation defaults to manual refresh.
	assert.Contains(t, result.Response, "manual")
}

func TestProcessNeverRaises(t *testing.T) {
	o := NewOrchestrator(nil)

	for _, message := range []string{"", "   ", "!@#$%^&*", "\x00\x01"} {
		result := o.Process(context.Background(), message, nil)
		assert.NotEmpty(t, result.Response, "message %q", message)
	}
}

func TestProcessAgentDelegation(t *testing.T) {
	agent := &fakeAgent{
		reply: "Sure, I'll set up a sales chart for you.",
		intent: map[string]interface{}{
			"action":         "add_chart",
			"component_type": "chart",
			"query_topic":    "sales",
		},
	}
	o := NewOrchestrator(agent)

	result := o.Process(context.Background(), "add chart for sales", nil)

	assert.Equal(t, models.SourceAgent, result.Source)
	assert.Equal(t, "fake-model", result.ModelUsed)
	assert.Equal(t, agent.reply, result.Response)
	// Agent path carries no suggestion or data, only a recovered intent.
	assert.Nil(t, result.Suggestion)
	assert.Nil(t, result.Data)
	require.NotNil(t, result.Intent)
	assert.Equal(t, models.ActionAddChart, result.Intent.Action)
	assert.Equal(t, "sales", result.Intent.QueryTopic)
}

func TestProcessAgentFailureFallsBackToApology(t *testing.T) {
	agent := &fakeAgent{err: errors.New("rate limited")}
	o := NewOrchestrator(agent)

	result := o.Process(context.Background(), "add chart for sales", nil)

	assert.Equal(t, models.SourceAgent, result.Source)
	assert.Contains(t, result.Response, "apologize")
	assert.Nil(t, result.Suggestion)
	assert.Nil(t, result.Data)
}

func TestProcessAgentGreetingStillShortCircuits(t *testing.T) {
	agent := &fakeAgent{err: errors.New("should not be called")}
	o := NewOrchestrator(agent)

	result := o.Process(context.Background(), "hello", nil)
	assert.Contains(t, result.Response, "dashboard component assistant")
}

func TestProcessAgentEmptyIntentMap(t *testing.T) {
	agent := &fakeAgent{reply: "Here you go.", intent: map[string]interface{}{}}
	o := NewOrchestrator(agent)

	result := o.Process(context.Background(), "tell me about dashboards", nil)
	assert.Equal(t, "Here you go.", result.Response)
	assert.Nil(t, result.Intent)
}
