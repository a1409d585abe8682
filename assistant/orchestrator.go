package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"dashcomposer/models"
)

// Agent is the LLM delegation path. It returns free text plus a
// best-effort structured intent recovered from its own output (may be
// nil).
type Agent interface {
	ProcessMessage(ctx context.Context, message string, history []models.Chat) (string, map[string]interface{}, error)
	Model() string
}

const greetingResponse = "Hello! I'm your dashboard component assistant. " +
	"I can help you create charts, tables, metrics, and other dashboard components. " +
	"Just tell me what you'd like to build!"

const helpResponse = "I can help you add charts, tables and metrics to your dashboard. " +
	"Try something like \"add chart which shows latest sales details and updates every 10 min\"."

const fallbackResponse = "I apologize, but I encountered an issue processing your request. " +
	"Please try rephrasing your message or ask me to create a specific dashboard component."

var greetings = map[string]bool{
	"hi":             true,
	"hello":          true,
	"hey":            true,
	"good morning":   true,
	"good afternoon": true,
	"good evening":   true,
}

// Orchestrator sequences extractor, data stub and suggestion builder
// into one response, or hands the message to the agent when one is
// configured. It holds no mutable state; every call is independent.
type Orchestrator struct {
	agent Agent // nil means rule-based only
	log   *logrus.Entry
}

func NewOrchestrator(agent Agent) *Orchestrator {
	return &Orchestrator{
		agent: agent,
		log:   logrus.WithField("component", "orchestrator"),
	}
}

// Process never fails: any error or panic inside the pipeline is
// swallowed and mapped to a fixed apology so the HTTP surface can always
// return a well-formed 200.
func (o *Orchestrator) Process(ctx context.Context, message string, history []models.Chat) (result models.ChatResult) {
	defer func() {
		if r := recover(); r != nil {
			o.log.WithField("panic", fmt.Sprint(r)).Error("chat pipeline panicked")
			result = models.ChatResult{
				Source:    models.SourceRules,
				ModelUsed: models.SourceRules,
				Response:  fallbackResponse,
			}
		}
	}()

	normalized := strings.ToLower(strings.TrimSpace(message))
	if greetings[normalized] {
		return models.ChatResult{
			Source:    models.SourceRules,
			ModelUsed: models.SourceRules,
			Response:  greetingResponse,
		}
	}

	if o.agent != nil {
		return o.processWithAgent(ctx, message, history)
	}
	return o.processWithRules(message)
}

func (o *Orchestrator) processWithRules(message string) models.ChatResult {
	intent := ExtractIntent(message)

	if intent.Action == models.ActionUnknown {
		return models.ChatResult{
			Source:    models.SourceRules,
			ModelUsed: models.SourceRules,
			Response:  helpResponse,
			Intent:    &intent,
		}
	}

	stub := GetStub(intent)
	suggestion := BuildSuggestion(intent)

	return models.ChatResult{
		Source:     models.SourceRules,
		ModelUsed:  models.SourceRules,
		Response:   confirmation(intent),
		Intent:     &intent,
		Suggestion: &suggestion,
		Data:       &stub,
	}
}

func (o *Orchestrator) processWithAgent(ctx context.Context, message string, history []models.Chat) models.ChatResult {
	reply, intentMap, err := o.agent.ProcessMessage(ctx, message, history)
	if err != nil {
		o.log.WithError(err).Warn("agent delegation failed")
		return models.ChatResult{
			Source:    models.SourceAgent,
			ModelUsed: o.agent.Model(),
			Response:  fallbackResponse,
		}
	}

	return models.ChatResult{
		Source:    models.SourceAgent,
		ModelUsed: o.agent.Model(),
		Response:  reply,
		Intent:    intentFromMap(intentMap),
	}
}

// confirmation composes the natural-language sentence referencing what
// was understood, defaulting the interval to manual refresh.
func confirmation(intent models.Intent) string {
	topic := intent.QueryTopic
	if topic == "" {
		topic = "data"
	}
	source := intent.DataSource
	if source == "" {
		source = "mysql"
	}
	interval := intent.Interval
	if interval == "" {
		interval = "manual"
	}
	return fmt.Sprintf("I've prepared a %s for %s from %s (refresh: %s). "+
		"Review the suggestion below and add it to your dashboard.",
		intent.ComponentType, topic, source, interval)
}

// intentFromMap maps the agent's recovered key-value pairs onto the
// intent shape. Unrecognized or missing keys are simply dropped; an
// empty map yields nil.
func intentFromMap(m map[string]interface{}) *models.Intent {
	if len(m) == 0 {
		return nil
	}
	intent := models.Intent{Action: models.ActionUnknown}
	if v, ok := m["action"].(string); ok {
		intent.Action = v
	}
	if v, ok := m["component_type"].(string); ok {
		intent.ComponentType = v
	}
	if v, ok := m["data_source"].(string); ok {
		intent.DataSource = v
	}
	if v, ok := m["query_topic"].(string); ok {
		intent.QueryTopic = v
	}
	if v, ok := m["interval"].(string); ok {
		intent.Interval = v
	}
	return &intent
}
