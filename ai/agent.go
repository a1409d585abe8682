package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"dashcomposer/cache"
	"dashcomposer/models"
)

// AgentService delegates chat processing to an LLM through a two-stage
// pipeline: a planner turn that analyzes the request and emits a
// structured plan, then a responder turn that writes the user-facing
// reply. The planner output is also mined (best effort) for an
// intent-shaped JSON object.
type AgentService struct {
	client *openai.Client
	model  string
	cache  *cache.Cache
	log    *logrus.Entry
}

func New(apiKey, model string, c *cache.Cache) (*AgentService, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}
	return &AgentService{
		client: openai.NewClient(apiKey),
		model:  model,
		cache:  c,
		log:    logrus.WithField("component", "agent"),
	}, nil
}

func (a *AgentService) Model() string {
	return a.model
}

type agentResult struct {
	reply  string
	intent map[string]interface{}
}

// ProcessMessage runs the pipeline for one message. The caller owns the
// timeout on ctx; no timeout is applied here.
func (a *AgentService) ProcessMessage(ctx context.Context, message string, history []models.Chat) (string, map[string]interface{}, error) {
	cacheKey := "agent:" + message
	if cached, found := a.cache.Get(cacheKey); found {
		if res, ok := cached.(agentResult); ok {
			return res.reply, res.intent, nil
		}
		// Entry of an unexpected shape, evict it and recompute.
		a.cache.Delete(cacheKey)
	}

	conversationContext := FormatHistory(history)

	plannerSystem, plannerUser := BuildPlannerPrompt(message, conversationContext)
	plan, err := a.complete(ctx, plannerSystem, plannerUser)
	if err != nil {
		return "", nil, fmt.Errorf("planner stage failed: %w", err)
	}

	responderSystem, responderUser := BuildResponderPrompt(message, plan, conversationContext)
	reply, err := a.complete(ctx, responderSystem, responderUser)
	if err != nil {
		return "", nil, fmt.Errorf("responder stage failed: %w", err)
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		reply = "I understand your message. How can I help you create dashboard components or answer your questions?"
	}

	// Best-effort recovery of a structured intent from the plan text.
	intent := ExtractJSON(plan)

	a.cache.SetDefault(cacheKey, agentResult{reply: reply, intent: intent})
	return reply, intent, nil
}

func (a *AgentService) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response from model")
	}
	return resp.Choices[0].Message.Content, nil
}
