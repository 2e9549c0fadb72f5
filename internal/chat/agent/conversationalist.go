// Package agent implements the two language-model collaborators of the chat
// core: the conversational assistant and the field extractor. Both run an ADK
// llmagent over the Moonshot chat model; neither uses tools.
package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"

	"github.com/google/uuid"

	"vocalfitness_backend/platform/logger"
)

// ErrModelUnavailable is returned when the model provider cannot be reached
// or returns an unusable response.
var ErrModelUnavailable = errors.New("language model unavailable")

// Conversationalist produces assistant replies for the qualification chat.
type Conversationalist struct {
	model model.LLM
	log   *logger.Logger
}

// NewConversationalist creates the conversational collaborator over the
// given model.
func NewConversationalist(llm model.LLM, log *logger.Logger) *Conversationalist {
	return &Conversationalist{model: llm, log: log}
}

// Reply sends the user's message to the assistant under the turn's system
// prompt and returns the assistant's text. Any failure is reported as
// ErrModelUnavailable; the caller must treat that as a turn failure.
func (c *Conversationalist) Reply(ctx context.Context, sessionKey, systemPrompt, userMessage string) (string, error) {
	start := time.Now()
	output, err := runTextAgent(ctx, c.model, "AliceAssistant", systemPrompt, sessionKey, userMessage)
	c.log.ModelCall("conversationalist", sessionKey, float64(time.Since(start).Milliseconds()), err)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	if strings.TrimSpace(output) == "" {
		return "", fmt.Errorf("%w: empty assistant reply", ErrModelUnavailable)
	}
	return output, nil
}

// Compile-time check against the service port.
var _ interface {
	Reply(ctx context.Context, sessionKey, systemPrompt, userMessage string) (string, error)
} = (*Conversationalist)(nil)

// runTextAgent builds a one-shot llmagent with the given instruction, runs it
// in a fresh in-memory session and accumulates the text parts of the events.
// The instruction changes every turn (it embeds the field status), so the
// agent is rebuilt per call; construction is in-memory and cheap.
func runTextAgent(ctx context.Context, llm model.LLM, name, instruction, sessionKey, userMessage string) (string, error) {
	adkAgent, err := llmagent.New(llmagent.Config{
		Name:        name,
		Model:       llm,
		Instruction: instruction,
	})
	if err != nil {
		return "", fmt.Errorf("create agent: %w", err)
	}

	appName := "vocalfitness_chat"
	sessionService := session.InMemoryService()
	r, err := runner.New(runner.Config{
		AppName:        appName,
		Agent:          adkAgent,
		SessionService: sessionService,
	})
	if err != nil {
		return "", fmt.Errorf("create runner: %w", err)
	}

	sessionID := uuid.New().String()
	if _, err := sessionService.Create(ctx, &session.CreateRequest{
		AppName:   appName,
		UserID:    sessionKey,
		SessionID: sessionID,
	}); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	userContent := &genai.Content{
		Role:  "user",
		Parts: []*genai.Part{{Text: userMessage}},
	}

	var output strings.Builder
	for event, err := range r.Run(ctx, sessionKey, sessionID, userContent, agent.RunConfig{StreamingMode: agent.StreamingModeNone}) {
		if err != nil {
			return "", err
		}
		if event.Content == nil {
			continue
		}
		for _, part := range event.Content.Parts {
			if part != nil {
				output.WriteString(part.Text)
			}
		}
	}
	return output.String(), nil
}
