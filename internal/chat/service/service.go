// Package service implements the per-turn orchestration of the
// lead-qualification chat.
package service

import (
	"context"
	"time"

	"vocalfitness_backend/internal/chat/agent"
	"vocalfitness_backend/internal/chat/domain"
	"vocalfitness_backend/internal/chat/repository"
	"vocalfitness_backend/internal/events"
	"vocalfitness_backend/platform/apperr"
	"vocalfitness_backend/platform/logger"
)

// Conversationalist produces the assistant reply for a turn.
type Conversationalist interface {
	Reply(ctx context.Context, sessionKey, systemPrompt, userMessage string) (string, error)
}

// Extractor parses qualification fields out of the user's latest message.
// It never fails; extraction problems degrade to an empty result.
type Extractor interface {
	Extract(ctx context.Context, sessionKey, userMessage, previousQuestion string) domain.ExtractedFields
}

// TurnResult is what a successful turn returns to the transport layer.
type TurnResult struct {
	SessionID  string
	Reply      string
	IsComplete bool
	Collected  domain.CollectedFields
}

// Service orchestrates one conversation turn per call.
type Service struct {
	store     repository.LeadStore
	assistant Conversationalist
	extractor Extractor
	bus       events.Bus
	log       *logger.Logger
	now       func() time.Time
}

// New creates the turn orchestrator.
func New(store repository.LeadStore, assistant Conversationalist, extractor Extractor, bus events.Bus, log *logger.Logger) *Service {
	return &Service{
		store:     store,
		assistant: assistant,
		extractor: extractor,
		bus:       bus,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SubmitTurn processes one inbound user message for a session:
// load-or-create the lead, append the user turn, get the assistant reply,
// append it, extract and merge fields, evaluate hesitation and completion,
// persist, and return the response payload.
//
// A failed assistant call aborts the turn before anything is persisted.
// A failed extraction is invisible: the turn proceeds with no new fields.
func (s *Service) SubmitTurn(ctx context.Context, sessionID, message, language string) (TurnResult, error) {
	lead, err := s.store.Find(ctx, sessionID)
	if err != nil {
		s.log.DatabaseError("find chat lead", err)
		return TurnResult{}, apperr.Wrap(apperr.KindInternal, "failed to load conversation", err)
	}
	if lead == nil {
		lead = domain.NewLead(sessionID, language)
	}

	// The extractor wants the assistant question the user was answering,
	// which is the last assistant turn before this message.
	previousQuestion := lead.LastAssistantMessage()

	lead.AppendUser(message, s.now())

	systemPrompt := agent.SystemPrompt(lead.Language, lead.Collected())
	reply, err := s.assistant.Reply(ctx, sessionID, systemPrompt, message)
	if err != nil {
		// Nothing has been persisted; the appended user turn is discarded
		// with the in-memory lead.
		return TurnResult{}, apperr.Wrap(apperr.KindUnavailable, "assistant is temporarily unavailable", err)
	}
	lead.AppendAssistant(reply, s.now())

	extracted := s.extractor.Extract(ctx, sessionID, message, previousQuestion)
	merged := domain.Merge(*lead, extracted)
	lead = &merged

	hesitant := domain.IsHesitant(message)

	justCompleted := false
	if domain.IsComplete(lead.Collected(), hesitant, len(lead.History)) && !lead.Completed() {
		lead.MarkCompleted(s.now())
		justCompleted = true
	}

	if err := s.store.Upsert(ctx, lead); err != nil {
		s.log.DatabaseError("upsert chat lead", err)
		return TurnResult{}, apperr.Wrap(apperr.KindInternal, "failed to save conversation", err)
	}

	if justCompleted {
		fields := lead.Collected()
		s.bus.Publish(ctx, events.LeadQualified{
			BaseEvent:    events.NewBaseEvent(),
			SessionID:    lead.SessionID,
			Name:         fields.Name,
			Email:        fields.Email,
			EnglishLevel: fields.EnglishLevel,
			Goal:         fields.Goal,
			Urgency:      fields.Urgency,
			Language:     lead.Language,
		})
	}

	return TurnResult{
		SessionID:  lead.SessionID,
		Reply:      reply,
		IsComplete: lead.Completed(),
		Collected:  lead.Collected(),
	}, nil
}
