// Package domain holds the chat qualification domain model: the Lead record,
// the hesitation classifier, and the completion policy. Everything here is
// pure and testable without collaborators.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message roles in the conversation history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single conversation turn entry.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Lead is the per-session record of collected qualification data and the
// full message history. One Lead exists per chat session.
type Lead struct {
	ID           uuid.UUID
	SessionID    string
	Name         string
	Email        string
	EnglishLevel string
	Goal         string
	Urgency      string
	Language     string
	History      []Message
	CreatedAt    time.Time
	CompletedAt  *time.Time
}

// NewLead creates an empty lead for a previously-unseen session.
// Language is fixed at creation and never changes afterwards.
func NewLead(sessionID, language string) *Lead {
	return &Lead{
		ID:        uuid.New(),
		SessionID: sessionID,
		Language:  language,
		CreatedAt: time.Now().UTC(),
	}
}

// AppendUser appends a user turn to the history.
func (l *Lead) AppendUser(content string, at time.Time) {
	l.History = append(l.History, Message{Role: RoleUser, Content: content, Timestamp: at})
}

// AppendAssistant appends an assistant turn to the history.
func (l *Lead) AppendAssistant(content string, at time.Time) {
	l.History = append(l.History, Message{Role: RoleAssistant, Content: content, Timestamp: at})
}

// LastAssistantMessage returns the content of the most recent assistant turn,
// or "" if the assistant has not spoken yet.
func (l *Lead) LastAssistantMessage() string {
	for i := len(l.History) - 1; i >= 0; i-- {
		if l.History[i].Role == RoleAssistant {
			return l.History[i].Content
		}
	}
	return ""
}

// Completed reports whether the qualification flow has finished for this lead.
func (l *Lead) Completed() bool {
	return l.CompletedAt != nil
}

// MarkCompleted records the completion time. It is a no-op if the lead is
// already completed; completed_at is written exactly once.
func (l *Lead) MarkCompleted(at time.Time) {
	if l.CompletedAt == nil {
		t := at
		l.CompletedAt = &t
	}
}

// CollectedFields is the externally visible snapshot of the five
// qualification fields. Empty string means unknown.
type CollectedFields struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	EnglishLevel string `json:"english_level"`
	Goal         string `json:"goal"`
	Urgency      string `json:"urgency"`
}

// Collected returns the current field snapshot.
func (l *Lead) Collected() CollectedFields {
	return CollectedFields{
		Name:         l.Name,
		Email:        l.Email,
		EnglishLevel: l.EnglishLevel,
		Goal:         l.Goal,
		Urgency:      l.Urgency,
	}
}

// AllFieldsKnown reports whether every qualification field has a value.
func (c CollectedFields) AllFieldsKnown() bool {
	return c.Name != "" && c.Email != "" && c.EnglishLevel != "" && c.Goal != "" && c.Urgency != ""
}
