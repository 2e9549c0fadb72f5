// Package events provides domain event definitions for decoupled
// communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"vocalfitness_backend/platform/events"
	"vocalfitness_backend/platform/logger"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
	InMemoryBus = events.InMemoryBus
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return events.NewInMemoryBus(log)
}

// =============================================================================
// Forms Domain Events
// =============================================================================

// ContactSubmitted is published when a contact form submission is persisted.
type ContactSubmitted struct {
	BaseEvent
	SubmissionID uuid.UUID `json:"submissionId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Language     string    `json:"language"`
	EmailSent    bool      `json:"emailSent"`
}

func (e ContactSubmitted) EventName() string { return "forms.contact.submitted" }

// BookingSubmitted is published when a free-assessment booking is persisted.
type BookingSubmitted struct {
	BaseEvent
	SubmissionID uuid.UUID `json:"submissionId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Sector       string    `json:"sector"`
	Language     string    `json:"language"`
	EmailSent    bool      `json:"emailSent"`
}

func (e BookingSubmitted) EventName() string { return "forms.booking.submitted" }

// CorporateQuoteSubmitted is published when a corporate quote request is persisted.
type CorporateQuoteSubmitted struct {
	BaseEvent
	SubmissionID uuid.UUID `json:"submissionId"`
	CompanyName  string    `json:"companyName"`
	ContactEmail string    `json:"contactEmail"`
	Language     string    `json:"language"`
	EmailSent    bool      `json:"emailSent"`
}

func (e CorporateQuoteSubmitted) EventName() string { return "forms.corporate_quote.submitted" }

// =============================================================================
// Chat Domain Events
// =============================================================================

// LeadQualified is published the first time a chat session's qualification
// flow completes (completed_at transitions from empty to set).
type LeadQualified struct {
	BaseEvent
	SessionID    string `json:"sessionId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	EnglishLevel string `json:"englishLevel"`
	Goal         string `json:"goal"`
	Urgency      string `json:"urgency"`
	Language     string `json:"language"`
}

func (e LeadQualified) EventName() string { return "chat.lead.qualified" }
