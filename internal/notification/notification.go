// Package notification subscribes to domain events and sends the
// corresponding admissions emails. Domain modules publish events and never
// talk to email providers directly.
package notification

import (
	"context"
	"time"

	"vocalfitness_backend/internal/email"
	"vocalfitness_backend/internal/events"
	"vocalfitness_backend/platform/logger"
)

// Service routes domain events to the email sender.
type Service struct {
	sender       email.Sender
	emailEnabled bool
	log          *logger.Logger
}

// New creates the notification service and registers its subscriptions
// on the bus.
func New(bus events.Bus, sender email.Sender, emailEnabled bool, log *logger.Logger) *Service {
	s := &Service{sender: sender, emailEnabled: emailEnabled, log: log}
	bus.Subscribe(events.LeadQualified{}.EventName(), events.HandlerFunc(s.handleLeadQualified))
	return s
}

func (s *Service) handleLeadQualified(ctx context.Context, event events.Event) error {
	e, ok := event.(events.LeadQualified)
	if !ok {
		return nil
	}
	if !s.emailEnabled {
		s.log.Info("email disabled, skipping lead qualified notification", "sessionId", e.SessionID)
		return nil
	}

	err := s.sender.SendLeadQualifiedNotification(ctx, email.LeadQualifiedNotification{
		Language:     e.Language,
		SessionID:    e.SessionID,
		Name:         e.Name,
		Email:        e.Email,
		EnglishLevel: e.EnglishLevel,
		Goal:         e.Goal,
		Urgency:      e.Urgency,
		ReceivedAt:   time.Now().UTC(),
	})
	s.log.EmailDelivery("lead_qualified", e.Email, err == nil, err)
	return err
}
