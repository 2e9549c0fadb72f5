package notification

import (
	"context"
	"testing"

	"vocalfitness_backend/internal/email"
	"vocalfitness_backend/internal/events"
	"vocalfitness_backend/platform/logger"
)

type testSender struct {
	email.NoopSender
	leadQualifiedCalls int
	last               email.LeadQualifiedNotification
}

func (s *testSender) SendLeadQualifiedNotification(_ context.Context, n email.LeadQualifiedNotification) error {
	s.leadQualifiedCalls++
	s.last = n
	return nil
}

func qualifiedEvent() events.LeadQualified {
	return events.LeadQualified{
		BaseEvent:    events.NewBaseEvent(),
		SessionID:    "session-1",
		Name:         "Mario Rossi",
		Email:        "mario@test.com",
		EnglishLevel: "B2",
		Goal:         "career growth",
		Urgency:      "subito",
		Language:     "it",
	}
}

func TestLeadQualifiedEventSendsEmail(t *testing.T) {
	log := logger.New("test")
	bus := events.NewInMemoryBus(log)
	sender := &testSender{}
	New(bus, sender, true, log)

	if err := bus.PublishSync(context.Background(), qualifiedEvent()); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	if sender.leadQualifiedCalls != 1 {
		t.Fatalf("expected one notification, got %d", sender.leadQualifiedCalls)
	}
	if sender.last.SessionID != "session-1" || sender.last.Email != "mario@test.com" {
		t.Fatalf("unexpected notification payload: %+v", sender.last)
	}
	if sender.last.Language != "it" {
		t.Errorf("language: got %q", sender.last.Language)
	}
}

func TestLeadQualifiedEventSkippedWhenEmailDisabled(t *testing.T) {
	log := logger.New("test")
	bus := events.NewInMemoryBus(log)
	sender := &testSender{}
	New(bus, sender, false, log)

	if err := bus.PublishSync(context.Background(), qualifiedEvent()); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	if sender.leadQualifiedCalls != 0 {
		t.Fatalf("disabled email should skip sending, got %d calls", sender.leadQualifiedCalls)
	}
}
