package domain

import (
	"testing"
	"time"
)

func TestNewLeadStartsEmpty(t *testing.T) {
	lead := NewLead("session-1", "it")

	if lead.SessionID != "session-1" {
		t.Errorf("session id: got %q", lead.SessionID)
	}
	if lead.Language != "it" {
		t.Errorf("language: got %q", lead.Language)
	}
	if len(lead.History) != 0 {
		t.Errorf("history should start empty, got %d entries", len(lead.History))
	}
	if lead.Completed() {
		t.Error("new lead should not be completed")
	}
	if lead.Collected() != (CollectedFields{}) {
		t.Errorf("new lead should have no collected fields: %+v", lead.Collected())
	}
}

func TestAppendTurnsAndLastAssistantMessage(t *testing.T) {
	now := time.Now().UTC()
	lead := NewLead("session-1", "en")

	if got := lead.LastAssistantMessage(); got != "" {
		t.Fatalf("expected empty before any assistant turn, got %q", got)
	}

	lead.AppendUser("ciao", now)
	lead.AppendAssistant("Come ti chiami?", now)
	lead.AppendUser("Mario", now)

	if len(lead.History) != 3 {
		t.Fatalf("expected 3 history entries, got %d", len(lead.History))
	}
	if lead.History[0].Role != RoleUser || lead.History[1].Role != RoleAssistant {
		t.Fatalf("unexpected roles: %q, %q", lead.History[0].Role, lead.History[1].Role)
	}
	if got := lead.LastAssistantMessage(); got != "Come ti chiami?" {
		t.Fatalf("last assistant message: got %q", got)
	}
}

func TestMarkCompletedWritesOnce(t *testing.T) {
	lead := NewLead("session-1", "it")
	first := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	lead.MarkCompleted(first)
	lead.MarkCompleted(second)

	if !lead.Completed() {
		t.Fatal("lead should be completed")
	}
	if !lead.CompletedAt.Equal(first) {
		t.Fatalf("completed_at overwritten: got %v, want %v", lead.CompletedAt, first)
	}
}
