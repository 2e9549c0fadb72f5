package scheduler

import (
	"testing"

	formservice "vocalfitness_backend/internal/forms/service"
)

func TestTaskTypeForKind(t *testing.T) {
	tests := []struct {
		kind string
		want string
	}{
		{formservice.ReminderKindContact, TaskContactReminder},
		{formservice.ReminderKindBooking, TaskBookingReminder},
		{formservice.ReminderKindCorporateQuote, TaskCorporateReminder},
	}
	for _, tt := range tests {
		got, err := taskTypeForKind(tt.kind)
		if err != nil {
			t.Fatalf("taskTypeForKind(%q): %v", tt.kind, err)
		}
		if got != tt.want {
			t.Errorf("taskTypeForKind(%q) = %q, want %q", tt.kind, got, tt.want)
		}
	}

	if _, err := taskTypeForKind("newsletter"); err == nil {
		t.Fatal("expected error for unknown reminder kind")
	}
}

func TestFormReminderPayloadRoundTrip(t *testing.T) {
	task, err := NewFormReminderTask(TaskBookingReminder, FormReminderPayload{SubmissionID: "b7a4d1c2"})
	if err != nil {
		t.Fatalf("build task: %v", err)
	}
	if task.Type() != TaskBookingReminder {
		t.Errorf("task type: got %q", task.Type())
	}

	payload, err := ParseFormReminderPayload(task)
	if err != nil {
		t.Fatalf("parse payload: %v", err)
	}
	if payload.SubmissionID != "b7a4d1c2" {
		t.Errorf("submission id: got %q", payload.SubmissionID)
	}
}
