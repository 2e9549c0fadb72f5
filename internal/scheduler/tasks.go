// Package scheduler enqueues and processes delayed follow-up tasks for
// form submissions via asynq.
package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	TaskContactReminder   = "forms.contact.reminder"
	TaskBookingReminder   = "forms.booking.reminder"
	TaskCorporateReminder = "forms.corporate.reminder"
)

// FormReminderPayload identifies the submission a reminder refers to.
type FormReminderPayload struct {
	SubmissionID string `json:"submissionId"`
}

// NewFormReminderTask builds a reminder task of the given type.
func NewFormReminderTask(taskType string, payload FormReminderPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(taskType, data), nil
}

// ParseFormReminderPayload decodes a reminder task payload.
func ParseFormReminderPayload(task *asynq.Task) (FormReminderPayload, error) {
	var payload FormReminderPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return FormReminderPayload{}, err
	}
	return payload, nil
}
