// Package transport defines the request and response DTOs for the chat API.
package transport

import "vocalfitness_backend/internal/chat/domain"

// ChatRequest is one inbound user turn.
type ChatRequest struct {
	SessionID string `json:"session_id" validate:"required,min=1,max=128"`
	Message   string `json:"message" validate:"required,min=1,max=4000"`
	Language  string `json:"language" validate:"omitempty,oneof=it en"`
}

// ChatResponse is the assistant's answer for the turn.
type ChatResponse struct {
	SessionID     string                 `json:"session_id"`
	Message       string                 `json:"message"`
	IsComplete    bool                   `json:"is_complete"`
	CollectedData domain.CollectedFields `json:"collected_data"`
}
