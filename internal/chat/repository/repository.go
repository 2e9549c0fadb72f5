// Package repository persists chat leads. One row per session; the
// conversation history is stored as a jsonb document alongside the collected
// fields. The upsert is a full-row replace keyed by session_id, so concurrent
// turns for the same session resolve last-write-wins (a documented
// limitation; clients send one message per session at a time).
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vocalfitness_backend/internal/chat/domain"
)

// LeadStore is the persistence port of the chat core.
type LeadStore interface {
	// Find returns the lead for a session, or (nil, nil) when the session
	// is unknown. An unknown session is valid input, not an error.
	Find(ctx context.Context, sessionID string) (*domain.Lead, error)
	// Upsert replaces the stored lead for its session.
	Upsert(ctx context.Context, lead *domain.Lead) error
}

// Repo implements LeadStore over PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new lead repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements LeadStore.
var _ LeadStore = (*Repo)(nil)

// Find loads the lead for a session id.
func (r *Repo) Find(ctx context.Context, sessionID string) (*domain.Lead, error) {
	query := `
		SELECT id, session_id, name, email, english_level, goal, urgency,
		       language, conversation_history, created_at, completed_at
		FROM chat_leads
		WHERE session_id = $1`

	var lead domain.Lead
	var history []byte
	if err := r.pool.QueryRow(ctx, query, sessionID).Scan(
		&lead.ID, &lead.SessionID, &lead.Name, &lead.Email, &lead.EnglishLevel,
		&lead.Goal, &lead.Urgency, &lead.Language, &history,
		&lead.CreatedAt, &lead.CompletedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find lead: %w", err)
	}

	if len(history) > 0 {
		if err := json.Unmarshal(history, &lead.History); err != nil {
			return nil, fmt.Errorf("decode conversation history: %w", err)
		}
	}
	return &lead, nil
}

// Upsert stores the lead, replacing any previous row for the session.
func (r *Repo) Upsert(ctx context.Context, lead *domain.Lead) error {
	history, err := json.Marshal(lead.History)
	if err != nil {
		return fmt.Errorf("encode conversation history: %w", err)
	}

	query := `
		INSERT INTO chat_leads (
			id, session_id, name, email, english_level, goal, urgency,
			language, conversation_history, created_at, completed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (session_id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			english_level = EXCLUDED.english_level,
			goal = EXCLUDED.goal,
			urgency = EXCLUDED.urgency,
			conversation_history = EXCLUDED.conversation_history,
			completed_at = EXCLUDED.completed_at`

	if _, err := r.pool.Exec(ctx, query,
		lead.ID, lead.SessionID, lead.Name, lead.Email, lead.EnglishLevel,
		lead.Goal, lead.Urgency, lead.Language, history,
		lead.CreatedAt, lead.CompletedAt,
	); err != nil {
		return fmt.Errorf("upsert lead: %w", err)
	}
	return nil
}
