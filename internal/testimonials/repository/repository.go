// Package repository persists site testimonials.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Testimonial is a published client testimonial.
type Testimonial struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Role      string    `json:"role"`
	Company   string    `json:"company"`
	Location  string    `json:"location"`
	Language  string    `json:"language"`
	Featured  bool      `json:"featured"`
	CreatedAt time.Time `json:"created_at"`
}

// Filter narrows a testimonial listing. Nil fields match everything.
type Filter struct {
	Language *string
	Featured *bool
}

// Repo stores testimonials in PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a testimonials repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// List returns testimonials matching the filter, newest first.
func (r *Repo) List(ctx context.Context, filter Filter) ([]Testimonial, error) {
	query := `SELECT id, text, author, role, company, location, language, featured, created_at
		FROM testimonials WHERE 1=1`
	args := []any{}

	if filter.Language != nil {
		args = append(args, *filter.Language)
		query += fmt.Sprintf(" AND language = $%d", len(args))
	}
	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		query += fmt.Sprintf(" AND featured = $%d", len(args))
	}
	query += " ORDER BY created_at DESC LIMIT 1000"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer rows.Close()

	testimonials := make([]Testimonial, 0)
	for rows.Next() {
		var t Testimonial
		if err := rows.Scan(&t.ID, &t.Text, &t.Author, &t.Role, &t.Company, &t.Location, &t.Language, &t.Featured, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, rows.Err()
}

// Insert stores a new testimonial.
func (r *Repo) Insert(ctx context.Context, t *Testimonial) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO testimonials (id, text, author, role, company, location, language, featured, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		t.ID, t.Text, t.Author, t.Role, t.Company, t.Location, t.Language, t.Featured, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert testimonial: %w", err)
	}
	return nil
}

// Count returns the number of stored testimonials.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM testimonials`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count testimonials: %w", err)
	}
	return n, nil
}
