// Package repository persists client company listings.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Client is a company displayed on the clients wall.
type Client struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	LogoURL   string    `json:"logo_url"`
	Website   string    `json:"website"`
	Sector    string    `json:"sector"`
	Featured  bool      `json:"featured"`
	CreatedAt time.Time `json:"created_at"`
}

// Repo stores clients in PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a clients repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// List returns clients, optionally filtered by featured, newest first.
func (r *Repo) List(ctx context.Context, featured *bool) ([]Client, error) {
	query := `SELECT id, name, logo_url, website, sector, featured, created_at FROM clients`
	args := []any{}
	if featured != nil {
		query += " WHERE featured = $1"
		args = append(args, *featured)
	}
	query += " ORDER BY created_at DESC LIMIT 1000"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	clients := make([]Client, 0)
	for rows.Next() {
		var c Client
		if err := rows.Scan(&c.ID, &c.Name, &c.LogoURL, &c.Website, &c.Sector, &c.Featured, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// Count returns the number of stored clients.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM clients`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return n, nil
}

// Insert stores a new client.
func (r *Repo) Insert(ctx context.Context, c *Client) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO clients (id, name, logo_url, website, sector, featured, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.Name, c.LogoURL, c.Website, c.Sector, c.Featured, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}
