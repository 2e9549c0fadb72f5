// Package repository persists marketing-site form submissions.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Submission statuses.
const (
	StatusPending = "pending"
)

// ContactSubmission is a persisted contact form entry.
type ContactSubmission struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Discount  string    `json:"discount"`
	Language  string    `json:"language"`
	Status    string    `json:"status"`
	EmailSent bool      `json:"email_sent"`
	CreatedAt time.Time `json:"created_at"`
}

// BookingSubmission is a persisted free-assessment booking entry.
type BookingSubmission struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Sector        string    `json:"sector"`
	EnglishLevel  string    `json:"englishLevel"`
	Age           string    `json:"age"`
	PreferredDay  string    `json:"preferredDay"`
	PreferredTime string    `json:"preferredTime"`
	Message       string    `json:"message"`
	Type          string    `json:"type"`
	Language      string    `json:"language"`
	Status        string    `json:"status"`
	EmailSent     bool      `json:"email_sent"`
	CreatedAt     time.Time `json:"created_at"`
}

// CorporateQuoteSubmission is a persisted corporate quote request.
type CorporateQuoteSubmission struct {
	ID                uuid.UUID `json:"id"`
	CompanyName       string    `json:"companyName"`
	Industry          string    `json:"industry"`
	NumberOfEmployees string    `json:"numberOfEmployees"`
	ContactName       string    `json:"contactName"`
	ContactEmail      string    `json:"contactEmail"`
	ContactPhone      string    `json:"contactPhone"`
	LevelsToTrain     []string  `json:"levelsToTrain"`
	Budget            string    `json:"budget"`
	PreferredMode     string    `json:"preferredMode"`
	Location          string    `json:"location"`
	Notes             string    `json:"notes"`
	Language          string    `json:"language"`
	Status            string    `json:"status"`
	EmailSent         bool      `json:"email_sent"`
	CreatedAt         time.Time `json:"created_at"`
}

// Store is the persistence port for form submissions. Lookups return
// (nil, nil) for unknown ids.
type Store interface {
	InsertContact(ctx context.Context, s *ContactSubmission) error
	InsertBooking(ctx context.Context, s *BookingSubmission) error
	InsertCorporateQuote(ctx context.Context, s *CorporateQuoteSubmission) error
	GetContact(ctx context.Context, id uuid.UUID) (*ContactSubmission, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*BookingSubmission, error)
	GetCorporateQuote(ctx context.Context, id uuid.UUID) (*CorporateQuoteSubmission, error)
}

// Repo implements Store over PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a forms repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var _ Store = (*Repo)(nil)

func (r *Repo) InsertContact(ctx context.Context, s *ContactSubmission) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO contacts (id, name, email, phone, message, discount, language, status, email_sent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		s.ID, s.Name, s.Email, s.Phone, s.Message, s.Discount, s.Language, s.Status, s.EmailSent, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

func (r *Repo) InsertBooking(ctx context.Context, s *BookingSubmission) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO bookings (id, name, email, phone, sector, english_level, age, preferred_day, preferred_time, message, type, language, status, email_sent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		s.ID, s.Name, s.Email, s.Phone, s.Sector, s.EnglishLevel, s.Age, s.PreferredDay, s.PreferredTime,
		s.Message, s.Type, s.Language, s.Status, s.EmailSent, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (r *Repo) InsertCorporateQuote(ctx context.Context, s *CorporateQuoteSubmission) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO corporate_quotes (id, company_name, industry, number_of_employees, contact_name, contact_email, contact_phone, levels_to_train, budget, preferred_mode, location, notes, language, status, email_sent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		s.ID, s.CompanyName, s.Industry, s.NumberOfEmployees, s.ContactName, s.ContactEmail, s.ContactPhone,
		s.LevelsToTrain, s.Budget, s.PreferredMode, s.Location, s.Notes, s.Language, s.Status, s.EmailSent, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert corporate quote: %w", err)
	}
	return nil
}

func (r *Repo) GetContact(ctx context.Context, id uuid.UUID) (*ContactSubmission, error) {
	var s ContactSubmission
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, email, phone, message, discount, language, status, email_sent, created_at
		FROM contacts WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Message, &s.Discount, &s.Language, &s.Status, &s.EmailSent, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return &s, nil
}

func (r *Repo) GetBooking(ctx context.Context, id uuid.UUID) (*BookingSubmission, error) {
	var s BookingSubmission
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, email, phone, sector, english_level, age, preferred_day, preferred_time, message, type, language, status, email_sent, created_at
		FROM bookings WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Sector, &s.EnglishLevel, &s.Age, &s.PreferredDay, &s.PreferredTime,
		&s.Message, &s.Type, &s.Language, &s.Status, &s.EmailSent, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return &s, nil
}

func (r *Repo) GetCorporateQuote(ctx context.Context, id uuid.UUID) (*CorporateQuoteSubmission, error) {
	var s CorporateQuoteSubmission
	err := r.pool.QueryRow(ctx, `
		SELECT id, company_name, industry, number_of_employees, contact_name, contact_email, contact_phone, levels_to_train, budget, preferred_mode, location, notes, language, status, email_sent, created_at
		FROM corporate_quotes WHERE id = $1`, id,
	).Scan(&s.ID, &s.CompanyName, &s.Industry, &s.NumberOfEmployees, &s.ContactName, &s.ContactEmail, &s.ContactPhone,
		&s.LevelsToTrain, &s.Budget, &s.PreferredMode, &s.Location, &s.Notes, &s.Language, &s.Status, &s.EmailSent, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get corporate quote: %w", err)
	}
	return &s, nil
}
