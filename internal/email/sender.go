// Package email renders and delivers the admissions notification emails.
package email

import (
	"context"
	"time"

	"vocalfitness_backend/platform/config"
)

// ContactNotification carries a contact form submission into its email.
type ContactNotification struct {
	Language   string
	Name       string
	Email      string
	Phone      string
	Discount   string
	Message    string
	ReceivedAt time.Time
}

// BookingNotification carries a free-assessment booking into its email.
type BookingNotification struct {
	Language      string
	Name          string
	Email         string
	Phone         string
	Age           string
	Sector        string
	EnglishLevel  string
	PreferredDay  string
	PreferredTime string
	Message       string
	ReceivedAt    time.Time
}

// CorporateQuoteNotification carries a corporate quote request into its email.
type CorporateQuoteNotification struct {
	Language          string
	RequestID         string
	CompanyName       string
	Industry          string
	NumberOfEmployees string
	Location          string
	ContactName       string
	ContactEmail      string
	ContactPhone      string
	LevelsToTrain     []string
	PreferredMode     string
	Budget            string
	Notes             string
	ReceivedAt        time.Time
}

// FormReminder is the follow-up nudge sent when a submission is still
// waiting for a reply after its response window.
type FormReminder struct {
	Language    string
	FormKind    string
	Name        string
	Email       string
	SubmittedAt time.Time
	WindowHours int
}

// LeadQualifiedNotification carries a completed chat qualification into its email.
type LeadQualifiedNotification struct {
	Language     string
	SessionID    string
	Name         string
	Email        string
	EnglishLevel string
	Goal         string
	Urgency      string
	ReceivedAt   time.Time
}

// Sender delivers admissions notifications. All emails go to the
// configured admissions inbox.
type Sender interface {
	SendContactNotification(ctx context.Context, n ContactNotification) error
	SendBookingNotification(ctx context.Context, n BookingNotification) error
	SendCorporateQuoteNotification(ctx context.Context, n CorporateQuoteNotification) error
	SendFormReminder(ctx context.Context, n FormReminder) error
	SendLeadQualifiedNotification(ctx context.Context, n LeadQualifiedNotification) error
}

// NewSender returns the SMTP sender when email is enabled, otherwise a
// NoopSender.
func NewSender(cfg config.EmailConfig) Sender {
	if !cfg.GetEmailEnabled() {
		return NoopSender{}
	}
	return NewSMTPSender(
		cfg.GetSMTPHost(),
		cfg.GetSMTPPort(),
		cfg.GetSMTPUser(),
		cfg.GetSMTPPassword(),
		cfg.GetSMTPUser(),
		cfg.GetEmailFromName(),
		cfg.GetAdmissionsEmail(),
	)
}

// NoopSender is used when SMTP is not configured. Every send succeeds
// without delivering anything, so callers record email_sent = false
// themselves before choosing it.
type NoopSender struct{}

func (NoopSender) SendContactNotification(ctx context.Context, n ContactNotification) error {
	return nil
}

func (NoopSender) SendBookingNotification(ctx context.Context, n BookingNotification) error {
	return nil
}

func (NoopSender) SendCorporateQuoteNotification(ctx context.Context, n CorporateQuoteNotification) error {
	return nil
}

func (NoopSender) SendFormReminder(ctx context.Context, n FormReminder) error {
	return nil
}

func (NoopSender) SendLeadQualifiedNotification(ctx context.Context, n LeadQualifiedNotification) error {
	return nil
}

var _ Sender = NoopSender{}
