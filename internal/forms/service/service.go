// Package service implements the form submission flows: sanitize,
// notify admissions, persist, and schedule the follow-up reminder.
package service

import (
	"context"
	"time"

	"vocalfitness_backend/internal/email"
	"vocalfitness_backend/internal/events"
	"vocalfitness_backend/internal/forms/repository"
	"vocalfitness_backend/platform/apperr"
	"vocalfitness_backend/platform/logger"
	"vocalfitness_backend/platform/phone"
	"vocalfitness_backend/platform/sanitize"

	"github.com/google/uuid"
)

// Reminder kinds routed through the scheduler.
const (
	ReminderKindContact        = "contact"
	ReminderKindBooking        = "booking"
	ReminderKindCorporateQuote = "corporate_quote"
)

// Response windows before a pending submission gets a reminder.
const (
	contactReminderDelay   = 24 * time.Hour
	bookingReminderDelay   = 24 * time.Hour
	corporateReminderDelay = 48 * time.Hour
)

// ReminderScheduler enqueues delayed follow-up checks for submissions.
type ReminderScheduler interface {
	ScheduleFormReminder(ctx context.Context, kind string, submissionID uuid.UUID, delay time.Duration) error
}

// Service handles the three public form submissions. The scheduler is
// optional; a nil scheduler skips reminders.
type Service struct {
	store        repository.Store
	sender       email.Sender
	emailEnabled bool
	scheduler    ReminderScheduler
	bus          events.Bus
	log          *logger.Logger
	now          func() time.Time
}

// New creates the forms service.
func New(store repository.Store, sender email.Sender, emailEnabled bool, scheduler ReminderScheduler, bus events.Bus, log *logger.Logger) *Service {
	return &Service{
		store:        store,
		sender:       sender,
		emailEnabled: emailEnabled,
		scheduler:    scheduler,
		bus:          bus,
		log:          log,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// SubmitContact processes a contact form submission. The notification
// email is best-effort; only persistence failures fail the request.
func (s *Service) SubmitContact(ctx context.Context, name, emailAddr, phoneNumber, message, discount, language string) (*repository.ContactSubmission, error) {
	submission := &repository.ContactSubmission{
		ID:        uuid.New(),
		Name:      sanitize.Text(name),
		Email:     sanitize.Text(emailAddr),
		Phone:     phone.NormalizeE164(phoneNumber),
		Message:   sanitize.Text(message),
		Discount:  sanitize.Text(discount),
		Language:  language,
		Status:    repository.StatusPending,
		CreatedAt: s.now(),
	}

	if s.emailEnabled {
		err := s.sender.SendContactNotification(ctx, email.ContactNotification{
			Language:   submission.Language,
			Name:       submission.Name,
			Email:      submission.Email,
			Phone:      submission.Phone,
			Discount:   submission.Discount,
			Message:    submission.Message,
			ReceivedAt: submission.CreatedAt,
		})
		submission.EmailSent = err == nil
		s.log.EmailDelivery("contact_notification", submission.Email, submission.EmailSent, err)
	}

	if err := s.store.InsertContact(ctx, submission); err != nil {
		s.log.DatabaseError("insert contact", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to save contact request", err)
	}

	s.scheduleReminder(ctx, ReminderKindContact, submission.ID, contactReminderDelay)

	s.bus.Publish(ctx, events.ContactSubmitted{
		BaseEvent:    events.NewBaseEvent(),
		SubmissionID: submission.ID,
		Name:         submission.Name,
		Email:        submission.Email,
		Language:     submission.Language,
		EmailSent:    submission.EmailSent,
	})

	return submission, nil
}

// SubmitBooking processes a free-assessment booking submission.
func (s *Service) SubmitBooking(ctx context.Context, in BookingInput) (*repository.BookingSubmission, error) {
	bookingType := in.Type
	if bookingType == "" {
		bookingType = "booking"
	}

	submission := &repository.BookingSubmission{
		ID:            uuid.New(),
		Name:          sanitize.Text(in.Name),
		Email:         sanitize.Text(in.Email),
		Phone:         phone.NormalizeE164(in.Phone),
		Sector:        sanitize.Text(in.Sector),
		EnglishLevel:  sanitize.Text(in.EnglishLevel),
		Age:           sanitize.Text(in.Age),
		PreferredDay:  sanitize.Text(in.PreferredDay),
		PreferredTime: sanitize.Text(in.PreferredTime),
		Message:       sanitize.Text(in.Message),
		Type:          bookingType,
		Language:      in.Language,
		Status:        repository.StatusPending,
		CreatedAt:     s.now(),
	}

	if s.emailEnabled {
		err := s.sender.SendBookingNotification(ctx, email.BookingNotification{
			Language:      submission.Language,
			Name:          submission.Name,
			Email:         submission.Email,
			Phone:         submission.Phone,
			Age:           submission.Age,
			Sector:        submission.Sector,
			EnglishLevel:  submission.EnglishLevel,
			PreferredDay:  submission.PreferredDay,
			PreferredTime: submission.PreferredTime,
			Message:       submission.Message,
			ReceivedAt:    submission.CreatedAt,
		})
		submission.EmailSent = err == nil
		s.log.EmailDelivery("booking_notification", submission.Email, submission.EmailSent, err)
	}

	if err := s.store.InsertBooking(ctx, submission); err != nil {
		s.log.DatabaseError("insert booking", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to save booking request", err)
	}

	s.scheduleReminder(ctx, ReminderKindBooking, submission.ID, bookingReminderDelay)

	s.bus.Publish(ctx, events.BookingSubmitted{
		BaseEvent:    events.NewBaseEvent(),
		SubmissionID: submission.ID,
		Name:         submission.Name,
		Email:        submission.Email,
		Sector:       submission.Sector,
		Language:     submission.Language,
		EmailSent:    submission.EmailSent,
	})

	return submission, nil
}

// SubmitCorporateQuote processes a corporate training quote request.
func (s *Service) SubmitCorporateQuote(ctx context.Context, in CorporateQuoteInput) (*repository.CorporateQuoteSubmission, error) {
	contactPhone := in.ContactPhone
	if contactPhone != "" {
		contactPhone = phone.NormalizeE164(contactPhone)
	}

	submission := &repository.CorporateQuoteSubmission{
		ID:                uuid.New(),
		CompanyName:       sanitize.Text(in.CompanyName),
		Industry:          sanitize.Text(in.Industry),
		NumberOfEmployees: sanitize.Text(in.NumberOfEmployees),
		ContactName:       sanitize.Text(in.ContactName),
		ContactEmail:      sanitize.Text(in.ContactEmail),
		ContactPhone:      contactPhone,
		LevelsToTrain:     in.LevelsToTrain,
		Budget:            sanitize.Text(in.Budget),
		PreferredMode:     sanitize.Text(in.PreferredMode),
		Location:          sanitize.Text(in.Location),
		Notes:             sanitize.Text(in.Notes),
		Language:          in.Language,
		Status:            repository.StatusPending,
		CreatedAt:         s.now(),
	}

	if s.emailEnabled {
		err := s.sender.SendCorporateQuoteNotification(ctx, email.CorporateQuoteNotification{
			Language:          submission.Language,
			RequestID:         submission.ID.String(),
			CompanyName:       submission.CompanyName,
			Industry:          submission.Industry,
			NumberOfEmployees: submission.NumberOfEmployees,
			Location:          submission.Location,
			ContactName:       submission.ContactName,
			ContactEmail:      submission.ContactEmail,
			ContactPhone:      submission.ContactPhone,
			LevelsToTrain:     submission.LevelsToTrain,
			PreferredMode:     submission.PreferredMode,
			Budget:            submission.Budget,
			Notes:             submission.Notes,
			ReceivedAt:        submission.CreatedAt,
		})
		submission.EmailSent = err == nil
		s.log.EmailDelivery("corporate_quote_notification", submission.ContactEmail, submission.EmailSent, err)
	}

	if err := s.store.InsertCorporateQuote(ctx, submission); err != nil {
		s.log.DatabaseError("insert corporate quote", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to save corporate quote request", err)
	}

	s.scheduleReminder(ctx, ReminderKindCorporateQuote, submission.ID, corporateReminderDelay)

	s.bus.Publish(ctx, events.CorporateQuoteSubmitted{
		BaseEvent:    events.NewBaseEvent(),
		SubmissionID: submission.ID,
		CompanyName:  submission.CompanyName,
		ContactEmail: submission.ContactEmail,
		Language:     submission.Language,
		EmailSent:    submission.EmailSent,
	})

	return submission, nil
}

func (s *Service) scheduleReminder(ctx context.Context, kind string, id uuid.UUID, delay time.Duration) {
	if s.scheduler == nil {
		return
	}
	if err := s.scheduler.ScheduleFormReminder(ctx, kind, id, delay); err != nil {
		s.log.Error("failed to schedule form reminder", "kind", kind, "submissionId", id, "error", err)
	}
}

// BookingInput collects the booking form fields for the service layer.
type BookingInput struct {
	Name          string
	Email         string
	Phone         string
	Sector        string
	EnglishLevel  string
	Age           string
	PreferredDay  string
	PreferredTime string
	Message       string
	Type          string
	Language      string
}

// CorporateQuoteInput collects the corporate quote fields for the service layer.
type CorporateQuoteInput struct {
	CompanyName       string
	Industry          string
	NumberOfEmployees string
	ContactName       string
	ContactEmail      string
	ContactPhone      string
	LevelsToTrain     []string
	Budget            string
	PreferredMode     string
	Location          string
	Notes             string
	Language          string
}
