package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"vocalfitness_backend/internal/email"
	"vocalfitness_backend/internal/events"
	"vocalfitness_backend/internal/forms/repository"
	platformevents "vocalfitness_backend/platform/events"
	"vocalfitness_backend/platform/logger"
)

type fakeFormStore struct {
	contacts   []*repository.ContactSubmission
	bookings   []*repository.BookingSubmission
	corporates []*repository.CorporateQuoteSubmission
	insertErr  error
}

func (s *fakeFormStore) InsertContact(_ context.Context, c *repository.ContactSubmission) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.contacts = append(s.contacts, c)
	return nil
}

func (s *fakeFormStore) InsertBooking(_ context.Context, b *repository.BookingSubmission) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.bookings = append(s.bookings, b)
	return nil
}

func (s *fakeFormStore) InsertCorporateQuote(_ context.Context, q *repository.CorporateQuoteSubmission) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.corporates = append(s.corporates, q)
	return nil
}

func (s *fakeFormStore) GetContact(_ context.Context, _ uuid.UUID) (*repository.ContactSubmission, error) {
	return nil, nil
}

func (s *fakeFormStore) GetBooking(_ context.Context, _ uuid.UUID) (*repository.BookingSubmission, error) {
	return nil, nil
}

func (s *fakeFormStore) GetCorporateQuote(_ context.Context, _ uuid.UUID) (*repository.CorporateQuoteSubmission, error) {
	return nil, nil
}

type fakeSender struct {
	email.NoopSender
	sendErr   error
	contacts  int
	bookings  int
	corporate int
}

func (s *fakeSender) SendContactNotification(_ context.Context, _ email.ContactNotification) error {
	s.contacts++
	return s.sendErr
}

func (s *fakeSender) SendBookingNotification(_ context.Context, _ email.BookingNotification) error {
	s.bookings++
	return s.sendErr
}

func (s *fakeSender) SendCorporateQuoteNotification(_ context.Context, _ email.CorporateQuoteNotification) error {
	s.corporate++
	return s.sendErr
}

type scheduledReminder struct {
	kind  string
	id    uuid.UUID
	delay time.Duration
}

type fakeScheduler struct {
	scheduled []scheduledReminder
	err       error
}

func (s *fakeScheduler) ScheduleFormReminder(_ context.Context, kind string, id uuid.UUID, delay time.Duration) error {
	if s.err != nil {
		return s.err
	}
	s.scheduled = append(s.scheduled, scheduledReminder{kind: kind, id: id, delay: delay})
	return nil
}

type recordingBus struct {
	published []platformevents.Event
}

func (b *recordingBus) Publish(_ context.Context, event platformevents.Event) {
	b.published = append(b.published, event)
}

func (b *recordingBus) PublishSync(_ context.Context, event platformevents.Event) error {
	b.published = append(b.published, event)
	return nil
}

func (b *recordingBus) Subscribe(string, platformevents.Handler) {}

func TestSubmitContactSendsEmailAndPersists(t *testing.T) {
	store := &fakeFormStore{}
	sender := &fakeSender{}
	scheduler := &fakeScheduler{}
	bus := &recordingBus{}
	svc := New(store, sender, true, scheduler, bus, logger.New("test"))

	submission, err := svc.SubmitContact(context.Background(), "  Mario Rossi ", "mario@test.com", "+39 333 123 4567", "vorrei informazioni", "early-bird", "it")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if submission.Name != "Mario Rossi" {
		t.Errorf("name not sanitized: %q", submission.Name)
	}
	if !submission.EmailSent {
		t.Error("email_sent should be true when the notification succeeds")
	}
	if submission.Status != repository.StatusPending {
		t.Errorf("status: got %q", submission.Status)
	}
	if sender.contacts != 1 {
		t.Errorf("expected one contact notification, got %d", sender.contacts)
	}
	if len(store.contacts) != 1 {
		t.Fatalf("submission not persisted")
	}
	if len(scheduler.scheduled) != 1 {
		t.Fatalf("expected one scheduled reminder, got %d", len(scheduler.scheduled))
	}
	if got := scheduler.scheduled[0]; got.kind != ReminderKindContact || got.delay != 24*time.Hour {
		t.Errorf("unexpected reminder: kind=%q delay=%v", got.kind, got.delay)
	}
	if len(bus.published) != 1 {
		t.Fatalf("expected one event, got %d", len(bus.published))
	}
	if _, ok := bus.published[0].(events.ContactSubmitted); !ok {
		t.Fatalf("unexpected event type %T", bus.published[0])
	}
}

func TestSubmitContactEmailFailureStillPersists(t *testing.T) {
	store := &fakeFormStore{}
	sender := &fakeSender{sendErr: errors.New("smtp unreachable")}
	svc := New(store, sender, true, nil, &recordingBus{}, logger.New("test"))

	submission, err := svc.SubmitContact(context.Background(), "Mario", "mario@test.com", "", "ciao", "", "it")
	if err != nil {
		t.Fatalf("email failure must not fail the request: %v", err)
	}
	if submission.EmailSent {
		t.Error("email_sent should be false when the notification fails")
	}
	if len(store.contacts) != 1 {
		t.Fatal("submission not persisted after email failure")
	}
}

func TestSubmitContactEmailDisabledSkipsSender(t *testing.T) {
	sender := &fakeSender{}
	svc := New(&fakeFormStore{}, sender, false, nil, &recordingBus{}, logger.New("test"))

	submission, err := svc.SubmitContact(context.Background(), "Mario", "mario@test.com", "", "ciao", "", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sender.contacts != 0 {
		t.Error("sender should not be called when email is disabled")
	}
	if submission.EmailSent {
		t.Error("email_sent should stay false when email is disabled")
	}
}

func TestSubmitContactInsertFailure(t *testing.T) {
	store := &fakeFormStore{insertErr: errors.New("connection reset")}
	svc := New(store, &fakeSender{}, false, nil, &recordingBus{}, logger.New("test"))

	if _, err := svc.SubmitContact(context.Background(), "Mario", "mario@test.com", "", "ciao", "", "it"); err == nil {
		t.Fatal("expected error when persistence fails")
	}
}

func TestSubmitBookingDefaultsTypeAndSchedules(t *testing.T) {
	store := &fakeFormStore{}
	scheduler := &fakeScheduler{}
	bus := &recordingBus{}
	svc := New(store, &fakeSender{}, false, scheduler, bus, logger.New("test"))

	submission, err := svc.SubmitBooking(context.Background(), BookingInput{
		Name:         "Mario Rossi",
		Email:        "mario@test.com",
		Sector:       "technology",
		EnglishLevel: "B1",
		Age:          "34",
		Language:     "en",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if submission.Type != "booking" {
		t.Errorf("empty type should default to booking, got %q", submission.Type)
	}
	if submission.Age != "34" {
		t.Errorf("age: got %q", submission.Age)
	}
	if got := scheduler.scheduled[0]; got.kind != ReminderKindBooking || got.delay != 24*time.Hour {
		t.Errorf("unexpected reminder: kind=%q delay=%v", got.kind, got.delay)
	}
	if _, ok := bus.published[0].(events.BookingSubmitted); !ok {
		t.Fatalf("unexpected event type %T", bus.published[0])
	}
}

func TestSubmitCorporateQuoteSchedulesLongerWindow(t *testing.T) {
	scheduler := &fakeScheduler{}
	bus := &recordingBus{}
	svc := New(&fakeFormStore{}, &fakeSender{}, false, scheduler, bus, logger.New("test"))

	submission, err := svc.SubmitCorporateQuote(context.Background(), CorporateQuoteInput{
		CompanyName:   "Acme S.p.A.",
		ContactName:   "Luigi Verdi",
		ContactEmail:  "luigi@acme.it",
		LevelsToTrain: []string{"beginner", "intermediate"},
		Language:      "it",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(submission.LevelsToTrain) != 2 {
		t.Errorf("levels to train: got %v", submission.LevelsToTrain)
	}
	if got := scheduler.scheduled[0]; got.kind != ReminderKindCorporateQuote || got.delay != 48*time.Hour {
		t.Errorf("unexpected reminder: kind=%q delay=%v", got.kind, got.delay)
	}
	if _, ok := bus.published[0].(events.CorporateQuoteSubmitted); !ok {
		t.Fatalf("unexpected event type %T", bus.published[0])
	}
}

func TestSubmitWithNilSchedulerSkipsReminder(t *testing.T) {
	svc := New(&fakeFormStore{}, &fakeSender{}, false, nil, &recordingBus{}, logger.New("test"))

	if _, err := svc.SubmitContact(context.Background(), "Mario", "mario@test.com", "", "ciao", "", "it"); err != nil {
		t.Fatalf("nil scheduler should be tolerated: %v", err)
	}
}

func TestSubmitContactSchedulerFailureIsNonFatal(t *testing.T) {
	scheduler := &fakeScheduler{err: errors.New("redis down")}
	svc := New(&fakeFormStore{}, &fakeSender{}, false, scheduler, &recordingBus{}, logger.New("test"))

	if _, err := svc.SubmitContact(context.Background(), "Mario", "mario@test.com", "", "ciao", "", "it"); err != nil {
		t.Fatalf("scheduler failure should not fail the request: %v", err)
	}
}
