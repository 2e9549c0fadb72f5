package scheduler

import (
	"context"
	"fmt"

	"vocalfitness_backend/internal/email"
	"vocalfitness_backend/internal/forms/repository"
	"vocalfitness_backend/platform/config"
	"vocalfitness_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Reminder windows shown in the reminder email bodies.
const (
	contactWindowHours   = 24
	bookingWindowHours   = 24
	corporateWindowHours = 48
)

// Worker processes delayed reminder tasks. A reminder fires only while
// the submission is still pending; anything else is a silent no-op.
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	store  repository.Store
	sender email.Sender
	log    *logger.Logger
}

// NewWorker creates the asynq worker bound to the configured queue.
func NewWorker(cfg config.SchedulerConfig, pool *pgxpool.Pool, sender email.Sender, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server: server,
		mux:    mux,
		store:  repository.New(pool),
		sender: sender,
		log:    log,
	}

	mux.HandleFunc(TaskContactReminder, w.handleContactReminder)
	mux.HandleFunc(TaskBookingReminder, w.handleBookingReminder)
	mux.HandleFunc(TaskCorporateReminder, w.handleCorporateReminder)

	return w, nil
}

// Run blocks processing tasks until the context is cancelled.
func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}

func (w *Worker) handleContactReminder(ctx context.Context, task *asynq.Task) error {
	id, err := submissionID(task)
	if err != nil {
		return err
	}

	submission, err := w.store.GetContact(ctx, id)
	if err != nil {
		return err
	}
	if submission == nil || submission.Status != repository.StatusPending {
		return nil
	}

	err = w.sender.SendFormReminder(ctx, email.FormReminder{
		Language:    submission.Language,
		FormKind:    "contact",
		Name:        submission.Name,
		Email:       submission.Email,
		SubmittedAt: submission.CreatedAt,
		WindowHours: contactWindowHours,
	})
	w.log.EmailDelivery("contact_reminder", submission.Email, err == nil, err)
	return err
}

func (w *Worker) handleBookingReminder(ctx context.Context, task *asynq.Task) error {
	id, err := submissionID(task)
	if err != nil {
		return err
	}

	submission, err := w.store.GetBooking(ctx, id)
	if err != nil {
		return err
	}
	if submission == nil || submission.Status != repository.StatusPending {
		return nil
	}

	err = w.sender.SendFormReminder(ctx, email.FormReminder{
		Language:    submission.Language,
		FormKind:    "booking",
		Name:        submission.Name,
		Email:       submission.Email,
		SubmittedAt: submission.CreatedAt,
		WindowHours: bookingWindowHours,
	})
	w.log.EmailDelivery("booking_reminder", submission.Email, err == nil, err)
	return err
}

func (w *Worker) handleCorporateReminder(ctx context.Context, task *asynq.Task) error {
	id, err := submissionID(task)
	if err != nil {
		return err
	}

	submission, err := w.store.GetCorporateQuote(ctx, id)
	if err != nil {
		return err
	}
	if submission == nil || submission.Status != repository.StatusPending {
		return nil
	}

	err = w.sender.SendFormReminder(ctx, email.FormReminder{
		Language:    submission.Language,
		FormKind:    "corporate_quote",
		Name:        submission.ContactName,
		Email:       submission.ContactEmail,
		SubmittedAt: submission.CreatedAt,
		WindowHours: corporateWindowHours,
	})
	w.log.EmailDelivery("corporate_reminder", submission.ContactEmail, err == nil, err)
	return err
}

func submissionID(task *asynq.Task) (uuid.UUID, error) {
	payload, err := ParseFormReminderPayload(task)
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(payload.SubmissionID)
}
