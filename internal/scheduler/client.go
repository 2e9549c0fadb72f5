package scheduler

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	formservice "vocalfitness_backend/internal/forms/service"
	"vocalfitness_backend/platform/config"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

// Client enqueues delayed reminder tasks.
type Client struct {
	client *asynq.Client
	queue  string
}

// NewClient creates the asynq client from the scheduler config.
func NewClient(cfg config.SchedulerConfig) (*Client, error) {
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

	return &Client{
		client: asynq.NewClient(opt),
		queue:  queue,
	}, nil
}

// Close releases the underlying redis connection.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// ScheduleFormReminder enqueues a reminder to fire after the delay.
func (c *Client) ScheduleFormReminder(ctx context.Context, kind string, submissionID uuid.UUID, delay time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}

	taskType, err := taskTypeForKind(kind)
	if err != nil {
		return err
	}

	task, err := NewFormReminderTask(taskType, FormReminderPayload{SubmissionID: submissionID.String()})
	if err != nil {
		return err
	}

	_, err = c.client.EnqueueContext(ctx, task, asynq.ProcessIn(delay), asynq.Queue(c.queue))
	return err
}

var _ formservice.ReminderScheduler = (*Client)(nil)

func taskTypeForKind(kind string) (string, error) {
	switch kind {
	case formservice.ReminderKindContact:
		return TaskContactReminder, nil
	case formservice.ReminderKindBooking:
		return TaskBookingReminder, nil
	case formservice.ReminderKindCorporateQuote:
		return TaskCorporateReminder, nil
	default:
		return "", fmt.Errorf("unknown reminder kind %q", kind)
	}
}

func redisClientOpt(redisURL string, tlsInsecure bool) (asynq.RedisClientOpt, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return asynq.RedisClientOpt{}, err
	}

	var tlsConfig *tls.Config
	if opt.TLSConfig != nil {
		clone := opt.TLSConfig.Clone()
		if tlsInsecure {
			clone.InsecureSkipVerify = true
		}
		tlsConfig = clone
	} else if tlsInsecure {
		tlsConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return asynq.RedisClientOpt{
		Addr:      opt.Addr,
		Password:  opt.Password,
		DB:        opt.DB,
		TLSConfig: tlsConfig,
	}, nil
}
