package scheduler

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{Addr: mr.Addr()}),
		queue:  "default",
	}
	t.Cleanup(func() { client.Close() })
	return client, mr
}

func TestScheduleFormReminderEnqueuesTask(t *testing.T) {
	client, mr := newTestClient(t)

	err := client.ScheduleFormReminder(context.Background(), "contact", uuid.New(), 24*time.Hour)
	if err != nil {
		t.Fatalf("schedule failed: %v", err)
	}

	var scheduled bool
	for _, key := range mr.Keys() {
		if strings.Contains(key, "scheduled") {
			scheduled = true
		}
	}
	if !scheduled {
		t.Fatalf("no scheduled task in redis, keys: %v", mr.Keys())
	}
}

func TestScheduleFormReminderUnknownKind(t *testing.T) {
	client, _ := newTestClient(t)

	err := client.ScheduleFormReminder(context.Background(), "newsletter", uuid.New(), time.Hour)
	if err == nil {
		t.Fatal("expected error for unknown reminder kind")
	}
}

func TestScheduleFormReminderNilClientIsNoop(t *testing.T) {
	var client *Client
	if err := client.ScheduleFormReminder(context.Background(), "contact", uuid.New(), time.Hour); err != nil {
		t.Fatalf("nil client should be a no-op: %v", err)
	}
}

func TestRedisClientOptParsesURL(t *testing.T) {
	opt, err := redisClientOpt("redis://:secret@localhost:6380/2", false)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if opt.Addr != "localhost:6380" {
		t.Errorf("addr: got %q", opt.Addr)
	}
	if opt.Password != "secret" {
		t.Errorf("password: got %q", opt.Password)
	}
	if opt.DB != 2 {
		t.Errorf("db: got %d", opt.DB)
	}
	if opt.TLSConfig != nil {
		t.Error("plain redis url should carry no tls config")
	}

	opt, err = redisClientOpt("redis://localhost:6379", true)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if opt.TLSConfig == nil || !opt.TLSConfig.InsecureSkipVerify {
		t.Error("tls insecure flag should force an insecure tls config")
	}
}

func TestRedisClientOptRejectsBadURL(t *testing.T) {
	if _, err := redisClientOpt("localhost:6379", false); err == nil {
		t.Fatal("expected error for url without scheme")
	}
}
