package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"indodjija/models"
)

const TypeReservationReminder = "reservation:reminder"

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReservationReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID("reminder:" + payload.ReservationID),
		asynq.MaxRetry(5),
	}

	return task, opts, nil
}

// ReminderFireTime is lead before the slot starts, in the venue timezone.
// The slot start is the first "HH:MM" of the label; midnight is used when
// the label carries none.
func ReminderFireTime(date, slot string, lead time.Duration, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	start := "00:00"
	if parts := strings.SplitN(slot, "-", 2); len(parts) > 0 {
		if s := strings.TrimSpace(parts[0]); s != "" {
			start = s
		}
	}
	at, err := time.ParseInLocation("2006-01-02 15:04", date+" "+start, loc)
	if err != nil {
		at, err = time.ParseInLocation("2006-01-02", date, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid reservation date %q: %w", date, err)
		}
	}
	return at.Add(-lead), nil
}

// Enqueuer is the part of *asynq.Client the scheduler uses.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqReminderScheduler queues one reminder per confirmed reservation.
type AsynqReminderScheduler struct {
	Client   Enqueuer
	Lead     time.Duration
	Location *time.Location
	Logger   *zap.Logger
	Now      func() time.Time
}

func (s *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, r models.Reservation) error {
	fireAt, err := ReminderFireTime(r.Date, r.TimeSlot, s.Lead, s.Location)
	if err != nil {
		return err
	}
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	if fireAt.Before(now) {
		fireAt = now
	}

	task, opts, err := NewReminderTask(models.ReminderPayload{
		ReservationID: r.ID,
		PackageID:     r.PackageID,
		Date:          r.Date,
		TimeSlot:      r.TimeSlot,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
	}, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	info, err := s.Client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	s.Logger.Info("Reminder scheduled",
		zap.String("reservation_id", r.ID),
		zap.String("task_id", info.ID),
		zap.Time("fire_at", fireAt))
	return nil
}
