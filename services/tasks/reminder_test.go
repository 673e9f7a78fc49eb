package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"indodjija/models"
)

type fakeEnqueuer struct {
	tasks []*asynq.Task
	opts  [][]asynq.Option
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	f.opts = append(f.opts, opts)
	return &asynq.TaskInfo{ID: "task-1"}, nil
}

func TestReminderFireTime_UsesSlotStart(t *testing.T) {
	at, err := ReminderFireTime("2025-06-20", "18:00 - 23:00", 24*time.Hour, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.June, 19, 18, 0, 0, 0, time.UTC), at)
}

func TestReminderFireTime_NoTimeInLabel(t *testing.T) {
	at, err := ReminderFireTime("2025-06-20", "", 2*time.Hour, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.June, 19, 22, 0, 0, 0, time.UTC), at)
}

func TestReminderFireTime_BadDate(t *testing.T) {
	_, err := ReminderFireTime("20.06.2025", "18:00 - 23:00", time.Hour, time.UTC)
	assert.Error(t, err)
}

func TestAsynqReminderScheduler_Enqueues(t *testing.T) {
	enq := &fakeEnqueuer{}
	s := &AsynqReminderScheduler{
		Client:   enq,
		Lead:     24 * time.Hour,
		Location: time.UTC,
		Logger:   zap.NewNop(),
		Now:      func() time.Time { return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC) },
	}
	res := models.Reservation{
		ID:           "res-1",
		PackageID:    models.PackageAdult,
		Date:         "2025-06-20",
		TimeSlot:     "18:00 - 23:00",
		CustomerName: "Ana",
	}

	require.NoError(t, s.ScheduleReminder(context.Background(), res))
	require.Len(t, enq.tasks, 1)
	assert.Equal(t, TypeReservationReminder, enq.tasks[0].Type())

	var p models.ReminderPayload
	require.NoError(t, json.Unmarshal(enq.tasks[0].Payload(), &p))
	assert.Equal(t, "res-1", p.ReservationID)
	assert.Equal(t, "Ana", p.CustomerName)
	assert.Len(t, enq.opts[0], 3)
}

func TestAsynqReminderScheduler_EnqueueError(t *testing.T) {
	s := &AsynqReminderScheduler{
		Client: &fakeEnqueuer{err: errors.New("redis down")},
		Lead:   time.Hour,
		Logger: zap.NewNop(),
	}
	err := s.ScheduleReminder(context.Background(), models.Reservation{ID: "r", Date: "2025-06-20"})
	assert.Error(t, err)
}
