package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"slotify/config"
	"slotify/models"
)

const TypeEventReminder = "event:reminder"

// ReminderPayload is the task body for an event reminder.
type ReminderPayload struct {
	EventID  string    `json:"eventId"`
	Name     string    `json:"name"`
	Datetime time.Time `json:"datetime"`
}

// NewReminderTask builds an asynq task scheduled to fire at fireAt.
func NewReminderTask(payload ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeEventReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// Scheduler enqueues reminder tasks onto the Redis-backed queue.
type Scheduler struct {
	client *asynq.Client
}

// NewScheduler constructs a Scheduler against the configured queue DB.
func NewScheduler() *Scheduler {
	return &Scheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPass,
			DB:       config.AppConfig.RedisQueueDB,
		}),
	}
}

// ScheduleEventReminder enqueues a reminder lead before the event starts.
// Events starting sooner than the lead get no reminder.
func (s *Scheduler) ScheduleEventReminder(event models.Event, lead time.Duration) error {
	fireAt := event.Datetime.Add(-lead)
	if fireAt.Before(time.Now()) {
		return nil
	}
	task, opts, err := NewReminderTask(ReminderPayload{
		EventID:  event.ID,
		Name:     event.Name,
		Datetime: event.Datetime,
	}, fireAt)
	if err != nil {
		return err
	}
	_, err = s.client.Enqueue(task, opts...)
	return err
}

// Close releases the underlying queue connection.
func (s *Scheduler) Close() error {
	return s.client.Close()
}
