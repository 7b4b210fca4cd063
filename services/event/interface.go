package event

import (
	"context"
	"time"

	activityRepo "slotify/database/repository/activity"
	eventRepo "slotify/database/repository/event"
	teamRepo "slotify/database/repository/team"
	"slotify/models"
	"slotify/services/availability"
	"slotify/services/tasks"
)

// EventService owns event reads and the guarded write path.
type EventService interface {
	ListByMonth(ctx context.Context, role models.Role, monthID string) ([]models.EventClient, error)
	ListByDay(ctx context.Context, role models.Role, dayID string) ([]models.EventClient, error)
	Get(ctx context.Context, role models.Role, eventID string) (*models.EventClient, error)
	Create(ctx context.Context, uid, creator string, role models.Role, input models.EventInput) (*models.EventClient, error)
	Update(ctx context.Context, uid string, role models.Role, eventID string, input models.EventInput) (*models.EventClient, error)
	Delete(ctx context.Context, uid string, role models.Role, eventID string) error
}

// ActivityService owns the per-event comment thread.
type ActivityService interface {
	ListActivity(ctx context.Context, role models.Role, eventID string) ([]models.ActivityClient, error)
	SubmitActivity(ctx context.Context, uid, author, eventID string, input models.ActivityInput) (*models.ActivityClient, error)
	DeleteActivity(ctx context.Context, uid string, role models.Role, activityID string) error
}

// DefaultEventService is the concrete implementation.
type DefaultEventService struct {
	Repo       eventRepo.EventRepository
	Activities activityRepo.ActivityRepository
	Teams      teamRepo.TeamRepository
	Reminders  *tasks.Scheduler // nil disables reminder scheduling
	Policy     availability.Policy
	Now        func() time.Time // nil means time.Now
}

func (s *DefaultEventService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
