package event

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"slotify/config"
	"slotify/models"
	"slotify/services/availability"
	"slotify/utils"
)

func (s *DefaultEventService) ListByMonth(ctx context.Context, role models.Role, monthID string) ([]models.EventClient, error) {
	if _, err := time.Parse(utils.MonthIDLayout, monthID); err != nil {
		return nil, NewInvalidInputError(fmt.Sprintf("malformed month %q", monthID))
	}
	events, err := s.Repo.ListByMonth(ctx, monthID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for %s: %w", monthID, err)
	}
	return projectEvents(role, events), nil
}

func (s *DefaultEventService) ListByDay(ctx context.Context, role models.Role, dayID string) ([]models.EventClient, error) {
	if _, err := time.Parse(utils.DayIDLayout, dayID); err != nil {
		return nil, NewInvalidInputError(fmt.Sprintf("malformed day %q", dayID))
	}
	events, err := s.Repo.ListByDay(ctx, dayID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for %s: %w", dayID, err)
	}
	return projectEvents(role, events), nil
}

func (s *DefaultEventService) Get(ctx context.Context, role models.Role, eventID string) (*models.EventClient, error) {
	event, err := s.Repo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NewNotFoundError(eventID)
		}
		return nil, fmt.Errorf("failed to fetch event %q: %w", eventID, err)
	}
	if !role.AtLeast(event.Access) {
		return nil, NewNotFoundError(eventID)
	}
	view := projectEvent(role, *event)
	return &view, nil
}

func (s *DefaultEventService) Create(ctx context.Context, uid, creator string, role models.Role, input models.EventInput) (*models.EventClient, error) {
	if !role.AtLeast(models.RoleUser) {
		return nil, NewForbiddenError("guests cannot create events")
	}

	event, err := s.buildEvent(uid, input)
	if err != nil {
		return nil, err
	}
	event.ID = uuid.New().String()
	event.Creator = creator
	event.CreatedAt = s.now()
	event.UpdatedAt = event.CreatedAt

	if err := s.checkSlotFree(ctx, *event, ""); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, *event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.scheduleReminder(*event)
	utils.InvalidateTimeslotCache(ctx, event.DayID)

	view := projectEvent(role, *event)
	return &view, nil
}

func (s *DefaultEventService) Update(ctx context.Context, uid string, role models.Role, eventID string, input models.EventInput) (*models.EventClient, error) {
	existing, err := s.Repo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NewNotFoundError(eventID)
		}
		return nil, fmt.Errorf("failed to fetch event %q: %w", eventID, err)
	}
	if existing.UID != uid && !role.AtLeast(models.RoleModerator) {
		return nil, NewForbiddenError("only the creator or a moderator may edit this event")
	}

	event, err := s.buildEvent(existing.UID, input)
	if err != nil {
		return nil, err
	}
	event.ID = existing.ID
	event.Creator = existing.Creator
	event.CreatedAt = existing.CreatedAt
	event.UpdatedAt = s.now()

	if err := s.checkSlotFree(ctx, *event, event.ID); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, *event); err != nil {
		return nil, fmt.Errorf("failed to update event %q: %w", eventID, err)
	}

	utils.InvalidateTimeslotCache(ctx, existing.DayID)
	if event.DayID != existing.DayID {
		utils.InvalidateTimeslotCache(ctx, event.DayID)
	}

	view := projectEvent(role, *event)
	return &view, nil
}

func (s *DefaultEventService) Delete(ctx context.Context, uid string, role models.Role, eventID string) error {
	existing, err := s.Repo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return NewNotFoundError(eventID)
		}
		return fmt.Errorf("failed to fetch event %q: %w", eventID, err)
	}
	if existing.UID != uid && !role.AtLeast(models.RoleModerator) {
		return NewForbiddenError("only the creator or a moderator may delete this event")
	}

	if err := s.Repo.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("failed to delete event %q: %w", eventID, err)
	}
	if err := s.Activities.DeleteByEvent(ctx, eventID); err != nil {
		utils.GetLogger().Warn("failed to delete event activities",
			zap.String("eventID", eventID), zap.Error(err))
	}
	utils.InvalidateTimeslotCache(ctx, existing.DayID)
	return nil
}

// buildEvent validates the input and derives the denormalized day/month/year
// identifiers from the datetime.
func (s *DefaultEventService) buildEvent(uid string, input models.EventInput) (*models.Event, error) {
	dt, err := time.ParseInLocation(time.RFC3339, input.Datetime, time.Local)
	if err != nil {
		return nil, NewInvalidInputError(fmt.Sprintf("malformed datetime %q", input.Datetime))
	}
	if input.Duration <= 0 {
		return nil, NewInvalidInputError("duration must be positive")
	}
	access := input.Access
	if access == "" {
		access = models.RoleGuest
	}

	return &models.Event{
		UID:      uid,
		YearID:   dt.Format(utils.YearIDLayout),
		MonthID:  dt.Format(utils.MonthIDLayout),
		DayID:    dt.Format(utils.DayIDLayout),
		Access:   access,
		Name:     input.Name,
		Host:     input.Host,
		Location: input.Location,
		Brands:   input.Brands,
		Team:     input.Team,
		Region:   input.Region,
		Platform: input.Platform,
		About:    input.About,
		Datetime: dt,
		Duration: input.Duration,
	}, nil
}

// checkSlotFree is the write-path safeguard against the read-then-write
// race: a slot judged available at query time is re-verified against a fresh
// same-day snapshot before the event is written. excludeID skips the event
// being updated.
func (s *DefaultEventService) checkSlotFree(ctx context.Context, event models.Event, excludeID string) error {
	team, err := s.Teams.GetByID(ctx, event.Team)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return NewInvalidInputError(fmt.Sprintf("unknown team %q", event.Team))
		}
		return fmt.Errorf("failed to fetch team %q: %w", event.Team, err)
	}

	window, ok := availability.ResolveWindow(*team, event.Datetime)
	if !ok {
		return NewConflictError("team has no operating hours on that day")
	}
	slot := availability.Interval{Start: event.Datetime, Duration: event.Duration}
	if !window.Contains(slot) {
		return NewConflictError("slot falls outside the team's operating hours")
	}

	bookings, err := s.Repo.ListByDayAndRegion(ctx, event.DayID, event.Region)
	if err != nil {
		return fmt.Errorf("failed to fetch bookings for %s/%s: %w", event.DayID, event.Region, err)
	}
	policy := s.Policy
	if policy.DefaultBookingDuration <= 0 {
		policy = availability.DefaultPolicy()
	}
	for _, b := range bookings {
		if b.ID == excludeID {
			continue
		}
		duration := b.Duration
		if duration <= 0 {
			duration = policy.DefaultBookingDuration
		}
		if slot.Overlaps(availability.Interval{Start: b.Datetime, Duration: duration}) {
			return NewConflictError(fmt.Sprintf("slot overlaps event %q", b.ID))
		}
	}
	return nil
}

func (s *DefaultEventService) scheduleReminder(event models.Event) {
	if s.Reminders == nil {
		return
	}
	lead := time.Duration(config.AppConfig.ReminderLeadHours) * time.Hour
	if err := s.Reminders.ScheduleEventReminder(event, lead); err != nil {
		utils.GetLogger().Warn("failed to schedule event reminder",
			zap.String("eventID", event.ID), zap.Error(err))
	}
}
