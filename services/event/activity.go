package event

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"slotify/models"
)

func (s *DefaultEventService) ListActivity(ctx context.Context, role models.Role, eventID string) ([]models.ActivityClient, error) {
	if !role.AtLeast(models.RoleUser) {
		return nil, NewForbiddenError("guests cannot read activity")
	}
	if _, err := s.Get(ctx, role, eventID); err != nil {
		return nil, err
	}

	activities, err := s.Activities.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity for %q: %w", eventID, err)
	}

	out := make([]models.ActivityClient, 0, len(activities))
	for _, a := range activities {
		out = append(out, projectActivity(a))
	}
	return out, nil
}

// SubmitActivity adds the caller's note to the event, or edits their
// existing one.
func (s *DefaultEventService) SubmitActivity(ctx context.Context, uid, author, eventID string, input models.ActivityInput) (*models.ActivityClient, error) {
	if uid == "" {
		return nil, NewForbiddenError("authentication required")
	}
	if input.Note == "" {
		return nil, NewInvalidInputError("note must not be empty")
	}
	if _, err := s.Repo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NewNotFoundError(eventID)
		}
		return nil, fmt.Errorf("failed to fetch event %q: %w", eventID, err)
	}

	now := s.now()
	activity := models.Activity{
		UID:      uid,
		ID:       eventID,
		AID:      uuid.New().String(),
		Note:     input.Note,
		Author:   author,
		Datetime: now,
	}
	if existing, err := s.Activities.GetByEventAndAuthor(ctx, eventID, uid); err == nil {
		activity.AID = existing.AID
		activity.Datetime = existing.Datetime
		activity.DatetimeEdited = now
	}

	if err := s.Activities.Upsert(ctx, activity); err != nil {
		return nil, fmt.Errorf("failed to save activity: %w", err)
	}
	view := projectActivity(activity)
	return &view, nil
}

func (s *DefaultEventService) DeleteActivity(ctx context.Context, uid string, role models.Role, activityID string) error {
	activity, err := s.Activities.GetByAID(ctx, activityID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return NewNotFoundError(activityID)
		}
		return fmt.Errorf("failed to fetch activity %q: %w", activityID, err)
	}
	if activity.UID != uid && !role.AtLeast(models.RoleModerator) {
		return NewForbiddenError("only the author or a moderator may delete this note")
	}
	if err := s.Activities.Delete(ctx, activityID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return NewNotFoundError(activityID)
		}
		return fmt.Errorf("failed to delete activity %q: %w", activityID, err)
	}
	return nil
}

func projectActivity(a models.Activity) models.ActivityClient {
	view := models.ActivityClient{
		UID:      a.UID,
		ID:       a.ID,
		AID:      a.AID,
		Note:     a.Note,
		Author:   a.Author,
		Datetime: a.Datetime.Format(time.RFC3339),
	}
	if !a.DatetimeEdited.IsZero() {
		view.DatetimeEdited = a.DatetimeEdited.Format(time.RFC3339)
	}
	return view
}
