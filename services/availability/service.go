package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	eventRepo "slotify/database/repository/event"
	teamRepo "slotify/database/repository/team"
	"slotify/models"
	"slotify/utils"
)

// Query is the caller's input to the availability computation.
type Query struct {
	DayID    string
	TeamID   string
	RegionID string
	Duration int // minutes
}

func (q Query) validate() error {
	if q.DayID == "" {
		return NewInvalidQueryError("missing day")
	}
	if q.TeamID == "" {
		return NewInvalidQueryError("missing team")
	}
	if q.RegionID == "" {
		return NewInvalidQueryError("missing region")
	}
	if q.Duration <= 0 {
		return NewInvalidQueryError("duration must be positive")
	}
	return nil
}

// Service computes bookable timeslots.
type Service interface {
	ListAvailableSlots(ctx context.Context, q Query) ([]models.TimeslotClient, error)
}

// DefaultService is the concrete availability engine. It is stateless: each
// query performs two reads (team, same-day bookings) and pure interval
// arithmetic over the snapshot. A slot judged available can still be taken
// between this query and the booking write; the write path re-checks.
type DefaultService struct {
	TeamRepo  teamRepo.TeamRepository
	EventRepo eventRepo.EventRepository
	Policy    Policy
	Now       func() time.Time // nil means time.Now
}

func (s *DefaultService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ListAvailableSlots returns the chronologically ordered bookable slots for
// (day, team, region, duration). An unknown weekday or a team with no hours
// that day yields an empty list, not an error.
func (s *DefaultService) ListAvailableSlots(ctx context.Context, q Query) ([]models.TimeslotClient, error) {
	logger := utils.GetLogger()

	if err := q.validate(); err != nil {
		return nil, err
	}
	day, err := time.ParseInLocation(utils.DayIDLayout, q.DayID, time.Local)
	if err != nil {
		return nil, NewInvalidQueryError(fmt.Sprintf("malformed day %q", q.DayID))
	}

	team, err := s.TeamRepo.GetByID(ctx, q.TeamID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NewTeamNotFoundError(q.TeamID)
		}
		return nil, fmt.Errorf("failed to fetch team %q: %w", q.TeamID, err)
	}

	bookings, err := s.EventRepo.ListByDayAndRegion(ctx, q.DayID, q.RegionID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for %s/%s: %w", q.DayID, q.RegionID, err)
	}

	var windowPtr *OperatingWindow
	if window, ok := ResolveWindow(*team, day); ok {
		windowPtr = &window
	} else {
		logger.Debug("no operating hours",
			zap.String("team", q.TeamID), zap.String("did", q.DayID))
	}

	detector := NewDetector(s.Policy, s.now())
	var accepted []CandidateSlot
	for slot := range Candidates(day, q.DayID, q.Duration, detector.Policy.GranularityMinutes) {
		if detector.Accept(slot, windowPtr, bookings) {
			accepted = append(accepted, slot)
		}
	}

	return Project(accepted), nil
}
