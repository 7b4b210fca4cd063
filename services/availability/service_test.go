package availability

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"slotify/models"
)

type stubTeamRepo struct {
	team *models.Team
}

func (s *stubTeamRepo) GetByID(_ context.Context, teamID string) (*models.Team, error) {
	if s.team != nil && s.team.ID == teamID {
		return s.team, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (s *stubTeamRepo) List(context.Context) ([]models.Team, error) {
	if s.team == nil {
		return nil, nil
	}
	return []models.Team{*s.team}, nil
}

type stubEventRepo struct {
	events []models.Event
}

func (s *stubEventRepo) GetByID(context.Context, string) (*models.Event, error) {
	return nil, mongo.ErrNoDocuments
}

func (s *stubEventRepo) ListByDay(_ context.Context, dayID string) ([]models.Event, error) {
	var out []models.Event
	for _, e := range s.events {
		if e.DayID == dayID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubEventRepo) ListByDayAndRegion(_ context.Context, dayID, regionID string) ([]models.Event, error) {
	var out []models.Event
	for _, e := range s.events {
		if e.DayID == dayID && e.Region == regionID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubEventRepo) ListByMonth(context.Context, string) ([]models.Event, error) {
	return s.events, nil
}

func (s *stubEventRepo) Create(_ context.Context, e models.Event) error {
	s.events = append(s.events, e)
	return nil
}

func (s *stubEventRepo) Update(context.Context, models.Event) error { return nil }
func (s *stubEventRepo) Delete(context.Context, string) error       { return nil }

func mondayTeam() *models.Team {
	return &models.Team{
		ID:   "design",
		Name: "Design",
		Times: []models.TeamTime{
			{ID: "monday", TimeStart: "09:00", TimeEnd: "12:00"},
		},
	}
}

func newTestService(team *models.Team, events []models.Event, now time.Time) *DefaultService {
	return &DefaultService{
		TeamRepo:  &stubTeamRepo{team: team},
		EventRepo: &stubEventRepo{events: events},
		Policy:    DefaultPolicy(),
		Now:       func() time.Time { return now },
	}
}

func TestListAvailableSlots_EndToEnd(t *testing.T) {
	// Monday 2026-09-07 queried the preceding Tuesday, well outside any
	// cutoff. Window 09:00-12:00, duration 30, no bookings.
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	svc := newTestService(mondayTeam(), nil, now)

	slots, err := svc.ListAvailableSlots(context.Background(), Query{
		DayID:    "2026-09-07",
		TeamID:   "design",
		RegionID: "emea",
		Duration: 30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 09:00 through 11:30 in 10-minute steps: floor((180-30)/10)+1 = 16.
	if len(slots) != 16 {
		t.Fatalf("expected 16 slots, got %d", len(slots))
	}

	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local)
	first, _ := time.Parse(time.RFC3339, slots[0].Time)
	if !first.Equal(day.Add(9 * time.Hour)) {
		t.Fatalf("expected first slot 09:00, got %s", slots[0].Time)
	}
	last, _ := time.Parse(time.RFC3339, slots[len(slots)-1].Time)
	if !last.Equal(day.Add(11*time.Hour + 30*time.Minute)) {
		t.Fatalf("expected last slot 11:30, got %s", slots[len(slots)-1].Time)
	}
	for i, slot := range slots {
		if slot.Duration != 30 || slot.DayID != "2026-09-07" {
			t.Fatalf("slot %d carries wrong projection: %+v", i, slot)
		}
	}
}

func TestListAvailableSlots_BookingExcluded(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local)

	events := []models.Event{
		{
			ID:       "evt-1",
			DayID:    "2026-09-07",
			Region:   "emea",
			Datetime: day.Add(10 * time.Hour), // [10:00, 10:20)
			Duration: 20,
		},
	}
	svc := newTestService(mondayTeam(), events, now)

	slots, err := svc.ListAvailableSlots(context.Background(), Query{
		DayID: "2026-09-07", TeamID: "design", RegionID: "emea", Duration: 20,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, slot := range slots {
		start, _ := time.Parse(time.RFC3339, slot.Time)
		end := start.Add(time.Duration(slot.Duration) * time.Minute)
		if start.Before(day.Add(10*time.Hour+20*time.Minute)) && day.Add(10*time.Hour).Before(end) {
			t.Fatalf("slot %s overlaps the existing booking", slot.Time)
		}
	}

	// The touching slot at 10:20 must survive.
	found := false
	for _, slot := range slots {
		start, _ := time.Parse(time.RFC3339, slot.Time)
		if start.Equal(day.Add(10*time.Hour + 20*time.Minute)) {
			found = true
		}
	}
	if !found {
		t.Fatalf("slot at 10:20 touches the booking and must be present")
	}
}

func TestListAvailableSlots_CutoffPolicy(t *testing.T) {
	// Team operates every day of the first test week.
	team := &models.Team{
		ID: "design",
		Times: []models.TeamTime{
			{ID: "tuesday", TimeStart: "09:00", TimeEnd: "17:00"},
			{ID: "wednesday", TimeStart: "09:00", TimeEnd: "17:00"},
		},
	}
	query := func(dayID string, now time.Time) []models.TimeslotClient {
		svc := newTestService(team, nil, now)
		slots, err := svc.ListAvailableSlots(context.Background(), Query{
			DayID: dayID, TeamID: "design", RegionID: "emea", Duration: 20,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return slots
	}

	// Querying today for today: always empty.
	if slots := query("2026-09-01", time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)); len(slots) != 0 {
		t.Fatalf("same-day query must yield no slots, got %d", len(slots))
	}
	// Querying at 15:00 for tomorrow: past the 14:00 cutoff.
	if slots := query("2026-09-02", time.Date(2026, 9, 1, 15, 0, 0, 0, time.Local)); len(slots) != 0 {
		t.Fatalf("post-cutoff query for tomorrow must yield no slots, got %d", len(slots))
	}
	// Querying at 10:00 for tomorrow: before the cutoff.
	if slots := query("2026-09-02", time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)); len(slots) == 0 {
		t.Fatalf("pre-cutoff query for tomorrow must yield slots")
	}
}

func TestListAvailableSlots_NoOperatingHours(t *testing.T) {
	// Team has Monday hours only; query a Tuesday.
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	svc := newTestService(mondayTeam(), nil, now)

	slots, err := svc.ListAvailableSlots(context.Background(), Query{
		DayID: "2026-09-08", TeamID: "design", RegionID: "emea", Duration: 20,
	})
	if err != nil {
		t.Fatalf("no operating hours must not be an error, got %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected empty result, got %d slots", len(slots))
	}
}

func TestListAvailableSlots_Validation(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	svc := newTestService(mondayTeam(), nil, now)
	ctx := context.Background()

	cases := []Query{
		{TeamID: "design", RegionID: "emea", Duration: 20},
		{DayID: "2026-09-07", RegionID: "emea", Duration: 20},
		{DayID: "2026-09-07", TeamID: "design", Duration: 20},
		{DayID: "2026-09-07", TeamID: "design", RegionID: "emea", Duration: 0},
		{DayID: "not-a-day", TeamID: "design", RegionID: "emea", Duration: 20},
	}
	for i, q := range cases {
		if _, err := svc.ListAvailableSlots(ctx, q); !IsInvalidQuery(err) {
			t.Fatalf("case %d: expected invalid-query error, got %v", i, err)
		}
	}

	if _, err := svc.ListAvailableSlots(ctx, Query{
		DayID: "2026-09-07", TeamID: "ghost", RegionID: "emea", Duration: 20,
	}); !IsTeamNotFound(err) {
		t.Fatalf("expected team-not-found error, got %v", err)
	}
}
