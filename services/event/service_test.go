package event

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"slotify/models"
	"slotify/services/availability"
)

type stubEventRepo struct {
	events map[string]models.Event
}

func newStubEventRepo(events ...models.Event) *stubEventRepo {
	r := &stubEventRepo{events: make(map[string]models.Event)}
	for _, ev := range events {
		r.events[ev.ID] = ev
	}
	return r
}

func (r *stubEventRepo) GetByID(_ context.Context, eventID string) (*models.Event, error) {
	ev, ok := r.events[eventID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &ev, nil
}

func (r *stubEventRepo) ListByDay(_ context.Context, dayID string) ([]models.Event, error) {
	var out []models.Event
	for _, ev := range r.events {
		if ev.DayID == dayID {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (r *stubEventRepo) ListByDayAndRegion(_ context.Context, dayID, regionID string) ([]models.Event, error) {
	var out []models.Event
	for _, ev := range r.events {
		if ev.DayID == dayID && ev.Region == regionID {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (r *stubEventRepo) ListByMonth(_ context.Context, monthID string) ([]models.Event, error) {
	var out []models.Event
	for _, ev := range r.events {
		if ev.MonthID == monthID {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (r *stubEventRepo) Create(_ context.Context, event models.Event) error {
	r.events[event.ID] = event
	return nil
}

func (r *stubEventRepo) Update(_ context.Context, event models.Event) error {
	if _, ok := r.events[event.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	r.events[event.ID] = event
	return nil
}

func (r *stubEventRepo) Delete(_ context.Context, eventID string) error {
	if _, ok := r.events[eventID]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.events, eventID)
	return nil
}

type stubActivityRepo struct {
	activities map[string]models.Activity // keyed by aid
}

func newStubActivityRepo() *stubActivityRepo {
	return &stubActivityRepo{activities: make(map[string]models.Activity)}
}

func (r *stubActivityRepo) ListByEvent(_ context.Context, eventID string) ([]models.Activity, error) {
	var out []models.Activity
	for _, a := range r.activities {
		if a.ID == eventID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubActivityRepo) GetByAID(_ context.Context, activityID string) (*models.Activity, error) {
	a, ok := r.activities[activityID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &a, nil
}

func (r *stubActivityRepo) GetByEventAndAuthor(_ context.Context, eventID, uid string) (*models.Activity, error) {
	for _, a := range r.activities {
		if a.ID == eventID && a.UID == uid {
			return &a, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *stubActivityRepo) Upsert(_ context.Context, activity models.Activity) error {
	r.activities[activity.AID] = activity
	return nil
}

func (r *stubActivityRepo) Delete(_ context.Context, activityID string) error {
	if _, ok := r.activities[activityID]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.activities, activityID)
	return nil
}

func (r *stubActivityRepo) DeleteByEvent(_ context.Context, eventID string) error {
	for aid, a := range r.activities {
		if a.ID == eventID {
			delete(r.activities, aid)
		}
	}
	return nil
}

type stubTeamRepo struct {
	teams map[string]models.Team
}

func (r *stubTeamRepo) GetByID(_ context.Context, teamID string) (*models.Team, error) {
	team, ok := r.teams[teamID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &team, nil
}

func (r *stubTeamRepo) List(_ context.Context) ([]models.Team, error) {
	var out []models.Team
	for _, team := range r.teams {
		out = append(out, team)
	}
	return out, nil
}

// 2026-09-07 is a Monday.
func testService(events ...models.Event) (*DefaultEventService, *stubEventRepo, *stubActivityRepo) {
	eventRepo := newStubEventRepo(events...)
	activityRepo := newStubActivityRepo()
	svc := &DefaultEventService{
		Repo:       eventRepo,
		Activities: activityRepo,
		Teams: &stubTeamRepo{teams: map[string]models.Team{
			"alpha": {
				ID:   "alpha",
				Name: "Alpha",
				Times: []models.TeamTime{
					{ID: "monday", TimeStart: "09:00", TimeEnd: "17:00"},
				},
			},
		}},
		Policy: availability.DefaultPolicy(),
		Now:    func() time.Time { return time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local) },
	}
	return svc, eventRepo, activityRepo
}

func testInput(hour, min int) models.EventInput {
	return models.EventInput{
		Name:     "Coaching session",
		Team:     "alpha",
		Region:   "emea",
		Datetime: time.Date(2026, 9, 7, hour, min, 0, 0, time.Local).Format(time.RFC3339),
		Duration: 30,
	}
}

func TestCreateRejectsGuests(t *testing.T) {
	svc, _, _ := testService()

	_, err := svc.Create(context.Background(), "", "", models.RoleGuest, testInput(10, 0))
	if !IsForbidden(err) {
		t.Fatalf("Create as guest: want forbidden, got %v", err)
	}
}

func TestCreateDerivesCalendarIDs(t *testing.T) {
	svc, repo, _ := testService()

	view, err := svc.Create(context.Background(), "u1", "Alice", models.RoleUser, testInput(10, 0))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if view.ID == "" {
		t.Fatal("Create returned empty event id")
	}

	stored, ok := repo.events[view.ID]
	if !ok {
		t.Fatal("event was not persisted")
	}
	if stored.YearID != "2026" || stored.MonthID != "2026-09" || stored.DayID != "2026-09-07" {
		t.Fatalf("derived ids = %s/%s/%s", stored.YearID, stored.MonthID, stored.DayID)
	}
	if stored.UID != "u1" || stored.Creator != "Alice" {
		t.Fatalf("creator = %q/%q", stored.UID, stored.Creator)
	}
	if stored.Access != models.RoleGuest {
		t.Fatalf("default access = %q, want guest", stored.Access)
	}
}

func TestCreateRejectsTakenSlot(t *testing.T) {
	existing := models.Event{
		ID:       "e1",
		DayID:    "2026-09-07",
		Region:   "emea",
		Team:     "alpha",
		Datetime: time.Date(2026, 9, 7, 10, 0, 0, 0, time.Local),
		Duration: 30,
	}
	svc, _, _ := testService(existing)

	// Overlapping start.
	_, err := svc.Create(context.Background(), "u1", "Alice", models.RoleUser, testInput(10, 20))
	if !IsConflict(err) {
		t.Fatalf("overlapping create: want conflict, got %v", err)
	}

	// Back-to-back is fine: 10:30 starts exactly where e1 ends.
	if _, err := svc.Create(context.Background(), "u1", "Alice", models.RoleUser, testInput(10, 30)); err != nil {
		t.Fatalf("back-to-back create: %v", err)
	}
}

func TestCreateRejectsSlotOutsideHours(t *testing.T) {
	svc, _, _ := testService()

	// 16:50 + 30min spills past 17:00.
	_, err := svc.Create(context.Background(), "u1", "Alice", models.RoleUser, testInput(16, 50))
	if !IsConflict(err) {
		t.Fatalf("out-of-hours create: want conflict, got %v", err)
	}

	// Flush against closing is allowed.
	if _, err := svc.Create(context.Background(), "u1", "Alice", models.RoleUser, testInput(16, 30)); err != nil {
		t.Fatalf("flush-end create: %v", err)
	}
}

func TestCreateRejectsUnknownTeam(t *testing.T) {
	svc, _, _ := testService()

	input := testInput(10, 0)
	input.Team = "nope"
	_, err := svc.Create(context.Background(), "u1", "Alice", models.RoleUser, input)
	if !IsInvalidInput(err) {
		t.Fatalf("unknown team: want invalid input, got %v", err)
	}
}

func TestUpdatePermissions(t *testing.T) {
	existing := models.Event{
		ID:       "e1",
		UID:      "owner",
		Creator:  "Owner",
		DayID:    "2026-09-07",
		MonthID:  "2026-09",
		Region:   "emea",
		Team:     "alpha",
		Datetime: time.Date(2026, 9, 7, 10, 0, 0, 0, time.Local),
		Duration: 30,
	}
	svc, repo, _ := testService(existing)

	_, err := svc.Update(context.Background(), "intruder", models.RoleUser, "e1", testInput(11, 0))
	if !IsForbidden(err) {
		t.Fatalf("update by stranger: want forbidden, got %v", err)
	}

	// A moderator may edit anyone's event; creator identity is preserved.
	if _, err := svc.Update(context.Background(), "mod", models.RoleModerator, "e1", testInput(11, 0)); err != nil {
		t.Fatalf("update by moderator: %v", err)
	}
	if got := repo.events["e1"].UID; got != "owner" {
		t.Fatalf("update reassigned uid to %q", got)
	}
	if got := repo.events["e1"].Creator; got != "Owner" {
		t.Fatalf("update reassigned creator to %q", got)
	}
}

func TestUpdateIgnoresOwnSlot(t *testing.T) {
	existing := models.Event{
		ID:       "e1",
		UID:      "owner",
		DayID:    "2026-09-07",
		Region:   "emea",
		Team:     "alpha",
		Datetime: time.Date(2026, 9, 7, 10, 0, 0, 0, time.Local),
		Duration: 30,
	}
	svc, _, _ := testService(existing)

	// Nudging the event within its own slot must not self-conflict.
	if _, err := svc.Update(context.Background(), "owner", models.RoleUser, "e1", testInput(10, 10)); err != nil {
		t.Fatalf("self-overlapping update: %v", err)
	}
}

func TestDeleteCascadesActivity(t *testing.T) {
	existing := models.Event{
		ID:       "e1",
		UID:      "owner",
		DayID:    "2026-09-07",
		Region:   "emea",
		Team:     "alpha",
		Datetime: time.Date(2026, 9, 7, 10, 0, 0, 0, time.Local),
		Duration: 30,
	}
	svc, repo, activities := testService(existing)
	activities.activities["a1"] = models.Activity{UID: "u2", ID: "e1", AID: "a1", Note: "see you there"}

	if err := svc.Delete(context.Background(), "owner", models.RoleUser, "e1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := repo.events["e1"]; ok {
		t.Fatal("event still present after delete")
	}
	if len(activities.activities) != 0 {
		t.Fatalf("%d activities survived the cascade", len(activities.activities))
	}
}

func TestGetHidesRestrictedEvents(t *testing.T) {
	existing := models.Event{
		ID:       "e1",
		Access:   models.RoleModerator,
		DayID:    "2026-09-07",
		Datetime: time.Date(2026, 9, 7, 10, 0, 0, 0, time.Local),
	}
	svc, _, _ := testService(existing)

	// Restricted events read as absent, not as forbidden.
	_, err := svc.Get(context.Background(), models.RoleUser, "e1")
	if !IsNotFound(err) {
		t.Fatalf("restricted get: want not found, got %v", err)
	}

	if _, err := svc.Get(context.Background(), models.RoleAdmin, "e1"); err != nil {
		t.Fatalf("admin get: %v", err)
	}
}

func TestListByDayValidatesDayID(t *testing.T) {
	svc, _, _ := testService()

	_, err := svc.ListByDay(context.Background(), models.RoleGuest, "07-09-2026")
	if !IsInvalidInput(err) {
		t.Fatalf("malformed day: want invalid input, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "07-09-2026") {
		t.Fatalf("error should name the bad day, got %v", err)
	}
}

func TestProjectionDropsFieldsForGuests(t *testing.T) {
	existing := models.Event{
		ID:       "e1",
		UID:      "owner",
		DayID:    "2026-09-07",
		MonthID:  "2026-09",
		Name:     "Coaching session",
		Location: "Berlin office",
		Datetime: time.Date(2026, 9, 7, 10, 0, 0, 0, time.Local),
		Duration: 30,
	}
	svc, _, _ := testService(existing)

	asGuest, err := svc.Get(context.Background(), models.RoleGuest, "e1")
	if err != nil {
		t.Fatalf("guest get: %v", err)
	}
	if asGuest.Location != "" || asGuest.UID != "" {
		t.Fatalf("guest view leaked restricted fields: %+v", asGuest)
	}
	if asGuest.Name != "Coaching session" {
		t.Fatalf("guest view lost public field: %+v", asGuest)
	}

	asMod, err := svc.Get(context.Background(), models.RoleModerator, "e1")
	if err != nil {
		t.Fatalf("moderator get: %v", err)
	}
	if asMod.Location != "Berlin office" || asMod.UID != "owner" {
		t.Fatalf("moderator view missing fields: %+v", asMod)
	}
	if asMod.DatetimeEnd == "" {
		t.Fatal("projection did not compute datetimeEnd")
	}
}
