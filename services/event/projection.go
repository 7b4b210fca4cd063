package event

import (
	"time"

	"slotify/models"
	"slotify/services/permission"
)

// projectEvent maps an event to its external shape, keeping only the fields
// the caller's role may read per the permission table.
func projectEvent(role models.Role, e models.Event) models.EventClient {
	fields := permission.ReadableFields(role, permission.ResourceEvent)
	view := models.EventClient{ID: e.ID}

	if fields["yid"] {
		view.YearID = e.YearID
	}
	if fields["mid"] {
		view.MonthID = e.MonthID
	}
	if fields["did"] {
		view.DayID = e.DayID
	}
	if fields["access"] {
		view.Access = e.Access
	}
	if fields["name"] {
		view.Name = e.Name
	}
	if fields["team"] {
		view.Team = e.Team
	}
	if fields["region"] {
		view.Region = e.Region
	}
	if fields["platform"] {
		view.Platform = e.Platform
	}
	if fields["brands"] {
		view.Brands = e.Brands
	}
	if fields["datetime"] {
		view.Datetime = e.Datetime.Format(time.RFC3339)
		if e.Duration > 0 {
			view.DatetimeEnd = e.Datetime.Add(time.Duration(e.Duration) * time.Minute).Format(time.RFC3339)
		}
	}
	if fields["duration"] {
		view.Duration = e.Duration
	}
	if fields["host"] {
		view.Host = e.Host
	}
	if fields["location"] {
		view.Location = e.Location
	}
	if fields["about"] {
		view.About = e.About
	}
	if fields["creator"] {
		view.Creator = e.Creator
	}
	if fields["uid"] {
		view.UID = e.UID
	}
	return view
}

// projectEvents filters out events above the caller's access level and maps
// the rest.
func projectEvents(role models.Role, events []models.Event) []models.EventClient {
	out := make([]models.EventClient, 0, len(events))
	for _, e := range events {
		if !permission.CanRead(role, e.Access) {
			continue
		}
		out = append(out, projectEvent(role, e))
	}
	return out
}
