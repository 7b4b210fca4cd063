package availability

import (
	"strconv"
	"strings"
	"time"

	"slotify/models"
)

// ResolveWindow looks up the team's operating hours for the weekday of day
// and anchors them onto that day. ok is false when the team has no entry for
// that weekday, or when the configured entry is malformed; either way the
// day simply has no availability.
func ResolveWindow(team models.Team, day time.Time) (OperatingWindow, bool) {
	weekday := strings.ToLower(day.Weekday().String())

	for _, t := range team.Times {
		if t.ID != weekday {
			continue
		}
		startH, startM, err := parseClock(t.TimeStart)
		if err != nil {
			return OperatingWindow{}, false
		}
		endH, endM, err := parseClock(t.TimeEnd)
		if err != nil {
			return OperatingWindow{}, false
		}

		midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		w := OperatingWindow{
			Weekday: day.Weekday(),
			Start:   midnight.Add(time.Duration(startH)*time.Hour + time.Duration(startM)*time.Minute),
			End:     midnight.Add(time.Duration(endH)*time.Hour + time.Duration(endM)*time.Minute),
		}
		if !w.Start.Before(w.End) {
			return OperatingWindow{}, false
		}
		return w, true
	}
	return OperatingWindow{}, false
}

// parseClock parses a "HH:MM" wall-clock string.
func parseClock(s string) (hour, minute int, err error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, strconv.ErrSyntax
	}
	hour, err = strconv.Atoi(hh)
	if err != nil {
		return 0, 0, err
	}
	minute, err = strconv.Atoi(mm)
	if err != nil {
		return 0, 0, err
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, strconv.ErrRange
	}
	return hour, minute, nil
}
