package availability

import (
	"time"

	"slotify/models"
)

// Detector applies the rejection rules to one candidate at a time. It is a
// value type; construct one per query with the current instant.
type Detector struct {
	Policy Policy
	Now    time.Time
}

// NewDetector builds a Detector with normalized policy values.
func NewDetector(policy Policy, now time.Time) Detector {
	return Detector{Policy: policy.orDefaults(), Now: now}
}

// Accept reports whether the candidate survives every rule: full containment
// in the operating window, no overlap with an existing booking, and the
// lead-time/cutoff policy. Rejection is a normal outcome, never an error.
func (d Detector) Accept(slot CandidateSlot, window *OperatingWindow, bookings []models.Event) bool {
	if window == nil || !window.Contains(slot.Interval) {
		return false
	}
	for _, b := range bookings {
		duration := b.Duration
		if duration <= 0 {
			duration = d.Policy.DefaultBookingDuration
		}
		if slot.Overlaps(Interval{Start: b.Datetime, Duration: duration}) {
			return false
		}
	}
	return d.withinLeadTime(slot)
}

// withinLeadTime enforces the advance-notice rules. Candidates before the
// earliest bookable day are always rejected. Candidates on the earliest
// bookable day are rejected once Now has passed the cutoff hour of the query
// day. Candidates on later days are never cutoff-constrained.
func (d Detector) withinLeadTime(slot CandidateSlot) bool {
	today := time.Date(d.Now.Year(), d.Now.Month(), d.Now.Day(), 0, 0, 0, 0, d.Now.Location())
	earliest := today.AddDate(0, 0, d.Policy.MinLeadDays)

	if slot.Start.Before(earliest) {
		return false
	}
	if slot.Start.Before(earliest.AddDate(0, 0, 1)) {
		cutoff := today.Add(time.Duration(d.Policy.CutoffHour) * time.Hour)
		if d.Now.After(cutoff) {
			return false
		}
	}
	return true
}
