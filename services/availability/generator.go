package availability

import (
	"iter"
	"time"
)

// CandidateSlot is an Interval tagged with the day it belongs to. Candidates
// are generated, filtered and discarded per query; they are never stored.
type CandidateSlot struct {
	DayID string
	Interval
}

// Candidates returns the candidate sequence for a day: one slot per
// granularity step from 00:00, floor(1440/granularity) in total, each
// carrying the requested duration. The sequence covers the whole day
// regardless of operating hours; the conflict detector filters downstream.
//
// The sequence is lazy, restartable, and strictly increasing by start time.
func Candidates(day time.Time, dayID string, durationMinutes, granularityMinutes int) iter.Seq[CandidateSlot] {
	return func(yield func(CandidateSlot) bool) {
		if durationMinutes <= 0 || granularityMinutes <= 0 {
			return
		}
		midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		step := time.Duration(granularityMinutes) * time.Minute
		count := (24 * 60) / granularityMinutes

		for i := 0; i < count; i++ {
			slot := CandidateSlot{
				DayID: dayID,
				Interval: Interval{
					Start:    midnight.Add(time.Duration(i) * step),
					Duration: durationMinutes,
				},
			}
			if !yield(slot) {
				return
			}
		}
	}
}
