package availability

import "time"

// Interval is a half-open time interval [Start, Start+Duration).
type Interval struct {
	Start    time.Time
	Duration int // minutes, always > 0
}

// End returns the exclusive end of the interval.
func (iv Interval) End() time.Time {
	return iv.Start.Add(time.Duration(iv.Duration) * time.Minute)
}

// Overlaps reports whether two half-open intervals intersect. Touching
// boundaries do not count: a booking ending exactly when a slot starts is
// not a conflict.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End()) && other.Start.Before(iv.End())
}

// OperatingWindow is a team's permitted booking bounds for one concrete day.
type OperatingWindow struct {
	Weekday time.Weekday
	Start   time.Time
	End     time.Time
}

// Contains reports whether the entire interval, end included, lies within
// the window. A slot that starts inside the window but runs past its end is
// not contained.
func (w OperatingWindow) Contains(iv Interval) bool {
	return !iv.Start.Before(w.Start) && !iv.End().After(w.End)
}
