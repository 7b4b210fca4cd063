package availability

import (
	"testing"
	"time"
)

func TestOverlaps_HalfOpen(t *testing.T) {
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	a := Interval{Start: day.Add(10 * time.Hour), Duration: 20}                   // [10:00, 10:20)
	b := Interval{Start: day.Add(10*time.Hour + 20*time.Minute), Duration: 20}    // [10:20, 10:40)
	c := Interval{Start: day.Add(10*time.Hour + 10*time.Minute), Duration: 20}    // [10:10, 10:30)

	if a.Overlaps(b) {
		t.Fatalf("touching intervals must not overlap")
	}
	if b.Overlaps(a) {
		t.Fatalf("touching intervals must not overlap (reversed)")
	}
	if !a.Overlaps(c) {
		t.Fatalf("expected [10:00,10:20) to overlap [10:10,10:30)")
	}
	if !c.Overlaps(b) {
		t.Fatalf("expected [10:10,10:30) to overlap [10:20,10:40)")
	}
}

func TestContains_EndExceedsWindow(t *testing.T) {
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	window := OperatingWindow{
		Weekday: time.Monday,
		Start:   day.Add(9 * time.Hour),
		End:     day.Add(17 * time.Hour),
	}

	// [16:50, 17:10) starts inside but runs past the window end.
	late := Interval{Start: day.Add(16*time.Hour + 50*time.Minute), Duration: 20}
	if window.Contains(late) {
		t.Fatalf("slot ending past the window must not be contained")
	}

	// [16:40, 17:00) ends exactly at the window end; inclusive containment.
	flush := Interval{Start: day.Add(16*time.Hour + 40*time.Minute), Duration: 20}
	if !window.Contains(flush) {
		t.Fatalf("slot ending exactly at window end must be contained")
	}

	// Starting exactly at the window start is also inclusive.
	first := Interval{Start: day.Add(9 * time.Hour), Duration: 20}
	if !window.Contains(first) {
		t.Fatalf("slot starting at window start must be contained")
	}

	early := Interval{Start: day.Add(8*time.Hour + 50*time.Minute), Duration: 20}
	if window.Contains(early) {
		t.Fatalf("slot starting before the window must not be contained")
	}
}
