package availability

import (
	"testing"
	"time"
)

func TestCandidates_GranularityDeterminism(t *testing.T) {
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	var slots []CandidateSlot
	for slot := range Candidates(day, "2026-09-07", 20, 10) {
		slots = append(slots, slot)
	}

	if len(slots) != 144 {
		t.Fatalf("expected 144 candidates, got %d", len(slots))
	}
	if !slots[0].Start.Equal(day) {
		t.Fatalf("expected first candidate at 00:00, got %s", slots[0].Start.Format(time.RFC3339))
	}
	for i, slot := range slots {
		want := day.Add(time.Duration(i) * 10 * time.Minute)
		if !slot.Start.Equal(want) {
			t.Fatalf("candidate %d: expected start %s, got %s", i, want, slot.Start)
		}
		if slot.Duration != 20 {
			t.Fatalf("candidate %d: expected duration 20, got %d", i, slot.Duration)
		}
		if slot.DayID != "2026-09-07" {
			t.Fatalf("candidate %d: expected dayID 2026-09-07, got %q", i, slot.DayID)
		}
	}
}

func TestCandidates_Restartable(t *testing.T) {
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	seq := Candidates(day, "2026-09-07", 30, 10)

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	if first, second := count(), count(); first != second || first != 144 {
		t.Fatalf("sequence not restartable: first pass %d, second pass %d", first, second)
	}
}

func TestCandidates_InvalidInputs(t *testing.T) {
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	for slot := range Candidates(day, "2026-09-07", 0, 10) {
		t.Fatalf("expected no candidates for zero duration, got %v", slot)
	}
	for slot := range Candidates(day, "2026-09-07", 20, 0) {
		t.Fatalf("expected no candidates for zero granularity, got %v", slot)
	}
}
