package availability

import (
	"time"

	"slotify/models"
)

// Project maps accepted candidates to their external shape. Any slot whose
// mapping fails the defensive re-check is dropped silently; the caller gets
// a best-effort list, never a partial error.
func Project(slots []CandidateSlot) []models.TimeslotClient {
	out := make([]models.TimeslotClient, 0, len(slots))
	for _, slot := range slots {
		view := models.TimeslotClient{
			DayID:    slot.DayID,
			Time:     slot.Start.Format(time.RFC3339),
			Duration: slot.Duration,
		}
		if view.DayID == "" || view.Time == "" || view.Duration <= 0 {
			continue
		}
		out = append(out, view)
	}
	return out
}
