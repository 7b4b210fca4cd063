package models

// TimeslotClient is the externally exposed shape of an available slot.
// Time is RFC3339 in the server's local zone.
type TimeslotClient struct {
	DayID    string `json:"did"`
	Time     string `json:"time"`
	Duration int    `json:"duration"`
}

// TimeslotRequest is the body of POST /api/timeslots/:did.
type TimeslotRequest struct {
	Team     string `json:"team" binding:"required"`
	Region   string `json:"region" binding:"required"`
	Duration int    `json:"duration" binding:"required"`
}
