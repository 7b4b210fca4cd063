package models

// TeamTime is one weekday's operating hours, e.g. {ID: "monday", TimeStart: "09:00", TimeEnd: "17:00"}.
// A weekday without an entry has no availability.
type TeamTime struct {
	ID        string `bson:"id" json:"id"`
	TimeStart string `bson:"timeStart" json:"timeStart"`
	TimeEnd   string `bson:"timeEnd" json:"timeEnd"`
}

// TeamDuration is a selectable session length offered by a team.
type TeamDuration struct {
	Label string `bson:"label" json:"label"`
	Value int    `bson:"value" json:"value"` // minutes
}

// Team groups events and owns the operating-hours table used by the
// availability engine.
type Team struct {
	ID        string         `bson:"id" json:"id"`
	Access    Role           `bson:"access" json:"access"`
	Name      string         `bson:"name" json:"name"`
	ImageURL  string         `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Brands    []string       `bson:"brands,omitempty" json:"brands,omitempty"`
	Platforms []string       `bson:"platforms,omitempty" json:"platforms,omitempty"`
	Durations []TeamDuration `bson:"duration,omitempty" json:"duration,omitempty"`
	Times     []TeamTime     `bson:"times,omitempty" json:"times,omitempty"`
}

// TeamClient is the role-filtered external view of a Team.
type TeamClient struct {
	ID        string         `json:"id"`
	Access    Role           `json:"access,omitempty"`
	Name      string         `json:"name,omitempty"`
	ImageURL  string         `json:"imageUrl,omitempty"`
	Brands    []string       `json:"brands,omitempty"`
	Platforms []string       `json:"platforms,omitempty"`
	Durations []TeamDuration `json:"duration,omitempty"`
	Times     []TeamTime     `json:"times,omitempty"`
}
