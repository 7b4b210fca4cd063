package models

import "time"

// Event is a booked session. YearID/MonthID/DayID are denormalized from
// Datetime ("2006", "2006-01", "2006-01-02") so calendar views and the
// availability engine can query by day without range scans.
type Event struct {
	UID       string    `bson:"uid" json:"uid"` // creator uid
	ID        string    `bson:"id" json:"id"`
	YearID    string    `bson:"yid" json:"yid"`
	MonthID   string    `bson:"mid" json:"mid"`
	DayID     string    `bson:"did" json:"did"`
	Access    Role      `bson:"access" json:"access"`
	Name      string    `bson:"name" json:"name"`
	Creator   string    `bson:"creator,omitempty" json:"creator,omitempty"`
	Host      string    `bson:"host,omitempty" json:"host,omitempty"`
	Location  string    `bson:"location,omitempty" json:"location,omitempty"`
	Brands    []string  `bson:"brands,omitempty" json:"brands,omitempty"`
	Team      string    `bson:"team" json:"team"`
	Region    string    `bson:"region" json:"region"`
	Platform  string    `bson:"platform,omitempty" json:"platform,omitempty"`
	About     string    `bson:"about,omitempty" json:"about,omitempty"`
	Datetime  time.Time `bson:"datetime" json:"datetime"`
	Duration  int       `bson:"duration,omitempty" json:"duration,omitempty"` // minutes; 0 means unset
	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// EventClient is the role-filtered external view of an Event.
type EventClient struct {
	UID         string   `json:"uid,omitempty"`
	ID          string   `json:"id"`
	YearID      string   `json:"yid,omitempty"`
	MonthID     string   `json:"mid,omitempty"`
	DayID       string   `json:"did,omitempty"`
	Access      Role     `json:"access,omitempty"`
	Name        string   `json:"name,omitempty"`
	Creator     string   `json:"creator,omitempty"`
	Host        string   `json:"host,omitempty"`
	Location    string   `json:"location,omitempty"`
	Brands      []string `json:"brands,omitempty"`
	Team        string   `json:"team,omitempty"`
	Region      string   `json:"region,omitempty"`
	Platform    string   `json:"platform,omitempty"`
	About       string   `json:"about,omitempty"`
	Datetime    string   `json:"datetime,omitempty"`
	Duration    int      `json:"duration,omitempty"`
	DatetimeEnd string   `json:"datetimeEnd,omitempty"`
}

// EventInput is the payload accepted by create/update. Datetime is RFC3339.
type EventInput struct {
	Name     string   `json:"name" binding:"required"`
	Host     string   `json:"host"`
	Location string   `json:"location"`
	Brands   []string `json:"brands"`
	Team     string   `json:"team" binding:"required"`
	Region   string   `json:"region" binding:"required"`
	Platform string   `json:"platform"`
	About    string   `json:"about"`
	Datetime string   `json:"datetime" binding:"required"`
	Duration int      `json:"duration" binding:"required"`
	Access   Role     `json:"access"`
}
