package models

import "time"

// Activity is a single comment on an event. One document per (event, author);
// submitting again edits the note in place and stamps DatetimeEdited.
type Activity struct {
	UID            string    `bson:"uid" json:"uid"` // author uid
	ID             string    `bson:"id" json:"id"`   // matches the event id
	AID            string    `bson:"aid" json:"aid"` // activity document id
	Note           string    `bson:"note" json:"note"`
	Author         string    `bson:"author,omitempty" json:"author,omitempty"`
	Datetime       time.Time `bson:"datetime" json:"datetime"`
	DatetimeEdited time.Time `bson:"datetimeEdited,omitempty" json:"datetimeEdited,omitempty"`
}

// ActivityClient is the external view of an Activity.
type ActivityClient struct {
	UID            string `json:"uid,omitempty"`
	ID             string `json:"id"`
	AID            string `json:"aid"`
	Note           string `json:"note"`
	Author         string `json:"author,omitempty"`
	Datetime       string `json:"datetime,omitempty"`
	DatetimeEdited string `json:"datetimeEdited,omitempty"`
}

// ActivityInput is the submit payload.
type ActivityInput struct {
	Note string `json:"note" binding:"required"`
}
