package models

// User mirrors the identity provider's profile document. Authentication and
// role assignment happen upstream; this store only holds profile fields.
type User struct {
	UID           string `bson:"uid" json:"uid"`
	Role          Role   `bson:"role" json:"role"`
	FirstName     string `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName      string `bson:"lastName,omitempty" json:"lastName,omitempty"`
	Email         string `bson:"email,omitempty" json:"email,omitempty"`
	Team          string `bson:"team,omitempty" json:"team,omitempty"`
	Region        string `bson:"region,omitempty" json:"region,omitempty"`
	About         string `bson:"about,omitempty" json:"about,omitempty"`
	OptinComments bool   `bson:"optinComments" json:"optinComments"`
}

// UserClient is the role-filtered external view of a User.
type UserClient struct {
	UID           string `json:"uid"`
	Role          Role   `json:"role,omitempty"`
	FirstName     string `json:"firstName,omitempty"`
	LastName      string `json:"lastName,omitempty"`
	Email         string `json:"email,omitempty"`
	Team          string `json:"team,omitempty"`
	Region        string `json:"region,omitempty"`
	About         string `json:"about,omitempty"`
	OptinComments bool   `json:"optinComments,omitempty"`
}

// UserInput is the profile update payload.
type UserInput struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Team          string `json:"team"`
	Region        string `json:"region"`
	About         string `json:"about"`
	OptinComments bool   `json:"optinComments"`
}
