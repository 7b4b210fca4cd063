package models

// Region scopes events geographically; conflicts are only checked between
// events in the same region.
type Region struct {
	ID        string   `bson:"id" json:"id"`
	Name      string   `bson:"name" json:"name"`
	Platforms []string `bson:"platforms,omitempty" json:"platforms,omitempty"`
}

// Platform is a delivery platform a region or team operates on.
type Platform struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// Brand is an organization a team runs sessions for.
type Brand struct {
	ID       string   `bson:"id" json:"id"`
	Name     string   `bson:"name" json:"name"`
	ImageURL string   `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Teams    []string `bson:"teams,omitempty" json:"teams,omitempty"`
	Access   Role     `bson:"access" json:"access"`
}
