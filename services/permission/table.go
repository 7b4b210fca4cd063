// Package permission holds the data-driven field allow-lists consumed by the
// client-facing projections. Visibility decisions live in these tables, not
// in scattered conditionals.
package permission

import "slotify/models"

// Resource names a projectable document type.
type Resource string

const (
	ResourceEvent Resource = "event"
	ResourceUser  Resource = "user"
	ResourceTeam  Resource = "team"
)

// FieldSet is the set of field names a role may see.
type FieldSet map[string]bool

// readTables maps resource -> role -> additional fields granted at that
// role. Grants are cumulative: each role sees its own fields plus everything
// below it.
var readTables = map[Resource]map[models.Role][]string{
	ResourceEvent: {
		models.RoleGuest: {
			"id", "yid", "mid", "did", "access",
			"name", "team", "region", "platform", "brands",
			"datetime", "duration",
		},
		models.RoleUser:      {"host", "location", "about", "creator"},
		models.RoleModerator: {"uid"},
		models.RoleAdmin:     {},
	},
	ResourceUser: {
		models.RoleGuest:     {},
		models.RoleUser:      {"uid", "firstName", "lastName", "team", "region", "about"},
		models.RoleModerator: {"email", "optinComments"},
		models.RoleAdmin:     {"role"},
	},
	ResourceTeam: {
		models.RoleGuest:     {"id", "access", "name", "imageUrl", "brands", "platforms"},
		models.RoleUser:      {"duration", "times"},
		models.RoleModerator: {},
		models.RoleAdmin:     {},
	},
}

var roleOrder = []models.Role{
	models.RoleGuest,
	models.RoleUser,
	models.RoleModerator,
	models.RoleAdmin,
}

// ReadableFields returns the cumulative field set the role may read on the
// resource. Unknown resources yield an empty set.
func ReadableFields(role models.Role, resource Resource) FieldSet {
	table := readTables[resource]
	fields := FieldSet{}
	for _, r := range roleOrder {
		for _, f := range table[r] {
			fields[f] = true
		}
		if r == role {
			break
		}
	}
	return fields
}

// CanRead reports whether the role clears a document's access level.
func CanRead(role models.Role, access models.Role) bool {
	return role.AtLeast(access)
}
