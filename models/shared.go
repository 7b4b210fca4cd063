package models

// Role is the caller's access level, supplied by the identity provider.
type Role string

const (
	RoleGuest     Role = "guest"
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// AtLeast reports whether r grants the privileges of min.
// Ordering: guest < user < moderator < admin.
func (r Role) AtLeast(min Role) bool {
	return roleRank(r) >= roleRank(min)
}

func roleRank(r Role) int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleModerator:
		return 2
	case RoleUser:
		return 1
	default:
		return 0
	}
}

// ParseRole maps an identity-provider claim to a Role, defaulting to guest.
func ParseRole(claim string) Role {
	switch Role(claim) {
	case RoleUser, RoleModerator, RoleAdmin:
		return Role(claim)
	default:
		return RoleGuest
	}
}
