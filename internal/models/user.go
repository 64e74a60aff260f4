package models

// UserRole represents the available roles for the RBAC system.
type UserRole string

const (
	RoleAdmin     UserRole = "ADMIN"
	RoleNGO       UserRole = "NGO"
	RoleVolunteer UserRole = "VOLUNTEER"
	RoleDonor     UserRole = "DONOR"
)

// ParseRole returns the role matching raw, if it is a known one.
func ParseRole(raw string) (UserRole, bool) {
	switch r := UserRole(raw); r {
	case RoleAdmin, RoleNGO, RoleVolunteer, RoleDonor:
		return r, true
	default:
		return "", false
	}
}
