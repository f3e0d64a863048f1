package domain

import "strings"

// Role is the closed set of roles a user can hold.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)

// ParseRole normalises s and reports whether it names a known role. Legacy
// tokens without a role, or with an unknown one, yield ok=false and must be
// treated as having no elevated access.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case RoleAdmin, RoleHR, RoleEmployee:
		return r, true
	default:
		return "", false
	}
}

func (r Role) String() string { return string(r) }

// Privileged reports whether r may act on behalf of other employees.
func (r Role) Privileged() bool {
	switch r {
	case RoleAdmin, RoleHR:
		return true
	case RoleEmployee:
		return false
	default:
		return false
	}
}

// LandingPath is where a user with role r is sent when a page is off limits.
func LandingPath(r Role, ok bool) string {
	if !ok {
		return "/dashboard"
	}
	switch r {
	case RoleAdmin:
		return "/admin"
	case RoleHR:
		return "/hr"
	case RoleEmployee:
		return "/employee"
	default:
		return "/dashboard"
	}
}
