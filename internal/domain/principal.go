package domain

// Principal is the caller as freshly loaded from the credential store. It is
// what handlers authorize against; the session token only identifies the user.
type Principal struct {
	UserID     string
	Username   string
	EmployeeID string
	Role       Role
	HasRole    bool
}

// IsSelf reports whether employeeID is the principal's own record.
func (p Principal) IsSelf(employeeID string) bool {
	return p.EmployeeID != "" && p.EmployeeID == employeeID
}
