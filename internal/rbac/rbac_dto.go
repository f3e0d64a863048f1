package rbac

import "github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/domain"

type EnforceRequest struct {
	Role     domain.Role `json:"role"`
	Resource string      `json:"resource"`
	Action   string      `json:"action"`
}

// PermissionRow grants action on resource to a role.
type PermissionRow struct {
	Role     domain.Role
	Resource string
	Action   string
}

// InheritanceRow gives Role every permission of Parent.
type InheritanceRow struct {
	Role   domain.Role
	Parent domain.Role
}
