package rbac

import "github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/domain"

const (
	ResourceAttendance = "attendance"
	ResourceTimeEntry  = "time_entry"
	ResourceReport     = "report"
	ResourceSettings   = "settings"
	ResourceUser       = "user"

	ActionReadAll     = "read_all"
	ActionActForOther = "act_for_other"
	ActionRead        = "read"
	ActionManage      = "manage"
	ActionCreate      = "create"
)

// ModelText is the casbin model: plain RBAC without domains.
const ModelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// PolicySource supplies the rows the enforcer is loaded with.
type PolicySource interface {
	Permissions() ([]PermissionRow, error)
	Inheritance() ([]InheritanceRow, error)
}

type staticPolicy struct{}

// NewStaticPolicy returns the built-in role table. Employees hold no extra
// permissions; they may only act on their own records.
func NewStaticPolicy() PolicySource {
	return staticPolicy{}
}

func (staticPolicy) Permissions() ([]PermissionRow, error) {
	return []PermissionRow{
		{Role: domain.RoleHR, Resource: ResourceAttendance, Action: ActionReadAll},
		{Role: domain.RoleHR, Resource: ResourceAttendance, Action: ActionActForOther},
		{Role: domain.RoleHR, Resource: ResourceTimeEntry, Action: ActionReadAll},
		{Role: domain.RoleHR, Resource: ResourceReport, Action: ActionRead},

		{Role: domain.RoleAdmin, Resource: ResourceTimeEntry, Action: ActionActForOther},
		{Role: domain.RoleAdmin, Resource: ResourceSettings, Action: ActionManage},
		{Role: domain.RoleAdmin, Resource: ResourceUser, Action: ActionCreate},
	}, nil
}

func (staticPolicy) Inheritance() ([]InheritanceRow, error) {
	return []InheritanceRow{
		{Role: domain.RoleAdmin, Parent: domain.RoleHR},
	}, nil
}
