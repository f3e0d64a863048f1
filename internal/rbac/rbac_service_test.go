package rbac

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/domain"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/rbac/infra"
)

type failingSource struct{}

func (failingSource) Permissions() ([]PermissionRow, error)   { return nil, errors.New("boom") }
func (failingSource) Inheritance() ([]InheritanceRow, error) { return nil, errors.New("boom") }

func newTestService(t *testing.T) Service {
	e, err := infra.NewEnforcer(ModelText)
	require.NoError(t, err)

	svc := NewService(NewStaticPolicy(), e, nil)
	require.NoError(t, svc.LoadPolicy())
	return svc
}

func TestRBACService_Enforce(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		role     domain.Role
		resource string
		action   string
		allowed  bool
	}{
		{"hr reads all attendance", domain.RoleHR, ResourceAttendance, ActionReadAll, true},
		{"admin inherits hr", domain.RoleAdmin, ResourceAttendance, ActionReadAll, true},
		{"admin reads reports", domain.RoleAdmin, ResourceReport, ActionRead, true},
		{"employee cannot read all", domain.RoleEmployee, ResourceAttendance, ActionReadAll, false},
		{"employee cannot act for others", domain.RoleEmployee, ResourceAttendance, ActionActForOther, false},
		{"hr cannot manage settings", domain.RoleHR, ResourceSettings, ActionManage, false},
		{"admin manages settings", domain.RoleAdmin, ResourceSettings, ActionManage, true},
		{"hr cannot create users", domain.RoleHR, ResourceUser, ActionCreate, false},
		{"admin clocks in for others", domain.RoleAdmin, ResourceTimeEntry, ActionActForOther, true},
		{"hr does not clock in for others", domain.RoleHR, ResourceTimeEntry, ActionActForOther, false},
		{"missing role", "", ResourceReport, ActionRead, false},
		{"unknown role", domain.Role("owner"), ResourceReport, ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := svc.Enforce(EnforceRequest{Role: tt.role, Resource: tt.resource, Action: tt.action})
			assert.NoError(t, err)
			assert.Equal(t, tt.allowed, ok)
		})
	}
}

func TestRBACService_LoadPolicyError(t *testing.T) {
	e, err := infra.NewEnforcer(ModelText)
	require.NoError(t, err)

	svc := NewService(failingSource{}, e, nil)
	assert.Error(t, svc.LoadPolicy())

	ok, err := svc.Enforce(EnforceRequest{Role: domain.RoleAdmin, Resource: ResourceReport, Action: ActionRead})
	assert.NoError(t, err)
	assert.False(t, ok)
}
