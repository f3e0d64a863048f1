package access

import (
	"sort"
	"strings"

	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/domain"
)

// Rule restricts a route prefix to a set of roles.
type Rule struct {
	Prefix string
	Roles  []domain.Role
}

// Policy is the static route table. It is built once and never mutated.
type Policy struct {
	loginPath string
	apiPrefix string
	public    []string
	protected []Rule
}

func NewPolicy(loginPath, apiPrefix string, public []string, protected []Rule) *Policy {
	rules := make([]Rule, len(protected))
	copy(rules, protected)
	// longest prefix first so /api/admin/settings beats /api/admin
	sort.SliceStable(rules, func(i, j int) bool {
		return len(rules[i].Prefix) > len(rules[j].Prefix)
	})

	pub := make([]string, len(public))
	copy(pub, public)

	return &Policy{
		loginPath: loginPath,
		apiPrefix: apiPrefix,
		public:    pub,
		protected: rules,
	}
}

// DefaultPolicy is the route table of the service.
func DefaultPolicy() *Policy {
	return NewPolicy(
		"/login",
		"/api",
		[]string{
			"/login",
			"/health",
			"/api/auth/login",
			"/api/auth/logout",
		},
		[]Rule{
			{Prefix: "/admin", Roles: []domain.Role{domain.RoleAdmin}},
			{Prefix: "/hr", Roles: []domain.Role{domain.RoleHR, domain.RoleAdmin}},
			{Prefix: "/employee", Roles: []domain.Role{domain.RoleEmployee}},
			{Prefix: "/api/admin", Roles: []domain.Role{domain.RoleAdmin, domain.RoleHR}},
			{Prefix: "/api/admin/settings", Roles: []domain.Role{domain.RoleAdmin}},
			{Prefix: "/api/auth/register", Roles: []domain.Role{domain.RoleAdmin}},
		},
	)
}

func (p *Policy) LoginPath() string { return p.loginPath }

// IsPublic reports whether path needs no session.
func (p *Policy) IsPublic(path string) bool {
	for _, prefix := range p.public {
		if matchPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// IsAPI reports whether path is served as JSON rather than a page.
func (p *Policy) IsAPI(path string) bool {
	return matchPrefix(path, p.apiPrefix)
}

// RequiredRoles returns the roles allowed on path. ok=false means any
// authenticated session may pass.
func (p *Policy) RequiredRoles(path string) ([]domain.Role, bool) {
	for _, rule := range p.protected {
		if matchPrefix(path, rule.Prefix) {
			return rule.Roles, true
		}
	}
	return nil, false
}

func matchPrefix(path, prefix string) bool {
	if prefix == "" {
		return false
	}
	return path == prefix || strings.HasPrefix(path, strings.TrimSuffix(prefix, "/")+"/")
}
