package access

import (
	"net/url"

	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/domain"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/session"
)

type Decision int

const (
	PassThrough Decision = iota
	RedirectLogin
	RedirectRoleHome
	Unauthenticated
	Forbidden
	Allow
)

func (d Decision) String() string {
	switch d {
	case PassThrough:
		return "pass_through"
	case RedirectLogin:
		return "redirect_login"
	case RedirectRoleHome:
		return "redirect_role_home"
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	case Allow:
		return "allow"
	default:
		return "unknown"
	}
}

// Verifier is the part of the session manager the gate needs.
type Verifier interface {
	Verify(token string) (session.Payload, error)
}

// Result is the gate outcome for one request.
type Result struct {
	Decision    Decision
	Location    string
	ClearCookie bool
	Session     session.Payload
}

type Gate struct {
	policy   *Policy
	verifier Verifier
}

func NewGate(policy *Policy, verifier Verifier) *Gate {
	return &Gate{policy: policy, verifier: verifier}
}

func (g *Gate) Policy() *Policy { return g.policy }

// Decide evaluates path for a request carrying token ("" when none). Role
// redirects are a convenience for pages; handlers re-check roles on their own.
func (g *Gate) Decide(path, token string) Result {
	if g.policy.IsPublic(path) {
		return Result{Decision: PassThrough}
	}

	api := g.policy.IsAPI(path)

	if token == "" {
		if api {
			return Result{Decision: Unauthenticated}
		}
		return Result{Decision: RedirectLogin, Location: g.loginURL(path)}
	}

	payload, err := g.verifier.Verify(token)
	if err != nil {
		if api {
			return Result{Decision: Unauthenticated, ClearCookie: true}
		}
		return Result{Decision: RedirectLogin, Location: g.loginURL(path), ClearCookie: true}
	}

	if roles, restricted := g.policy.RequiredRoles(path); restricted && !roleAllowed(payload, roles) {
		if api {
			return Result{Decision: Forbidden, Session: payload}
		}
		return Result{
			Decision: RedirectRoleHome,
			Location: domain.LandingPath(payload.Role, payload.HasRole),
			Session:  payload,
		}
	}

	return Result{Decision: Allow, Session: payload}
}

func (g *Gate) loginURL(returnTo string) string {
	q := url.Values{}
	q.Set("redirect", returnTo)
	return g.policy.LoginPath() + "?" + q.Encode()
}

func roleAllowed(p session.Payload, allowed []domain.Role) bool {
	if !p.HasRole {
		return false
	}
	for _, r := range allowed {
		if r == p.Role {
			return true
		}
	}
	return false
}
