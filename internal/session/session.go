package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/domain"
)

// ErrInvalidSession is the only failure Verify reports. Signature, structure
// and expiry problems are deliberately indistinguishable.
var ErrInvalidSession = errors.New("invalid session")

var errMissingSecret = errors.New("session signing secret is required")

// Identity is what a token is issued for.
type Identity struct {
	UserID   string
	Username string
	Email    string
}

// Payload is the decoded, verified token content.
type Payload struct {
	UserID    string
	Username  string
	Email     string
	Role      domain.Role
	HasRole   bool
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Manager issues and verifies HS256 session tokens. It holds no state besides
// the key, so any replica can verify any token.
type Manager struct {
	secret     []byte
	ttl        time.Duration
	cookieName string
	now        func() time.Time
}

type Option func(*Manager)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func NewManager(secret string, ttl time.Duration, cookieName string, opts ...Option) (*Manager, error) {
	if secret == "" {
		return nil, errMissingSecret
	}
	if ttl <= 0 {
		return nil, errors.New("session ttl must be positive")
	}
	if cookieName == "" {
		cookieName = "auth_token"
	}
	m := &Manager{secret: []byte(secret), ttl: ttl, cookieName: cookieName, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func (m *Manager) TTL() time.Duration { return m.ttl }

func (m *Manager) CookieName() string { return m.cookieName }

// Issue signs a token for id. An empty role produces a legacy-style token
// without a role claim. A non-positive ttl falls back to the configured one.
func (m *Manager) Issue(id Identity, role domain.Role, ttl time.Duration) (string, time.Time, error) {
	if ttl <= 0 {
		ttl = m.ttl
	}
	issuedAt := m.now()
	expiresAt := issuedAt.Add(ttl)

	c := &claims{
		UserID:   id.UserID,
		Username: id.Username,
		Email:    id.Email,
		Role:     string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Verify checks signature and expiry and returns the payload.
func (m *Manager) Verify(token string) (Payload, error) {
	if token == "" {
		return Payload{}, ErrInvalidSession
	}

	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidSession
		}
		return m.secret, nil
	},
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !parsed.Valid {
		return Payload{}, ErrInvalidSession
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || c.UserID == "" || c.IssuedAt == nil || c.ExpiresAt == nil {
		return Payload{}, ErrInvalidSession
	}

	role, hasRole := domain.ParseRole(c.Role)
	return Payload{
		UserID:    c.UserID,
		Username:  c.Username,
		Email:     c.Email,
		Role:      role,
		HasRole:   hasRole,
		IssuedAt:  c.IssuedAt.Time,
		ExpiresAt: c.ExpiresAt.Time,
	}, nil
}

// ExtractFromCookieHeader finds the session cookie in a raw Cookie header.
func (m *Manager) ExtractFromCookieHeader(raw string) (string, bool) {
	return ExtractCookie(raw, m.cookieName)
}

// ExtractCookie returns the value of cookie name in a raw Cookie header.
// Absence is not an error.
func ExtractCookie(raw, name string) (string, bool) {
	if raw == "" || name == "" {
		return "", false
	}
	req := http.Request{Header: http.Header{"Cookie": []string{raw}}}
	c, err := req.Cookie(name)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}
