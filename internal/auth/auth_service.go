package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	autherrors "github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/auth/errors"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/domain"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/employee"
	employeeerrors "github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/employee/errors"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/session"
	"github.com/yasameenmsa/employee-time-tracking-auth-sub001/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SessionIssuer signs session tokens.
type SessionIssuer interface {
	Issue(id session.Identity, role domain.Role, ttl time.Duration) (string, time.Time, error)
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, username, password string) (LoginResult, error)
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	GetMe(ctx context.Context, userID string) (AuthResponse, error)
	ResolvePrincipal(ctx context.Context, userID string) (domain.Principal, error)
}

type service struct {
	repo       Repository
	employees  employee.Repository
	sessions   SessionIssuer
	bcryptCost int
	logger     *zap.Logger
}

func NewService(repo Repository, employees employee.Repository, sessions SessionIssuer, bcryptCost int, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &service{
		repo:       repo,
		employees:  employees,
		sessions:   sessions,
		bcryptCost: bcryptCost,
		logger:     l,
	}
}

func (s *service) Login(ctx context.Context, username, password string) (LoginResult, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, autherrors.ErrUserNotFound) {
			return LoginResult{}, autherrors.ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if !user.IsActive {
		return LoginResult{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return LoginResult{}, autherrors.ErrInvalidCredentials
	}

	// unknown roles are issued without a role claim
	role, _ := domain.ParseRole(user.Role)

	token, expiresAt, err := s.sessions.Issue(session.Identity{
		UserID:   user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
	}, role, 0)
	if err != nil {
		log.Error("failed to issue session", zap.String("user_id", user.ID.String()), zap.Error(err))
		return LoginResult{}, autherrors.ErrTokenGenerationFailed
	}

	log.Info("user logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("role", role.String()),
	)

	return LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      toAuthResponse(user),
	}, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	role, ok := domain.ParseRole(req.Role)
	if !ok {
		return AuthResponse{}, autherrors.ErrInvalidRole
	}

	var employeeID *uuid.UUID
	if raw := strings.TrimSpace(req.EmployeeID); raw != "" {
		eID, err := uuid.Parse(raw)
		if err != nil {
			return AuthResponse{}, employeeerrors.ErrInvalidEmployeeID
		}
		if _, err := s.employees.FindByID(ctx, eID); err != nil {
			return AuthResponse{}, err
		}
		employeeID = &eID
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return AuthResponse{}, err
	}

	user := &User{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Username:   strings.TrimSpace(req.Username),
		Email:      strings.TrimSpace(req.Email),
		Password:   string(hashed),
		Role:       role.String(),
		IsActive:   true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return AuthResponse{}, err
	}

	log.Info("user registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role),
		zap.String("created_by", contextutil.GetUserID(ctx)),
	)

	return toAuthResponse(user), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (AuthResponse, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return AuthResponse{}, err
	}
	return toAuthResponse(user), nil
}

// ResolvePrincipal reloads the user so role changes and deactivation take
// effect before the token expires.
func (s *service) ResolvePrincipal(ctx context.Context, userID string) (domain.Principal, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		if errors.Is(err, autherrors.ErrUserNotFound) || errors.Is(err, autherrors.ErrInvalidUserID) {
			return domain.Principal{}, autherrors.ErrSessionRevoked
		}
		return domain.Principal{}, err
	}
	if !user.IsActive {
		return domain.Principal{}, autherrors.ErrSessionRevoked
	}

	role, ok := domain.ParseRole(user.Role)
	return domain.Principal{
		UserID:     user.ID.String(),
		Username:   user.Username,
		EmployeeID: user.EmployeeIDString(),
		Role:       role,
		HasRole:    ok,
	}, nil
}

func (s *service) loadUser(ctx context.Context, userID string) (*User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}
	return s.repo.GetByID(ctx, id)
}
