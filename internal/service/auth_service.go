package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/staff-task-portal/internal/auth"
	"github.com/spec-kit/staff-task-portal/internal/config"
	"github.com/spec-kit/staff-task-portal/internal/domain"
	"github.com/spec-kit/staff-task-portal/internal/events"
	"github.com/spec-kit/staff-task-portal/internal/repository"
	apperrors "github.com/spec-kit/staff-task-portal/pkg/util"
)

// AuthService validates staff credentials and enforces the lockout policy.
// The failed counter is monotonic until success; the lock window is fixed,
// not exponential. Both are deliberate simplifications of the policy, not
// gaps to close.
type AuthService struct {
	staff      repository.StaffRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	maxFailed  int
	lockWindow time.Duration
	now        func() time.Time
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	StaffRepo  repository.StaffRepository
	Dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	maxFailed := cfg.Auth.MaxFailedAttempts
	if maxFailed <= 0 {
		maxFailed = 5
	}
	return &AuthService{
		staff:      deps.StaffRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		dispatcher: deps.Dispatcher,
		maxFailed:  maxFailed,
		lockWindow: cfg.Auth.LockoutWindow(),
		now:        time.Now,
	}
}

// Authenticate validates an employee id / password pair and returns the
// session claims on success. Every attempt that reaches the identity
// persists its counter/lock changes, even on failure. Unknown employee ids
// and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Authenticate(ctx context.Context, empID, password string) (domain.SessionClaims, error) {
	empID = strings.TrimSpace(empID)
	if empID == "" || password == "" {
		return domain.SessionClaims{}, apperrors.NewValidationError("employee id and password are required", nil)
	}

	now := s.now()

	staff, err := s.staff.GetByEmpID(ctx, empID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			auth.BurnComparison(password)
			s.publishEvent(ctx, events.Event{
				Type:    events.EventLoginFailed,
				Payload: events.LoginPayload{EmpID: empID},
			})
			return domain.SessionClaims{}, apperrors.NewInvalidCredentials()
		}
		return domain.SessionClaims{}, err
	}

	if !staff.Active {
		return domain.SessionClaims{}, apperrors.NewAccountDisabled()
	}
	if staff.Locked(now) {
		return domain.SessionClaims{}, apperrors.NewAccountLocked(*staff.LockUntil)
	}

	if err := auth.ComparePassword(staff.PasswordHash, password); err != nil {
		staff.FailedLoginAttempts++
		locked := staff.FailedLoginAttempts >= s.maxFailed
		if locked {
			until := now.Add(s.lockWindow)
			staff.LockUntil = &until
		}
		if err := s.staff.UpdateLoginState(ctx, staff); err != nil {
			return domain.SessionClaims{}, err
		}
		s.publishEvent(ctx, events.Event{
			Type:    events.EventLoginFailed,
			StaffID: staff.ID,
			Payload: events.LoginPayload{EmpID: staff.EmpID, FailedAttempts: staff.FailedLoginAttempts},
		})
		if locked {
			s.publishEvent(ctx, events.Event{
				Type:    events.EventAccountLocked,
				StaffID: staff.ID,
				Payload: events.AccountLockedPayload{EmpID: staff.EmpID, LockedUntil: *staff.LockUntil},
			})
		}
		return domain.SessionClaims{}, apperrors.NewInvalidCredentials()
	}

	staff.FailedLoginAttempts = 0
	staff.LockUntil = nil
	staff.LastLogin = &now
	if err := s.staff.UpdateLoginState(ctx, staff); err != nil {
		return domain.SessionClaims{}, err
	}
	s.publishEvent(ctx, events.Event{
		Type:    events.EventLoginSucceeded,
		StaffID: staff.ID,
		Payload: events.LoginPayload{EmpID: staff.EmpID},
	})

	return domain.ClaimsFromStaff(staff), nil
}

// Logout is a no-op server side; the session token is stateless and is
// discarded by the client.
func (s *AuthService) Logout(_ context.Context, _ string) error {
	return nil
}

// TokenManager exposes the underlying token manager for handlers and
// middleware.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
