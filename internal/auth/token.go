package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/staff-task-portal/internal/domain"
)

// ErrNoSession is returned by Resolve for every token failure mode:
// missing, malformed, tampered or expired tokens all collapse to the same
// outcome so validation internals do not leak.
var ErrNoSession = errors.New("no valid session")

// TokenManager issues and resolves stateless session tokens. It holds no
// mutable state beyond the fixed signing secret, so concurrent use needs
// no locking.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, ttlMinutes int) *TokenManager {
	if ttlMinutes <= 0 {
		ttlMinutes = 60
	}
	return &TokenManager{secret: []byte(secret), ttl: time.Duration(ttlMinutes) * time.Minute}
}

// sessionClaims is the JWT payload. Every SessionClaims field is embedded
// directly, not just the id; staleness until re-login is accepted.
type sessionClaims struct {
	StaffID      string           `json:"sub"`
	Name         string           `json:"name"`
	EmpID        string           `json:"emp_id"`
	Email        string           `json:"email"`
	Role         domain.StaffRole `json:"role"`
	DepartmentID string           `json:"department"`
	jwt.RegisteredClaims
}

// Issue signs a session token carrying the full claim set.
func (tm *TokenManager) Issue(claims domain.SessionClaims) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	payload := &sessionClaims{
		StaffID:      claims.StaffID,
		Name:         claims.Name,
		EmpID:        claims.EmpID,
		Email:        claims.Email,
		Role:         claims.Role,
		DepartmentID: claims.DepartmentID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.StaffID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Resolve verifies signature and expiry and returns the embedded claims.
// Any failure yields ErrNoSession.
func (tm *TokenManager) Resolve(tokenStr string) (domain.SessionClaims, error) {
	if tokenStr == "" {
		return domain.SessionClaims{}, ErrNoSession
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return domain.SessionClaims{}, ErrNoSession
	}

	payload, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return domain.SessionClaims{}, ErrNoSession
	}
	return domain.SessionClaims{
		StaffID:      payload.StaffID,
		Name:         payload.Name,
		EmpID:        payload.EmpID,
		Email:        payload.Email,
		Role:         payload.Role,
		DepartmentID: payload.DepartmentID,
	}, nil
}
