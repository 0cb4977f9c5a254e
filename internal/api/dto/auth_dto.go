package dto

import (
	"time"

	"github.com/spec-kit/staff-task-portal/internal/domain"
)

// LoginRequest payload.
type LoginRequest struct {
	EmpID    string `json:"emp_id"`
	Password string `json:"password"`
}

// AuthResponse carries the issued session token.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionResponse is the claim set as returned to the client.
type SessionResponse struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	EmpID      string           `json:"emp_id"`
	Email      string           `json:"email"`
	Role       domain.StaffRole `json:"role"`
	Department string           `json:"department"`
}

// SessionFromClaims maps claims to the response shape.
func SessionFromClaims(claims domain.SessionClaims) SessionResponse {
	return SessionResponse{
		ID:         claims.StaffID,
		Name:       claims.Name,
		EmpID:      claims.EmpID,
		Email:      claims.Email,
		Role:       claims.Role,
		Department: claims.DepartmentID,
	}
}
