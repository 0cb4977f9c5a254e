package dto

import (
	"time"

	"github.com/spec-kit/staff-task-portal/internal/domain"
	"github.com/spec-kit/staff-task-portal/internal/service"
)

// ProfileResponse is the current caller's profile projection.
type ProfileResponse struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	EmpID          string             `json:"emp_id"`
	Email          string             `json:"email"`
	Role           domain.StaffRole   `json:"role"`
	DepartmentName string             `json:"department_name"`
	Phone          *string            `json:"phone"`
	StaffType      []domain.StaffType `json:"staff_type"`
	IsActive       bool               `json:"is_active"`
	LastLogin      *time.Time         `json:"last_login"`
}

// ProfileFromService maps the service projection to the response shape.
func ProfileFromService(profile *service.StaffProfile) ProfileResponse {
	return ProfileResponse{
		ID:             profile.ID,
		Name:           profile.Name,
		EmpID:          profile.EmpID,
		Email:          profile.Email,
		Role:           profile.Role,
		DepartmentName: profile.Department.Display(),
		Phone:          profile.Phone,
		StaffType:      profile.StaffType,
		IsActive:       profile.Active,
		LastLogin:      profile.LastLogin,
	}
}
