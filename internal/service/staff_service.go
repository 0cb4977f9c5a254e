package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/staff-task-portal/internal/domain"
	"github.com/spec-kit/staff-task-portal/internal/repository"
	apperrors "github.com/spec-kit/staff-task-portal/pkg/util"
)

// StaffService exposes the current caller's profile projection.
type StaffService struct {
	staff       repository.StaffRepository
	departments repository.DepartmentRepository
	logger      *zap.Logger
}

// StaffProfile is the profile view returned to the caller. Department is
// resolved to a display name where possible and degrades to the raw
// reference id.
type StaffProfile struct {
	ID         string
	Name       string
	EmpID      string
	Email      string
	Role       domain.StaffRole
	Department domain.DisplayRef
	Phone      *string
	StaffType  []domain.StaffType
	Active     bool
	LastLogin  *time.Time
}

// NewStaffService constructs the service.
func NewStaffService(staffRepo repository.StaffRepository, deptRepo repository.DepartmentRepository, logger *zap.Logger) *StaffService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StaffService{staff: staffRepo, departments: deptRepo, logger: logger}
}

// Profile loads the identity record for the authenticated caller. The
// record is re-read from the store, so the projection reflects current
// state even when the session claims have gone stale.
func (s *StaffService) Profile(ctx context.Context, staffID string) (*StaffProfile, error) {
	staff, err := s.staff.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("staff", nil)
		}
		return nil, err
	}

	department := domain.RawRef(staff.DepartmentID)
	if dept, err := s.departments.GetByID(ctx, staff.DepartmentID); err == nil {
		department = domain.ResolvedRef(dept.ID, dept.Name)
	} else {
		s.logger.Debug("department resolution failed",
			zap.String("department_id", staff.DepartmentID), zap.Error(err))
	}

	return &StaffProfile{
		ID:         staff.ID,
		Name:       staff.Name,
		EmpID:      staff.EmpID,
		Email:      staff.Email,
		Role:       staff.Role,
		Department: department,
		Phone:      staff.Phone,
		StaffType:  staff.StaffType,
		Active:     staff.Active,
		LastLogin:  staff.LastLogin,
	}, nil
}
