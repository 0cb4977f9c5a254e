package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/staff-task-portal/internal/domain"
	apperrors "github.com/spec-kit/staff-task-portal/pkg/util"
)

func TestProfileResolvesDepartmentName(t *testing.T) {
	lastLogin := time.Date(2026, 8, 27, 18, 30, 0, 0, time.UTC)
	phone := "9876543210"
	staff := &domain.StaffIdentity{
		ID:           "staff-1",
		Name:         "Asha Verma",
		EmpID:        "ZES-001",
		Email:        "asha.verma@example.com",
		Phone:        &phone,
		StaffType:    []domain.StaffType{domain.StaffTypeTeaching},
		DepartmentID: "dept-cse",
		Role:         domain.RoleStaff,
		Active:       true,
		LastLogin:    &lastLogin,
	}
	depts := &fakeDepartmentRepo{byID: map[string]*domain.Department{
		"dept-cse": {ID: "dept-cse", Name: "Computer Science", Code: "CSE", IsActive: true},
	}}
	svc := NewStaffService(newFakeStaffRepo(staff), depts, nil)

	profile, err := svc.Profile(context.Background(), "staff-1")
	require.NoError(t, err)
	assert.Equal(t, "ZES-001", profile.EmpID)
	assert.Equal(t, "Computer Science", profile.Department.Display())
	assert.Equal(t, &phone, profile.Phone)
	assert.True(t, profile.Active)
	require.NotNil(t, profile.LastLogin)
	assert.Equal(t, lastLogin, *profile.LastLogin)
}

func TestProfileDegradesToRawDepartmentID(t *testing.T) {
	staff := &domain.StaffIdentity{
		ID:           "staff-1",
		EmpID:        "ZES-001",
		DepartmentID: "dept-unknown",
		Role:         domain.RoleStaff,
		Active:       true,
	}
	svc := NewStaffService(newFakeStaffRepo(staff), &fakeDepartmentRepo{byID: map[string]*domain.Department{}}, nil)

	profile, err := svc.Profile(context.Background(), "staff-1")
	require.NoError(t, err)
	assert.Equal(t, "dept-unknown", profile.Department.Display())
}

func TestProfileNotFound(t *testing.T) {
	svc := NewStaffService(newFakeStaffRepo(), &fakeDepartmentRepo{byID: map[string]*domain.Department{}}, nil)

	_, err := svc.Profile(context.Background(), "ghost")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
}
