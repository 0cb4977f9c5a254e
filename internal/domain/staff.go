package domain

import "time"

// StaffRole is fixed for the staff entity class; the assigning department
// head is a separate actor class carrying its own role tag.
type StaffRole string

const (
	RoleStaff StaffRole = "STAFF"
	RoleHod   StaffRole = "HOD"
)

// StaffType distinguishes teaching from non-teaching staff.
type StaffType string

const (
	StaffTypeTeaching    StaffType = "TEACHING"
	StaffTypeNonTeaching StaffType = "NON-TEACHING"
)

// StaffIdentity is the durable credential/profile record for one employee.
// EmpID and Email are globally unique. The failed-login counter and lock
// window are mutated on every authentication attempt and survive restarts.
type StaffIdentity struct {
	ID                    string
	Name                  string
	EmpID                 string
	Email                 string
	Phone                 *string
	StaffType             []StaffType
	DepartmentID          string
	Role                  StaffRole
	PasswordHash          string
	RequireChangePassword bool
	Active                bool
	LastLogin             *time.Time
	FailedLoginAttempts   int
	LockUntil             *time.Time
	PasswordChangedAt     *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Locked reports whether the account lock window is still open at now.
func (s *StaffIdentity) Locked(now time.Time) bool {
	return s.LockUntil != nil && s.LockUntil.After(now)
}
