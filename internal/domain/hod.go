package domain

import "time"

// Hod models a head of department, the actor class that assigns tasks.
// It carries the same credential/lockout fields as StaffIdentity but is
// stored as its own record class.
type Hod struct {
	ID                  string
	Name                string
	EmpID               string
	Email               string
	DepartmentID        string
	Role                StaffRole
	PasswordHash        string
	Active              bool
	LastLogin           *time.Time
	FailedLoginAttempts int
	LockUntil           *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
