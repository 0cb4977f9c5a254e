package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/staff-task-portal/internal/domain"
)

// StaffRepository handles persistence for staff identities.
type StaffRepository interface {
	GetByID(ctx context.Context, id string) (*domain.StaffIdentity, error)
	GetByEmpID(ctx context.Context, empID string) (*domain.StaffIdentity, error)
	// UpdateLoginState persists the lockout counter, lock window and last
	// login. Every authentication attempt that reaches the identity writes
	// through here, so lockout survives process restarts.
	UpdateLoginState(ctx context.Context, staff *domain.StaffIdentity) error
}

const staffColumns = `
        id, name, emp_id, email, phone, staff_type, department_id, role,
        password_hash, require_change_password, is_active, last_login,
        failed_login_attempts, lock_until, password_changed_at, created_at, updated_at`

type staffRepository struct {
	pool *pgxpool.Pool
}

// NewStaffRepository instantiates the repository.
func NewStaffRepository(pool *pgxpool.Pool) StaffRepository {
	return &staffRepository{pool: pool}
}

func (r *staffRepository) GetByID(ctx context.Context, id string) (*domain.StaffIdentity, error) {
	const query = `SELECT` + staffColumns + ` FROM staff_members WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *staffRepository) GetByEmpID(ctx context.Context, empID string) (*domain.StaffIdentity, error) {
	const query = `SELECT` + staffColumns + ` FROM staff_members WHERE emp_id=$1`
	return r.fetchSingle(ctx, query, empID)
}

func (r *staffRepository) UpdateLoginState(ctx context.Context, staff *domain.StaffIdentity) error {
	const query = `
        UPDATE staff_members
        SET failed_login_attempts=$1, lock_until=$2, last_login=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		staff.FailedLoginAttempts,
		staff.LockUntil,
		staff.LastLogin,
		staff.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *staffRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.StaffIdentity, error) {
	var staff domain.StaffIdentity
	var types []string
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&staff.ID,
		&staff.Name,
		&staff.EmpID,
		&staff.Email,
		&staff.Phone,
		&types,
		&staff.DepartmentID,
		&staff.Role,
		&staff.PasswordHash,
		&staff.RequireChangePassword,
		&staff.Active,
		&staff.LastLogin,
		&staff.FailedLoginAttempts,
		&staff.LockUntil,
		&staff.PasswordChangedAt,
		&staff.CreatedAt,
		&staff.UpdatedAt,
	); err != nil {
		return nil, err
	}
	staff.StaffType = make([]domain.StaffType, 0, len(types))
	for _, t := range types {
		staff.StaffType = append(staff.StaffType, domain.StaffType(t))
	}
	return &staff, nil
}
