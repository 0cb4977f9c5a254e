package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/staff-task-portal/internal/domain"
)

// TaskRepository encapsulates task persistence. Detail reads resolve
// cross-references to display names at the store boundary via LEFT JOINs;
// a missing join partner leaves the reference unresolved rather than
// failing the read.
type TaskRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	GetDetail(ctx context.Context, id string) (*domain.TaskDetail, error)
	ListDetailsByAssignee(ctx context.Context, staffID string, limit int) ([]domain.TaskDetail, error)
	CountsByAssignee(ctx context.Context, staffID string) (domain.TaskCounts, error)
	UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) error
}

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository instantiates the repository.
func NewTaskRepository(pool *pgxpool.Pool) TaskRepository {
	return &taskRepository{pool: pool}
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	const query = `
        SELECT id, title, description, department_id, assigned_to, assigned_by,
               status, priority, due_date, created_at, updated_at
        FROM tasks WHERE id=$1`

	var task domain.Task
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.DepartmentID,
		&task.AssignedToID,
		&task.AssignedByID,
		&task.Status,
		&task.Priority,
		&task.DueDate,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &task, nil
}

const taskDetailQuery = `
        SELECT t.id, t.title, t.description, t.department_id, t.assigned_to, t.assigned_by,
               t.status, t.priority, t.due_date, t.created_at, t.updated_at,
               d.name, s.name, h.name
        FROM tasks t
        LEFT JOIN departments d ON d.id = t.department_id
        LEFT JOIN staff_members s ON s.id = t.assigned_to
        LEFT JOIN hods h ON h.id = t.assigned_by`

func (r *taskRepository) GetDetail(ctx context.Context, id string) (*domain.TaskDetail, error) {
	query := taskDetailQuery + ` WHERE t.id=$1`
	row := r.pool.QueryRow(ctx, query, id)
	detail, err := scanTaskDetail(row)
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (r *taskRepository) ListDetailsByAssignee(ctx context.Context, staffID string, limit int) ([]domain.TaskDetail, error) {
	if limit <= 0 {
		limit = 50
	}
	query := taskDetailQuery + ` WHERE t.assigned_to=$1 ORDER BY t.due_date ASC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, staffID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TaskDetail
	for rows.Next() {
		detail, err := scanTaskDetail(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *detail)
	}
	return result, rows.Err()
}

func (r *taskRepository) CountsByAssignee(ctx context.Context, staffID string) (domain.TaskCounts, error) {
	const query = `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE status='PENDING'),
               COUNT(*) FILTER (WHERE status='IN_PROGRESS'),
               COUNT(*) FILTER (WHERE status='COMPLETED')
        FROM tasks WHERE assigned_to=$1`

	var counts domain.TaskCounts
	if err := r.pool.QueryRow(ctx, query, staffID).Scan(
		&counts.Total,
		&counts.Pending,
		&counts.InProgress,
		&counts.Completed,
	); err != nil {
		return domain.TaskCounts{}, err
	}
	return counts, nil
}

func (r *taskRepository) UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) error {
	const query = `UPDATE tasks SET status=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanTaskDetail(row pgx.Row) (*domain.TaskDetail, error) {
	var detail domain.TaskDetail
	var deptName, staffName, hodName *string
	if err := row.Scan(
		&detail.ID,
		&detail.Title,
		&detail.Description,
		&detail.DepartmentID,
		&detail.AssignedToID,
		&detail.AssignedByID,
		&detail.Status,
		&detail.Priority,
		&detail.DueDate,
		&detail.CreatedAt,
		&detail.UpdatedAt,
		&deptName,
		&staffName,
		&hodName,
	); err != nil {
		return nil, err
	}
	detail.Department = displayRef(detail.DepartmentID, deptName)
	detail.AssignedTo = displayRef(detail.AssignedToID, staffName)
	detail.AssignedBy = displayRef(detail.AssignedByID, hodName)
	return &detail, nil
}

func displayRef(id string, name *string) domain.DisplayRef {
	if name != nil {
		return domain.ResolvedRef(id, *name)
	}
	return domain.RawRef(id)
}
