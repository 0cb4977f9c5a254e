package service

import (
	"context"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/staff-task-portal/internal/domain"
)

// fakeStaffRepo keeps identities in memory and records every persisted
// login-state write so tests can assert on what reached the store.
type fakeStaffRepo struct {
	byID      map[string]*domain.StaffIdentity
	updates   int
	updateErr error
}

func newFakeStaffRepo(staff ...*domain.StaffIdentity) *fakeStaffRepo {
	repo := &fakeStaffRepo{byID: make(map[string]*domain.StaffIdentity)}
	for _, s := range staff {
		copied := *s
		repo.byID[s.ID] = &copied
	}
	return repo
}

func (r *fakeStaffRepo) GetByID(_ context.Context, id string) (*domain.StaffIdentity, error) {
	staff, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *staff
	return &copied, nil
}

func (r *fakeStaffRepo) GetByEmpID(_ context.Context, empID string) (*domain.StaffIdentity, error) {
	for _, staff := range r.byID {
		if staff.EmpID == empID {
			copied := *staff
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeStaffRepo) UpdateLoginState(_ context.Context, staff *domain.StaffIdentity) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	stored, ok := r.byID[staff.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.FailedLoginAttempts = staff.FailedLoginAttempts
	stored.LockUntil = staff.LockUntil
	stored.LastLogin = staff.LastLogin
	r.updates++
	return nil
}

type statusWrite struct {
	taskID string
	status domain.TaskStatus
}

// fakeTaskRepo serves tasks from memory. Display names resolve through the
// name maps; a missing entry leaves the reference raw, mirroring a failed
// join at the store boundary.
type fakeTaskRepo struct {
	tasks      map[string]*domain.Task
	staffNames map[string]string
	hodNames   map[string]string
	deptNames  map[string]string

	detailErr    error
	getByIDCalls int
	writes       []statusWrite
}

func newFakeTaskRepo(tasks ...*domain.Task) *fakeTaskRepo {
	repo := &fakeTaskRepo{
		tasks:      make(map[string]*domain.Task),
		staffNames: make(map[string]string),
		hodNames:   make(map[string]string),
		deptNames:  make(map[string]string),
	}
	for _, task := range tasks {
		copied := *task
		repo.tasks[task.ID] = &copied
	}
	return repo
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id string) (*domain.Task, error) {
	r.getByIDCalls++
	task, ok := r.tasks[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *task
	return &copied, nil
}

func (r *fakeTaskRepo) GetDetail(_ context.Context, id string) (*domain.TaskDetail, error) {
	if r.detailErr != nil {
		return nil, r.detailErr
	}
	task, ok := r.tasks[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return r.detail(task), nil
}

func (r *fakeTaskRepo) ListDetailsByAssignee(_ context.Context, staffID string, limit int) ([]domain.TaskDetail, error) {
	if limit <= 0 {
		limit = 50
	}
	var result []domain.TaskDetail
	for _, task := range r.tasks {
		if task.AssignedToID == staffID {
			result = append(result, *r.detail(task))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].DueDate.Before(result[j].DueDate)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *fakeTaskRepo) CountsByAssignee(_ context.Context, staffID string) (domain.TaskCounts, error) {
	var counts domain.TaskCounts
	for _, task := range r.tasks {
		if task.AssignedToID != staffID {
			continue
		}
		counts.Total++
		switch task.Status {
		case domain.TaskStatusPending:
			counts.Pending++
		case domain.TaskStatusInProgress:
			counts.InProgress++
		case domain.TaskStatusCompleted:
			counts.Completed++
		}
	}
	return counts, nil
}

func (r *fakeTaskRepo) UpdateStatus(_ context.Context, id string, status domain.TaskStatus) error {
	task, ok := r.tasks[id]
	if !ok {
		return pgx.ErrNoRows
	}
	task.Status = status
	task.UpdatedAt = time.Now()
	r.writes = append(r.writes, statusWrite{taskID: id, status: status})
	return nil
}

func (r *fakeTaskRepo) detail(task *domain.Task) *domain.TaskDetail {
	detail := &domain.TaskDetail{Task: *task}
	detail.Department = r.ref(task.DepartmentID, r.deptNames)
	detail.AssignedTo = r.ref(task.AssignedToID, r.staffNames)
	detail.AssignedBy = r.ref(task.AssignedByID, r.hodNames)
	return detail
}

func (r *fakeTaskRepo) ref(id string, names map[string]string) domain.DisplayRef {
	if name, ok := names[id]; ok {
		return domain.ResolvedRef(id, name)
	}
	return domain.RawRef(id)
}

// fakeDepartmentRepo resolves departments from a fixed map.
type fakeDepartmentRepo struct {
	byID map[string]*domain.Department
}

func (r *fakeDepartmentRepo) GetByID(_ context.Context, id string) (*domain.Department, error) {
	dept, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *dept
	return &copied, nil
}
