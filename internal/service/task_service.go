package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/staff-task-portal/internal/domain"
	"github.com/spec-kit/staff-task-portal/internal/events"
	"github.com/spec-kit/staff-task-portal/internal/repository"
	apperrors "github.com/spec-kit/staff-task-portal/pkg/util"
)

const (
	assignedListLimit  = 50
	dashboardTaskLimit = 5
)

// TaskService reads assigned tasks and applies status transitions. It holds
// no cached state; every operation re-reads from the store of record.
type TaskService struct {
	tasks      repository.TaskRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// TaskDependencies bundles collaborators for the task service.
type TaskDependencies struct {
	TaskRepo   repository.TaskRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// DashboardSummary aggregates the caller's status counts and soonest-due
// tasks.
type DashboardSummary struct {
	Counts      domain.TaskCounts
	RecentTasks []domain.TaskDetail
}

// NewTaskService constructs the service.
func NewTaskService(deps TaskDependencies) *TaskService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskService{
		tasks:      deps.TaskRepo,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

// ListAssignedTasks returns the caller's assignments ordered by ascending
// due date. The query predicate itself scopes visibility to the caller.
func (s *TaskService) ListAssignedTasks(ctx context.Context, callerID string) ([]domain.TaskDetail, error) {
	tasks, err := s.tasks.ListDetailsByAssignee(ctx, callerID, assignedListLimit)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.TaskDetail{}
	}
	return tasks, nil
}

// GetDashboardSummary computes the status buckets and the five soonest-due
// assignments. Pure aggregation, no mutation.
func (s *TaskService) GetDashboardSummary(ctx context.Context, callerID string) (*DashboardSummary, error) {
	counts, err := s.tasks.CountsByAssignee(ctx, callerID)
	if err != nil {
		return nil, err
	}
	recent, err := s.tasks.ListDetailsByAssignee(ctx, callerID, dashboardTaskLimit)
	if err != nil {
		return nil, err
	}
	if recent == nil {
		recent = []domain.TaskDetail{}
	}
	return &DashboardSummary{Counts: counts, RecentTasks: recent}, nil
}

// UpdateStatus applies a status transition. The caller must be the task's
// assignee or assigner; any enum value may follow any other, there is no
// transition graph. The status write is the durable effect; the display
// name resolution on the returned projection is best effort and never
// fails the operation.
func (s *TaskService) UpdateStatus(ctx context.Context, callerID, taskID string, newStatus domain.TaskStatus) (*domain.TaskDetail, error) {
	if !newStatus.Valid() {
		return nil, apperrors.NewInvalidStatus(string(newStatus))
	}

	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("task", nil)
		}
		return nil, err
	}

	if callerID != task.AssignedToID && callerID != task.AssignedByID {
		return nil, apperrors.NewForbidden("not the task's assignee or assigner")
	}

	oldStatus := task.Status
	if err := s.tasks.UpdateStatus(ctx, taskID, newStatus); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("task", nil)
		}
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:   events.EventTaskStatusChanged,
		TaskID: task.ID,
		Payload: events.TaskStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: newStatus,
			ActorID:   callerID,
		},
	})

	detail, err := s.tasks.GetDetail(ctx, taskID)
	if err != nil {
		// The write already happened; degrade to raw references.
		s.logger.Warn("task detail resolution failed after status write",
			zap.String("task_id", taskID), zap.Error(err))
		return fallbackDetail(task, newStatus), nil
	}
	return detail, nil
}

func fallbackDetail(task *domain.Task, status domain.TaskStatus) *domain.TaskDetail {
	detail := &domain.TaskDetail{Task: *task}
	detail.Status = status
	detail.Department = domain.RawRef(task.DepartmentID)
	detail.AssignedTo = domain.RawRef(task.AssignedToID)
	detail.AssignedBy = domain.RawRef(task.AssignedByID)
	return detail
}

func (s *TaskService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
