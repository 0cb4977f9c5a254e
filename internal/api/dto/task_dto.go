package dto

import (
	"time"

	"github.com/spec-kit/staff-task-portal/internal/domain"
)

// UpdateTaskStatusRequest payload for PATCH /api/tasks/:id.
type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

// TaskResponse is a task projection with references resolved to display
// names where available; unresolved references fall back to the raw id.
type TaskResponse struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Department  string              `json:"department"`
	AssignedTo  string              `json:"assigned_to"`
	AssignedBy  string              `json:"assigned_by"`
	Status      domain.TaskStatus   `json:"status"`
	Priority    domain.TaskPriority `json:"priority"`
	DueDate     time.Time           `json:"due_date"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// TaskFromDetail maps a task detail to the response shape.
func TaskFromDetail(detail *domain.TaskDetail) TaskResponse {
	return TaskResponse{
		ID:          detail.ID,
		Title:       detail.Title,
		Description: detail.Description,
		Department:  detail.Department.Display(),
		AssignedTo:  detail.AssignedTo.Display(),
		AssignedBy:  detail.AssignedBy.Display(),
		Status:      detail.Status,
		Priority:    detail.Priority,
		DueDate:     detail.DueDate,
		CreatedAt:   detail.CreatedAt,
		UpdatedAt:   detail.UpdatedAt,
	}
}

// DashboardStats are the dashboard count buckets.
type DashboardStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
}

// DashboardResponse bundles stats with the soonest-due tasks.
type DashboardResponse struct {
	Stats       DashboardStats `json:"stats"`
	RecentTasks []TaskResponse `json:"recent_tasks"`
}
