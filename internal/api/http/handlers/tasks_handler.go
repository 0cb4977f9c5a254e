package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-task-portal/internal/api/dto"
	"github.com/spec-kit/staff-task-portal/internal/auth"
	"github.com/spec-kit/staff-task-portal/internal/domain"
	"github.com/spec-kit/staff-task-portal/internal/service"
	apperrors "github.com/spec-kit/staff-task-portal/pkg/util"
)

// TasksHandler exposes the caller's task list and status updates.
type TasksHandler struct {
	tasks *service.TaskService
}

// NewTasksHandler constructs handler.
func NewTasksHandler(taskService *service.TaskService) *TasksHandler {
	return &TasksHandler{tasks: taskService}
}

// List handles GET /api/tasks.
func (h *TasksHandler) List(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	details, err := h.tasks.ListAssignedTasks(c.Context(), claims.StaffID)
	if err != nil {
		return err
	}

	resp := make([]dto.TaskResponse, 0, len(details))
	for i := range details {
		resp = append(resp, dto.TaskFromDetail(&details[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// UpdateStatus handles PATCH /api/tasks/:id.
func (h *TasksHandler) UpdateStatus(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	detail, err := h.tasks.UpdateStatus(c.Context(), claims.StaffID, c.Params("id"), domain.TaskStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.TaskFromDetail(detail)})
}
