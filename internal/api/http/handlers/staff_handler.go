package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-task-portal/internal/api/dto"
	"github.com/spec-kit/staff-task-portal/internal/auth"
	"github.com/spec-kit/staff-task-portal/internal/service"
	apperrors "github.com/spec-kit/staff-task-portal/pkg/util"
)

// StaffHandler exposes the caller's profile and dashboard.
type StaffHandler struct {
	staff *service.StaffService
	tasks *service.TaskService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(staffService *service.StaffService, taskService *service.TaskService) *StaffHandler {
	return &StaffHandler{staff: staffService, tasks: taskService}
}

// Me handles GET /api/staff/me.
func (h *StaffHandler) Me(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	profile, err := h.staff.Profile(c.Context(), claims.StaffID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ProfileFromService(profile)})
}

// Dashboard handles GET /api/staff/dashboard.
func (h *StaffHandler) Dashboard(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	summary, err := h.tasks.GetDashboardSummary(c.Context(), claims.StaffID)
	if err != nil {
		return err
	}

	recent := make([]dto.TaskResponse, 0, len(summary.RecentTasks))
	for i := range summary.RecentTasks {
		recent = append(recent, dto.TaskFromDetail(&summary.RecentTasks[i]))
	}

	return c.JSON(fiber.Map{
		"data": dto.DashboardResponse{
			Stats: dto.DashboardStats{
				Total:      summary.Counts.Total,
				Pending:    summary.Counts.Pending,
				InProgress: summary.Counts.InProgress,
				Completed:  summary.Counts.Completed,
			},
			RecentTasks: recent,
		},
	})
}
