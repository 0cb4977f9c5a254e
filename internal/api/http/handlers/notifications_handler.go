package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-task-portal/internal/service"
)

// NotificationsHandler serves the recent-updates feed.
type NotificationsHandler struct {
	notifications *service.NotificationService
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(notificationService *service.NotificationService) *NotificationsHandler {
	return &NotificationsHandler{notifications: notificationService}
}

// List handles GET /api/notifications.
func (h *NotificationsHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.notifications.RecentUpdates()})
}
