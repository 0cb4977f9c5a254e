package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-task-portal/internal/api/http/handlers"
	"github.com/spec-kit/staff-task-portal/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Auth          *handlers.AuthHandler
	Staff         *handlers.StaffHandler
	Tasks         *handlers.TasksHandler
	Notifications *handlers.NotificationsHandler
	Session       *auth.SessionMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Post("/auth/login", cfg.Auth.Login)

	protected := api.Group("", cfg.Session.Handle)
	protected.Post("/auth/logout", cfg.Auth.Logout)
	protected.Get("/staff/me", cfg.Staff.Me)
	protected.Get("/staff/dashboard", cfg.Staff.Dashboard)
	protected.Get("/tasks", cfg.Tasks.List)
	protected.Patch("/tasks/:id", cfg.Tasks.UpdateStatus)
	protected.Get("/notifications", cfg.Notifications.List)
}
