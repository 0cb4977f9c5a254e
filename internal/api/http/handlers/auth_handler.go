package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-task-portal/internal/api/dto"
	"github.com/spec-kit/staff-task-portal/internal/service"
	apperrors "github.com/spec-kit/staff-task-portal/pkg/util"
)

// AuthHandler exposes login/logout endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.EmpID == "" || req.Password == "" {
		return apperrors.NewValidationError("employee id and password are required", nil)
	}

	claims, err := h.auth.Authenticate(c.Context(), req.EmpID, req.Password)
	if err != nil {
		return err
	}

	token, exp, err := h.auth.TokenManager().Issue(claims)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"staff": dto.SessionFromClaims(claims),
			"auth":  dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Logout handles POST /api/auth/logout. The token is stateless; the server
// has nothing to revoke and the client discards its copy.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.auth.Logout(c.Context(), ""); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "logged_out"}})
}
