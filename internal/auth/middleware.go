package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-task-portal/internal/domain"
	apperrors "github.com/spec-kit/staff-task-portal/pkg/util"
)

const claimsKey = "session_claims"

// SessionMiddleware resolves the bearer token to session claims. The
// claims come straight from the token; no store round-trip happens here,
// so a request sees the identity as it was at login.
type SessionMiddleware struct {
	tokens *TokenManager
}

// NewSessionMiddleware constructs middleware.
func NewSessionMiddleware(tokens *TokenManager) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes. Absent, malformed
// and expired tokens all produce the same unauthorized outcome.
func (m *SessionMiddleware) Handle(c *fiber.Ctx) error {
	claims, err := m.tokens.Resolve(bearerToken(c))
	if err != nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	c.Locals(claimsKey, claims)
	return c.Next()
}

// ClaimsFromContext retrieves the authenticated caller's claims.
func ClaimsFromContext(c *fiber.Ctx) (domain.SessionClaims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return domain.SessionClaims{}, false
	}
	claims, ok := val.(domain.SessionClaims)
	return claims, ok
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
