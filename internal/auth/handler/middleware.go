package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gokul-1998/flashdeck-service/internal/auth/domain"
	"github.com/gokul-1998/flashdeck-service/internal/auth/service"
)

const currentUserKey = "currentUser"

// RequireAuth gates a route behind a bearer access token. It verifies the
// token, resolves the embedded identity to a concrete user and stores it
// in the request locals; any failure short-circuits with 401 before domain
// logic runs.
func (h *AuthHandler) RequireAuth(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing bearer token",
		})
	}

	claims, err := h.tokenService.Verify(token, service.TokenKindAccess)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	user, err := h.userService.GetByEmail(c.Context(), claims.Subject)
	if err != nil || user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "user not found",
		})
	}

	c.Locals(currentUserKey, user)

	return c.Next()
}

// CurrentUser returns the user resolved by RequireAuth, or nil on routes
// that were not guarded.
func CurrentUser(c *fiber.Ctx) *domain.User {
	user, _ := c.Locals(currentUserKey).(*domain.User)
	return user
}
