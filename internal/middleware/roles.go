package middleware

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/dto"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/models"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const userLocal = "current_user"

// UserLoader resolves the account behind a verified token.
type UserLoader interface {
	ActiveUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// RequireRole must run after JWTProtected. It reloads the user so that
// deactivation and role changes apply to tokens already issued. With no
// roles given any active user passes.
func RequireRole(users UserLoader, roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := CurrentClaims(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid claims",
			})
		}

		user, err := users.ActiveUser(c.UserContext(), claims.UserID)
		if err != nil {
			if errors.Is(err, services.ErrAuth) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Error: true, Message: err.Error(),
				})
			}
			slog.Error("failed to load current user", "user_id", claims.UserID.String(), "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Internal server error",
			})
		}

		if len(roles) > 0 && !hasRole(user.Role, roles) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Access denied for role " + string(user.Role),
			})
		}

		SetCurrentUser(c, user)
		return c.Next()
	}
}

// SetCurrentUser is exported for handler tests.
func SetCurrentUser(c *fiber.Ctx, user *models.User) {
	c.Locals(userLocal, user)
}

// CurrentUser returns the user stored by RequireRole, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocal).(*models.User)
	return user
}

func hasRole(role models.Role, allowed []models.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
