package middleware

import (
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/auth"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/config"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const tokenLocal = "user"

func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ContextKey: tokenLocal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}

// CurrentClaims decodes the token stored by JWTProtected.
func CurrentClaims(c *fiber.Ctx) (*auth.Claims, error) {
	token, _ := c.Locals(tokenLocal).(*jwt.Token)
	return auth.ParseClaims(token)
}
