package handlers

import (
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func pathID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	return id, err == nil
}

func paging(c *fiber.Ctx) (int, int) {
	return c.QueryInt("page", 1), c.QueryInt("limit", 20)
}

// currentUserID assumes middleware.RequireRole ran on the route.
func currentUserID(c *fiber.Ctx) uuid.UUID {
	if u := middleware.CurrentUser(c); u != nil {
		return u.ID
	}
	return uuid.Nil
}
