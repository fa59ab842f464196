package handlers

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/dto"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PortfolioFlow interface {
	AddItem(ctx context.Context, partnerUserID uuid.UUID, req *dto.PortfolioItemRequest) (*models.PortfolioItem, error)
	ListItems(ctx context.Context, partnerUserID uuid.UUID) (*dto.PortfolioListResponse, error)
	UpdateItem(ctx context.Context, partnerUserID, itemID uuid.UUID, req *dto.PortfolioItemRequest) (*models.PortfolioItem, error)
	DeleteItem(ctx context.Context, partnerUserID, itemID uuid.UUID) error
}

type PortfolioHandler struct {
	portfolio PortfolioFlow
}

func NewPortfolioHandler(portfolio PortfolioFlow) *PortfolioHandler {
	return &PortfolioHandler{portfolio: portfolio}
}

func (h *PortfolioHandler) AddItem(c *fiber.Ctx) error {
	var req dto.PortfolioItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	item, err := h.portfolio.AddItem(c.UserContext(), currentUserID(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return success(c, fiber.StatusCreated, "Portfolio item added", item)
}

func (h *PortfolioHandler) ListItems(c *fiber.Ctx) error {
	resp, err := h.portfolio.ListItems(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return success(c, fiber.StatusOK, "", resp)
}

func (h *PortfolioHandler) UpdateItem(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid portfolio item id")
	}
	var req dto.PortfolioItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	item, err := h.portfolio.UpdateItem(c.UserContext(), currentUserID(c), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return success(c, fiber.StatusOK, "Portfolio item updated", item)
}

func (h *PortfolioHandler) DeleteItem(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid portfolio item id")
	}
	if err := h.portfolio.DeleteItem(c.UserContext(), currentUserID(c), id); err != nil {
		return respondError(c, err)
	}
	return success(c, fiber.StatusOK, "Portfolio item deleted", nil)
}
