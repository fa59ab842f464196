package handlers

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Verifier interface {
	ListPendingVerifications(ctx context.Context, page, limit int) (*dto.PartnerListResponse, error)
	VerifyPartner(ctx context.Context, adminID, profileID uuid.UUID, req *dto.VerifyPartnerRequest) (*dto.PartnerProfileResponse, error)
	PromotePartner(ctx context.Context, adminID, profileID uuid.UUID, req *dto.PromotePartnerRequest) (*dto.PartnerProfileResponse, error)
	DashboardKPIs(ctx context.Context) (*dto.DashboardKPIs, error)
}

type AdminHandler struct {
	verifier Verifier
}

func NewAdminHandler(verifier Verifier) *AdminHandler {
	return &AdminHandler{verifier: verifier}
}

func (h *AdminHandler) ListVerifications(c *fiber.Ctx) error {
	page, limit := paging(c)
	resp, err := h.verifier.ListPendingVerifications(c.UserContext(), page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return success(c, fiber.StatusOK, "", resp)
}

func (h *AdminHandler) VerifyPartner(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid partner id")
	}
	var req dto.VerifyPartnerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.verifier.VerifyPartner(c.UserContext(), currentUserID(c), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return success(c, fiber.StatusOK, "Partner "+string(resp.VerificationStatus), resp)
}

func (h *AdminHandler) PromotePartner(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid partner id")
	}
	var req dto.PromotePartnerRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
	}

	resp, err := h.verifier.PromotePartner(c.UserContext(), currentUserID(c), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	msg := "Partner removed from featured"
	if resp.IsFeatured {
		msg = "Partner promoted as featured"
	}
	return success(c, fiber.StatusOK, msg, resp)
}

func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	resp, err := h.verifier.DashboardKPIs(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return success(c, fiber.StatusOK, "", resp)
}
