package handlers

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/dto"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PartnerProfiles interface {
	UpsertProfile(ctx context.Context, userID uuid.UUID, req *dto.PartnerProfileRequest) (*dto.PartnerProfileResponse, bool, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.PartnerProfileResponse, error)
	Browse(ctx context.Context, category, city string, page, limit int) (*dto.PartnerListResponse, error)
	GetPartnerDetails(ctx context.Context, profileID uuid.UUID) (*dto.PartnerDetailsResponse, error)
}

type LeadFlow interface {
	RespondToLead(ctx context.Context, partnerUserID, leadID uuid.UUID, req *dto.RespondLeadRequest) (*models.LeadAssignment, error)
	ListAssignedLeads(ctx context.Context, partnerUserID uuid.UUID, page, limit int) (*dto.LeadListResponse, error)
}

type PartnerHandler struct {
	profiles PartnerProfiles
	leads    LeadFlow
}

func NewPartnerHandler(profiles PartnerProfiles, leads LeadFlow) *PartnerHandler {
	return &PartnerHandler{profiles: profiles, leads: leads}
}

func (h *PartnerHandler) UpsertProfile(c *fiber.Ctx) error {
	var req dto.PartnerProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, created, err := h.profiles.UpsertProfile(c.UserContext(), currentUserID(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	if created {
		return success(c, fiber.StatusCreated, "Profile created", resp)
	}
	return success(c, fiber.StatusOK, "Profile updated", resp)
}

func (h *PartnerHandler) GetProfile(c *fiber.Ctx) error {
	resp, err := h.profiles.GetProfile(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return success(c, fiber.StatusOK, "", resp)
}

// Browse is public.
func (h *PartnerHandler) Browse(c *fiber.Ctx) error {
	page, limit := paging(c)
	resp, err := h.profiles.Browse(c.UserContext(), c.Query("category"), c.Query("city"), page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return success(c, fiber.StatusOK, "", resp)
}

// PartnerDetails is public and only serves verified partners.
func (h *PartnerHandler) PartnerDetails(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid partner id")
	}
	resp, err := h.profiles.GetPartnerDetails(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return success(c, fiber.StatusOK, "", resp)
}

func (h *PartnerHandler) ListLeads(c *fiber.Ctx) error {
	page, limit := paging(c)
	resp, err := h.leads.ListAssignedLeads(c.UserContext(), currentUserID(c), page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return success(c, fiber.StatusOK, "", resp)
}

func (h *PartnerHandler) RespondToLead(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid lead id")
	}
	var req dto.RespondLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	lead, err := h.leads.RespondToLead(c.UserContext(), currentUserID(c), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return success(c, fiber.StatusOK, "Response recorded", lead)
}
