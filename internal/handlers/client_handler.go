package handlers

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type InquiryFlow interface {
	SubmitInquiry(ctx context.Context, clientID uuid.UUID, req *dto.SubmitInquiryRequest) (*dto.SubmitInquiryResponse, error)
	ListMyInquiries(ctx context.Context, clientID uuid.UUID, page, limit int) (*dto.InquiryListResponse, error)
	GetInquiryResponses(ctx context.Context, clientID, inquiryID uuid.UUID) (*dto.InquiryResponsesResponse, error)
}

type ClientHandler struct {
	inquiries InquiryFlow
}

func NewClientHandler(inquiries InquiryFlow) *ClientHandler {
	return &ClientHandler{inquiries: inquiries}
}

func (h *ClientHandler) SubmitInquiry(c *fiber.Ctx) error {
	var req dto.SubmitInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.inquiries.SubmitInquiry(c.UserContext(), currentUserID(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return success(c, fiber.StatusCreated, "Inquiry submitted", resp)
}

func (h *ClientHandler) ListInquiries(c *fiber.Ctx) error {
	page, limit := paging(c)
	resp, err := h.inquiries.ListMyInquiries(c.UserContext(), currentUserID(c), page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return success(c, fiber.StatusOK, "", resp)
}

func (h *ClientHandler) InquiryResponses(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid inquiry id")
	}

	resp, err := h.inquiries.GetInquiryResponses(c.UserContext(), currentUserID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return success(c, fiber.StatusOK, "", resp)
}
