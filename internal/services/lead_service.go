package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/dto"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/models"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/repository"
	"github.com/google/uuid"
)

type LeadService struct {
	partners  PartnerRepository
	leads     LeadRepository
	inquiries InquiryRepository
}

func NewLeadService(partners PartnerRepository, leads LeadRepository, inquiries InquiryRepository) *LeadService {
	return &LeadService{partners: partners, leads: leads, inquiries: inquiries}
}

// RespondToLead records the caller's reply on a lead they own and moves the
// parent inquiry to responded when its current status allows it.
func (s *LeadService) RespondToLead(ctx context.Context, partnerUserID, leadID uuid.UUID, req *dto.RespondLeadRequest) (*models.LeadAssignment, error) {
	if !lengthBetween(req.ResponseMessage, 1, 1000) {
		return nil, validationErr("responseMessage is required and must be at most 1000 characters")
	}
	if req.QuotedPrice != nil && *req.QuotedPrice < 0 {
		return nil, validationErr("quotedPrice cannot be negative")
	}

	profile, err := s.profileFor(ctx, partnerUserID)
	if err != nil {
		return nil, err
	}

	lead, err := s.leads.FindOwned(ctx, leadID, profile.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrLeadNotFound
	}
	if err != nil {
		return nil, internalErr("load lead", err)
	}
	if lead.IsResponded {
		return nil, ErrLeadAlreadyResponded
	}

	err = s.leads.MarkResponded(ctx, lead, req.ResponseMessage, req.QuotedPrice)
	if errors.Is(err, repository.ErrNotFound) {
		// Ownership was confirmed above, so the guard lost to a concurrent reply.
		return nil, ErrLeadAlreadyResponded
	}
	if err != nil {
		return nil, internalErr("record response", err)
	}

	applied, err := s.inquiries.TransitionStatus(ctx, lead.InquiryID, models.InquiryResponded)
	if err != nil {
		return nil, internalErr("update inquiry status", err)
	}
	if !applied {
		slog.Warn("inquiry status not moved to responded",
			"inquiry_id", lead.InquiryID.String(),
			"lead_id", lead.ID.String(),
			"allowed_from", models.AllowedFrom(models.InquiryResponded),
			"action", "lead_respond",
		)
	}

	metrics.LeadResponses.Inc()
	slog.Info("lead responded",
		"lead_id", lead.ID.String(),
		"inquiry_id", lead.InquiryID.String(),
		"user_id", partnerUserID.String(),
		"action", "lead_respond",
	)
	return lead, nil
}

func (s *LeadService) ListAssignedLeads(ctx context.Context, partnerUserID uuid.UUID, page, limit int) (*dto.LeadListResponse, error) {
	profile, err := s.profileFor(ctx, partnerUserID)
	if err != nil {
		return nil, err
	}

	pg := paginate(page, limit)
	rows, err := s.leads.ListByPartner(ctx, profile.ID, pg.limit, pg.offset())
	if err != nil {
		return nil, internalErr("list leads", err)
	}
	if rows == nil {
		rows = []repository.AssignedLead{}
	}
	return &dto.LeadListResponse{Leads: rows, Page: pg.page, Limit: pg.limit}, nil
}

func (s *LeadService) profileFor(ctx context.Context, userID uuid.UUID) (*models.PartnerProfile, error) {
	profile, err := s.partners.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, internalErr("load partner profile", err)
	}
	return profile, nil
}
