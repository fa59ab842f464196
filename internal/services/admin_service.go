package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/dto"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/models"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/repository"
	"github.com/google/uuid"
)

// AdminService is the only writer of partner verification status.
type AdminService struct {
	partners PartnerRepository
	stats    StatsRepository
	now      func() time.Time
}

// recentWindowDays bounds the "recent activity" dashboard counters.
const recentWindowDays = 30

func NewAdminService(partners PartnerRepository, stats StatsRepository) *AdminService {
	return &AdminService{partners: partners, stats: stats, now: time.Now}
}

func (s *AdminService) DashboardKPIs(ctx context.Context) (*dto.DashboardKPIs, error) {
	c, err := s.stats.DashboardCounts(ctx, s.now().AddDate(0, 0, -recentWindowDays))
	if err != nil {
		return nil, internalErr("load dashboard counts", err)
	}
	return &dto.DashboardKPIs{
		Users:     dto.UserKPIs{Clients: c.Clients, Partners: c.Partners, Total: c.Clients + c.Partners},
		Partners:  dto.PartnerKPIs{PendingVerification: c.PendingVerifications, Featured: c.FeaturedPartners},
		Inquiries: dto.InquiryKPIs{Total: c.Inquiries, Recent: c.NewInquiries},
		Leads:     dto.LeadKPIs{Total: c.Leads, Responded: c.RespondedLeads},
		RecentActivity: dto.RecentActivity{
			NewClients:   c.NewClients,
			NewPartners:  c.NewPartners,
			NewInquiries: c.NewInquiries,
			WindowDays:   recentWindowDays,
		},
	}, nil
}

// PromotePartner sets or flips the featured flag used to rank browse results.
func (s *AdminService) PromotePartner(ctx context.Context, adminID, profileID uuid.UUID, req *dto.PromotePartnerRequest) (*dto.PartnerProfileResponse, error) {
	err := s.partners.SetFeatured(ctx, profileID, req.IsFeatured)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, internalErr("update featured flag", err)
	}

	profile, err := s.partners.FindByID(ctx, profileID)
	if err != nil {
		return nil, internalErr("reload partner profile", err)
	}

	slog.Info("partner featured flag updated",
		"user_id", adminID.String(),
		"partner_id", profileID.String(),
		"featured", profile.IsFeatured,
		"action", "partner_promote",
	)
	out := newPartnerProfileResponse(profile)
	return &out, nil
}

func (s *AdminService) ListPendingVerifications(ctx context.Context, page, limit int) (*dto.PartnerListResponse, error) {
	pg := paginate(page, limit)
	rows, err := s.partners.ListPending(ctx, pg.limit, pg.offset())
	if err != nil {
		return nil, internalErr("list pending verifications", err)
	}
	return &dto.PartnerListResponse{Partners: partnerCards(rows), Page: pg.page, Limit: pg.limit}, nil
}

func (s *AdminService) VerifyPartner(ctx context.Context, adminID, profileID uuid.UUID, req *dto.VerifyPartnerRequest) (*dto.PartnerProfileResponse, error) {
	status := models.VerificationStatus(req.Status)
	if status != models.VerificationVerified && status != models.VerificationRejected {
		return nil, validationErr("status must be verified or rejected")
	}
	if !optionalLength(req.Comment, 500) {
		return nil, validationErr("comment must be at most 500 characters")
	}

	err := s.partners.UpdateVerification(ctx, profileID, status, req.Comment)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, internalErr("update verification", err)
	}

	profile, err := s.partners.FindByID(ctx, profileID)
	if err != nil {
		return nil, internalErr("reload partner profile", err)
	}

	slog.Info("partner verification updated",
		"user_id", adminID.String(),
		"partner_id", profileID.String(),
		"status", status,
		"action", "partner_verify",
	)
	out := newPartnerProfileResponse(profile)
	return &out, nil
}
