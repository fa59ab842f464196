package services

import (
	"context"
	"time"

	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/matching"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/models"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/repository"
	"github.com/google/uuid"
)

// Storage ports. The repository package provides the GORM implementations;
// tests substitute in-memory fakes.

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type PartnerRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.PartnerProfile, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.PartnerProfile, error)
	Create(ctx context.Context, p *models.PartnerProfile) error
	UpdateDetails(ctx context.Context, p *models.PartnerProfile) error
	FindBroadCandidates(ctx context.Context, city, category string) ([]matching.Candidate, error)
	ListVerified(ctx context.Context, category, city string, limit, offset int) ([]repository.PartnerListing, error)
	ListPending(ctx context.Context, limit, offset int) ([]repository.PartnerListing, error)
	UpdateVerification(ctx context.Context, id uuid.UUID, status models.VerificationStatus, comment string) error
	FindVerifiedListing(ctx context.Context, id uuid.UUID) (*repository.PartnerListing, error)
	SetFeatured(ctx context.Context, id uuid.UUID, featured *bool) error
}

type InquiryRepository interface {
	Create(ctx context.Context, inq *models.Inquiry) error
	FindOwned(ctx context.Context, id, clientID uuid.UUID) (*models.Inquiry, error)
	ListByClient(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]repository.InquirySummary, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, to models.InquiryStatus) (bool, error)
}

type LeadRepository interface {
	Create(ctx context.Context, lead *models.LeadAssignment) error
	FindOwned(ctx context.Context, id, partnerID uuid.UUID) (*models.LeadAssignment, error)
	MarkResponded(ctx context.Context, lead *models.LeadAssignment, message string, quotedPrice *float64) error
	ListResponses(ctx context.Context, inquiryID uuid.UUID) ([]repository.LeadResponse, error)
	ListByPartner(ctx context.Context, partnerID uuid.UUID, limit, offset int) ([]repository.AssignedLead, error)
}

type PortfolioRepository interface {
	Create(ctx context.Context, item *models.PortfolioItem) error
	ListByPartner(ctx context.Context, partnerID uuid.UUID) ([]models.PortfolioItem, error)
	FindOwned(ctx context.Context, id, partnerID uuid.UUID) (*models.PortfolioItem, error)
	Update(ctx context.Context, item *models.PortfolioItem) error
	Delete(ctx context.Context, id, partnerID uuid.UUID) error
}

type StatsRepository interface {
	DashboardCounts(ctx context.Context, since time.Time) (repository.DashboardCounts, error)
}

var (
	_ UserRepository      = (*repository.UserRepository)(nil)
	_ PartnerRepository   = (*repository.PartnerRepository)(nil)
	_ InquiryRepository   = (*repository.InquiryRepository)(nil)
	_ LeadRepository      = (*repository.LeadRepository)(nil)
	_ PortfolioRepository = (*repository.PortfolioRepository)(nil)
	_ StatsRepository     = (*repository.StatsRepository)(nil)
)

type pageRequest struct {
	page  int
	limit int
}

// paginate normalises 1-based paging input. Limit defaults to 20 and is
// capped at 100.
func paginate(page, limit int) pageRequest {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if page < 1 {
		page = 1
	}
	return pageRequest{page: page, limit: limit}
}

func (p pageRequest) offset() int { return (p.page - 1) * p.limit }
