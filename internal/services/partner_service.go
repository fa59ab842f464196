package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/dto"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/matching"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/models"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/repository"
	"github.com/google/uuid"
)

type PartnerService struct {
	partners  PartnerRepository
	portfolio PortfolioRepository
}

func NewPartnerService(partners PartnerRepository, portfolio PortfolioRepository) *PartnerService {
	return &PartnerService{partners: partners, portfolio: portfolio}
}

// UpsertProfile creates the caller's profile or updates its editable
// fields. created reports which of the two happened.
func (s *PartnerService) UpsertProfile(ctx context.Context, userID uuid.UUID, req *dto.PartnerProfileRequest) (resp *dto.PartnerProfileResponse, created bool, err error) {
	categories, err := validatePartnerProfile(req)
	if err != nil {
		return nil, false, err
	}

	profile, err := s.partners.FindByUserID(ctx, userID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		profile = &models.PartnerProfile{
			ID:                 uuid.New(),
			UserID:             userID,
			VerificationStatus: models.VerificationPending,
		}
		created = true
	case err != nil:
		return nil, false, internalErr("load partner profile", err)
	}

	profile.BusinessName = req.BusinessName
	profile.Description = req.Description
	profile.Experience = req.Experience
	profile.BasePrice = req.BasePrice
	profile.ServiceCategories = matching.EncodeCategories(categories)
	profile.AadharNumber = req.AadharNumber
	profile.PanNumber = req.PanNumber
	profile.GSTNumber = req.GSTNumber

	if created {
		err = s.partners.Create(ctx, profile)
	} else {
		err = s.partners.UpdateDetails(ctx, profile)
	}
	if err != nil {
		return nil, false, internalErr("save partner profile", err)
	}

	slog.Info("partner profile saved", "user_id", userID.String(), "created", created, "action", "partner_profile_upsert")
	out := newPartnerProfileResponse(profile)
	return &out, created, nil
}

func (s *PartnerService) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.PartnerProfileResponse, error) {
	profile, err := s.partners.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, internalErr("load partner profile", err)
	}
	out := newPartnerProfileResponse(profile)
	return &out, nil
}

// Browse lists verified partners for the public directory.
func (s *PartnerService) Browse(ctx context.Context, category, city string, page, limit int) (*dto.PartnerListResponse, error) {
	if category != "" && !models.Category(category).Valid() {
		return nil, validationErr("unknown category %q", category)
	}
	pg := paginate(page, limit)
	rows, err := s.partners.ListVerified(ctx, category, city, pg.limit, pg.offset())
	if err != nil {
		return nil, internalErr("list partners", err)
	}
	return &dto.PartnerListResponse{Partners: partnerCards(rows), Page: pg.page, Limit: pg.limit}, nil
}

// GetPartnerDetails returns a verified partner with its portfolio.
// Unverified and unknown partners are both reported as not found.
func (s *PartnerService) GetPartnerDetails(ctx context.Context, profileID uuid.UUID) (*dto.PartnerDetailsResponse, error) {
	row, err := s.partners.FindVerifiedListing(ctx, profileID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPartnerNotFound
	}
	if err != nil {
		return nil, internalErr("load partner", err)
	}

	items, err := s.portfolio.ListByPartner(ctx, row.ID)
	if err != nil {
		return nil, internalErr("list portfolio", err)
	}
	if items == nil {
		items = []models.PortfolioItem{}
	}

	row.Email, row.Phone = "", ""
	card := partnerCards([]repository.PartnerListing{*row})[0]
	return &dto.PartnerDetailsResponse{Partner: card, Portfolio: items}, nil
}

func validatePartnerProfile(req *dto.PartnerProfileRequest) ([]models.Category, error) {
	if !lengthBetween(req.BusinessName, 1, 255) {
		return nil, validationErr("businessName is required and must be at most 255 characters")
	}
	if !optionalLength(req.Description, 2000) {
		return nil, validationErr("description must be at most 2000 characters")
	}
	if req.Experience < 0 {
		return nil, validationErr("experience cannot be negative")
	}
	if req.BasePrice != nil && *req.BasePrice < 0 {
		return nil, validationErr("basePrice cannot be negative")
	}
	if !optionalLength(req.AadharNumber, 12) || !optionalLength(req.PanNumber, 10) || !optionalLength(req.GSTNumber, 15) {
		return nil, validationErr("identity numbers exceed their maximum length")
	}

	categories := make([]models.Category, 0, len(req.ServiceCategories))
	for _, raw := range req.ServiceCategories {
		c := models.Category(raw)
		if !c.Valid() {
			return nil, validationErr("unknown service category %q", raw)
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func newPartnerProfileResponse(p *models.PartnerProfile) dto.PartnerProfileResponse {
	return dto.PartnerProfileResponse{
		ID:                  p.ID,
		UserID:              p.UserID,
		BusinessName:        p.BusinessName,
		Description:         p.Description,
		Experience:          p.Experience,
		BasePrice:           p.BasePrice,
		ServiceCategories:   decodeCategories(p.ID, p.ServiceCategories),
		VerificationStatus:  p.VerificationStatus,
		VerificationComment: p.VerificationComment,
		IsFeatured:          p.IsFeatured,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func partnerCards(rows []repository.PartnerListing) []dto.PartnerCard {
	cards := make([]dto.PartnerCard, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, dto.PartnerCard{
			PartnerListing:    row,
			ServiceCategories: decodeCategories(row.ID, row.ServiceCategories),
		})
	}
	return cards
}

// decodeCategories renders unreadable stored lists as empty for display.
func decodeCategories(id uuid.UUID, raw string) []string {
	cats, err := matching.ParseCategories(raw)
	if err != nil {
		slog.Warn("unreadable service categories", "partner_id", id.String(), "error", err)
	}
	if cats == nil {
		cats = []string{}
	}
	return cats
}
