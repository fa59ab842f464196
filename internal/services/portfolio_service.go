package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/dto"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/models"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/repository"
	"github.com/google/uuid"
)

const placeholderPortfolioURL = "https://picsum.photos/800/600?random=%d"

// PortfolioService manages the caller's own portfolio items.
type PortfolioService struct {
	partners   PartnerRepository
	portfolio  PortfolioRepository
	mockUpload bool
	now        func() time.Time
}

func NewPortfolioService(partners PartnerRepository, portfolio PortfolioRepository, mockUpload bool) *PortfolioService {
	return &PortfolioService{
		partners:   partners,
		portfolio:  portfolio,
		mockUpload: mockUpload,
		now:        time.Now,
	}
}

func (s *PortfolioService) AddItem(ctx context.Context, partnerUserID uuid.UUID, req *dto.PortfolioItemRequest) (*models.PortfolioItem, error) {
	profile, err := s.profileFor(ctx, partnerUserID)
	if err != nil {
		return nil, err
	}

	item := &models.PortfolioItem{ID: uuid.New(), PartnerID: profile.ID}
	if err := s.apply(item, req); err != nil {
		return nil, err
	}
	if err := s.portfolio.Create(ctx, item); err != nil {
		return nil, internalErr("create portfolio item", err)
	}

	slog.Info("portfolio item added", "user_id", partnerUserID.String(), "item_id", item.ID.String(), "action", "portfolio_add")
	return item, nil
}

func (s *PortfolioService) ListItems(ctx context.Context, partnerUserID uuid.UUID) (*dto.PortfolioListResponse, error) {
	profile, err := s.profileFor(ctx, partnerUserID)
	if err != nil {
		return nil, err
	}
	items, err := s.portfolio.ListByPartner(ctx, profile.ID)
	if err != nil {
		return nil, internalErr("list portfolio", err)
	}
	if items == nil {
		items = []models.PortfolioItem{}
	}
	return &dto.PortfolioListResponse{Items: items}, nil
}

// UpdateItem replaces the editable fields. An empty imageUrl keeps the
// current image.
func (s *PortfolioService) UpdateItem(ctx context.Context, partnerUserID, itemID uuid.UUID, req *dto.PortfolioItemRequest) (*models.PortfolioItem, error) {
	profile, err := s.profileFor(ctx, partnerUserID)
	if err != nil {
		return nil, err
	}

	item, err := s.portfolio.FindOwned(ctx, itemID, profile.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPortfolioItemNotFound
	}
	if err != nil {
		return nil, internalErr("load portfolio item", err)
	}

	if strings.TrimSpace(req.ImageURL) == "" {
		cp := *req
		cp.ImageURL = item.ImageURL
		req = &cp
	}
	if err := s.apply(item, req); err != nil {
		return nil, err
	}

	err = s.portfolio.Update(ctx, item)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPortfolioItemNotFound
	}
	if err != nil {
		return nil, internalErr("update portfolio item", err)
	}
	return item, nil
}

func (s *PortfolioService) DeleteItem(ctx context.Context, partnerUserID, itemID uuid.UUID) error {
	profile, err := s.profileFor(ctx, partnerUserID)
	if err != nil {
		return err
	}

	err = s.portfolio.Delete(ctx, itemID, profile.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPortfolioItemNotFound
	}
	if err != nil {
		return internalErr("delete portfolio item", err)
	}

	slog.Info("portfolio item deleted", "user_id", partnerUserID.String(), "item_id", itemID.String(), "action", "portfolio_delete")
	return nil
}

// apply validates req and copies it onto item. In mock upload mode a
// missing image gets a placeholder URL.
func (s *PortfolioService) apply(item *models.PortfolioItem, req *dto.PortfolioItemRequest) error {
	title := strings.TrimSpace(req.Title)
	if !lengthBetween(title, 1, 255) {
		return validationErr("title is required and must be at most 255 characters")
	}
	if !optionalLength(req.Description, 1000) {
		return validationErr("description must be at most 1000 characters")
	}
	category := models.Category(req.Category)
	if !category.Valid() {
		return validationErr("category must be one of wedding, maternity, portrait, event, commercial, fashion")
	}
	order := 0
	if req.DisplayOrder != nil {
		order = *req.DisplayOrder
	}
	if order < 0 {
		return validationErr("displayOrder cannot be negative")
	}

	imageURL := strings.TrimSpace(req.ImageURL)
	switch {
	case imageURL == "" && s.mockUpload:
		imageURL = fmt.Sprintf(placeholderPortfolioURL, s.now().UnixMilli())
	case !validAbsoluteURL(imageURL):
		return validationErr("imageUrl must be an absolute URL")
	}

	item.Title = title
	item.Description = req.Description
	item.ImageURL = imageURL
	item.Category = category
	item.DisplayOrder = order
	return nil
}

func (s *PortfolioService) profileFor(ctx context.Context, userID uuid.UUID) (*models.PartnerProfile, error) {
	profile, err := s.partners.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, internalErr("load partner profile", err)
	}
	return profile, nil
}
