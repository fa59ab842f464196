package repository

import (
	"context"
	"time"

	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PortfolioRepository struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

func (r *PortfolioRepository) Create(ctx context.Context, item *models.PortfolioItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	return translate(r.db.WithContext(ctx).Create(item).Error)
}

// ListByPartner orders items the way the public page shows them.
func (r *PortfolioRepository) ListByPartner(ctx context.Context, partnerID uuid.UUID) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	err := r.db.WithContext(ctx).
		Where("partner_id = ?", partnerID).
		Order("display_order ASC, created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *PortfolioRepository) FindOwned(ctx context.Context, id, partnerID uuid.UUID) (*models.PortfolioItem, error) {
	var item models.PortfolioItem
	if err := r.db.WithContext(ctx).Where("id = ? AND partner_id = ?", id, partnerID).First(&item).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

// Update rewrites the editable fields of an item the partner owns.
func (r *PortfolioRepository) Update(ctx context.Context, item *models.PortfolioItem) error {
	item.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).Model(&models.PortfolioItem{}).
		Where("id = ? AND partner_id = ?", item.ID, item.PartnerID).
		Select("title", "description", "image_url", "category", "display_order", "updated_at").
		Updates(item)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PortfolioRepository) Delete(ctx context.Context, id, partnerID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND partner_id = ?", id, partnerID).
		Delete(&models.PortfolioItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
