package repository

import (
	"context"
	"time"

	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InquiryRepository struct {
	db *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

func (r *InquiryRepository) Create(ctx context.Context, inq *models.Inquiry) error {
	if inq.ID == uuid.Nil {
		inq.ID = uuid.New()
	}
	if inq.Status == "" {
		inq.Status = models.InquiryNew
	}
	return translate(r.db.WithContext(ctx).Create(inq).Error)
}

// FindOwned returns ErrNotFound unless the inquiry belongs to clientID.
func (r *InquiryRepository) FindOwned(ctx context.Context, id, clientID uuid.UUID) (*models.Inquiry, error) {
	var inq models.Inquiry
	if err := r.db.WithContext(ctx).Where("id = ? AND client_id = ?", id, clientID).First(&inq).Error; err != nil {
		return nil, translate(err)
	}
	return &inq, nil
}

func (r *InquiryRepository) ListByClient(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]InquirySummary, error) {
	var rows []InquirySummary
	err := r.db.WithContext(ctx).
		Table("inquiries").
		Select(`inquiries.*, (SELECT COUNT(*) FROM lead_assignments la
			WHERE la.inquiry_id = inquiries.id AND la.is_responded = true) AS response_count`).
		Where("inquiries.client_id = ?", clientID).
		Order("inquiries.created_at DESC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	return rows, err
}

// TransitionStatus moves the inquiry to `to` only from the statuses the
// transition table allows, in a single guarded UPDATE. It reports whether
// a row changed.
func (r *InquiryRepository) TransitionStatus(ctx context.Context, id uuid.UUID, to models.InquiryStatus) (bool, error) {
	from := models.AllowedFrom(to)
	if len(from) == 0 {
		return false, nil
	}
	result := r.db.WithContext(ctx).Model(&models.Inquiry{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
