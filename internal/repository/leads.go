package repository

import (
	"context"
	"time"

	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *models.LeadAssignment) error {
	if lead.ID == uuid.Nil {
		lead.ID = uuid.New()
	}
	return translate(r.db.WithContext(ctx).Create(lead).Error)
}

// FindOwned returns ErrNotFound unless the lead belongs to partnerID.
func (r *LeadRepository) FindOwned(ctx context.Context, id, partnerID uuid.UUID) (*models.LeadAssignment, error) {
	var lead models.LeadAssignment
	if err := r.db.WithContext(ctx).Where("id = ? AND partner_id = ?", id, partnerID).First(&lead).Error; err != nil {
		return nil, translate(err)
	}
	return &lead, nil
}

// MarkResponded records the partner's reply once. It returns ErrNotFound if
// the lead is not owned by lead.PartnerID or has already been answered.
func (r *LeadRepository) MarkResponded(ctx context.Context, lead *models.LeadAssignment, message string, quotedPrice *float64) error {
	now := time.Now()
	result := r.db.WithContext(ctx).Model(&models.LeadAssignment{}).
		Where("id = ? AND partner_id = ? AND is_responded = ?", lead.ID, lead.PartnerID, false).
		Updates(map[string]interface{}{
			"is_responded":     true,
			"response_message": message,
			"quoted_price":     quotedPrice,
			"updated_at":       now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	lead.IsResponded = true
	lead.ResponseMessage = message
	lead.QuotedPrice = quotedPrice
	lead.UpdatedAt = now
	return nil
}

func (r *LeadRepository) ListResponses(ctx context.Context, inquiryID uuid.UUID) ([]LeadResponse, error) {
	var rows []LeadResponse
	err := r.db.WithContext(ctx).
		Table("lead_assignments").
		Select(`lead_assignments.id, lead_assignments.is_responded, lead_assignments.response_message,
			lead_assignments.quoted_price, lead_assignments.updated_at AS responded_at,
			partner_profiles.id AS partner_id, partner_profiles.business_name AS partner_business_name,
			partner_profiles.description AS partner_description, partner_profiles.experience AS partner_experience,
			partner_profiles.base_price AS partner_base_price, partner_profiles.is_featured AS partner_is_featured,
			users.first_name AS partner_first_name, users.last_name AS partner_last_name,
			users.city AS partner_city, users.phone AS partner_phone`).
		Joins("JOIN partner_profiles ON partner_profiles.id = lead_assignments.partner_id").
		Joins("JOIN users ON users.id = partner_profiles.user_id").
		Where("lead_assignments.inquiry_id = ? AND lead_assignments.is_responded = ?", inquiryID, true).
		Order("lead_assignments.updated_at ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *LeadRepository) ListByPartner(ctx context.Context, partnerID uuid.UUID, limit, offset int) ([]AssignedLead, error) {
	var rows []AssignedLead
	err := r.db.WithContext(ctx).
		Table("lead_assignments").
		Select(`lead_assignments.id, lead_assignments.inquiry_id, lead_assignments.is_responded,
			lead_assignments.response_message, lead_assignments.quoted_price,
			lead_assignments.created_at AS assigned_at,
			inquiries.category, inquiries.event_date, inquiries.budget, inquiries.city,
			inquiries.description, inquiries.reference_image_url, inquiries.status AS inquiry_status,
			users.first_name AS client_first_name, users.last_name AS client_last_name,
			users.email AS client_email, users.phone AS client_phone`).
		Joins("JOIN inquiries ON inquiries.id = lead_assignments.inquiry_id").
		Joins("JOIN users ON users.id = inquiries.client_id").
		Where("lead_assignments.partner_id = ?", partnerID).
		Order("lead_assignments.created_at DESC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	return rows, err
}
