package repository

import (
	"context"
	"time"

	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/matching"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const partnerListingColumns = `partner_profiles.id, partner_profiles.user_id, partner_profiles.business_name,
partner_profiles.description, partner_profiles.experience, partner_profiles.base_price,
partner_profiles.service_categories, partner_profiles.verification_status,
partner_profiles.verification_comment, partner_profiles.is_featured, partner_profiles.created_at,
users.email, users.first_name, users.last_name, users.phone, users.city`

type PartnerRepository struct {
	db *gorm.DB
}

func NewPartnerRepository(db *gorm.DB) *PartnerRepository {
	return &PartnerRepository{db: db}
}

func (r *PartnerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.PartnerProfile, error) {
	var p models.PartnerProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *PartnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.PartnerProfile, error) {
	var p models.PartnerProfile
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *PartnerRepository) Create(ctx context.Context, p *models.PartnerProfile) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

// UpdateDetails writes the partner-editable fields only; verification
// status and the featured flag are left to admins.
func (r *PartnerRepository) UpdateDetails(ctx context.Context, p *models.PartnerProfile) error {
	p.UpdatedAt = time.Now()
	return translate(r.db.WithContext(ctx).Model(p).
		Select("business_name", "description", "experience", "base_price",
			"service_categories", "aadhar_number", "pan_number", "gst_number", "updated_at").
		Updates(p).Error)
}

// FindBroadCandidates runs the broad matching phase in one read:
// verified partners whose user city ILIKE %city%, whose category list
// ILIKE %category%, or whose category list is empty.
func (r *PartnerRepository) FindBroadCandidates(ctx context.Context, city, category string) ([]matching.Candidate, error) {
	var rows []matching.Candidate
	err := r.db.WithContext(ctx).
		Table("partner_profiles").
		Select("partner_profiles.id, partner_profiles.user_id, partner_profiles.business_name, partner_profiles.service_categories, users.city AS user_city").
		Joins("JOIN users ON users.id = partner_profiles.user_id AND users.deleted_at IS NULL").
		Where(`partner_profiles.verification_status = ? AND (users.city ILIKE ? OR partner_profiles.service_categories ILIKE ?
			OR partner_profiles.service_categories IS NULL OR TRIM(partner_profiles.service_categories) IN ?)`,
			models.VerificationVerified, matching.LikePattern(city), matching.LikePattern(category), matching.EmptyCategoryForms).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListVerified returns verified partners, featured first. Empty filters
// are ignored; set filters are AND-ed substring matches.
func (r *PartnerRepository) ListVerified(ctx context.Context, category, city string, limit, offset int) ([]PartnerListing, error) {
	q := r.listing(ctx).Where("partner_profiles.verification_status = ?", models.VerificationVerified)
	if category != "" {
		q = q.Where("partner_profiles.service_categories ILIKE ?", matching.LikePattern(category))
	}
	if city != "" {
		q = q.Where("users.city ILIKE ?", matching.LikePattern(city))
	}

	var rows []PartnerListing
	err := q.Order("partner_profiles.is_featured DESC, partner_profiles.created_at DESC").
		Limit(limit).Offset(offset).Scan(&rows).Error
	return rows, err
}

func (r *PartnerRepository) ListPending(ctx context.Context, limit, offset int) ([]PartnerListing, error) {
	var rows []PartnerListing
	err := r.listing(ctx).
		Where("partner_profiles.verification_status = ?", models.VerificationPending).
		Order("partner_profiles.created_at DESC").
		Limit(limit).Offset(offset).Scan(&rows).Error
	return rows, err
}

func (r *PartnerRepository) UpdateVerification(ctx context.Context, id uuid.UUID, status models.VerificationStatus, comment string) error {
	result := r.db.WithContext(ctx).Model(&models.PartnerProfile{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"verification_status":  status,
			"verification_comment": comment,
			"updated_at":           time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FindVerifiedListing loads one verified partner for the public page.
func (r *PartnerRepository) FindVerifiedListing(ctx context.Context, id uuid.UUID) (*PartnerListing, error) {
	var row PartnerListing
	result := r.listing(ctx).
		Where("partner_profiles.id = ? AND partner_profiles.verification_status = ?", id, models.VerificationVerified).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &row, nil
}

// SetFeatured sets the featured flag, or flips it when featured is nil.
func (r *PartnerRepository) SetFeatured(ctx context.Context, id uuid.UUID, featured *bool) error {
	var value interface{} = gorm.Expr("NOT is_featured")
	if featured != nil {
		value = *featured
	}
	result := r.db.WithContext(ctx).Model(&models.PartnerProfile{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_featured": value,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PartnerRepository) listing(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("partner_profiles").
		Select(partnerListingColumns).
		Joins("JOIN users ON users.id = partner_profiles.user_id AND users.deleted_at IS NULL")
}
