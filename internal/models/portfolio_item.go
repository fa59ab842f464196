package models

import (
	"time"

	"github.com/google/uuid"
)

// PortfolioItem is one showcased shot on a partner's public page.
type PortfolioItem struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PartnerID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"partnerId"`
	Title        string         `gorm:"size:255;not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description,omitempty"`
	ImageURL     string         `gorm:"size:500;not null" json:"imageUrl"`
	Category     Category       `gorm:"size:20;not null" json:"category"`
	DisplayOrder int            `gorm:"not null;default:0" json:"displayOrder"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	Partner      PartnerProfile `gorm:"foreignKey:PartnerID" json:"-"`
}
