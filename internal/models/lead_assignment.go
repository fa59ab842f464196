package models

import (
	"time"

	"github.com/google/uuid"
)

// LeadAssignment pairs one inquiry with one candidate partner profile.
type LeadAssignment struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	InquiryID       uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_lead_inquiry_partner" json:"inquiryId"`
	PartnerID       uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_lead_inquiry_partner" json:"partnerId"`
	IsResponded     bool           `gorm:"not null;default:false" json:"isResponded"`
	ResponseMessage string         `gorm:"type:text" json:"responseMessage,omitempty"`
	QuotedPrice     *float64       `gorm:"type:numeric(10,2)" json:"quotedPrice,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	Inquiry         Inquiry        `gorm:"foreignKey:InquiryID" json:"-"`
	Partner         PartnerProfile `gorm:"foreignKey:PartnerID" json:"-"`
}
