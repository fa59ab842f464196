package models

import (
	"time"

	"github.com/google/uuid"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// PartnerProfile belongs to exactly one partner user.
// ServiceCategories holds a JSON array of category names; an empty array
// means the partner takes any category.
type PartnerProfile struct {
	ID                  uuid.UUID          `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID              uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex" json:"userId"`
	BusinessName        string             `gorm:"size:255" json:"businessName"`
	Description         string             `gorm:"type:text" json:"description,omitempty"`
	Experience          int                `json:"experience"`
	BasePrice           *float64           `gorm:"type:numeric(10,2)" json:"basePrice,omitempty"`
	ServiceCategories   string             `gorm:"type:text" json:"-"`
	AadharNumber        string             `gorm:"size:12" json:"-"`
	PanNumber           string             `gorm:"size:10" json:"-"`
	GSTNumber           string             `gorm:"size:15" json:"-"`
	VerificationStatus  VerificationStatus `gorm:"size:20;not null;default:'pending';index" json:"verificationStatus"`
	VerificationComment string             `gorm:"type:text" json:"verificationComment,omitempty"`
	IsFeatured          bool               `gorm:"not null;default:false" json:"isFeatured"`
	CreatedAt           time.Time          `json:"createdAt"`
	UpdatedAt           time.Time          `json:"updatedAt"`
	User                User               `gorm:"foreignKey:UserID" json:"-"`
}
