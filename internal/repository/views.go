package repository

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/models"
	"github.com/google/uuid"
)

// InquirySummary is a client's inquiry with its responded-lead count.
type InquirySummary struct {
	models.Inquiry `gorm:"embedded"`
	ResponseCount  int64 `json:"responseCount"`
}

// LeadResponse is a responded lead joined with partner display fields.
type LeadResponse struct {
	ID                  uuid.UUID `json:"id"`
	IsResponded         bool      `json:"isResponded"`
	ResponseMessage     string    `json:"responseMessage"`
	QuotedPrice         *float64  `json:"quotedPrice,omitempty"`
	RespondedAt         time.Time `json:"respondedAt"`
	PartnerID           uuid.UUID `json:"partnerId"`
	PartnerBusinessName string    `json:"partnerBusinessName"`
	PartnerDescription  string    `json:"partnerDescription,omitempty"`
	PartnerExperience   int       `json:"partnerExperience"`
	PartnerBasePrice    *float64  `json:"partnerBasePrice,omitempty"`
	PartnerIsFeatured   bool      `json:"partnerIsFeatured"`
	PartnerFirstName    string    `json:"partnerFirstName,omitempty"`
	PartnerLastName     string    `json:"partnerLastName,omitempty"`
	PartnerCity         string    `json:"partnerCity,omitempty"`
	PartnerPhone        string    `json:"partnerPhone,omitempty"`
}

// AssignedLead is a partner's lead joined with the inquiry and client contact.
type AssignedLead struct {
	ID                uuid.UUID            `json:"id"`
	InquiryID         uuid.UUID            `json:"inquiryId"`
	IsResponded       bool                 `json:"isResponded"`
	ResponseMessage   string               `json:"responseMessage,omitempty"`
	QuotedPrice       *float64             `json:"quotedPrice,omitempty"`
	AssignedAt        time.Time            `json:"assignedAt"`
	Category          models.Category      `json:"category"`
	EventDate         *time.Time           `json:"eventDate,omitempty"`
	Budget            *float64             `json:"budget,omitempty"`
	City              string               `json:"city"`
	Description       string               `json:"description,omitempty"`
	ReferenceImageURL string               `json:"referenceImageUrl,omitempty"`
	InquiryStatus     models.InquiryStatus `json:"inquiryStatus"`
	ClientFirstName   string               `json:"clientFirstName,omitempty"`
	ClientLastName    string               `json:"clientLastName,omitempty"`
	ClientEmail       string               `json:"clientEmail"`
	ClientPhone       string               `json:"clientPhone,omitempty"`
}

// PartnerListing is a partner profile joined with owner display fields.
type PartnerListing struct {
	ID                  uuid.UUID                 `json:"id"`
	UserID              uuid.UUID                 `json:"userId"`
	BusinessName        string                    `json:"businessName"`
	Description         string                    `json:"description,omitempty"`
	Experience          int                       `json:"experience"`
	BasePrice           *float64                  `json:"basePrice,omitempty"`
	ServiceCategories   string                    `json:"-"`
	VerificationStatus  models.VerificationStatus `json:"verificationStatus"`
	VerificationComment string                    `json:"verificationComment,omitempty"`
	IsFeatured          bool                      `json:"isFeatured"`
	CreatedAt           time.Time                 `json:"createdAt"`
	Email               string                    `json:"email,omitempty"`
	FirstName           string                    `json:"firstName,omitempty"`
	LastName            string                    `json:"lastName,omitempty"`
	Phone               string                    `json:"phone,omitempty"`
	City                string                    `json:"city,omitempty"`
}
