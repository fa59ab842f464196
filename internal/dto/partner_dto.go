package dto

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/models"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/repository"
	"github.com/google/uuid"
)

type PartnerProfileRequest struct {
	BusinessName      string   `json:"businessName"`
	Description       string   `json:"description"`
	Experience        int      `json:"experience"`
	BasePrice         *float64 `json:"basePrice"`
	ServiceCategories []string `json:"serviceCategories"`
	AadharNumber      string   `json:"aadharNumber"`
	PanNumber         string   `json:"panNumber"`
	GSTNumber         string   `json:"gstNumber"`
}

type PartnerProfileResponse struct {
	ID                  uuid.UUID                 `json:"id"`
	UserID              uuid.UUID                 `json:"userId"`
	BusinessName        string                    `json:"businessName"`
	Description         string                    `json:"description,omitempty"`
	Experience          int                       `json:"experience"`
	BasePrice           *float64                  `json:"basePrice,omitempty"`
	ServiceCategories   []string                  `json:"serviceCategories"`
	VerificationStatus  models.VerificationStatus `json:"verificationStatus"`
	VerificationComment string                    `json:"verificationComment,omitempty"`
	IsFeatured          bool                      `json:"isFeatured"`
	CreatedAt           time.Time                 `json:"createdAt"`
	UpdatedAt           time.Time                 `json:"updatedAt"`
}

// PartnerCard is a browse or admin listing row with decoded categories.
type PartnerCard struct {
	repository.PartnerListing
	ServiceCategories []string `json:"serviceCategories"`
}

type PartnerListResponse struct {
	Partners []PartnerCard `json:"partners"`
	Page     int           `json:"page"`
	Limit    int           `json:"limit"`
}

type VerifyPartnerRequest struct {
	Status  string `json:"status"`
	Comment string `json:"comment"`
}
