package dto

import (
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/models"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/repository"
)

type SubmitInquiryRequest struct {
	Category          string   `json:"category"`
	City              string   `json:"city"`
	Budget            *float64 `json:"budget"`
	EventDate         string   `json:"eventDate"`
	Description       string   `json:"description"`
	ReferenceImageURL string   `json:"referenceImageUrl"`
}

type SubmitInquiryResponse struct {
	Inquiry           *models.Inquiry `json:"inquiry"`
	AssignedPartners  int             `json:"assignedPartners"`
	FailedAssignments int             `json:"failedAssignments,omitempty"`
}

type InquiryListResponse struct {
	Inquiries []repository.InquirySummary `json:"inquiries"`
	Page      int                         `json:"page"`
	Limit     int                         `json:"limit"`
}

type InquiryResponsesResponse struct {
	Inquiry   *models.Inquiry           `json:"inquiry"`
	Responses []repository.LeadResponse `json:"responses"`
}
