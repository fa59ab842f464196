package dto

import "github.com/ahmetcoskunkizilkaya/pixisphere/internal/repository"

type RespondLeadRequest struct {
	ResponseMessage string   `json:"responseMessage"`
	QuotedPrice     *float64 `json:"quotedPrice"`
}

type LeadListResponse struct {
	Leads []repository.AssignedLead `json:"leads"`
	Page  int                       `json:"page"`
	Limit int                       `json:"limit"`
}
