package dto

import "github.com/ahmetcoskunkizilkaya/pixisphere/internal/models"

type PortfolioItemRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ImageURL     string `json:"imageUrl"`
	Category     string `json:"category"`
	DisplayOrder *int   `json:"displayOrder"`
}

type PortfolioListResponse struct {
	Items []models.PortfolioItem `json:"portfolioItems"`
}

// PartnerDetailsResponse is the public partner page. Contact fields of the
// owner are not included.
type PartnerDetailsResponse struct {
	Partner   PartnerCard            `json:"partner"`
	Portfolio []models.PortfolioItem `json:"portfolio"`
}
