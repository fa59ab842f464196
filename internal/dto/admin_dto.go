package dto

// PromotePartnerRequest sets the featured flag. A missing isFeatured flips it.
type PromotePartnerRequest struct {
	IsFeatured *bool `json:"isFeatured"`
}

type UserKPIs struct {
	Clients  int64 `json:"clients"`
	Partners int64 `json:"partners"`
	Total    int64 `json:"total"`
}

type PartnerKPIs struct {
	PendingVerification int64 `json:"pendingVerification"`
	Featured            int64 `json:"featured"`
}

type InquiryKPIs struct {
	Total  int64 `json:"total"`
	Recent int64 `json:"recent"`
}

type LeadKPIs struct {
	Total     int64 `json:"total"`
	Responded int64 `json:"responded"`
}

type RecentActivity struct {
	NewClients   int64 `json:"newClients"`
	NewPartners  int64 `json:"newPartners"`
	NewInquiries int64 `json:"newInquiries"`
	WindowDays   int   `json:"windowDays"`
}

type DashboardKPIs struct {
	Users          UserKPIs       `json:"totalUsers"`
	Partners       PartnerKPIs    `json:"partners"`
	Inquiries      InquiryKPIs    `json:"inquiries"`
	Leads          LeadKPIs       `json:"leads"`
	RecentActivity RecentActivity `json:"recentActivity"`
}
