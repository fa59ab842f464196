package handlers

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/dto"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockSignup struct{ mock.Mock }

func (m *mockSignup) RequestSignup(ctx context.Context, req *dto.SignupRequest) (*dto.OTPSentResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.OTPSentResponse)
	return resp, args.Error(1)
}

func (m *mockSignup) VerifySignup(ctx context.Context, req *dto.VerifyOTPRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.AuthResponse)
	return resp, args.Error(1)
}

func (m *mockSignup) RequestOTP(ctx context.Context, req *dto.RequestOTPRequest) (*dto.OTPSentResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.OTPSentResponse)
	return resp, args.Error(1)
}

type mockAuth struct{ mock.Mock }

func (m *mockAuth) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.AuthResponse)
	return resp, args.Error(1)
}

func (m *mockAuth) Profile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	args := m.Called(ctx, userID)
	resp, _ := args.Get(0).(*dto.UserResponse)
	return resp, args.Error(1)
}

type mockInquiries struct{ mock.Mock }

func (m *mockInquiries) SubmitInquiry(ctx context.Context, clientID uuid.UUID, req *dto.SubmitInquiryRequest) (*dto.SubmitInquiryResponse, error) {
	args := m.Called(ctx, clientID, req)
	resp, _ := args.Get(0).(*dto.SubmitInquiryResponse)
	return resp, args.Error(1)
}

func (m *mockInquiries) ListMyInquiries(ctx context.Context, clientID uuid.UUID, page, limit int) (*dto.InquiryListResponse, error) {
	args := m.Called(ctx, clientID, page, limit)
	resp, _ := args.Get(0).(*dto.InquiryListResponse)
	return resp, args.Error(1)
}

func (m *mockInquiries) GetInquiryResponses(ctx context.Context, clientID, inquiryID uuid.UUID) (*dto.InquiryResponsesResponse, error) {
	args := m.Called(ctx, clientID, inquiryID)
	resp, _ := args.Get(0).(*dto.InquiryResponsesResponse)
	return resp, args.Error(1)
}

type mockProfiles struct{ mock.Mock }

func (m *mockProfiles) UpsertProfile(ctx context.Context, userID uuid.UUID, req *dto.PartnerProfileRequest) (*dto.PartnerProfileResponse, bool, error) {
	args := m.Called(ctx, userID, req)
	resp, _ := args.Get(0).(*dto.PartnerProfileResponse)
	return resp, args.Bool(1), args.Error(2)
}

func (m *mockProfiles) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.PartnerProfileResponse, error) {
	args := m.Called(ctx, userID)
	resp, _ := args.Get(0).(*dto.PartnerProfileResponse)
	return resp, args.Error(1)
}

func (m *mockProfiles) Browse(ctx context.Context, category, city string, page, limit int) (*dto.PartnerListResponse, error) {
	args := m.Called(ctx, category, city, page, limit)
	resp, _ := args.Get(0).(*dto.PartnerListResponse)
	return resp, args.Error(1)
}

func (m *mockProfiles) GetPartnerDetails(ctx context.Context, profileID uuid.UUID) (*dto.PartnerDetailsResponse, error) {
	args := m.Called(ctx, profileID)
	resp, _ := args.Get(0).(*dto.PartnerDetailsResponse)
	return resp, args.Error(1)
}

type mockLeads struct{ mock.Mock }

func (m *mockLeads) RespondToLead(ctx context.Context, partnerUserID, leadID uuid.UUID, req *dto.RespondLeadRequest) (*models.LeadAssignment, error) {
	args := m.Called(ctx, partnerUserID, leadID, req)
	lead, _ := args.Get(0).(*models.LeadAssignment)
	return lead, args.Error(1)
}

func (m *mockLeads) ListAssignedLeads(ctx context.Context, partnerUserID uuid.UUID, page, limit int) (*dto.LeadListResponse, error) {
	args := m.Called(ctx, partnerUserID, page, limit)
	resp, _ := args.Get(0).(*dto.LeadListResponse)
	return resp, args.Error(1)
}

type mockPortfolio struct{ mock.Mock }

func (m *mockPortfolio) AddItem(ctx context.Context, partnerUserID uuid.UUID, req *dto.PortfolioItemRequest) (*models.PortfolioItem, error) {
	args := m.Called(ctx, partnerUserID, req)
	item, _ := args.Get(0).(*models.PortfolioItem)
	return item, args.Error(1)
}

func (m *mockPortfolio) ListItems(ctx context.Context, partnerUserID uuid.UUID) (*dto.PortfolioListResponse, error) {
	args := m.Called(ctx, partnerUserID)
	resp, _ := args.Get(0).(*dto.PortfolioListResponse)
	return resp, args.Error(1)
}

func (m *mockPortfolio) UpdateItem(ctx context.Context, partnerUserID, itemID uuid.UUID, req *dto.PortfolioItemRequest) (*models.PortfolioItem, error) {
	args := m.Called(ctx, partnerUserID, itemID, req)
	item, _ := args.Get(0).(*models.PortfolioItem)
	return item, args.Error(1)
}

func (m *mockPortfolio) DeleteItem(ctx context.Context, partnerUserID, itemID uuid.UUID) error {
	return m.Called(ctx, partnerUserID, itemID).Error(0)
}

type mockVerifier struct{ mock.Mock }

func (m *mockVerifier) ListPendingVerifications(ctx context.Context, page, limit int) (*dto.PartnerListResponse, error) {
	args := m.Called(ctx, page, limit)
	resp, _ := args.Get(0).(*dto.PartnerListResponse)
	return resp, args.Error(1)
}

func (m *mockVerifier) VerifyPartner(ctx context.Context, adminID, profileID uuid.UUID, req *dto.VerifyPartnerRequest) (*dto.PartnerProfileResponse, error) {
	args := m.Called(ctx, adminID, profileID, req)
	resp, _ := args.Get(0).(*dto.PartnerProfileResponse)
	return resp, args.Error(1)
}

func (m *mockVerifier) PromotePartner(ctx context.Context, adminID, profileID uuid.UUID, req *dto.PromotePartnerRequest) (*dto.PartnerProfileResponse, error) {
	args := m.Called(ctx, adminID, profileID, req)
	resp, _ := args.Get(0).(*dto.PartnerProfileResponse)
	return resp, args.Error(1)
}

func (m *mockVerifier) DashboardKPIs(ctx context.Context) (*dto.DashboardKPIs, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(*dto.DashboardKPIs)
	return resp, args.Error(1)
}
