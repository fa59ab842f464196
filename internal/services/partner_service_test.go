package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/dto"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/models"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertProfile_CreateThenUpdate(t *testing.T) {
	partners := newFakePartners()
	svc := NewPartnerService(partners, newFakePortfolio())
	userID := uuid.New()
	ctx := context.Background()

	created, isNew, err := svc.UpsertProfile(ctx, userID, &dto.PartnerProfileRequest{
		BusinessName:      "Lens & Light",
		ServiceCategories: []string{"wedding", "portrait"},
	})
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.Equal(t, models.VerificationPending, created.VerificationStatus)
	assert.Equal(t, []string{"wedding", "portrait"}, created.ServiceCategories)

	require.NoError(t, partners.UpdateVerification(ctx, created.ID, models.VerificationVerified, ""))

	updated, isNew, err := svc.UpsertProfile(ctx, userID, &dto.PartnerProfileRequest{
		BusinessName:      "Lens and Light",
		ServiceCategories: nil,
	})
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, []string{}, updated.ServiceCategories)

	got, err := svc.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Lens and Light", got.BusinessName)
	assert.Equal(t, models.VerificationVerified, got.VerificationStatus)
}

func TestUpsertProfile_Validation(t *testing.T) {
	svc := NewPartnerService(newFakePartners(), newFakePortfolio())

	_, _, err := svc.UpsertProfile(context.Background(), uuid.New(), &dto.PartnerProfileRequest{BusinessName: ""})
	assert.ErrorIs(t, err, ErrValidation)

	_, _, err = svc.UpsertProfile(context.Background(), uuid.New(), &dto.PartnerProfileRequest{
		BusinessName:      "Studio",
		ServiceCategories: []string{"drone"},
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetProfile_NotFound(t *testing.T) {
	svc := NewPartnerService(newFakePartners(), newFakePortfolio())

	_, err := svc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestBrowse(t *testing.T) {
	partners := newFakePartners()
	partners.add("Mumbai", models.VerificationVerified, models.CategoryWedding)
	partners.add("Pune", models.VerificationVerified, models.CategoryFashion)
	partners.add("Mumbai", models.VerificationPending, models.CategoryWedding)
	svc := NewPartnerService(partners, newFakePortfolio())

	all, err := svc.Browse(context.Background(), "", "", 1, 20)
	require.NoError(t, err)
	assert.Len(t, all.Partners, 2)

	filtered, err := svc.Browse(context.Background(), "wedding", "mumbai", 1, 20)
	require.NoError(t, err)
	require.Len(t, filtered.Partners, 1)
	assert.Equal(t, []string{"wedding"}, filtered.Partners[0].ServiceCategories)

	_, err = svc.Browse(context.Background(), "drone", "", 1, 20)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestVerifyPartner(t *testing.T) {
	partners := newFakePartners()
	p := partners.add("Mumbai", models.VerificationPending, models.CategoryWedding)
	svc := NewAdminService(partners, &fakeStats{})
	ctx := context.Background()

	pending, err := svc.ListPendingVerifications(ctx, 1, 20)
	require.NoError(t, err)
	assert.Len(t, pending.Partners, 1)

	got, err := svc.VerifyPartner(ctx, uuid.New(), p.ID, &dto.VerifyPartnerRequest{Status: "verified", Comment: "docs ok"})
	require.NoError(t, err)
	assert.Equal(t, models.VerificationVerified, got.VerificationStatus)
	assert.Equal(t, "docs ok", got.VerificationComment)

	_, err = svc.VerifyPartner(ctx, uuid.New(), p.ID, &dto.VerifyPartnerRequest{Status: "pending"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.VerifyPartner(ctx, uuid.New(), uuid.New(), &dto.VerifyPartnerRequest{Status: "rejected"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVerifiedPartnerBecomesEligible(t *testing.T) {
	f := newInquiryFixture(false)
	p := f.partners.add("Mumbai", models.VerificationPending, models.CategoryWedding)
	admin := NewAdminService(f.partners, &fakeStats{})
	ctx := context.Background()

	before, err := f.svc.SubmitInquiry(ctx, uuid.New(), &dto.SubmitInquiryRequest{Category: "wedding", City: "Mumbai"})
	require.NoError(t, err)
	assert.Equal(t, 0, before.AssignedPartners)

	_, err = admin.VerifyPartner(ctx, uuid.New(), p.ID, &dto.VerifyPartnerRequest{Status: "verified"})
	require.NoError(t, err)

	after, err := f.svc.SubmitInquiry(ctx, uuid.New(), &dto.SubmitInquiryRequest{Category: "wedding", City: "Mumbai"})
	require.NoError(t, err)
	assert.Equal(t, 1, after.AssignedPartners)
	// Earlier inquiries are never back-filled.
	assert.Empty(t, f.leads.forInquiry(before.Inquiry.ID))
}

func TestGetPartnerDetails(t *testing.T) {
	partners := newFakePartners()
	portfolio := newFakePortfolio()
	verified := partners.add("Mumbai", models.VerificationVerified, models.CategoryWedding)
	pending := partners.add("Pune", models.VerificationPending, models.CategoryWedding)
	svc := NewPartnerService(partners, portfolio)
	ctx := context.Background()

	second, first := 2, 1
	require.NoError(t, portfolio.Create(ctx, &models.PortfolioItem{ID: uuid.New(), PartnerID: verified.ID, Title: "Pheras", DisplayOrder: second}))
	require.NoError(t, portfolio.Create(ctx, &models.PortfolioItem{ID: uuid.New(), PartnerID: verified.ID, Title: "Mehendi", DisplayOrder: first}))
	require.NoError(t, portfolio.Create(ctx, &models.PortfolioItem{ID: uuid.New(), PartnerID: pending.ID, Title: "Hidden"}))

	got, err := svc.GetPartnerDetails(ctx, verified.ID)
	require.NoError(t, err)
	assert.Equal(t, verified.ID, got.Partner.ID)
	assert.Equal(t, []string{"wedding"}, got.Partner.ServiceCategories)
	assert.Empty(t, got.Partner.Email)
	assert.Empty(t, got.Partner.Phone)
	require.Len(t, got.Portfolio, 2)
	assert.Equal(t, "Mehendi", got.Portfolio[0].Title)

	_, err = svc.GetPartnerDetails(ctx, pending.ID)
	assert.ErrorIs(t, err, ErrPartnerNotFound)

	_, err = svc.GetPartnerDetails(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetPartnerDetails_EmptyPortfolio(t *testing.T) {
	partners := newFakePartners()
	p := partners.add("Delhi", models.VerificationVerified)
	svc := NewPartnerService(partners, newFakePortfolio())

	got, err := svc.GetPartnerDetails(context.Background(), p.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.Portfolio)
	assert.Empty(t, got.Portfolio)
}

func TestPromotePartner(t *testing.T) {
	partners := newFakePartners()
	p := partners.add("Mumbai", models.VerificationVerified, models.CategoryWedding)
	svc := NewAdminService(partners, &fakeStats{})
	ctx := context.Background()
	on, off := true, false

	got, err := svc.PromotePartner(ctx, uuid.New(), p.ID, &dto.PromotePartnerRequest{IsFeatured: &on})
	require.NoError(t, err)
	assert.True(t, got.IsFeatured)

	got, err = svc.PromotePartner(ctx, uuid.New(), p.ID, &dto.PromotePartnerRequest{IsFeatured: &on})
	require.NoError(t, err)
	assert.True(t, got.IsFeatured, "explicit value is idempotent")

	got, err = svc.PromotePartner(ctx, uuid.New(), p.ID, &dto.PromotePartnerRequest{})
	require.NoError(t, err)
	assert.False(t, got.IsFeatured, "missing value flips the flag")

	got, err = svc.PromotePartner(ctx, uuid.New(), p.ID, &dto.PromotePartnerRequest{IsFeatured: &off})
	require.NoError(t, err)
	assert.False(t, got.IsFeatured)

	_, err = svc.PromotePartner(ctx, uuid.New(), uuid.New(), &dto.PromotePartnerRequest{IsFeatured: &on})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestPromotePartner_ShowsInBrowse(t *testing.T) {
	partners := newFakePartners()
	p := partners.add("Mumbai", models.VerificationVerified, models.CategoryWedding)
	admin := NewAdminService(partners, &fakeStats{})
	browse := NewPartnerService(partners, newFakePortfolio())
	ctx := context.Background()

	_, err := admin.PromotePartner(ctx, uuid.New(), p.ID, &dto.PromotePartnerRequest{})
	require.NoError(t, err)

	list, err := browse.Browse(ctx, "", "", 1, 20)
	require.NoError(t, err)
	require.Len(t, list.Partners, 1)
	assert.True(t, list.Partners[0].IsFeatured)
}

func TestDashboardKPIs(t *testing.T) {
	stats := &fakeStats{counts: repository.DashboardCounts{
		Clients: 10, Partners: 4, PendingVerifications: 2, FeaturedPartners: 1,
		Inquiries: 7, NewInquiries: 3, Leads: 15, RespondedLeads: 5,
		NewClients: 6, NewPartners: 1,
	}}
	svc := NewAdminService(newFakePartners(), stats)
	now := time.Date(2026, 5, 31, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	got, err := svc.DashboardKPIs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC), stats.since)
	assert.Equal(t, int64(14), got.Users.Total)
	assert.Equal(t, int64(2), got.Partners.PendingVerification)
	assert.Equal(t, int64(3), got.Inquiries.Recent)
	assert.Equal(t, int64(5), got.Leads.Responded)
	assert.Equal(t, 30, got.RecentActivity.WindowDays)
}

func TestDashboardKPIs_StorageFailure(t *testing.T) {
	svc := NewAdminService(newFakePartners(), &fakeStats{err: errors.New("conn refused")})

	_, err := svc.DashboardKPIs(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
