package services

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/matching"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/models"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

type fakeUsers struct {
	mu        sync.Mutex
	byID      map[uuid.UUID]*models.User
	findErr   error
	createErr error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[uuid.UUID]*models.User{}}
}

func (f *fakeUsers) add(u *models.User) *models.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	f.byID[u.ID] = u
	return u
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUsers) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) Create(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	u.CreatedAt = time.Now()
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

type fakePartner struct {
	profile models.PartnerProfile
	city    string
}

type fakePartners struct {
	mu       sync.Mutex
	byID     map[uuid.UUID]*fakePartner
	broadErr error
}

func newFakePartners() *fakePartners {
	return &fakePartners{byID: map[uuid.UUID]*fakePartner{}}
}

func (f *fakePartners) add(city string, status models.VerificationStatus, categories ...models.Category) *models.PartnerProfile {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := &fakePartner{
		profile: models.PartnerProfile{
			ID:                 uuid.New(),
			UserID:             uuid.New(),
			BusinessName:       city + " studio",
			ServiceCategories:  matching.EncodeCategories(categories),
			VerificationStatus: status,
		},
		city: city,
	}
	f.byID[p.profile.ID] = p
	cp := p.profile
	return &cp
}

func (f *fakePartners) FindByUserID(_ context.Context, userID uuid.UUID) (*models.PartnerProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.byID {
		if p.profile.UserID == userID {
			cp := p.profile
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakePartners) FindByID(_ context.Context, id uuid.UUID) (*models.PartnerProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := p.profile
	return &cp, nil
}

func (f *fakePartners) Create(_ context.Context, p *models.PartnerProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[p.ID] = &fakePartner{profile: *p}
	return nil
}

func (f *fakePartners) UpdateDetails(_ context.Context, p *models.PartnerProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.byID[p.ID]
	if !ok {
		return repository.ErrNotFound
	}
	status, featured := stored.profile.VerificationStatus, stored.profile.IsFeatured
	stored.profile = *p
	stored.profile.VerificationStatus, stored.profile.IsFeatured = status, featured
	return nil
}

func (f *fakePartners) FindBroadCandidates(_ context.Context, city, category string) ([]matching.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.broadErr != nil {
		return nil, f.broadErr
	}
	var out []matching.Candidate
	for _, p := range f.byID {
		if p.profile.VerificationStatus != models.VerificationVerified {
			continue
		}
		if !matching.BroadMatch(p.city, p.profile.ServiceCategories, city, category) {
			continue
		}
		out = append(out, matching.Candidate{
			ID:                p.profile.ID,
			UserID:            p.profile.UserID,
			BusinessName:      p.profile.BusinessName,
			ServiceCategories: p.profile.ServiceCategories,
			UserCity:          p.city,
		})
	}
	return out, nil
}

func (f *fakePartners) ListVerified(_ context.Context, category, city string, limit, offset int) ([]repository.PartnerListing, error) {
	return f.list(func(p *fakePartner) bool {
		return p.profile.VerificationStatus == models.VerificationVerified &&
			(category == "" || containsFold(p.profile.ServiceCategories, category)) &&
			(city == "" || containsFold(p.city, city))
	}), nil
}

func (f *fakePartners) ListPending(_ context.Context, limit, offset int) ([]repository.PartnerListing, error) {
	return f.list(func(p *fakePartner) bool {
		return p.profile.VerificationStatus == models.VerificationPending
	}), nil
}

func (f *fakePartners) list(keep func(*fakePartner) bool) []repository.PartnerListing {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []repository.PartnerListing
	for _, p := range f.byID {
		if !keep(p) {
			continue
		}
		out = append(out, repository.PartnerListing{
			ID:                 p.profile.ID,
			UserID:             p.profile.UserID,
			BusinessName:       p.profile.BusinessName,
			ServiceCategories:  p.profile.ServiceCategories,
			VerificationStatus: p.profile.VerificationStatus,
			IsFeatured:         p.profile.IsFeatured,
			Email:              p.city + "@studio.test",
			Phone:              "9999999999",
			City:               p.city,
		})
	}
	return out
}

func (f *fakePartners) UpdateVerification(_ context.Context, id uuid.UUID, status models.VerificationStatus, comment string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.profile.VerificationStatus = status
	p.profile.VerificationComment = comment
	return nil
}

func (f *fakePartners) FindVerifiedListing(_ context.Context, id uuid.UUID) (*repository.PartnerListing, error) {
	rows := f.list(func(p *fakePartner) bool {
		return p.profile.ID == id && p.profile.VerificationStatus == models.VerificationVerified
	})
	if len(rows) == 0 {
		return nil, repository.ErrNotFound
	}
	return &rows[0], nil
}

func (f *fakePartners) SetFeatured(_ context.Context, id uuid.UUID, featured *bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	if featured == nil {
		p.profile.IsFeatured = !p.profile.IsFeatured
	} else {
		p.profile.IsFeatured = *featured
	}
	return nil
}

type fakeInquiries struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*models.Inquiry
}

func newFakeInquiries() *fakeInquiries {
	return &fakeInquiries{byID: map[uuid.UUID]*models.Inquiry{}}
}

func (f *fakeInquiries) status(id uuid.UUID) models.InquiryStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byID[id].Status
}

func (f *fakeInquiries) setStatus(id uuid.UUID, s models.InquiryStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[id].Status = s
}

func (f *fakeInquiries) Create(_ context.Context, inq *models.Inquiry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	inq.CreatedAt = time.Now()
	cp := *inq
	f.byID[inq.ID] = &cp
	return nil
}

func (f *fakeInquiries) FindOwned(_ context.Context, id, clientID uuid.UUID) (*models.Inquiry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inq, ok := f.byID[id]
	if !ok || inq.ClientID != clientID {
		return nil, repository.ErrNotFound
	}
	cp := *inq
	return &cp, nil
}

func (f *fakeInquiries) ListByClient(_ context.Context, clientID uuid.UUID, limit, offset int) ([]repository.InquirySummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []repository.InquirySummary
	for _, inq := range f.byID {
		if inq.ClientID == clientID {
			out = append(out, repository.InquirySummary{Inquiry: *inq})
		}
	}
	return out, nil
}

func (f *fakeInquiries) TransitionStatus(_ context.Context, id uuid.UUID, to models.InquiryStatus) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inq, ok := f.byID[id]
	if !ok || !slices.Contains(models.AllowedFrom(to), inq.Status) {
		return false, nil
	}
	inq.Status = to
	return true, nil
}

type fakeLeads struct {
	mu        sync.Mutex
	byID      map[uuid.UUID]*models.LeadAssignment
	createErr func(*models.LeadAssignment) error
}

func newFakeLeads() *fakeLeads {
	return &fakeLeads{byID: map[uuid.UUID]*models.LeadAssignment{}}
}

func (f *fakeLeads) forInquiry(inquiryID uuid.UUID) []models.LeadAssignment {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.LeadAssignment
	for _, l := range f.byID {
		if l.InquiryID == inquiryID {
			out = append(out, *l)
		}
	}
	return out
}

func (f *fakeLeads) get(id uuid.UUID) models.LeadAssignment {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.byID[id]
}

func (f *fakeLeads) Create(_ context.Context, lead *models.LeadAssignment) error {
	if f.createErr != nil {
		if err := f.createErr(lead); err != nil {
			return err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	lead.CreatedAt = time.Now()
	cp := *lead
	f.byID[lead.ID] = &cp
	return nil
}

func (f *fakeLeads) FindOwned(_ context.Context, id, partnerID uuid.UUID) (*models.LeadAssignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.byID[id]
	if !ok || l.PartnerID != partnerID {
		return nil, repository.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (f *fakeLeads) MarkResponded(_ context.Context, lead *models.LeadAssignment, message string, quotedPrice *float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.byID[lead.ID]
	if !ok || l.PartnerID != lead.PartnerID || l.IsResponded {
		return repository.ErrNotFound
	}
	l.IsResponded = true
	l.ResponseMessage = message
	l.QuotedPrice = quotedPrice
	l.UpdatedAt = time.Now()
	*lead = *l
	return nil
}

func (f *fakeLeads) ListResponses(_ context.Context, inquiryID uuid.UUID) ([]repository.LeadResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []repository.LeadResponse
	for _, l := range f.byID {
		if l.InquiryID == inquiryID && l.IsResponded {
			out = append(out, repository.LeadResponse{
				ID:              l.ID,
				IsResponded:     true,
				ResponseMessage: l.ResponseMessage,
				QuotedPrice:     l.QuotedPrice,
				PartnerID:       l.PartnerID,
			})
		}
	}
	return out, nil
}

func (f *fakeLeads) ListByPartner(_ context.Context, partnerID uuid.UUID, limit, offset int) ([]repository.AssignedLead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []repository.AssignedLead
	for _, l := range f.byID {
		if l.PartnerID == partnerID {
			out = append(out, repository.AssignedLead{ID: l.ID, InquiryID: l.InquiryID, IsResponded: l.IsResponded})
		}
	}
	return out, nil
}

type fakePortfolio struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]*models.PortfolioItem
	listErr error
}

func newFakePortfolio() *fakePortfolio {
	return &fakePortfolio{byID: map[uuid.UUID]*models.PortfolioItem{}}
}

func (f *fakePortfolio) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byID)
}

func (f *fakePortfolio) Create(_ context.Context, item *models.PortfolioItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item.CreatedAt = time.Now()
	cp := *item
	f.byID[item.ID] = &cp
	return nil
}

func (f *fakePortfolio) ListByPartner(_ context.Context, partnerID uuid.UUID) ([]models.PortfolioItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.PortfolioItem
	for _, item := range f.byID {
		if item.PartnerID == partnerID {
			out = append(out, *item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (f *fakePortfolio) FindOwned(_ context.Context, id, partnerID uuid.UUID) (*models.PortfolioItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.byID[id]
	if !ok || item.PartnerID != partnerID {
		return nil, repository.ErrNotFound
	}
	cp := *item
	return &cp, nil
}

func (f *fakePortfolio) Update(_ context.Context, item *models.PortfolioItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.byID[item.ID]
	if !ok || stored.PartnerID != item.PartnerID {
		return repository.ErrNotFound
	}
	cp := *item
	f.byID[item.ID] = &cp
	return nil
}

func (f *fakePortfolio) Delete(_ context.Context, id, partnerID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.byID[id]
	if !ok || item.PartnerID != partnerID {
		return repository.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeStats struct {
	counts repository.DashboardCounts
	since  time.Time
	err    error
}

func (f *fakeStats) DashboardCounts(_ context.Context, since time.Time) (repository.DashboardCounts, error) {
	f.since = since
	return f.counts, f.err
}

var (
	_ UserRepository      = (*fakeUsers)(nil)
	_ PartnerRepository   = (*fakePartners)(nil)
	_ InquiryRepository   = (*fakeInquiries)(nil)
	_ LeadRepository      = (*fakeLeads)(nil)
	_ PortfolioRepository = (*fakePortfolio)(nil)
	_ StatsRepository     = (*fakeStats)(nil)
)

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
