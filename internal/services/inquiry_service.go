package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/dto"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/matching"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/models"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/repository"
	"github.com/google/uuid"
)

const placeholderImageURL = "https://picsum.photos/600/400?random=%d"

type InquiryService struct {
	inquiries  InquiryRepository
	partners   PartnerRepository
	leads      LeadRepository
	mockUpload bool
	now        func() time.Time
}

func NewInquiryService(inquiries InquiryRepository, partners PartnerRepository, leads LeadRepository, mockUpload bool) *InquiryService {
	return &InquiryService{
		inquiries:  inquiries,
		partners:   partners,
		leads:      leads,
		mockUpload: mockUpload,
		now:        time.Now,
	}
}

// SubmitInquiry stores the inquiry and assigns it to every eligible partner
// from a single broad-candidate read. Assignment failures lower the
// reported count but do not fail the call.
func (s *InquiryService) SubmitInquiry(ctx context.Context, clientID uuid.UUID, req *dto.SubmitInquiryRequest) (*dto.SubmitInquiryResponse, error) {
	inq, err := s.buildInquiry(clientID, req)
	if err != nil {
		return nil, err
	}
	if err := s.inquiries.Create(ctx, inq); err != nil {
		return nil, internalErr("create inquiry", err)
	}

	start := time.Now()
	// The inquiry row is already committed. It stays stored with no leads
	// and a client retry creates a second one; the log line lets an
	// operator find and close the first.
	candidates, err := s.partners.FindBroadCandidates(ctx, inq.City, string(inq.Category))
	if err != nil {
		slog.Error("inquiry stored without assignments",
			"inquiry_id", inq.ID.String(),
			"user_id", clientID.String(),
			"error", err,
			"action", "inquiry_submit",
		)
		return nil, internalErr("find candidate partners", err)
	}
	sel := matching.Select(candidates, string(inq.Category))
	batch := assignLeads(ctx, s.leads, inq.ID, sel.Eligible)
	metrics.MatchDuration.Observe(time.Since(start).Seconds())
	metrics.InquiriesSubmitted.WithLabelValues(string(inq.Category)).Inc()

	slog.Info("inquiry submitted",
		"inquiry_id", inq.ID.String(),
		"user_id", clientID.String(),
		"category", inq.Category,
		"candidates", len(candidates),
		"assigned", batch.Created(),
		"failed", batch.Failed(),
		"action", "inquiry_submit",
	)

	return &dto.SubmitInquiryResponse{
		Inquiry:           inq,
		AssignedPartners:  batch.Created(),
		FailedAssignments: batch.Failed(),
	}, nil
}

func (s *InquiryService) ListMyInquiries(ctx context.Context, clientID uuid.UUID, page, limit int) (*dto.InquiryListResponse, error) {
	pg := paginate(page, limit)
	rows, err := s.inquiries.ListByClient(ctx, clientID, pg.limit, pg.offset())
	if err != nil {
		return nil, internalErr("list inquiries", err)
	}
	if rows == nil {
		rows = []repository.InquirySummary{}
	}
	return &dto.InquiryListResponse{Inquiries: rows, Page: pg.page, Limit: pg.limit}, nil
}

// GetInquiryResponses returns the responded leads of an inquiry the client owns.
func (s *InquiryService) GetInquiryResponses(ctx context.Context, clientID, inquiryID uuid.UUID) (*dto.InquiryResponsesResponse, error) {
	inq, err := s.inquiries.FindOwned(ctx, inquiryID, clientID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInquiryNotFound
	}
	if err != nil {
		return nil, internalErr("load inquiry", err)
	}

	responses, err := s.leads.ListResponses(ctx, inq.ID)
	if err != nil {
		return nil, internalErr("list responses", err)
	}
	if responses == nil {
		responses = []repository.LeadResponse{}
	}
	return &dto.InquiryResponsesResponse{Inquiry: inq, Responses: responses}, nil
}

func (s *InquiryService) buildInquiry(clientID uuid.UUID, req *dto.SubmitInquiryRequest) (*models.Inquiry, error) {
	category := models.Category(req.Category)
	if !category.Valid() {
		return nil, validationErr("category must be one of wedding, maternity, portrait, event, commercial, fashion")
	}
	city := strings.TrimSpace(req.City)
	if !lengthBetween(city, 1, 100) {
		return nil, validationErr("city is required and must be at most 100 characters")
	}
	if !optionalLength(req.Description, 1000) {
		return nil, validationErr("description must be at most 1000 characters")
	}
	if req.Budget != nil && *req.Budget < 0 {
		return nil, validationErr("budget cannot be negative")
	}
	eventDate, err := parseEventDate(req.EventDate)
	if err != nil {
		return nil, validationErr("eventDate must be an ISO-8601 date")
	}

	imageURL := strings.TrimSpace(req.ReferenceImageURL)
	switch {
	case imageURL != "":
		if !validAbsoluteURL(imageURL) {
			return nil, validationErr("referenceImageUrl must be an absolute URL")
		}
	case s.mockUpload:
		imageURL = fmt.Sprintf(placeholderImageURL, s.now().UnixMilli())
	}

	return &models.Inquiry{
		ID:                uuid.New(),
		ClientID:          clientID,
		Category:          category,
		EventDate:         eventDate,
		Budget:            req.Budget,
		City:              city,
		Description:       req.Description,
		ReferenceImageURL: imageURL,
		Status:            models.InquiryNew,
	}, nil
}
