package repository

import (
	"context"
	"time"

	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// DashboardCounts are the admin KPIs. The New* fields count rows created
// at or after the cutoff passed to DashboardCounts.
type DashboardCounts struct {
	Clients              int64
	Partners             int64
	PendingVerifications int64
	FeaturedPartners     int64
	Inquiries            int64
	Leads                int64
	RespondedLeads       int64
	NewClients           int64
	NewPartners          int64
	NewInquiries         int64
}

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// DashboardCounts runs the count queries concurrently and fails on the
// first error.
func (r *StatsRepository) DashboardCounts(ctx context.Context, since time.Time) (DashboardCounts, error) {
	var out DashboardCounts
	g, ctx := errgroup.WithContext(ctx)

	count := func(dst *int64, model interface{}, query string, args ...interface{}) {
		g.Go(func() error {
			q := r.db.WithContext(ctx).Model(model)
			if query != "" {
				q = q.Where(query, args...)
			}
			return q.Count(dst).Error
		})
	}

	count(&out.Clients, &models.User{}, "role = ?", models.RoleClient)
	count(&out.Partners, &models.User{}, "role = ?", models.RolePartner)
	count(&out.NewClients, &models.User{}, "role = ? AND created_at >= ?", models.RoleClient, since)
	count(&out.NewPartners, &models.User{}, "role = ? AND created_at >= ?", models.RolePartner, since)
	count(&out.PendingVerifications, &models.PartnerProfile{}, "verification_status = ?", models.VerificationPending)
	count(&out.FeaturedPartners, &models.PartnerProfile{}, "is_featured = ?", true)
	count(&out.Inquiries, &models.Inquiry{}, "")
	count(&out.NewInquiries, &models.Inquiry{}, "created_at >= ?", since)
	count(&out.Leads, &models.LeadAssignment{}, "")
	count(&out.RespondedLeads, &models.LeadAssignment{}, "is_responded = ?", true)

	if err := g.Wait(); err != nil {
		return DashboardCounts{}, err
	}
	return out, nil
}
