package services

import (
	"context"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/matching"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/models"
	"github.com/google/uuid"
)

// AssignmentOutcome is the result of creating one lead.
type AssignmentOutcome struct {
	PartnerID uuid.UUID
	LeadID    uuid.UUID
	Err       error
}

// AssignmentBatch holds one outcome per eligible partner, in input order.
type AssignmentBatch struct {
	Outcomes []AssignmentOutcome
}

func (b AssignmentBatch) Created() int {
	n := 0
	for _, o := range b.Outcomes {
		if o.Err == nil {
			n++
		}
	}
	return n
}

func (b AssignmentBatch) Failed() int {
	return len(b.Outcomes) - b.Created()
}

// assignLeads writes one lead per candidate. Each write stands alone: a
// failure is recorded in its outcome and the loop continues.
func assignLeads(ctx context.Context, leads LeadRepository, inquiryID uuid.UUID, eligible []matching.Candidate) AssignmentBatch {
	batch := AssignmentBatch{Outcomes: make([]AssignmentOutcome, 0, len(eligible))}
	for _, c := range eligible {
		lead := &models.LeadAssignment{
			ID:        uuid.New(),
			InquiryID: inquiryID,
			PartnerID: c.ID,
		}
		out := AssignmentOutcome{PartnerID: c.ID, LeadID: lead.ID}
		if err := leads.Create(ctx, lead); err != nil {
			out.Err = err
			metrics.LeadAssignments.WithLabelValues("failed").Inc()
			slog.Error("lead assignment failed",
				"inquiry_id", inquiryID.String(),
				"partner_id", c.ID.String(),
				"action", "lead_assign",
				"error", err,
			)
		} else {
			metrics.LeadAssignments.WithLabelValues("created").Inc()
		}
		batch.Outcomes = append(batch.Outcomes, out)
	}
	return batch
}
