package matching

import "log/slog"

// Rejection explains why a broad candidate was dropped.
type Rejection struct {
	Candidate Candidate
	Reason    string
}

// Selection is the narrow phase outcome for one inquiry.
type Selection struct {
	Eligible []Candidate
	Rejected []Rejection
}

// Select runs the narrow phase over broad candidates. A candidate whose
// category list cannot be decoded is rejected rather than treated as a
// wildcard.
func Select(candidates []Candidate, category string) Selection {
	var sel Selection
	for _, c := range candidates {
		cats, err := ParseCategories(c.ServiceCategories)
		if err != nil {
			slog.Warn("skipping partner with unreadable categories", "partner_id", c.ID.String(), "error", err)
			sel.Rejected = append(sel.Rejected, Rejection{Candidate: c, Reason: "invalid_categories"})
			continue
		}
		if !NarrowMatch(cats, category) {
			sel.Rejected = append(sel.Rejected, Rejection{Candidate: c, Reason: "category_mismatch"})
			continue
		}
		sel.Eligible = append(sel.Eligible, c)
	}
	return sel
}
