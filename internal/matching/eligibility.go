// Package matching decides which partners receive a lead for an inquiry.
//
// Eligibility is computed in two phases that must stay separate:
//
//  1. Broad: a verified partner whose user city contains the inquiry city,
//     or whose serialized category list contains the inquiry category, both
//     compared as case-insensitive substrings. Partners with an empty list
//     serve every category and always pass. The repository runs this phase
//     in SQL with ILIKE; BroadMatch is the same predicate in Go.
//  2. Narrow: of the broad candidates, keep those whose parsed category list
//     is empty (serves any category) or contains the category exactly.
//
// Phase 1 favours recall, phase 2 then drops substring false positives such
// as a partner listing only "weddings-abroad" for a "wedding" inquiry.
package matching

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/models"
	"github.com/google/uuid"
)

// Candidate is a verified partner returned by the broad phase.
type Candidate struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	BusinessName      string
	ServiceCategories string
	UserCity          string
}

// BroadMatch reports whether a verified partner passes the broad phase.
func BroadMatch(userCity, serviceCategories, city, category string) bool {
	return containsFold(userCity, city) ||
		containsFold(serviceCategories, category) ||
		IsWildcard(serviceCategories)
}

// EmptyCategoryForms are the stored encodings of an empty category list.
var EmptyCategoryForms = []string{"", "[]", "null"}

// IsWildcard reports whether a stored category list is empty.
func IsWildcard(serviceCategories string) bool {
	raw := strings.TrimSpace(serviceCategories)
	for _, f := range EmptyCategoryForms {
		if raw == f {
			return true
		}
	}
	return false
}

// NarrowMatch applies the exact-membership-or-wildcard phase.
func NarrowMatch(serviceCategories []string, category string) bool {
	if len(serviceCategories) == 0 {
		return true
	}
	for _, c := range serviceCategories {
		if c == category {
			return true
		}
	}
	return false
}

// ParseCategories decodes the stored JSON list. Blank and "null" decode
// to an empty list.
func ParseCategories(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("invalid service categories %q: %w", raw, err)
	}
	return out, nil
}

// EncodeCategories is the inverse of ParseCategories.
func EncodeCategories(categories []models.Category) string {
	if categories == nil {
		categories = []models.Category{}
	}
	b, _ := json.Marshal(categories)
	return string(b)
}

// LikePattern builds a %substring% pattern with LIKE metacharacters escaped,
// so the SQL phase matches literal substrings like BroadMatch does.
func LikePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
