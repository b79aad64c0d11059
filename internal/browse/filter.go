// Package browse serves the public marketplace view: available listings,
// narrowed by a category and a free-text search.
package browse

import (
	"strings"

	"wasteloop-backend/internal/models"
)

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll = "all"

// Filter narrows listings by category and free-text query. Category is an
// exact match (or CategoryAll for no-op); the query matches case-insensitively
// as a substring of title, description or location, with an empty query
// retaining everything. The input's relative order is preserved and the input
// slice is never mutated, so filtering an already-filtered result with the
// same criteria returns the same sequence.
func Filter(listings []models.WasteListing, category, query string) []models.WasteListing {
	filtered := listings

	if category != "" && category != CategoryAll {
		matched := make([]models.WasteListing, 0, len(filtered))
		for _, l := range filtered {
			if l.Category == category {
				matched = append(matched, l)
			}
		}
		filtered = matched
	}

	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		matched := make([]models.WasteListing, 0, len(filtered))
		for _, l := range filtered {
			if containsFold(l.Title, q) || containsFold(l.Description, q) || containsFold(l.Location, q) {
				matched = append(matched, l)
			}
		}
		filtered = matched
	}

	return filtered
}

// containsFold reports whether s contains the already-lowercased substr.
// Empty optional fields simply never match.
func containsFold(s, substr string) bool {
	return s != "" && strings.Contains(strings.ToLower(s), substr)
}
