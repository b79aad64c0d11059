package browse

import (
	"context"

	"wasteloop-backend/internal/models"
	"wasteloop-backend/internal/store"
)

// Service loads the browse view. Each call fetches a fresh snapshot; nothing
// is cached across requests.
type Service struct {
	Listings store.ListingStore
}

// Result is the filtered listing sequence plus its count, as the
// presentation layer renders it.
type Result struct {
	Listings []models.WasteListing `json:"listings"`
	Count    int                   `json:"count"`
}

// Browse fetches all available listings newest-first and applies the
// category/search filter.
func (s *Service) Browse(ctx context.Context, category, query string) (*Result, error) {
	listings, err := s.Listings.Query(ctx, store.ListingFilter{Status: models.StatusAvailable}, "-created_date", 0)
	if err != nil {
		return nil, err
	}
	filtered := Filter(listings, category, query)
	return &Result{Listings: filtered, Count: len(filtered)}, nil
}
