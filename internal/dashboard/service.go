// Package dashboard derives the actor's impact view: their listings, recent
// interests, settled transactions, and the four headline statistics.
package dashboard

import (
	"context"
	"fmt"

	"wasteloop-backend/internal/auth"
	"wasteloop-backend/internal/interests"
	"wasteloop-backend/internal/models"
	"wasteloop-backend/internal/store"

	"golang.org/x/sync/errgroup"
)

type Service struct {
	Listings     store.ListingStore
	Interests    store.InterestStore
	Transactions store.TransactionStore
}

// Stats are pure reductions over the already-fetched collections. Absent
// numeric fields contribute zero, never an error.
type Stats struct {
	ActiveListings    int     `json:"active_listings"`
	TotalMatches      int     `json:"total_matches"`
	WasteRecycledTons float64 `json:"waste_recycled_tons"`
	CO2SavedTons      float64 `json:"co2_saved_tons"`
}

// WasteRecycledDisplay renders the recycled tonnage the way the dashboard
// shows it, e.g. "3.5T".
func (s Stats) WasteRecycledDisplay() string {
	return fmt.Sprintf("%.1fT", s.WasteRecycledTons)
}

// CO2SavedDisplay renders the CO₂ savings in tons, e.g. "0.5T".
func (s Stats) CO2SavedDisplay() string {
	return fmt.Sprintf("%.1fT", s.CO2SavedTons)
}

// Overview is one page view's snapshot: plain data, no UI state.
type Overview struct {
	Listings     []models.WasteListing `json:"listings"`
	Interests    []models.Interest     `json:"interests"`
	Transactions []models.Transaction  `json:"transactions"`
	Stats        Stats                 `json:"stats"`
}

// Load fetches the actor's three collections concurrently and joins them
// before computing stats. The actor must already be resolved — an
// unauthenticated view issues no privileged queries. Each fetch is
// at-most-once; any failure cancels the siblings and surfaces to the caller.
func (s *Service) Load(ctx context.Context, actor *auth.Actor) (*Overview, error) {
	if actor == nil {
		return nil, store.ErrUnauthenticated
	}

	var (
		listings []models.WasteListing
		recent   []models.Interest
		txs      []models.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		listings, err = s.Listings.Query(gctx, store.ListingFilter{CreatedBy: actor.Email}, "-created_date", 0)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = s.Interests.Query(gctx, store.InterestFilter{CreatedBy: actor.Email}, "-created_date", interests.RecentCap)
		return err
	})
	g.Go(func() error {
		var err error
		txs, err = s.Transactions.Query(gctx, store.TransactionFilter{ProviderEmail: actor.Email}, "-created_date", 0)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Overview{
		Listings:     listings,
		Interests:    recent,
		Transactions: txs,
		Stats:        ComputeStats(listings, recent, txs),
	}, nil
}

// ComputeStats reduces the three collections into the headline numbers.
// TotalMatches counts the capped interests collection, not the lifetime
// total — the cap is part of the contract.
func ComputeStats(listings []models.WasteListing, recent []models.Interest, txs []models.Transaction) Stats {
	stats := Stats{TotalMatches: len(recent)}
	for _, l := range listings {
		if l.Status == models.StatusAvailable {
			stats.ActiveListings++
		}
	}
	var co2Kg float64
	for _, t := range txs {
		stats.WasteRecycledTons += t.QuantityExchanged
		co2Kg += t.CO2Saved
	}
	stats.CO2SavedTons = co2Kg / 1000
	return stats
}
