// Package settlement records a completed exchange: one transaction row for
// the providing side, and the listing moved forward to completed.
package settlement

import (
	"context"

	"wasteloop-backend/internal/models"
	"wasteloop-backend/internal/store"

	"github.com/google/uuid"
)

type Service struct {
	Listings     store.ListingStore
	Transactions store.TransactionStore
}

type RecordInput struct {
	ListingID         uuid.UUID
	QuantityExchanged float64 // metric tons
	CO2Saved          float64 // kilograms
}

// Record settles an exchange against a listing. The transaction is
// attributed to the listing owner as provider. The listing advances through
// matched to completed; a listing that already completed is rejected.
func (s *Service) Record(ctx context.Context, in RecordInput) (*models.Transaction, error) {
	listing, err := s.Listings.Get(ctx, in.ListingID)
	if err != nil {
		return nil, err
	}
	if listing.Status == models.StatusCompleted {
		return nil, &store.ValidationError{Field: "status", Reason: "listing already completed"}
	}

	tx := &models.Transaction{
		ProviderEmail:     listing.CreatedBy,
		QuantityExchanged: in.QuantityExchanged,
		CO2Saved:          in.CO2Saved,
	}
	if err := s.Transactions.Create(ctx, tx); err != nil {
		return nil, err
	}

	if listing.Status == models.StatusAvailable {
		if _, err := s.Listings.UpdateStatus(ctx, listing.ListingID, models.StatusMatched); err != nil {
			return nil, err
		}
	}
	if _, err := s.Listings.UpdateStatus(ctx, listing.ListingID, models.StatusCompleted); err != nil {
		return nil, err
	}
	return tx, nil
}
