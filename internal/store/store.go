// Package store is the entity access layer: one typed repository per domain
// entity. Query filters are exact-equality, AND-combined across the set
// fields; a sort key of the form "-field" means descending, a bare field
// ascending; limit 0 means unbounded. The common call across the app is
// Query(filter, "-created_date", n) — newest first.
package store

import (
	"context"
	"fmt"
	"strings"

	"wasteloop-backend/internal/models"

	"github.com/google/uuid"
)

// ListingFilter selects waste listings. Zero-valued fields are not applied.
type ListingFilter struct {
	Status    string
	CreatedBy string
	Category  string
}

// InterestFilter selects interests. Zero-valued fields are not applied.
type InterestFilter struct {
	CreatedBy string
	ListingID uuid.UUID
}

// TransactionFilter selects settled transactions.
type TransactionFilter struct {
	ProviderEmail string
}

type ListingStore interface {
	// Create persists a new listing and fills in listing_id and
	// created_date. Returns a *ValidationError before touching storage if
	// required fields are absent or quantity is not positive.
	Create(ctx context.Context, l *models.WasteListing) error
	Query(ctx context.Context, f ListingFilter, sortKey string, limit int) ([]models.WasteListing, error)
	Get(ctx context.Context, id uuid.UUID) (*models.WasteListing, error)
	// UpdateStatus moves a listing along its lifecycle. Backward or unknown
	// transitions are rejected with a *ValidationError.
	UpdateStatus(ctx context.Context, id uuid.UUID, next string) (*models.WasteListing, error)
}

type InterestStore interface {
	Create(ctx context.Context, in *models.Interest) error
	Query(ctx context.Context, f InterestFilter, sortKey string, limit int) ([]models.Interest, error)
}

type TransactionStore interface {
	Create(ctx context.Context, tx *models.Transaction) error
	Query(ctx context.Context, f TransactionFilter, sortKey string, limit int) ([]models.Transaction, error)
}

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// orderClause translates a sort key ("-created_date" / "title") into a SQL
// ORDER BY fragment, restricted to the given sortable columns.
func orderClause(sortKey string, sortable map[string]bool) (string, error) {
	if sortKey == "" {
		return "", nil
	}
	field := sortKey
	desc := false
	if strings.HasPrefix(sortKey, "-") {
		field = sortKey[1:]
		desc = true
	}
	if !sortable[field] {
		return "", &ValidationError{Field: "sort", Reason: fmt.Sprintf("cannot sort by %q", field)}
	}
	if desc {
		return field + " DESC", nil
	}
	return field + " ASC", nil
}
