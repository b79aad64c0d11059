// Package interests records expressions of intent against a listing.
package interests

import (
	"context"
	"strings"

	"wasteloop-backend/internal/auth"
	"wasteloop-backend/internal/models"
	"wasteloop-backend/internal/store"

	"github.com/google/uuid"
)

// RecentCap bounds the "my recent interests" query. The dashboard's match
// count is defined over this capped collection, not the lifetime total.
const RecentCap = 10

type Service struct {
	Listings  store.ListingStore
	Interests store.InterestStore
}

// Express records a single interest in a listing. The listing is looked up
// only to snapshot its title; its current status is deliberately not
// re-validated, so an interest can land on a listing that was matched or
// closed since the actor last saw it. Re-validation is a policy decision for
// the owning team.
//
// Repeated interests from the same actor on the same listing are allowed;
// each call creates a new immutable record.
func (s *Service) Express(ctx context.Context, actor *auth.Actor, listingID uuid.UUID, message string) (*models.Interest, error) {
	if actor == nil {
		return nil, store.ErrUnauthenticated
	}

	listing, err := s.Listings.Get(ctx, listingID)
	if err != nil {
		return nil, err
	}

	interest := &models.Interest{
		ListingID:         listing.ListingID,
		ListingTitle:      listing.Title,
		Message:           strings.TrimSpace(message),
		InterestedCompany: actor.Company(),
		CreatedBy:         actor.Email,
	}
	if err := s.Interests.Create(ctx, interest); err != nil {
		return nil, err
	}
	return interest, nil
}

// Recent returns the actor's most recent interests, newest first, capped at
// RecentCap entries.
func (s *Service) Recent(ctx context.Context, actor *auth.Actor) ([]models.Interest, error) {
	if actor == nil {
		return nil, store.ErrUnauthenticated
	}
	return s.Interests.Query(ctx, store.InterestFilter{CreatedBy: actor.Email}, "-created_date", RecentCap)
}
