// Package listings owns the listing lifecycle: creation by the owner and
// forward-only status transitions. Browsing lives in package browse.
package listings

import (
	"context"
	"encoding/json"

	"wasteloop-backend/internal/auth"
	"wasteloop-backend/internal/models"
	"wasteloop-backend/internal/store"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Service struct {
	Listings store.ListingStore
}

type CreateInput struct {
	Title        string
	Description  string
	Category     string
	Quantity     float64
	Unit         string
	Location     string
	Frequency    string
	Images       []string
	ContactName  string
	ContactEmail string
	ContactPhone string
}

// Create persists a new listing owned by the actor. Contact fields default
// to the actor's own details when left blank; status always starts at
// available.
func (s *Service) Create(ctx context.Context, actor *auth.Actor, in CreateInput) (*models.WasteListing, error) {
	if actor == nil {
		return nil, store.ErrUnauthenticated
	}

	contactName := in.ContactName
	if contactName == "" {
		if actor.FullName != "" {
			contactName = actor.FullName
		} else {
			contactName = actor.CompanyName
		}
	}
	contactEmail := in.ContactEmail
	if contactEmail == "" {
		contactEmail = actor.Email
	}

	images := in.Images
	if images == nil {
		images = []string{}
	}
	imagesJSON, err := json.Marshal(images)
	if err != nil {
		return nil, &store.ValidationError{Field: "images", Reason: "not serializable"}
	}

	listing := &models.WasteListing{
		Title:        in.Title,
		Description:  in.Description,
		Category:     in.Category,
		Quantity:     in.Quantity,
		Unit:         in.Unit,
		Location:     in.Location,
		Frequency:    in.Frequency,
		Status:       models.StatusAvailable,
		Images:       datatypes.JSON(imagesJSON),
		ContactName:  contactName,
		ContactEmail: contactEmail,
		ContactPhone: in.ContactPhone,
		CreatedBy:    actor.Email,
	}
	if err := s.Listings.Create(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// Mine returns the actor's own listings, newest first.
func (s *Service) Mine(ctx context.Context, actor *auth.Actor) ([]models.WasteListing, error) {
	if actor == nil {
		return nil, store.ErrUnauthenticated
	}
	return s.Listings.Query(ctx, store.ListingFilter{CreatedBy: actor.Email}, "-created_date", 0)
}

// Transition moves one of the actor's listings forward along its lifecycle.
// Backward transitions are rejected by the store.
func (s *Service) Transition(ctx context.Context, actor *auth.Actor, listingID uuid.UUID, next string) (*models.WasteListing, error) {
	if actor == nil {
		return nil, store.ErrUnauthenticated
	}
	listing, err := s.Listings.Get(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.CreatedBy != actor.Email {
		return nil, store.ErrNotFound
	}
	return s.Listings.UpdateStatus(ctx, listingID, next)
}
