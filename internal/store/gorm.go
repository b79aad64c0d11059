package store

import (
	"context"
	"errors"
	"strings"

	"wasteloop-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormListings implements ListingStore on GORM (Postgres in production,
// sqlite in tests).
type GormListings struct {
	DB *gorm.DB
}

var listingSortable = map[string]bool{
	"created_date": true,
	"title":        true,
	"quantity":     true,
	"status":       true,
}

func validateListing(l *models.WasteListing) error {
	switch {
	case strings.TrimSpace(l.Title) == "":
		return &ValidationError{Field: "title", Reason: "required"}
	case !models.IsValidCategory(l.Category):
		return &ValidationError{Field: "category", Reason: "unknown category"}
	case l.Quantity <= 0:
		return &ValidationError{Field: "quantity", Reason: "must be a positive number"}
	case !models.IsValidUnit(l.Unit):
		return &ValidationError{Field: "unit", Reason: "unknown unit"}
	case strings.TrimSpace(l.Location) == "":
		return &ValidationError{Field: "location", Reason: "required"}
	case !models.IsValidFrequency(l.Frequency):
		return &ValidationError{Field: "frequency", Reason: "unknown frequency"}
	case l.CreatedBy == "":
		return &ValidationError{Field: "created_by", Reason: "required"}
	}
	return nil
}

func (g *GormListings) Create(ctx context.Context, l *models.WasteListing) error {
	if l.Status == "" {
		l.Status = models.StatusAvailable
	}
	if err := validateListing(l); err != nil {
		return err
	}
	if err := g.DB.WithContext(ctx).Create(l).Error; err != nil {
		return &TransientError{Op: "create listing", Err: err}
	}
	return nil
}

func (g *GormListings) Query(ctx context.Context, f ListingFilter, sortKey string, limit int) ([]models.WasteListing, error) {
	where := map[string]interface{}{}
	if f.Status != "" {
		where["status"] = f.Status
	}
	if f.CreatedBy != "" {
		where["created_by"] = f.CreatedBy
	}
	if f.Category != "" {
		where["category"] = f.Category
	}
	order, err := orderClause(sortKey, listingSortable)
	if err != nil {
		return nil, err
	}
	q := g.DB.WithContext(ctx).Where(where)
	if order != "" {
		q = q.Order(order)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var listings []models.WasteListing
	if err := q.Find(&listings).Error; err != nil {
		return nil, &TransientError{Op: "query listings", Err: err}
	}
	return listings, nil
}

func (g *GormListings) Get(ctx context.Context, id uuid.UUID) (*models.WasteListing, error) {
	var listing models.WasteListing
	err := g.DB.WithContext(ctx).Where("listing_id = ?", id).First(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, &TransientError{Op: "get listing", Err: err}
	}
	return &listing, nil
}

func (g *GormListings) UpdateStatus(ctx context.Context, id uuid.UUID, next string) (*models.WasteListing, error) {
	listing, err := g.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !models.ValidTransition(listing.Status, next) {
		return nil, &ValidationError{Field: "status", Reason: "cannot move " + listing.Status + " to " + next}
	}
	if err := g.DB.WithContext(ctx).Model(listing).Update("status", next).Error; err != nil {
		return nil, &TransientError{Op: "update listing status", Err: err}
	}
	listing.Status = next
	return listing, nil
}

// GormInterests implements InterestStore.
type GormInterests struct {
	DB *gorm.DB
}

var interestSortable = map[string]bool{
	"created_date": true,
}

func (g *GormInterests) Create(ctx context.Context, in *models.Interest) error {
	switch {
	case in.ListingID == uuid.Nil:
		return &ValidationError{Field: "listing_id", Reason: "required"}
	case in.ListingTitle == "":
		return &ValidationError{Field: "listing_title", Reason: "required"}
	case in.InterestedCompany == "":
		return &ValidationError{Field: "interested_company", Reason: "required"}
	case in.CreatedBy == "":
		return &ValidationError{Field: "created_by", Reason: "required"}
	}
	if err := g.DB.WithContext(ctx).Create(in).Error; err != nil {
		return &TransientError{Op: "create interest", Err: err}
	}
	return nil
}

func (g *GormInterests) Query(ctx context.Context, f InterestFilter, sortKey string, limit int) ([]models.Interest, error) {
	where := map[string]interface{}{}
	if f.CreatedBy != "" {
		where["created_by"] = f.CreatedBy
	}
	if f.ListingID != uuid.Nil {
		where["listing_id"] = f.ListingID
	}
	order, err := orderClause(sortKey, interestSortable)
	if err != nil {
		return nil, err
	}
	q := g.DB.WithContext(ctx).Where(where)
	if order != "" {
		q = q.Order(order)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var interests []models.Interest
	if err := q.Find(&interests).Error; err != nil {
		return nil, &TransientError{Op: "query interests", Err: err}
	}
	return interests, nil
}

// GormTransactions implements TransactionStore.
type GormTransactions struct {
	DB *gorm.DB
}

var transactionSortable = map[string]bool{
	"created_date": true,
}

func (g *GormTransactions) Create(ctx context.Context, tx *models.Transaction) error {
	switch {
	case tx.ProviderEmail == "":
		return &ValidationError{Field: "provider_email", Reason: "required"}
	case tx.QuantityExchanged < 0:
		return &ValidationError{Field: "quantity_exchanged", Reason: "must not be negative"}
	case tx.CO2Saved < 0:
		return &ValidationError{Field: "co2_saved", Reason: "must not be negative"}
	}
	if err := g.DB.WithContext(ctx).Create(tx).Error; err != nil {
		return &TransientError{Op: "create transaction", Err: err}
	}
	return nil
}

func (g *GormTransactions) Query(ctx context.Context, f TransactionFilter, sortKey string, limit int) ([]models.Transaction, error) {
	where := map[string]interface{}{}
	if f.ProviderEmail != "" {
		where["provider_email"] = f.ProviderEmail
	}
	order, err := orderClause(sortKey, transactionSortable)
	if err != nil {
		return nil, err
	}
	q := g.DB.WithContext(ctx).Where(where)
	if order != "" {
		q = q.Order(order)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var txs []models.Transaction
	if err := q.Find(&txs).Error; err != nil {
		return nil, &TransientError{Op: "query transactions", Err: err}
	}
	return txs, nil
}

// GormUsers implements UserStore.
type GormUsers struct {
	DB *gorm.DB
}

func (g *GormUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := g.DB.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, &TransientError{Op: "find user", Err: err}
	}
	return &u, nil
}
