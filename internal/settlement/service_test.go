package settlement

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"wasteloop-backend/internal/models"
	"wasteloop-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSettlementTest(t *testing.T) (*Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.WasteListing{}, &models.Transaction{}))
	return &Service{
		Listings:     &store.GormListings{DB: db},
		Transactions: &store.GormTransactions{DB: db},
	}, db
}

func seedListing(t *testing.T, db *gorm.DB, status string) *models.WasteListing {
	t.Helper()
	l := &models.WasteListing{
		Title:     "Steel offcuts",
		Category:  models.CategoryMetal,
		Quantity:  3,
		Unit:      models.UnitTons,
		Location:  "Gdansk",
		Frequency: models.FrequencyOneTime,
		Status:    status,
		CreatedBy: "owner@mill.test",
	}
	require.NoError(t, db.Create(l).Error)
	return l
}

func TestRecord_AttributesProviderAndCompletesListing(t *testing.T) {
	svc, db := setupSettlementTest(t)
	listing := seedListing(t, db, models.StatusMatched)

	tx, err := svc.Record(context.Background(), RecordInput{
		ListingID:         listing.ListingID,
		QuantityExchanged: 2.5,
		CO2Saved:          400,
	})
	require.NoError(t, err)
	assert.Equal(t, "owner@mill.test", tx.ProviderEmail)
	assert.NotEqual(t, uuid.Nil, tx.TxID)

	var stored models.WasteListing
	require.NoError(t, db.First(&stored, "listing_id = ?", listing.ListingID).Error)
	assert.Equal(t, models.StatusCompleted, stored.Status)
}

func TestRecord_AvailableListingAdvancesThroughMatched(t *testing.T) {
	svc, db := setupSettlementTest(t)
	listing := seedListing(t, db, models.StatusAvailable)

	_, err := svc.Record(context.Background(), RecordInput{ListingID: listing.ListingID, QuantityExchanged: 1})
	require.NoError(t, err)

	var stored models.WasteListing
	require.NoError(t, db.First(&stored, "listing_id = ?", listing.ListingID).Error)
	assert.Equal(t, models.StatusCompleted, stored.Status)
}

func TestRecord_AlreadyCompletedRejected(t *testing.T) {
	svc, db := setupSettlementTest(t)
	listing := seedListing(t, db, models.StatusCompleted)

	_, err := svc.Record(context.Background(), RecordInput{ListingID: listing.ListingID, QuantityExchanged: 1})
	require.Error(t, err)
	assert.True(t, store.IsValidation(err))

	var count int64
	require.NoError(t, db.Model(&models.Transaction{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestRecordExchangeHandler_KeyRequired(t *testing.T) {
	svc, db := setupSettlementTest(t)
	listing := seedListing(t, db, models.StatusMatched)
	h := &Handlers{Service: svc, SettlementKey: "shhh"}

	app := fiber.New()
	app.Post("/record-exchange", h.RecordExchange)

	body, _ := json.Marshal(map[string]interface{}{
		"listing_id":         listing.ListingID.String(),
		"quantity_exchanged": 2.5,
		"co2_saved":          400,
	})

	req := httptest.NewRequest("POST", "/record-exchange", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)

	req = httptest.NewRequest("POST", "/record-exchange", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-settlement-key", "shhh")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
}
