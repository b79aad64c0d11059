package browse

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"wasteloop-backend/internal/models"
	"wasteloop-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupBrowseTest(t *testing.T) (*Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.WasteListing{}))
	return &Service{Listings: &store.GormListings{DB: db}}, db
}

func seedListing(t *testing.T, db *gorm.DB, title, category, status string, created time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&models.WasteListing{
		Title:       title,
		Category:    category,
		Quantity:    100,
		Unit:        models.UnitKg,
		Location:    "Hamburg",
		Frequency:   models.FrequencyOneTime,
		Status:      status,
		CreatedBy:   "owner@x.test",
		CreatedDate: created,
	}).Error)
}

func TestBrowse_OnlyAvailableNewestFirst(t *testing.T) {
	svc, db := setupBrowseTest(t)
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	seedListing(t, db, "Old plastic", models.CategoryPlastic, models.StatusAvailable, base)
	seedListing(t, db, "New plastic", models.CategoryPlastic, models.StatusAvailable, base.Add(time.Hour))
	seedListing(t, db, "Matched plastic", models.CategoryPlastic, models.StatusMatched, base.Add(2*time.Hour))

	result, err := svc.Browse(context.Background(), CategoryAll, "")
	require.NoError(t, err)
	require.Equal(t, 2, result.Count)
	assert.Equal(t, "New plastic", result.Listings[0].Title)
	assert.Equal(t, "Old plastic", result.Listings[1].Title)
}

func TestBrowse_CategoryAndSearchCombined(t *testing.T) {
	svc, db := setupBrowseTest(t)
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	seedListing(t, db, "HDPE regrind", models.CategoryPlastic, models.StatusAvailable, base)
	seedListing(t, db, "PET flakes", models.CategoryPlastic, models.StatusAvailable, base.Add(time.Minute))
	seedListing(t, db, "HDPE drums", models.CategoryOther, models.StatusAvailable, base.Add(2*time.Minute))

	result, err := svc.Browse(context.Background(), models.CategoryPlastic, "hdpe")
	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
	assert.Equal(t, "HDPE regrind", result.Listings[0].Title)
}

func TestBrowseHandler_CountMetadata(t *testing.T) {
	svc, db := setupBrowseTest(t)
	seedListing(t, db, "Glass cullet", models.CategoryGlass, models.StatusAvailable, time.Now())

	app := fiber.New()
	h := &Handlers{Service: svc}
	app.Get("/listings", h.Listings)

	req := httptest.NewRequest("GET", "/listings?category=glass", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
