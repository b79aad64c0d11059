package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wasteloop-backend/internal/middleware"
	"wasteloop-backend/internal/models"
	"wasteloop-backend/internal/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupAuthApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	mr := miniredis.RunT(t)
	cfg := middleware.SessionConfig{RedisURL: "redis://" + mr.Addr()}
	sessionHandler, rdb, err := middleware.Session(cfg)
	require.NoError(t, err)

	svc := &Service{Users: &store.GormUsers{DB: db}, LoginURL: "https://app.wasteloop.earth/login"}
	h := &Handlers{Service: svc, Rdb: rdb, Config: cfg}

	app := fiber.New()
	app.Use(sessionHandler)
	app.Post("/login", h.Login)
	app.Get("/me", h.Me)
	app.Delete("/logout", h.Logout)
	return app, db
}

func TestLoginMeLogoutFlow(t *testing.T) {
	app, db := setupAuthApp(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret!pw"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		Email:        "owner@acme.test",
		FullName:     "Ada Owner",
		CompanyName:  "Acme Plastics",
		PasswordHash: string(hash),
	}).Error)

	// Login sets the session cookie.
	body, _ := json.Marshal(map[string]string{"email": "owner@acme.test", "password": "s3cret!pw"})
	req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var sessionCookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookieName {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie)

	// Me with the cookie resolves the actor.
	req = httptest.NewRequest("GET", "/me", nil)
	req.AddCookie(sessionCookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var me map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&me))
	data := me["data"].(map[string]interface{})
	assert.Equal(t, "owner@acme.test", data["email"])
	assert.Equal(t, "Acme Plastics", data["company_name"])

	// Logout, then Me is 401 again with a redirect.
	req = httptest.NewRequest("DELETE", "/logout", nil)
	req.AddCookie(sessionCookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	req = httptest.NewRequest("GET", "/me", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestMe_UnauthenticatedRedirect(t *testing.T) {
	app, _ := setupAuthApp(t)

	req := httptest.NewRequest("GET", "/me", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	errObj := result["error"].(map[string]interface{})
	details := errObj["details"].(map[string]interface{})
	assert.Contains(t, details["redirect"], "returnTo=")
}

func TestLogin_WrongPassword(t *testing.T) {
	app, db := setupAuthApp(t)

	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret!pw"), bcrypt.DefaultCost)
	require.NoError(t, db.Create(&models.User{Email: "owner@acme.test", PasswordHash: string(hash)}).Error)

	body, _ := json.Marshal(map[string]string{"email": "owner@acme.test", "password": "nope"})
	req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}
