package app

import (
	"wasteloop-backend/internal/auth"
	"wasteloop-backend/internal/browse"
	"wasteloop-backend/internal/config"
	"wasteloop-backend/internal/dashboard"
	"wasteloop-backend/internal/database"
	"wasteloop-backend/internal/health"
	"wasteloop-backend/internal/interests"
	"wasteloop-backend/internal/listings"
	"wasteloop-backend/internal/middleware"
	"wasteloop-backend/internal/settlement"
	"wasteloop-backend/internal/store"
	"wasteloop-backend/internal/uploads"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CreateApp builds the Fiber app with all global middleware and route
// registration. The returned DB/Redis handles are used by the entrypoint for
// startup checks.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	// CORS (before session)
	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
		DevPassword:   cfg.DevPassword,
	}))

	// Session (Redis)
	sessionCfg := middleware.SessionConfig{
		Secret:            cfg.SessionSecret,
		RedisURL:          cfg.RedisURL,
		AllowCrossSiteDev: cfg.AllowCrossSiteDev,
		IsProduction:      cfg.Env == "production",
	}
	sessionHandler, rdb, err := middleware.Session(sessionCfg)
	if err != nil {
		return nil, nil, nil, err
	}
	app.Use(sessionHandler)

	// Tracing + route logger
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	// Health (no auth)
	healthHandlers := &health.Handlers{DB: db, Rdb: rdb}
	app.Get("/health/json", healthHandlers.JSON)

	// db may be nil if DATABASE_URL is not set (e.g. tests); data routes are
	// only mounted when it is available.
	if db == nil {
		return app, db, rdb, nil
	}

	listingStore := &store.GormListings{DB: db}
	interestStore := &store.GormInterests{DB: db}
	transactionStore := &store.GormTransactions{DB: db}
	userStore := &store.GormUsers{DB: db}

	// Auth (no auth middleware): POST login, GET me, DELETE logout
	authService := &auth.Service{Users: userStore, LoginURL: cfg.LoginURL}
	authHandlers := &auth.Handlers{Service: authService, Rdb: rdb, Config: sessionCfg}
	authGroup := app.Group("/api/v1/auth")
	authGroup.Post("/login", authHandlers.Login)
	authGroup.Get("/me", authHandlers.Me)
	authGroup.Delete("/logout", authHandlers.Logout)

	// Browse is public: anyone may view available listings; only expressing
	// interest needs a session.
	browseService := &browse.Service{Listings: listingStore}
	browseHandlers := &browse.Handlers{Service: browseService}
	app.Get("/api/v1/browse/listings", browseHandlers.Listings)

	// Interests: the express route handles the unauthenticated case itself
	// (401 + login redirect); the list route requires auth.
	interestService := &interests.Service{Listings: listingStore, Interests: interestStore}
	interestHandlers := &interests.Handlers{Service: interestService, Auth: authService}
	app.Post("/api/v1/interests/express-interest", interestHandlers.Express)
	app.Get("/api/v1/interests/my-interests", middleware.RequireAuth(), interestHandlers.MyInterests)

	// Listings (auth required)
	listingService := &listings.Service{Listings: listingStore}
	listingHandlers := &listings.Handlers{Service: listingService}
	listingGroup := app.Group("/api/v1/listings", middleware.RequireAuth())
	listingGroup.Post("/create-listing", listingHandlers.CreateListing)
	listingGroup.Get("/my-listings", listingHandlers.MyListings)
	listingGroup.Post("/transition-status", listingHandlers.TransitionStatus)

	// Dashboard: the overview handler redirects unauthenticated callers.
	dashboardService := &dashboard.Service{
		Listings:     listingStore,
		Interests:    interestStore,
		Transactions: transactionStore,
	}
	dashboardHandlers := &dashboard.Handlers{Service: dashboardService, Auth: authService}
	app.Get("/api/v1/dashboard/overview", dashboardHandlers.Overview)

	// Uploads (auth required)
	storageClient := &uploads.HTTPClient{
		BaseURL:   cfg.SupabaseURL,
		SecretKey: cfg.SupabaseSecretKey,
	}
	uploadService := &uploads.Service{Client: storageClient, StorageURL: cfg.SupabaseURL}
	uploadHandlers := &uploads.Handlers{Service: uploadService}
	app.Post("/api/v1/uploads/listing-image", middleware.RequireAuth(), uploadHandlers.SignListingImage)

	// Settlement (shared-key guarded, no session)
	settlementService := &settlement.Service{Listings: listingStore, Transactions: transactionStore}
	settlementHandlers := &settlement.Handlers{Service: settlementService, SettlementKey: cfg.SettlementKey}
	app.Post("/api/v1/settlement/record-exchange", settlementHandlers.RecordExchange)

	return app, db, rdb, nil
}
