package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/connectpro/marketplace-api/internal/api/handler"
	"github.com/connectpro/marketplace-api/internal/api/middleware"
	"github.com/connectpro/marketplace-api/internal/core/domain"
	"github.com/connectpro/marketplace-api/internal/core/ports"
	"github.com/connectpro/marketplace-api/internal/core/service"
	"github.com/connectpro/marketplace-api/internal/infrastructure/config"
	mongodb "github.com/connectpro/marketplace-api/internal/infrastructure/db/mongo"
	redisdb "github.com/connectpro/marketplace-api/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with all routes registered. The event
// sink is injected so the caller owns the dispatcher lifecycle.
func NewRouter(db *mongo.Database, rdb *goredis.Client, cfg *config.Config, sink ports.EventSink, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("connectpro"))

	// --- Repositories ---
	adminRepo := mongodb.NewAdminRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	workerRepo := mongodb.NewWorkerRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)
	eventRepo := mongodb.NewEventRepository(db)
	contactRepo := mongodb.NewContactRepository(db)

	sessionStore := redisdb.NewSessionStore(rdb)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.Throttle.MaxAttempts, cfg.Throttle.Window)

	// --- Services ---
	providers := service.DefaultProviders(adminRepo, userRepo, workerRepo)
	authService := service.NewAuthService(providers, sessionStore, throttle, service.AuthConfig{
		AdminEmail:   cfg.Admin.Email,
		JWTSecret:    cfg.JWTSecret,
		SessionTTL:   cfg.SessionTTL,
		StoreTimeout: cfg.StoreTimeout,
	}, log)
	userService := service.NewUserService(userRepo)
	workerService := service.NewWorkerService(workerRepo, log)
	bookingService := service.NewBookingService(bookingRepo, workerRepo, sink, log)
	reviewService := service.NewReviewService(reviewRepo, bookingRepo)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, cfg.JWTSecret)
	accountHandler := handler.NewAccountHandler(userService, workerService)
	adminHandler := handler.NewAdminHandler(workerService, eventRepo)
	bookingHandler := handler.NewBookingHandler(bookingService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	contactHandler := handler.NewContactHandler(contactRepo)

	// --- Guards ---
	// Two independent slots: an admin session never satisfies a customer or
	// provider route, and vice versa.
	adminGuard := middleware.Guard(authService, cfg.JWTSecret, domain.AdminSlot)
	principalGuard := middleware.Guard(authService, cfg.JWTSecret, domain.PrincipalSlot)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/session", authHandler.Session)

	// --- Registration (public) ---
	e.POST("/users/register", accountHandler.RegisterUser)
	e.POST("/workers/register", accountHandler.RegisterWorker)
	e.GET("/workers", accountHandler.BrowseWorkers)
	e.GET("/workers/:id/reviews", reviewHandler.ListByWorker)
	e.POST("/contacts", contactHandler.Submit)

	// --- Customer routes ---
	users := e.Group("", principalGuard, middleware.RBAC(domain.RoleUser))
	users.POST("/bookings", bookingHandler.Create)
	users.GET("/bookings", bookingHandler.ListMine)
	users.POST("/reviews", reviewHandler.Submit)

	// --- Provider routes ---
	workers := e.Group("/workers/me", principalGuard, middleware.RBAC(domain.RoleWorker))
	workers.GET("/bookings", bookingHandler.ListAssigned)
	workers.PATCH("/availability", accountHandler.SetAvailability)
	e.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus, principalGuard, middleware.RBAC(domain.RoleWorker))

	// --- Admin routes ---
	admin := e.Group("/admin", adminGuard, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/workers", adminHandler.ListWorkers)
	admin.PATCH("/workers/:id/approval", adminHandler.SetApproval)
	admin.GET("/bookings", bookingHandler.ListAll)
	admin.GET("/bookings/:id/events", adminHandler.ListBookingEvents)
	admin.GET("/contacts", contactHandler.List)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
