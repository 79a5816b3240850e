package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/fitapply/job-board/docs"
	"github.com/fitapply/job-board/internal/api/handler"
	"github.com/fitapply/job-board/internal/api/middleware"
	"github.com/fitapply/job-board/internal/api/session"
	"github.com/fitapply/job-board/internal/core/domain"
	"github.com/fitapply/job-board/internal/core/service"
	mongodb "github.com/fitapply/job-board/internal/infrastructure/db/mongo"
	redisdb "github.com/fitapply/job-board/internal/infrastructure/db/redis"
)

// RouterConfig carries the dependencies and settings the router needs.
type RouterConfig struct {
	SessionSecret string
	SessionTTL    time.Duration
	StatsTTL      time.Duration
	AdminEmails   []string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("fitapply"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	jobRepo := mongodb.NewJobRepository(db)
	appRepo := mongodb.NewApplicationRepository(db)
	statsCache := redisdb.NewStatsCache(rdb, cfg.StatsTTL)

	accountService := service.NewAccountService(accountRepo, cfg.AdminEmails, log)
	jobService := service.NewJobService(jobRepo, appRepo, log)
	appService := service.NewApplicationService(appRepo, jobRepo, accountRepo, log)

	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL)

	homeHandler := handler.NewHomeHandler(jobRepo, accountRepo, statsCache)
	authHandler := handler.NewAuthHandler(accountService, sessions)
	jobHandler := handler.NewJobHandler(jobService)
	appHandler := handler.NewApplicationHandler(appService)
	profileHandler := handler.NewProfileHandler(accountService, sessions)
	adminHandler := handler.NewAdminHandler(jobService, appService)

	requireLogin := middleware.RequireLogin(sessions)
	requireAdmin := middleware.RequireRole(domain.RoleAdmin)

	// --- Public routes ---
	e.GET("/", homeHandler.Index)
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)
	e.GET("/jobs", jobHandler.List)
	e.GET("/job/:id", jobHandler.Detail, middleware.LoadSession(sessions))

	// --- Login required ---
	e.POST("/job/:id/apply", appHandler.Apply, requireLogin)
	e.GET("/dashboard", appHandler.Dashboard, requireLogin)
	e.GET("/profile", profileHandler.Get, requireLogin)
	e.POST("/profile/update", profileHandler.Update, requireLogin)

	// --- Admin only ---
	admin := e.Group("/admin", requireLogin, requireAdmin)
	admin.POST("/seed-jobs", adminHandler.SeedJobs)
	admin.GET("/applications", adminHandler.ListApplications)
	admin.POST("/application/:id/update-status", adminHandler.UpdateStatus)

	// --- Health probes, metrics and docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
