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

	_ "github.com/jobhunter/platform/docs"
	"github.com/jobhunter/platform/internal/api/handler"
	"github.com/jobhunter/platform/internal/api/middleware"
	"github.com/jobhunter/platform/internal/core/domain"
	"github.com/jobhunter/platform/internal/core/ports"
	"github.com/jobhunter/platform/internal/core/service"
	"github.com/jobhunter/platform/internal/infrastructure/config"
	mongorepo "github.com/jobhunter/platform/internal/infrastructure/db/mongo"
	redisstore "github.com/jobhunter/platform/internal/infrastructure/db/redis"
)

const tokenTTL = 24 * time.Hour

// NewRouter builds and returns the Echo instance with all routes registered.
// The view recorder is constructed by the caller so its workers share the
// process lifecycle.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, views service.ViewRecorder, mailer ports.Mailer, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("jobhunter"))

	// --- Repositories ---
	userRepo := mongorepo.NewUserRepository(db)
	jobRepo := mongorepo.NewJobRepository(db)
	appRepo := mongorepo.NewApplicationRepository(db)
	skillRepo := mongorepo.NewSkillRepository(db)
	benefitRepo := mongorepo.NewBenefitRepository(db)
	resetTokens := redisstore.NewResetTokenStore(rdb)
	featuredCache := redisstore.NewFeaturedJobCache(rdb, log)

	// --- Services ---
	authService := service.NewAuthService(userRepo, resetTokens, mailer, cfg.JWTSecret, cfg.FrontendURL, tokenTTL, log)
	userService := service.NewUserService(userRepo, log)
	jobService := service.NewJobService(jobRepo, views, featuredCache, log)
	taxonomyService := service.NewTaxonomyService(skillRepo, benefitRepo, log)
	appService := service.NewApplicationService(appRepo, jobRepo, log)
	dashService := service.NewDashboardService(userRepo, jobRepo, appRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	jobHandler := handler.NewJobHandler(jobService)
	taxonomyHandler := handler.NewTaxonomyHandler(taxonomyService)
	appHandler := handler.NewApplicationHandler(appService)
	dashHandler := handler.NewDashboardHandler(dashService)

	auth := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	employerOnly := middleware.RBAC(domain.RoleAdmin, domain.RoleEmployer)
	seekerOnly := middleware.RBAC(domain.RoleAdmin, domain.RoleJobSeeker)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	v1 := e.Group("/api/v1")

	// --- Auth ---
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/auth/refresh-token", authHandler.Refresh, auth)
	v1.POST("/auth/forgot-password", authHandler.ForgotPassword)
	v1.POST("/auth/reset-password", authHandler.ResetPassword)

	// --- Users ---
	v1.GET("/users/me", userHandler.Me, auth)
	v1.PUT("/users/me", userHandler.UpdateMe, auth)
	v1.GET("/users", userHandler.List, auth, adminOnly)
	v1.GET("/users/:id", userHandler.Get, auth)
	v1.DELETE("/users/:id", userHandler.Deactivate, auth, adminOnly)

	// --- Jobs (reads are public, writes employer-only) ---
	v1.GET("/jobs", jobHandler.List)
	v1.GET("/jobs/search", jobHandler.Search)
	v1.GET("/jobs/featured", jobHandler.Featured)
	v1.GET("/jobs/options", jobHandler.Options)
	v1.GET("/jobs/:id", jobHandler.Get)
	v1.POST("/jobs", jobHandler.Create, auth, employerOnly)
	v1.PUT("/jobs/:id", jobHandler.Update, auth, employerOnly)
	v1.DELETE("/jobs/:id", jobHandler.Delete, auth, employerOnly)
	v1.GET("/jobs/:id/applications", appHandler.ForJob, auth, employerOnly)

	// --- Applications ---
	v1.POST("/applications", appHandler.Apply, auth, seekerOnly)
	v1.GET("/applications/me", appHandler.Mine, auth, seekerOnly)
	v1.GET("/applications/:id", appHandler.Get, auth)
	v1.PUT("/applications/:id/status", appHandler.UpdateStatus, auth)

	// --- Taxonomies (reads are public, writes authenticated) ---
	v1.GET("/skills", taxonomyHandler.ListSkills)
	v1.POST("/skills", taxonomyHandler.CreateSkill, auth)
	v1.GET("/skills/:id", taxonomyHandler.GetSkill)
	v1.PUT("/skills/:id", taxonomyHandler.UpdateSkill, auth)
	v1.DELETE("/skills/:id", taxonomyHandler.DeleteSkill, auth, adminOnly)
	v1.GET("/benefits", taxonomyHandler.ListBenefits)
	v1.POST("/benefits", taxonomyHandler.CreateBenefit, auth)
	v1.GET("/benefits/:id", taxonomyHandler.GetBenefit)
	v1.PUT("/benefits/:id", taxonomyHandler.UpdateBenefit, auth)
	v1.DELETE("/benefits/:id", taxonomyHandler.DeleteBenefit, auth, adminOnly)

	// --- Dashboards ---
	v1.GET("/dashboard/employer", dashHandler.Employer, auth, employerOnly)
	v1.GET("/dashboard/seeker", dashHandler.Seeker, auth, seekerOnly)
	v1.GET("/dashboard/admin", dashHandler.Admin, auth, adminOnly)

	return e
}
