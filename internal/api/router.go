package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/techstore/inventory-api/internal/api/handler"
	"github.com/techstore/inventory-api/internal/api/middleware"
	"github.com/techstore/inventory-api/internal/core/domain"
	"github.com/techstore/inventory-api/internal/core/ports"
	"github.com/techstore/inventory-api/internal/core/service"
	mongodb "github.com/techstore/inventory-api/internal/infrastructure/db/mongo"
	redisdb "github.com/techstore/inventory-api/internal/infrastructure/db/redis"
	"github.com/techstore/inventory-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit recorder is injected because its worker pool is owned and
// started by main.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, audit ports.AuditRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.ExposeErrors)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("inventory"))

	// --- Dependencies ---
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, tokenService, log)
	authHandler := handler.NewAuthHandler(authService)

	laptopRepo := mongodb.NewLaptopRepository(db)
	laptopCache := redisdb.NewLaptopCache(rdb, cfg.Redis.CacheTTL)
	laptopService := service.NewLaptopService(laptopRepo, laptopCache, audit, log)
	laptopHandler := handler.NewLaptopHandler(laptopService)

	authn := middleware.Auth(tokenService)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// --- Laptop routes: reads are public, writes are admin-gated ---
	laptops := e.Group("/api/laptops")
	laptops.GET("", laptopHandler.List)
	laptops.GET("/:id", laptopHandler.Get)
	laptops.POST("", laptopHandler.Create, authn, adminOnly)
	laptops.PUT("/:id", laptopHandler.Update, authn, adminOnly)
	laptops.DELETE("/:id", laptopHandler.Delete, authn, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/api/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/api/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
