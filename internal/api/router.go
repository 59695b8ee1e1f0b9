package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Thor-asgardian/FullStack/internal/api/handler"
	"github.com/Thor-asgardian/FullStack/internal/api/middleware"
	"github.com/Thor-asgardian/FullStack/internal/core/domain"
	"github.com/Thor-asgardian/FullStack/internal/core/service"
	"github.com/Thor-asgardian/FullStack/internal/infrastructure/config"
	mongostore "github.com/Thor-asgardian/FullStack/internal/infrastructure/db/mongo"
	redisstore "github.com/Thor-asgardian/FullStack/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes
// registered. Every dependency is constructed here and passed down by
// reference; nothing reaches for globals, so tests can assemble the
// same graph around substitutes.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("auth_http"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	userCache := redisstore.NewUserCache(rdb)
	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, hasher, tokens, userCache, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	authRequired := middleware.Auth(tokens)

	// --- Public routes ---
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	// --- Authenticated routes ---
	e.POST("/logout", authHandler.Logout, authRequired)
	e.GET("/profile", userHandler.Profile, authRequired)

	// --- Role-gated routes ---
	e.GET("/admin/users", userHandler.AdminListUsers,
		authRequired, middleware.RBAC(domain.RoleAdmin))
	e.GET("/moderator/dashboard", userHandler.ModeratorDashboard,
		authRequired, middleware.RBAC(domain.RoleModerator, domain.RoleAdmin))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
