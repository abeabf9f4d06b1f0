package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/savir-sistemas/backoffice-api/internal/api/handler"
	"github.com/savir-sistemas/backoffice-api/internal/api/middleware"
	"github.com/savir-sistemas/backoffice-api/internal/core/service"
	mongodb "github.com/savir-sistemas/backoffice-api/internal/infrastructure/db/mongo"
	redisdb "github.com/savir-sistemas/backoffice-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, actorTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("backoffice"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	actorCache := redisdb.NewActorCache(rdb, actorTTL)

	authService := service.NewAuthService(userRepo, log)
	userService := service.NewUserService(userRepo, actorCache, log)
	clientService := service.NewClientService(clientRepo, log)
	productService := service.NewProductService(productRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	clientHandler := handler.NewClientHandler(clientService)
	productHandler := handler.NewProductHandler(productService)

	// --- Auth ---
	e.POST("/api/auth/login", authHandler.Login)

	// --- Resource routes ---
	// The Actor middleware resolves the user-id header when present;
	// RequireActor gates everything except user creation, which stays open
	// for anonymous self-registration.
	api := e.Group("/api", middleware.Actor(userRepo, actorCache, log))
	api.POST("/users", userHandler.Create)

	authed := api.Group("", middleware.RequireActor())
	authed.GET("/users", userHandler.List)
	authed.GET("/users/:id", userHandler.Get)
	authed.PUT("/users/:id", userHandler.Update)
	authed.DELETE("/users/:id", userHandler.Delete)

	authed.GET("/clients", clientHandler.List)
	authed.GET("/clients/:id", clientHandler.Get)
	authed.POST("/clients", clientHandler.Create)
	authed.PUT("/clients/:id", clientHandler.Update)
	authed.DELETE("/clients/:id", clientHandler.Delete)

	authed.GET("/products", productHandler.List)
	authed.GET("/products/:id", productHandler.Get)
	authed.POST("/products", productHandler.Create)
	authed.PUT("/products/:id", productHandler.Update)
	authed.DELETE("/products/:id", productHandler.Delete)

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
