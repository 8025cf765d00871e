package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/mernapp/mern-api/docs"
	"github.com/mernapp/mern-api/internal/api/handler"
	"github.com/mernapp/mern-api/internal/api/middleware"
	"github.com/mernapp/mern-api/internal/core/ports"
)

// Registry is where HTTP metrics are registered and gathered from.
type Registry interface {
	prometheus.Registerer
	prometheus.Gatherer
}

type defaultRegistry struct {
	prometheus.Registerer
	prometheus.Gatherer
}

// Dependencies wires the services behind the routes.
type Dependencies struct {
	Users  ports.UserService
	Posts  ports.PostService
	Seed   ports.SeedService // nil leaves POST /api/seed unregistered
	Health *handler.HealthHandler
	Logger zerolog.Logger
	// ExposeErrors adds raw error text to 5xx responses.
	ExposeErrors bool
	// Metrics defaults to the global Prometheus registry.
	Metrics Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
//
// @title        MERN Stack API
// @version      1.0.0
// @description  CRUD API for users and posts backed by MongoDB.
// @BasePath     /api
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger, deps.ExposeErrors)

	var reg Registry = defaultRegistry{prometheus.DefaultRegisterer, prometheus.DefaultGatherer}
	if deps.Metrics != nil {
		reg = deps.Metrics
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "mernapp",
		Registerer: reg,
	}))
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echomiddleware.CORS())

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	api.GET("", handler.Index(deps.Seed != nil))

	// --- Health probes ---
	if deps.Health != nil {
		api.GET("/health", deps.Health.Health)
		api.GET("/health/ready", deps.Health.Readiness)
	}

	// --- Users ---
	users := handler.NewUserHandler(deps.Users)
	api.GET("/users", users.List)
	api.POST("/users", users.Create)
	api.GET("/users/:id", users.Get)
	api.PUT("/users/:id", users.Update)
	api.DELETE("/users/:id", users.Delete)

	// --- Posts ---
	posts := handler.NewPostHandler(deps.Posts)
	api.GET("/posts", posts.List)
	api.POST("/posts", posts.Create)

	// --- Utilities ---
	if deps.Seed != nil {
		api.POST("/seed", handler.NewSeedHandler(deps.Seed).Seed)
	}

	return e
}
