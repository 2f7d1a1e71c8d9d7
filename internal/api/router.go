package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/handypro/connect-api/internal/api/handler"
	"github.com/handypro/connect-api/internal/api/middleware"
	"github.com/handypro/connect-api/internal/core/domain"
	"github.com/handypro/connect-api/internal/core/ports"
	"github.com/handypro/connect-api/internal/core/service"
	"github.com/handypro/connect-api/pkg/token"
)

// Dependencies carries everything the router needs. Mongo and Redis
// are nil when the in-memory backend is active; the readiness probe
// tolerates that.
type Dependencies struct {
	Users  ports.UserRepository
	Jobs   ports.JobRepository
	Quotes ports.QuoteRepository
	Tokens *token.Manager
	Auth   ports.AuthService
	Mongo  *mongo.Database
	Redis  *redis.Client
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("handypro"))

	// --- Services and handlers ---
	jobService := service.NewJobService(deps.Jobs, deps.Logger)
	quoteService := service.NewQuoteService(deps.Quotes, deps.Logger)

	authHandler := handler.NewAuthHandler(deps.Auth)
	userHandler := handler.NewUserHandler(deps.Auth)
	jobHandler := handler.NewJobHandler(jobService)
	quoteHandler := handler.NewQuoteHandler(quoteService)
	serviceHandler := handler.NewServiceHandler()

	authed := middleware.Auth(deps.Tokens, deps.Users)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, authed)

	// --- User profile ---
	users := e.Group("/users", authed)
	users.GET("/profile", userHandler.Profile)
	users.PUT("/profile", userHandler.UpdateProfile)

	// --- Jobs ---
	jobs := e.Group("/jobs", authed)
	jobs.GET("", jobHandler.List)
	jobs.POST("", jobHandler.Create)
	jobs.GET("/open", jobHandler.ListOpen,
		middleware.RBAC(domain.ResourceOpenJobs, domain.ActionList))
	jobs.GET("/:id", jobHandler.Get)
	jobs.PATCH("/:id/status", jobHandler.UpdateStatus)

	// --- Quotes ---
	quotes := e.Group("/quotes", authed)
	quotes.GET("", quoteHandler.List)
	quotes.POST("/:job_id", quoteHandler.Create,
		middleware.RBAC(domain.ResourceQuote, domain.ActionCreate))

	// --- Service catalog (public) ---
	e.GET("/services", serviceHandler.List)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
