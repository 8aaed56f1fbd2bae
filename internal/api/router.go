package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/deepmindconcepts/coaching-platform/docs"
	"github.com/deepmindconcepts/coaching-platform/internal/api/handler"
	"github.com/deepmindconcepts/coaching-platform/internal/api/middleware"
	"github.com/deepmindconcepts/coaching-platform/internal/core/domain"
	"github.com/deepmindconcepts/coaching-platform/internal/core/ports"
)

// Dependencies carries everything the router needs, wired by main.
type Dependencies struct {
	Sessions  ports.SessionManager
	Directory ports.UserDirectory
	Catalog   ports.ContentRepository
	Bookings  ports.BookingService
	Comments  ports.CommentService
	Contact   handler.ContactService
	Health    *handler.HealthDependenciesHandler
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("coaching"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Sessions)
	contentHandler := handler.NewContentHandler(deps.Catalog)
	commentHandler := handler.NewCommentHandler(deps.Comments)
	bookingHandler := handler.NewBookingHandler(deps.Bookings)
	contactHandler := handler.NewContactHandler(deps.Contact)
	adminHandler := handler.NewAdminHandler(deps.Directory)

	sessionRequired := middleware.Session(deps.Sessions)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me, sessionRequired)

	// --- Public content routes ---
	e.GET("/blog", contentHandler.ListPosts)
	e.GET("/blog/:id", contentHandler.GetPost)
	e.GET("/blog/:id/comments", commentHandler.List)
	e.GET("/jobs", contentHandler.ListJobs)
	e.GET("/jobs/:id", contentHandler.GetJob)
	e.GET("/coaching/services", contentHandler.ListServices)
	e.GET("/coaching/services/:id", contentHandler.GetService)
	e.GET("/coaching/coaches", contentHandler.ListCoaches)
	e.GET("/testimonials", contentHandler.ListTestimonials)
	e.POST("/contact", contactHandler.Submit)

	// --- Authenticated routes ---
	e.POST("/blog/:id/comments", commentHandler.Add, sessionRequired)
	e.POST("/blog/:id/comments/:commentID/like", commentHandler.Like, sessionRequired)
	e.POST("/bookings", bookingHandler.Create, sessionRequired)
	e.GET("/bookings", bookingHandler.ListMine, sessionRequired)

	// --- Admin routes ---
	admin := e.Group("/admin", sessionRequired, adminOnly)
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/bookings", bookingHandler.ListAll)
	admin.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)
	admin.GET("/messages", contactHandler.ListMessages)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)       // liveness  – is the process alive?
	e.GET("/health/ready", deps.Health.Readiness)  // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler()) // prometheus scrape endpoint
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
