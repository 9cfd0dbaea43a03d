package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/api/handler"
	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/api/middleware"
	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/broadcast"
	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/core/domain"
	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/core/ports"
)

// Dependencies carries everything the router wires into handlers. Services
// are built in the composition root so their lifecycles (worker pools, the
// event broker) stay under main's control.
type Dependencies struct {
	Appointments ports.AppointmentService
	Auth         ports.AuthService
	Memberships  ports.MembershipAdmin
	Broker       *broadcast.Broker
	Mongo        *mongo.Database
	Redis        *redis.Client
	JWTSecret    string
	Logger       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("appointments"))
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	appointmentHandler := handler.NewAppointmentHandler(deps.Appointments)
	membershipHandler := handler.NewMembershipHandler(deps.Memberships)
	streamHandler := handler.NewStreamHandler(deps.Broker)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	// --- Health probes (no auth required) ---
	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Appointment routes ---
	// Route-level RBAC admits any staff role; office-scoped membership checks
	// happen in the service layer against the appointment's office.
	auth := middleware.Auth(deps.JWTSecret)
	staff := middleware.RBAC(domain.RoleAdmin, domain.RoleHost, domain.RoleSecretary, domain.RoleReception)
	deciders := middleware.RBAC(domain.RoleAdmin, domain.RoleHost, domain.RoleSecretary)
	admins := middleware.RBAC(domain.RoleAdmin)

	v1 := e.Group("/v1", auth)

	v1.POST("/appointments", appointmentHandler.Create, staff)
	v1.GET("/appointments", appointmentHandler.List, staff)
	v1.GET("/appointments/:id", appointmentHandler.Get, staff)
	v1.PATCH("/appointments/:id", appointmentHandler.Edit, staff)

	v1.POST("/appointments/:id/approve", appointmentHandler.Approve, deciders)
	v1.POST("/appointments/:id/deny", appointmentHandler.Deny, deciders)
	v1.POST("/appointments/:id/cancel", appointmentHandler.Cancel, staff)
	v1.POST("/appointments/:id/postpone", appointmentHandler.Postpone, deciders)
	v1.POST("/appointments/:id/complete", appointmentHandler.Complete, deciders)
	v1.POST("/appointments/:id/no-show", appointmentHandler.NoShow, deciders)

	v1.POST("/offices/:office_id/memberships", membershipHandler.Grant, admins)

	v1.GET("/offices/:office_id/events", streamHandler.Events, staff)

	return e
}
