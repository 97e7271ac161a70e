package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/appointment-service/internal/api/http/handlers"
	"github.com/spec-kit/appointment-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Files          *handlers.FilesHandler
	Providers      *handlers.ProvidersHandler
	Appointments   *handlers.AppointmentsHandler
	Notifications  *handlers.NotificationsHandler
	AuthMiddleware *auth.AuthMiddleware
	RateLimiter    *RateLimiter
	UploadDir      string
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Static("/files", cfg.UploadDir)

	app.Post("/users", cfg.RateLimiter.Handle, cfg.Users.Register)
	app.Post("/sessions", cfg.RateLimiter.Handle, cfg.Users.Login)

	protected := app.Group("", cfg.AuthMiddleware.Handle)
	protected.Put("/users", cfg.Users.Update)
	protected.Post("/files", cfg.Files.Upload)

	protected.Get("/providers", cfg.Providers.List)
	protected.Get("/providers/:providerId/available", cfg.Providers.Availability)

	protected.Get("/appointments", cfg.Appointments.List)
	protected.Post("/appointments", cfg.Appointments.Book)
	protected.Delete("/appointments/:id", cfg.Appointments.Cancel)

	providerOnly := protected.Group("", auth.RequireProvider())
	providerOnly.Get("/schedule", cfg.Providers.Schedule)
	providerOnly.Get("/notifications", cfg.Notifications.List)
	providerOnly.Put("/notifications/:id", cfg.Notifications.MarkRead)
}
