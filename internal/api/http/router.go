package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/reclamation-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health       *handlers.HealthHandler
	Users        *handlers.UsersHandler
	Reclamations *handlers.ReclamationsHandler
}

// RegisterRoutes wires HTTP routes. Route paths are a published consumer
// contract; do not rename them.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	users := app.Group("/api/users")
	users.Post("/", cfg.Users.CreateUser)
	users.Get("/", cfg.Users.ListUsers)
	users.Post("/login", cfg.Users.Login)
	users.Put("/:id", cfg.Users.UpdateUser)
	users.Delete("/:id", cfg.Users.DeleteUser)

	reclamations := app.Group("/api/reclamations")
	reclamations.Post("/create", cfg.Reclamations.CreateReclamation)
	reclamations.Get("/", cfg.Reclamations.ListReclamations)
	reclamations.Put("/:id/status", cfg.Reclamations.UpdateStatus)
	reclamations.Put("/update/:id", cfg.Reclamations.UpdateReclamation)
	reclamations.Delete("/:id", cfg.Reclamations.DeleteReclamation)
}
