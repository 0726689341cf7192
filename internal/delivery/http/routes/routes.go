package routes

import (
	"skill-swap/internal/delivery/http/middleware"
	v1 "skill-swap/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

type Handlers = v1.Handlers

type Registry struct {
	handlers Handlers
	auth     *middleware.AuthMiddleware
}

func NewRegistry(handlers Handlers, auth *middleware.AuthMiddleware) *Registry {
	return &Registry{handlers: handlers, auth: auth}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
	app.Use(func(c fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "route not found: "+c.Method()+" "+c.Path())
	})
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.handlers.Health != nil {
		r.handlers.Health.RegisterRoutes(app)
	}
}

// registerAPI mounts the versioned API under /api/v1.
func (r *Registry) registerAPI(app *fiber.App) {
	v1.Register(app.Group("/api/v1"), r.handlers, r.auth)
}
