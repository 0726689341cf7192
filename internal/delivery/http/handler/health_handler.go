package handler

import (
	"context"
	"time"

	"skill-swap/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db Pinger, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

// Health reports dependency status. The cache is optional, so only a failing
// database degrades the response.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	data := map[string]string{
		"database": pingStatus(ctx, h.db),
		"cache":    pingStatus(ctx, h.cache),
	}
	if data["database"] == "down" {
		return response.Error(c, fiber.StatusServiceUnavailable, "Service unavailable", data)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func pingStatus(ctx context.Context, p Pinger) string {
	if p == nil {
		return "disabled"
	}
	if err := p.Ping(ctx); err != nil {
		return "down"
	}
	return "up"
}
