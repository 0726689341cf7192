package v1

import (
	"skill-swap/internal/delivery/http/handler"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Health    *handler.HealthHandler
	Auth      *handler.AuthHandler
	User      *handler.UserHandler
	UserSkill *handler.UserSkillHandler
	Skill     *handler.SkillHandler
	Match     *handler.MatchHandler
	Learning  *handler.LearningHandler
	Swap      *handler.SwapHandler
	WS        *ws.Handler
}

// Register mounts public routes first; everything registered after the
// protected group passes through the auth middleware.
func Register(r fiber.Router, h Handlers, auth *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	if h.Health != nil {
		h.Health.RegisterRoutes(r)
	}
	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}
	if h.Skill != nil {
		h.Skill.RegisterPublicRoutes(r)
	}
	if h.WS != nil {
		h.WS.RegisterRoutes(r)
	}

	if auth == nil {
		return
	}
	protected := r.Group("", auth.Middleware())

	if h.User != nil {
		users := protected.Group("/users")
		if h.UserSkill != nil {
			h.UserSkill.RegisterRoutes(users)
		}
		h.User.RegisterRoutes(users)
	}
	if h.Skill != nil {
		h.Skill.RegisterProtectedRoutes(protected)
	}
	if h.Match != nil {
		h.Match.RegisterRoutes(protected)
	}
	if h.Learning != nil {
		h.Learning.RegisterRoutes(protected)
	}
	if h.Swap != nil {
		h.Swap.RegisterRoutes(protected)
	}
}
