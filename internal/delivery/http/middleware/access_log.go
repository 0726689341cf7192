package middleware

import (
	"log"
	"time"

	"skill-swap/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AccessLogMiddleware struct {
	logger *log.Logger
}

func NewAccessLogMiddleware(logger *log.Logger) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &AccessLogMiddleware{logger: logger}
}

// Middleware assigns X-Request-ID (keeping a client supplied one) and logs
// one line per request after the handler chain returns.
func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get(response.HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(response.HeaderRequestID, rid)

		err := c.Next()

		caller := "-"
		if id, ok := UserID(c); ok {
			caller = id.String()
		}
		route := c.Path()
		if r := c.Route(); r != nil && r.Path != "" {
			route = r.Path
		}

		m.logger.Printf(
			"HTTP access | rid=%s ip=%s user=%s method=%s route=%s path=%s status=%d latency=%s resp_bytes=%d ua=%q",
			rid, c.IP(), caller, c.Method(), route, c.OriginalURL(), c.Response().StatusCode(),
			time.Since(start), len(c.Response().Body()), c.Get("User-Agent"),
		)
		return err
	}
}
