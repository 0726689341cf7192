package ws

import (
	"log"
	"net/http"
	"strings"

	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
)

type Handler struct {
	hub    *Hub
	jwt    jwt.Service
	logger *log.Logger
}

func NewHandler(hub *Hub, jwtSvc jwt.Service, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{hub: hub, jwt: jwtSvc, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/ws", h.HandleNotificationsWS)
}

// HandleNotificationsWS upgrades an authenticated request. Browsers cannot set
// headers on websocket requests, so the access token may also come from the
// token query parameter.
func (h *Handler) HandleNotificationsWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	token, ok := middleware.BearerToken(c.Get("Authorization"))
	if !ok {
		token = strings.TrimSpace(c.Query("token"))
	}
	if token == "" {
		return fiber.ErrUnauthorized
	}
	claims, err := h.jwt.ValidateToken(token)
	if err != nil || claims.TokenType != jwt.TokenTypeAccess {
		return fiber.ErrUnauthorized
	}
	userID := claims.UserID

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Printf("WS upgrade error | user=%s error=%v", userID, err)
			return
		}

		client := NewClient(h.hub, conn, userID)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}
