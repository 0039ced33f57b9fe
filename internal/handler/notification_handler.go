package handler

import (
	"salesdesk-be/internal/pkg/logger"
	"salesdesk-be/internal/pkg/serverutils"
	"salesdesk-be/internal/service"
	internalWS "salesdesk-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// NotificationHandler owns the websocket endpoint clients keep open to
// receive the auto-logout notice.
type NotificationHandler struct {
	sessions service.ISessionService
	hub      *internalWS.Hub
	logger   logger.ILogger
}

func NewNotificationHandler(sessions service.ISessionService, hub *internalWS.Hub, log logger.ILogger) *NotificationHandler {
	return &NotificationHandler{
		sessions: sessions,
		hub:      hub,
		logger:   log,
	}
}

// ServeWs upgrades the connection after checking the session token. Browsers
// cannot set headers on a websocket handshake, so the token rides in the
// query string; the Authorization header works for tooling.
func (h *NotificationHandler) ServeWs(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		token = serverutils.BearerToken(c)
	}
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token (query 'token' or Authorization header)"})
	}

	if _, ok := h.sessions.Resolve(token); !ok {
		h.logger.Warn("NotificationHandler", "Unknown token in WS handshake", nil)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("NotificationHandler", "Starting WebSocket session", map[string]interface{}{"token": token})
			internalWS.ServeWs(h.hub, conn, token)
			h.logger.Info("NotificationHandler", "WebSocket session ended", map[string]interface{}{"token": token})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// RegisterRoutes registers the notification routes.
func (h *NotificationHandler) RegisterRoutes(router fiber.Router) {
	notif := router.Group("/notifications")
	notif.Get("/ws", h.ServeWs)
}
