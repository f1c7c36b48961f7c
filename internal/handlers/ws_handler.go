package handlers

import (
	"errors"
	"strings"

	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/kaelif/QuickLink/internal/models"
	eventws "github.com/kaelif/QuickLink/internal/websocket"
	"github.com/kaelif/QuickLink/pkg/utils"
)

type wsSender interface {
	SendMessage(matchID, text string) (models.Message, bool)
}

type WSHandler struct {
	hub       *eventws.Hub
	store     wsSender
	jwtSecret string
}

func NewWSHandler(hub *eventws.Hub, store wsSender, jwtSecret string) *WSHandler {
	return &WSHandler{
		hub:       hub,
		store:     store,
		jwtSecret: jwtSecret,
	}
}

// WebSocketAuth runs before the upgrade. The shell cannot set headers on
// a browser WebSocket, so the token is also accepted as a query param.
func (h *WSHandler) WebSocketAuth(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return c.Status(fiber.StatusUpgradeRequired).JSON(fiber.Map{"error": "WebSocket upgrade required"})
	}

	claims, err := h.parseWSClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
	}

	c.Locals("device_id", claims.DeviceID)
	return c.Next()
}

func (h *WSHandler) HandleWebSocket(conn *websocket.Conn) {
	deviceID, _ := conn.Locals("device_id").(string)
	client := eventws.NewClient(h.hub, conn, deviceID)

	h.hub.Register(client)
	go client.WritePump()
	client.ReadPump(h.store)
}

func (h *WSHandler) parseWSClaims(c *fiber.Ctx) (*utils.Claims, error) {
	tokenString := strings.TrimSpace(c.Query("token"))
	if tokenString == "" {
		authHeader := strings.TrimSpace(c.Get("Authorization"))
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}
	}

	if tokenString == "" {
		return nil, errors.New("missing token")
	}

	return utils.ValidateToken(tokenString, h.jwtSecret)
}
