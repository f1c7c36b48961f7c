package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/kaelif/QuickLink/pkg/utils"
)

type AuthHandler struct {
	jwtSecret string
}

func NewAuthHandler(jwtSecret string) *AuthHandler {
	return &AuthHandler{jwtSecret: jwtSecret}
}

type deviceSessionRequest struct {
	DeviceID string `json:"device_id"`
}

// DeviceSession issues the bearer token the shell uses for every other
// endpoint. There are no accounts; a device id is minted on first
// launch and reused afterwards.
func (h *AuthHandler) DeviceSession(c *fiber.Ctx) error {
	var req deviceSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
	}

	deviceID := req.DeviceID
	if deviceID == "" {
		deviceID = uuid.NewString()
	}

	token, err := utils.GenerateToken(deviceID, h.jwtSecret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to issue token"})
	}

	return c.JSON(fiber.Map{
		"device_id": deviceID,
		"token":     token,
	})
}
