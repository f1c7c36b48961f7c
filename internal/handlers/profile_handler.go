package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kaelif/QuickLink/internal/models"
	"github.com/kaelif/QuickLink/internal/services"
)

type profileState interface {
	Get() models.UserProfile
	Set(profile models.UserProfile)
}

type ProfileHandler struct {
	store profileState
	sink  services.ProfileSink
}

func NewProfileHandler(store profileState, sink services.ProfileSink) *ProfileHandler {
	return &ProfileHandler{store: store, sink: sink}
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"profile": h.store.Get()})
}

// UpdateProfile replaces the local profile wholesale.
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	var profile models.UserProfile
	if err := c.BodyParser(&profile); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateProfile(profile); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	h.store.Set(profile)
	return c.JSON(fiber.Map{"profile": h.store.Get()})
}

// SyncProfile pushes the local profile to the remote source. A failure
// is surfaced as an error string for the shell to display; local state
// is already saved either way.
func (h *ProfileHandler) SyncProfile(c *fiber.Ctx) error {
	if h.sink == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Profile sync is not configured"})
	}

	if err := h.sink.PushProfile(c.Context(), h.store.Get()); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"synced": true})
}

func validateProfile(p models.UserProfile) string {
	switch p.Gender {
	case models.GenderWoman, models.GenderMan, models.GenderNonbinary, models.GenderOther:
	default:
		return "Unknown gender"
	}
	for _, t := range p.ClimbingTypes {
		switch t {
		case models.ClimbingSport, models.ClimbingBouldering, models.ClimbingTrad:
		default:
			return "Unknown climbing type"
		}
	}
	if p.Gender != models.GenderOther && p.GenderOtherText != "" {
		return "gender_other_text requires gender \"other\""
	}
	return ""
}
