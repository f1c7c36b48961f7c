package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kaelif/QuickLink/internal/models"
)

type filterState interface {
	Get() models.MatchFilter
	Set(filter models.MatchFilter) models.MatchFilter
}

type FilterHandler struct {
	store filterState
}

func NewFilterHandler(store filterState) *FilterHandler {
	return &FilterHandler{store: store}
}

func (h *FilterHandler) GetFilter(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"filter": h.store.Get()})
}

// UpdateFilter replaces the filter wholesale. The stored value is the
// normalized form, which is echoed back.
func (h *FilterHandler) UpdateFilter(c *fiber.Ctx) error {
	var filter models.MatchFilter
	if err := c.BodyParser(&filter); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateFilter(filter); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	return c.JSON(fiber.Map{"filter": h.store.Set(filter)})
}

func validateFilter(f models.MatchFilter) string {
	for _, p := range f.GenderPreferences {
		switch p {
		case models.PrefWoman, models.PrefMan, models.PrefNonbinary, models.PrefAll:
		default:
			return "Unknown gender preference"
		}
	}
	for _, t := range f.ClimbingTypes {
		switch t {
		case models.ClimbingSport, models.ClimbingBouldering, models.ClimbingTrad:
		default:
			return "Unknown climbing type"
		}
	}
	return ""
}
