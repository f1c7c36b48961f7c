package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/kaelif/QuickLink/internal/models"
	"github.com/kaelif/QuickLink/internal/services"
	eventws "github.com/kaelif/QuickLink/internal/websocket"
	"github.com/kaelif/QuickLink/pkg/geo"
)

type deckFeed interface {
	Deck(ctx context.Context, req services.DeckRequest) ([]models.ClimberProfile, error)
}

type deckState interface {
	MatchIDs() []string
	RemovedIDs() []string
	BlockedIDs() []string
	AddMatch(c models.ClimberProfile) bool
}

type filterReader interface {
	Get() models.MatchFilter
}

type DeckHandler struct {
	feed      deckFeed
	climbers  services.ClimberSource
	matches   deckState
	filters   filterReader
	hub       *eventws.Hub
	circulate bool
}

func NewDeckHandler(
	feed deckFeed,
	climbers services.ClimberSource,
	matches deckState,
	filters filterReader,
	hub *eventws.Hub,
	circulatePassedCards bool,
) *DeckHandler {
	return &DeckHandler{
		feed:      feed,
		climbers:  climbers,
		matches:   matches,
		filters:   filters,
		hub:       hub,
		circulate: circulatePassedCards,
	}
}

type deckCard struct {
	models.ClimberProfile
	Distance string `json:"distance,omitempty"`
}

// GetDeck builds the ordered deck for the shell. The device passes its
// coordinates as lat/lon query parameters; when they are absent the
// distance sort and labels are skipped.
func (h *DeckHandler) GetDeck(c *fiber.Ctx) error {
	location, err := parseLocation(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid coordinates"})
	}

	deck, err := h.feed.Deck(c.Context(), services.DeckRequest{
		Filter:               h.filters.Get(),
		UserLocation:         location,
		MatchIDs:             h.matches.MatchIDs(),
		RemovedIDs:           h.matches.RemovedIDs(),
		BlockedIDs:           h.matches.BlockedIDs(),
		CirculatePassedCards: h.circulate,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build deck"})
	}

	cards := make([]deckCard, 0, len(deck))
	for _, climber := range deck {
		card := deckCard{ClimberProfile: climber}
		if location != nil {
			km := geo.DistanceKm(*location, geo.Coords{
				Latitude:  climber.Location.Latitude,
				Longitude: climber.Location.Longitude,
			})
			card.Distance = geo.FormatDistance(km)
		}
		cards = append(cards, card)
	}

	return c.JSON(fiber.Map{
		"deck":  cards,
		"empty": len(cards) == 0,
	})
}

type swipeRequest struct {
	ClimberID string `json:"climber_id"`
	Decision  string `json:"decision"`
}

// Swipe records a decision on a card. A pass just discards the card; a
// like registers the climber as a match (idempotently) and notifies
// connected shells.
func (h *DeckHandler) Swipe(c *fiber.Ctx) error {
	var req swipeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.ClimberID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "climber_id is required"})
	}

	switch req.Decision {
	case "pass":
		return c.JSON(fiber.Map{"matched": false})
	case "like":
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "decision must be \"like\" or \"pass\""})
	}

	climber, err := services.FindClimber(c.Context(), h.climbers, req.ClimberID)
	if err != nil {
		if errors.Is(err, services.ErrClimberNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Climber not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to resolve climber"})
	}

	if h.matches.AddMatch(climber) && h.hub != nil {
		h.hub.Broadcast(&eventws.Event{
			Type:    eventws.EventMatchAdded,
			MatchID: climber.ID,
			Climber: &climber,
		})
	}

	return c.JSON(fiber.Map{
		"matched": true,
		"climber": climber,
	})
}

func parseLocation(c *fiber.Ctx) (*geo.Coords, error) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr == "" && lonStr == "" {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, err
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return nil, err
	}
	return &geo.Coords{Latitude: lat, Longitude: lon}, nil
}
