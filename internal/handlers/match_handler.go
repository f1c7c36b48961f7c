package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kaelif/QuickLink/internal/models"
	eventws "github.com/kaelif/QuickLink/internal/websocket"
)

type matchState interface {
	Matches() []models.ClimberProfile
	Match(matchID string) (models.ClimberProfile, bool)
	RemoveMatch(matchID string)
	BlockUser(matchID string)
	Reset()
	Messages(matchID string) []models.Message
	SendMessage(matchID, text string) (models.Message, bool)
}

type MatchHandler struct {
	store        matchState
	hub          *eventws.Hub
	resetEnabled bool
}

func NewMatchHandler(store matchState, hub *eventws.Hub, resetEnabled bool) *MatchHandler {
	return &MatchHandler{
		store:        store,
		hub:          hub,
		resetEnabled: resetEnabled,
	}
}

// ListMatches returns every match with its latest message for the
// conversation list screen.
func (h *MatchHandler) ListMatches(c *fiber.Ctx) error {
	matches := h.store.Matches()

	summaries := make([]models.MatchSummary, 0, len(matches))
	for _, m := range matches {
		summary := models.MatchSummary{ClimberProfile: m}
		if thread := h.store.Messages(m.ID); len(thread) > 0 {
			last := thread[len(thread)-1]
			summary.LastMessage = &last
		}
		summaries = append(summaries, summary)
	}

	return c.JSON(fiber.Map{"matches": summaries})
}

// RemoveMatch unmatches a climber and deletes the thread. Removing an
// unknown id is a no-op, matching the store's semantics.
func (h *MatchHandler) RemoveMatch(c *fiber.Ctx) error {
	matchID := c.Params("id")
	if matchID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid match id"})
	}

	h.store.RemoveMatch(matchID)
	h.broadcastRemoved(matchID)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *MatchHandler) BlockUser(c *fiber.Ctx) error {
	matchID := c.Params("id")
	if matchID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid match id"})
	}

	h.store.BlockUser(matchID)
	h.broadcastRemoved(matchID)
	return c.SendStatus(fiber.StatusNoContent)
}

// GetMessages returns the thread for a match. A stale id yields an
// empty thread, not an error.
func (h *MatchHandler) GetMessages(c *fiber.Ctx) error {
	matchID := c.Params("id")
	if matchID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid match id"})
	}

	return c.JSON(fiber.Map{"messages": h.store.Messages(matchID)})
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

func (h *MatchHandler) SendMessage(c *fiber.Ctx) error {
	matchID := c.Params("id")
	if matchID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid match id"})
	}

	var req sendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	msg, ok := h.store.SendMessage(matchID, req.Text)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Match not found"})
	}

	if h.hub != nil {
		h.hub.Broadcast(&eventws.Event{
			Type:    eventws.EventMessageSent,
			MatchID: msg.MatchID,
			Message: &msg,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": msg})
}

// Reset wipes matches, threads, and swipe history. Testing affordance;
// disabled outside testing mode.
func (h *MatchHandler) Reset(c *fiber.Ctx) error {
	if !h.resetEnabled {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Reset is disabled"})
	}

	h.store.Reset()
	if h.hub != nil {
		h.hub.Broadcast(&eventws.Event{Type: eventws.EventReset})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *MatchHandler) broadcastRemoved(matchID string) {
	if h.hub == nil {
		return
	}
	h.hub.Broadcast(&eventws.Event{
		Type:    eventws.EventMatchRemoved,
		MatchID: matchID,
	})
}
