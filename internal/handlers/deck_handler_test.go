package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/kaelif/QuickLink/internal/models"
	"github.com/kaelif/QuickLink/internal/services"
	eventws "github.com/kaelif/QuickLink/internal/websocket"
)

type stubFeed struct {
	deckResult []models.ClimberProfile
	deckErr    error
	lastReq    services.DeckRequest
}

func (s *stubFeed) Deck(_ context.Context, req services.DeckRequest) ([]models.ClimberProfile, error) {
	s.lastReq = req
	return s.deckResult, s.deckErr
}

type stubSource struct {
	climbers []models.ClimberProfile
	err      error
}

func (s *stubSource) ListAll(_ context.Context) ([]models.ClimberProfile, error) {
	return s.climbers, s.err
}

type stubDeckState struct {
	matchIDs   []string
	removedIDs []string
	blockedIDs []string
	added      []models.ClimberProfile
	addResult  bool
}

func (s *stubDeckState) MatchIDs() []string   { return s.matchIDs }
func (s *stubDeckState) RemovedIDs() []string { return s.removedIDs }
func (s *stubDeckState) BlockedIDs() []string { return s.blockedIDs }

func (s *stubDeckState) AddMatch(c models.ClimberProfile) bool {
	s.added = append(s.added, c)
	return s.addResult
}

type stubFilterReader struct {
	filter models.MatchFilter
}

func (s *stubFilterReader) Get() models.MatchFilter { return s.filter }

func deckTestClimber(id string, lat, lon float64) models.ClimberProfile {
	return models.ClimberProfile{
		ID:        id,
		FirstName: "Climber " + id,
		Age:       27,
		Location:  models.Location{Latitude: lat, Longitude: lon},
	}
}

func newDeckApp(h *DeckHandler) *fiber.App {
	app := fiber.New()
	app.Get("/api/v1/deck", h.GetDeck)
	app.Post("/api/v1/deck/swipe", h.Swipe)
	return app
}

func TestGetDeckLabelsDistanceWhenLocationGiven(t *testing.T) {
	feed := &stubFeed{deckResult: []models.ClimberProfile{
		deckTestClimber("a", 47.27, 11.4),
	}}
	handler := NewDeckHandler(feed, &stubSource{}, &stubDeckState{}, &stubFilterReader{}, nil, false)
	app := newDeckApp(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/deck?lat=47.26&lon=11.39", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Deck []struct {
			ID       string `json:"id"`
			Distance string `json:"distance"`
		} `json:"deck"`
		Empty bool `json:"empty"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Deck) != 1 {
		t.Fatalf("deck length = %d, want 1", len(body.Deck))
	}
	if body.Deck[0].Distance == "" {
		t.Fatal("expected a distance label when coordinates are supplied")
	}
	if body.Empty {
		t.Fatal("empty = true for a non-empty deck")
	}
	if feed.lastReq.UserLocation == nil {
		t.Fatal("user location was not forwarded to the feed")
	}
}

func TestGetDeckOmitsDistanceWithoutLocation(t *testing.T) {
	feed := &stubFeed{deckResult: []models.ClimberProfile{deckTestClimber("a", 47.27, 11.4)}}
	handler := NewDeckHandler(feed, &stubSource{}, &stubDeckState{}, &stubFilterReader{}, nil, false)
	app := newDeckApp(handler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/deck", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	var body struct {
		Deck []map[string]any `json:"deck"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, present := body.Deck[0]["distance"]; present {
		t.Fatal("distance label should be omitted without coordinates")
	}
	if feed.lastReq.UserLocation != nil {
		t.Fatal("expected nil user location")
	}
}

func TestGetDeckRejectsPartialCoordinates(t *testing.T) {
	handler := NewDeckHandler(&stubFeed{}, &stubSource{}, &stubDeckState{}, &stubFilterReader{}, nil, false)
	app := newDeckApp(handler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/deck?lat=47.26", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestGetDeckForwardsExclusionState(t *testing.T) {
	feed := &stubFeed{}
	state := &stubDeckState{
		matchIDs:   []string{"m1"},
		removedIDs: []string{"r1"},
		blockedIDs: []string{"b1"},
	}
	handler := NewDeckHandler(feed, &stubSource{}, state, &stubFilterReader{}, nil, true)
	app := newDeckApp(handler)

	if _, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/deck", nil)); err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	if len(feed.lastReq.MatchIDs) != 1 || feed.lastReq.MatchIDs[0] != "m1" {
		t.Fatalf("match ids = %v", feed.lastReq.MatchIDs)
	}
	if len(feed.lastReq.BlockedIDs) != 1 || feed.lastReq.BlockedIDs[0] != "b1" {
		t.Fatalf("blocked ids = %v", feed.lastReq.BlockedIDs)
	}
	if !feed.lastReq.CirculatePassedCards {
		t.Fatal("circulate policy was not forwarded")
	}
}

func TestGetDeckFailsWhenFeedErrors(t *testing.T) {
	feed := &stubFeed{deckErr: errors.New("source down")}
	handler := NewDeckHandler(feed, &stubSource{}, &stubDeckState{}, &stubFilterReader{}, nil, false)
	app := newDeckApp(handler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/deck", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}
}

func TestSwipeLikeRegistersMatch(t *testing.T) {
	liked := deckTestClimber("a", 47.27, 11.4)
	state := &stubDeckState{addResult: true}
	handler := NewDeckHandler(&stubFeed{}, &stubSource{climbers: []models.ClimberProfile{liked}}, state, &stubFilterReader{}, eventws.NewHub(), false)
	app := newDeckApp(handler)

	payload := bytes.NewBufferString(`{"climber_id":"a","decision":"like"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/deck/swipe", payload)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Matched bool                  `json:"matched"`
		Climber models.ClimberProfile `json:"climber"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Matched {
		t.Fatal("matched = false after a like")
	}
	if body.Climber.ID != "a" {
		t.Fatalf("climber id = %q, want %q", body.Climber.ID, "a")
	}
	if len(state.added) != 1 || state.added[0].ID != "a" {
		t.Fatalf("store recorded %v", state.added)
	}
}

func TestSwipePassDoesNotTouchStore(t *testing.T) {
	state := &stubDeckState{}
	handler := NewDeckHandler(&stubFeed{}, &stubSource{}, state, &stubFilterReader{}, nil, false)
	app := newDeckApp(handler)

	payload := bytes.NewBufferString(`{"climber_id":"a","decision":"pass"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/deck/swipe", payload)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if len(state.added) != 0 {
		t.Fatal("pass should not register a match")
	}
}

func TestSwipeUnknownClimberReturnsNotFound(t *testing.T) {
	handler := NewDeckHandler(&stubFeed{}, &stubSource{}, &stubDeckState{}, &stubFilterReader{}, nil, false)
	app := newDeckApp(handler)

	payload := bytes.NewBufferString(`{"climber_id":"ghost","decision":"like"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/deck/swipe", payload)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestSwipeRejectsUnknownDecision(t *testing.T) {
	handler := NewDeckHandler(&stubFeed{}, &stubSource{}, &stubDeckState{}, &stubFilterReader{}, nil, false)
	app := newDeckApp(handler)

	payload := bytes.NewBufferString(`{"climber_id":"a","decision":"superlike"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/deck/swipe", payload)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
