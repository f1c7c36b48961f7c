package routes

import (
	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaelif/QuickLink/internal/config"
	"github.com/kaelif/QuickLink/internal/handlers"
	"github.com/kaelif/QuickLink/internal/middleware"
	"github.com/kaelif/QuickLink/internal/repository"
	"github.com/kaelif/QuickLink/internal/seed"
	"github.com/kaelif/QuickLink/internal/services"
	"github.com/kaelif/QuickLink/internal/store"
	eventws "github.com/kaelif/QuickLink/internal/websocket"
)

// RegisterRoutes wires the HTTP surface. The stores arrive already
// loaded; db is nil when the app runs off the bundled seed profiles.
func RegisterRoutes(
	app *fiber.App,
	cfg *config.Config,
	db *pgxpool.Pool,
	matches *store.MatchStore,
	filters *store.FilterStore,
	profiles *store.ProfileStore,
) error {
	var climbers services.ClimberSource
	if cfg.UseSeedData || db == nil {
		climbers = seed.Source{}
	} else {
		climbers = repository.NewClimberRepository(db)
	}

	var profileSink services.ProfileSink
	if cfg.SupabaseURL != "" && cfg.SupabaseAnonKey != "" && cfg.SupabaseProfileID != "" {
		profileSink = services.NewSupabaseProfileSink(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.SupabaseProfileID)
	}

	eventHub := eventws.NewHub()
	go eventHub.Run()

	feedService := services.NewFeedService(services.NewFallbackSource(climbers))

	authHandler := handlers.NewAuthHandler(cfg.JWTSecret)
	deckHandler := handlers.NewDeckHandler(feedService, climbers, matches, filters, eventHub, cfg.CirculatePassedCards())
	matchHandler := handlers.NewMatchHandler(matches, eventHub, cfg.ResetEnabled())
	filterHandler := handlers.NewFilterHandler(filters)
	profileHandler := handlers.NewProfileHandler(profiles, profileSink)
	wsHandler := handlers.NewWSHandler(eventHub, matches, cfg.JWTSecret)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/device", authHandler.DeviceSession)

	authProtected := api.Group("/v1", middleware.AuthRequired(cfg.JWTSecret))

	deck := authProtected.Group("/deck")
	deck.Get("", deckHandler.GetDeck)
	deck.Post("/swipe", deckHandler.Swipe)

	matchRoutes := authProtected.Group("/matches")
	matchRoutes.Get("", matchHandler.ListMatches)
	matchRoutes.Delete("/:id", matchHandler.RemoveMatch)
	matchRoutes.Post("/:id/block", matchHandler.BlockUser)
	matchRoutes.Get("/:id/messages", matchHandler.GetMessages)
	matchRoutes.Post("/:id/messages", matchHandler.SendMessage)

	authProtected.Get("/filter", filterHandler.GetFilter)
	authProtected.Put("/filter", filterHandler.UpdateFilter)

	authProtected.Get("/profile", profileHandler.GetProfile)
	authProtected.Put("/profile", profileHandler.UpdateProfile)
	authProtected.Post("/profile/sync", profileHandler.SyncProfile)

	authProtected.Post("/reset", matchHandler.Reset)

	api.Use("/v1/ws", wsHandler.WebSocketAuth)
	api.Get("/v1/ws", websocket.New(wsHandler.HandleWebSocket))

	return registerDocsRoutes(app, cfg)
}
