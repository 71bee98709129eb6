package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/tickethub/internal/config"
	"github.com/iliyamo/tickethub/internal/handler"
	"github.com/iliyamo/tickethub/internal/middleware"
)

// Register wires every route of the API onto the provided Echo instance.
//
// The boundary layering is:
//   - a general per-client rate limit on everything,
//   - a stricter login rate limit stacked on /auth/login,
//   - JWT authentication on the ticket and stats views.
//
// Health, root and the debug listing stay unauthenticated so they remain
// usable when the signing secret or the provider is misconfigured.
func Register(e *echo.Echo, cfg config.Config, rdb *redis.Client,
	auth *handler.AuthHandler, tickets *handler.TicketHandler, health *handler.HealthHandler) {

	general := middleware.RateLimit(config.LoadRateLimitConfig(), rdb)
	login := middleware.RateLimit(config.LoadLoginRateLimitConfig(), rdb)
	e.Use(general)

	e.GET("/", handler.Root)
	e.GET("/health", health.Health)
	e.GET("/tickets-debug", tickets.Debug)

	// Login carries its own, stricter budget on top of the general one.
	e.POST("/auth/login", auth.Login, login)

	// Protected read-only views over the cached ticket collection.
	protected := e.Group("", middleware.JWTAuth(cfg.JWTSecret))
	protected.GET("/tickets", tickets.List)
	// Echo prefers static segments over :id, so /tickets/search is safe
	// to register next to /tickets/:id.
	protected.GET("/tickets/search", tickets.Search)
	protected.GET("/tickets/:id", tickets.Get)
	protected.GET("/stats", tickets.Stats)
}
