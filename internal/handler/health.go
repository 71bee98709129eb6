package handler // declare the package name; contains HTTP handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// Pinger probes the upstream provider for liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports the liveness of the service and of its two
// external dependencies: the upstream ticket provider and the tier-1
// cache store. Neither dependency is required for the endpoint itself to
// answer 200; the body tells the caller what is degraded.
type HealthHandler struct {
	Upstream Pinger
	Rdb      *redis.Client // nil when the tier-1 store is not configured
}

func NewHealthHandler(up Pinger, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{Upstream: up, Rdb: rdb}
}

// Health handles GET /health. Each dependency reports "ok",
// "unreachable" or "not configured".
func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	providerStatus := "ok"
	if err := h.Upstream.Ping(ctx); err != nil {
		providerStatus = "unreachable"
	}

	redisStatus := "not configured"
	if h.Rdb != nil {
		redisStatus = "ok"
		if err := h.Rdb.Ping(ctx).Err(); err != nil {
			redisStatus = "unreachable"
		}
	}

	// The provider reports under "dummyjson" so existing monitoring built
	// against the original API keeps working unchanged.
	return c.JSON(http.StatusOK, echo.Map{
		"api":       "ok",
		"dummyjson": providerStatus,
		"redis":     redisStatus,
	})
}

// Root greets callers at GET /.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Welcome to TicketHub API"})
}
