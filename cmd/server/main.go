package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/tickethub/internal/cache"
	"github.com/iliyamo/tickethub/internal/config"
	"github.com/iliyamo/tickethub/internal/handler"
	"github.com/iliyamo/tickethub/internal/queue"
	"github.com/iliyamo/tickethub/internal/router"
	queue_publisher "github.com/iliyamo/tickethub/internal/service"
	"github.com/iliyamo/tickethub/internal/upstream"
)

func main() {
	// Load .env when present; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()

	// The Redis client may come back nil; every consumer degrades
	// gracefully to in-process behaviour in that case.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, running with in-process cache tier only")
	}

	gateway := upstream.New(cfg.UpstreamBaseURL, cfg.UpstreamTimeout)

	tickets := cache.NewTicketCache(
		cache.NewRedisStore(rdb),
		gateway,
		cfg.CacheTTL,
		publishRefresh,
	)

	if config.LoadQueueConfig().Enabled {
		go func() {
			if err := queue.StartRefreshConsumer(); err != nil {
				log.Printf("refresh consumer stopped: %v", err)
			}
		}()
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, rdb,
		handler.NewAuthHandler(cfg, gateway),
		handler.NewTicketHandler(tickets),
		handler.NewHealthHandler(gateway, rdb),
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// publishRefresh forwards a completed cache refresh to the message broker
// without blocking the request that triggered it. Publish failures are
// logged inside the publisher and ignored here.
func publishRefresh(count int, elapsed time.Duration) {
	if !config.LoadQueueConfig().Enabled {
		return
	}
	ev := queue.TicketsRefreshedEvent{
		TicketCount: count,
		DurationMS:  elapsed.Milliseconds(),
		RefreshedAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishTicketsRefreshed(ctx, ev)
	}()
}
