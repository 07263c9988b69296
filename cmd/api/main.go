package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"repo-activity-feed/config"
	_ "repo-activity-feed/docs" // Swagger docs
	actionHTTP "repo-activity-feed/internal/action/delivery/http"
	"repo-activity-feed/internal/action/usecase"
	"repo-activity-feed/internal/httpserver"
	"repo-activity-feed/internal/middleware"
	"repo-activity-feed/internal/webhook"
	"repo-activity-feed/pkg/datemath"
	"repo-activity-feed/pkg/log"
)

// @title       Repository Activity Feed API
// @description Receives GitHub webhook deliveries and serves a polled feed of repository activity.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Repository Activity Feed...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Datastore: %s", cfg.Datastore.Driver)

	// 3. Datastore
	repo, closeRepo, err := openDatastore(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open datastore: ", err)
		return
	}
	defer closeRepo()

	// 4. Action domain
	// Payload timestamps without an offset are UTC.
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		logger.Error(ctx, "Failed to initialize timestamp parser: ", err)
		return
	}
	normalizer := webhook.NewNormalizer(parser)

	var limiter *webhook.RateLimiter
	if cfg.Webhook.RateLimitPerMin > 0 {
		limiter = webhook.NewRateLimiter(webhook.RateLimitConfig{RequestsPerMin: cfg.Webhook.RateLimitPerMin})
		logger.Infof(ctx, "Receiver rate limit: %d requests/min per client", cfg.Webhook.RateLimitPerMin)
	}

	actionUC := usecase.New(logger, repo, normalizer)
	actionHandler := actionHTTP.New(logger, actionUC, limiter)

	// Public URL for the GitHub webhook, when running behind ngrok.
	if cfg.Ngrok.APIURL != "" {
		go announceNgrokURL(ctx, logger, cfg.Ngrok.APIURL)
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		Middleware:    middleware.New(logger, cfg.CORS),
		ActionHandler: actionHandler,
		Datastore:     actionUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
