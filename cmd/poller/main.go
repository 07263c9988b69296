package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"repo-activity-feed/config"
	"repo-activity-feed/internal/poller"
	"repo-activity-feed/pkg/log"
)

// main runs the polling client: it fetches new repository activity from the
// API on every interval and prints one line per action.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	url := cfg.Poller.URL
	if url == "" {
		url = fmt.Sprintf("http://localhost:%d/webhook/notifications", cfg.HTTPServer.Port)
	}

	p, err := poller.New(logger, poller.Config{
		URL:      url,
		Interval: cfg.Poller.Interval,
		Out:      os.Stdout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize poller: ", err)
		return
	}

	if err := p.Run(ctx); err != nil {
		logger.Error(ctx, "Poller stopped: ", err)
		return
	}

	logger.Info(ctx, "Poller stopped gracefully")
}
