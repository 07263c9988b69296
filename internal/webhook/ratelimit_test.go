package webhook_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"repo-activity-feed/internal/webhook"
)

func TestRateLimiter(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		rl := webhook.NewRateLimiter(webhook.RateLimitConfig{RequestsPerMin: 0})
		for i := 0; i < 100; i++ {
			if err := rl.Allow("10.0.0.1"); err != nil {
				t.Fatalf("disabled limiter rejected request %d: %v", i, err)
			}
		}
	})

	t.Run("Burst then reject", func(t *testing.T) {
		rl := webhook.NewRateLimiter(webhook.RateLimitConfig{RequestsPerMin: 60})
		for i := 0; i < 6; i++ {
			if err := rl.Allow("10.0.0.1"); err != nil {
				t.Fatalf("request %d within burst rejected: %v", i, err)
			}
		}
		if err := rl.Allow("10.0.0.1"); !errors.Is(err, webhook.ErrRateLimited) {
			t.Errorf("expected ErrRateLimited, got %v", err)
		}
	})

	t.Run("Keys are independent", func(t *testing.T) {
		rl := webhook.NewRateLimiter(webhook.RateLimitConfig{RequestsPerMin: 1})
		if err := rl.Allow("a"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := rl.Allow("a"); err == nil {
			t.Errorf("expected second request for a to be limited")
		}
		if err := rl.Allow("b"); err != nil {
			t.Errorf("expected b to have its own bucket, got %v", err)
		}
	})

	t.Run("Concurrent first requests share one bucket", func(t *testing.T) {
		// 10/min gives a burst of one and a refill every six seconds.
		rl := webhook.NewRateLimiter(webhook.RateLimitConfig{RequestsPerMin: 10})

		var (
			wg      sync.WaitGroup
			allowed atomic.Int32
			start   = make(chan struct{})
		)
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				if rl.Allow("10.0.0.9") == nil {
					allowed.Add(1)
				}
			}()
		}
		close(start)
		wg.Wait()

		if got := allowed.Load(); got != 1 {
			t.Errorf("expected exactly one request within burst, got %d", got)
		}
	})
}
