package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"repo-activity-feed/pkg/log"
)

const receiverPath = "/webhook/receiver"

// announceNgrokURL logs the public receiver URL to paste into the GitHub
// repository's webhook settings.
func announceNgrokURL(ctx context.Context, logger log.Logger, apiBase string) {
	publicURL, err := detectNgrokURL(ctx, apiBase)
	if err != nil {
		logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
		return
	}
	logger.Infof(ctx, "GitHub webhook payload URL: %s%s", publicURL, receiverPath)
}

// ngrokTunnelsResponse matches the /api/tunnels response from the ngrok local API.
type ngrokTunnelsResponse struct {
	Tunnels []ngrokTunnel `json:"tunnels"`
}

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

const (
	ngrokAttempts = 10
	ngrokBackoff  = 3 * time.Second
)

// detectNgrokURL asks the ngrok agent for its tunnels and returns the public
// URL, preferring https. ngrok may still be starting, so it retries.
func detectNgrokURL(ctx context.Context, apiBase string) (string, error) {
	return detectNgrokURLWith(ctx, &http.Client{Timeout: 5 * time.Second}, apiBase, ngrokAttempts, ngrokBackoff)
}

func detectNgrokURLWith(ctx context.Context, client *http.Client, apiBase string, attempts int, backoff time.Duration) (string, error) {
	url := apiBase + "/api/tunnels"

	for attempt := 1; attempt <= attempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return "", fmt.Errorf("failed to create ngrok API request: %w", err)
		}

		tunnels, err := fetchTunnels(client, req)
		if err != nil {
			if attempt < attempts {
				if waitErr := sleepCtx(ctx, backoff); waitErr != nil {
					return "", waitErr
				}
				continue
			}
			return "", fmt.Errorf("ngrok API not reachable after %d attempts: %w", attempts, err)
		}

		// Prefer HTTPS tunnels
		for _, t := range tunnels.Tunnels {
			if t.Proto == "https" {
				return t.PublicURL, nil
			}
		}

		// Fallback: any tunnel
		if len(tunnels.Tunnels) > 0 {
			return tunnels.Tunnels[0].PublicURL, nil
		}

		// ngrok is up but has not opened a tunnel yet
		if attempt < attempts {
			if waitErr := sleepCtx(ctx, backoff); waitErr != nil {
				return "", waitErr
			}
		}
	}

	return "", fmt.Errorf("ngrok has no active tunnels after %d attempts", attempts)
}

func fetchTunnels(client *http.Client, req *http.Request) (ngrokTunnelsResponse, error) {
	resp, err := client.Do(req)
	if err != nil {
		return ngrokTunnelsResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ngrokTunnelsResponse{}, fmt.Errorf("ngrok API returned %s", resp.Status)
	}

	var tunnels ngrokTunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return ngrokTunnelsResponse{}, fmt.Errorf("failed to decode ngrok API response: %w", err)
	}
	return tunnels, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
