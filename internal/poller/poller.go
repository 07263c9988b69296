package poller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"repo-activity-feed/internal/model"
)

func (p *implPoller) Fetch(ctx context.Context) ([]model.Action, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("poller.Fetch: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("poller.Fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	var items []notification
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFeed, err)
	}

	actions := make([]model.Action, 0, len(items))
	for _, n := range items {
		actions = append(actions, n.toAction())
	}
	return actions, nil
}

func (p *implPoller) Run(ctx context.Context) error {
	p.l.Infof(ctx, "Polling %s every %s", p.url, p.interval)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.tick(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// tick performs one poll. Failures are logged and retried on the next tick.
func (p *implPoller) tick(ctx context.Context) {
	actions, err := p.Fetch(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		p.l.Warnf(ctx, "poller.tick: %v", err)
		return
	}
	if n := Render(p.out, actions); n < len(actions) {
		p.l.Debugf(ctx, "poller.tick: skipped %d incomplete actions", len(actions)-n)
	}
}

// Render writes one line per describable action and returns how many were written.
func Render(w io.Writer, actions []model.Action) int {
	written := 0
	for _, a := range actions {
		line, ok := a.Describe()
		if !ok {
			continue
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return written
		}
		written++
	}
	return written
}
