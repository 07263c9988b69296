package poller

import (
	"errors"
	"io"
	"net/http"
	"os"
	"time"

	"repo-activity-feed/pkg/log"
)

const defaultTimeout = 10 * time.Second

type implPoller struct {
	l        log.Logger
	url      string
	interval time.Duration
	client   *http.Client
	out      io.Writer
}

// New creates a Poller for the notifications endpoint at cfg.URL.
func New(l log.Logger, cfg Config) (Poller, error) {
	if cfg.URL == "" {
		return nil, errors.New("poller: url is required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be positive")
	}

	p := &implPoller{
		l:        l,
		url:      cfg.URL,
		interval: cfg.Interval,
		client:   cfg.Client,
		out:      cfg.Out,
	}
	if p.client == nil {
		p.client = &http.Client{Timeout: defaultTimeout}
	}
	if p.out == nil {
		p.out = os.Stdout
	}
	return p, nil
}
