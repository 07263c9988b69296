package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	actionHTTP "repo-activity-feed/internal/action/delivery/http"
	"repo-activity-feed/internal/middleware"
	"repo-activity-feed/pkg/log"
)

// Pinger reports datastore reachability for /ready.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Action domain
	actionHandler actionHTTP.Handler
	datastore     Pinger
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	// Action domain
	ActionHandler actionHTTP.Handler
	Datastore     Pinger
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.New(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		mw:            cfg.Middleware,
		actionHandler: cfg.ActionHandler,
		datastore:     cfg.Datastore,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.actionHandler == nil {
		return errors.New("action handler is required")
	}
	if srv.datastore == nil {
		return errors.New("datastore is required")
	}
	return nil
}
