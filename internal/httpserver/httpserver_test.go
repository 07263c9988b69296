package httpserver_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"repo-activity-feed/config"
	actionHTTP "repo-activity-feed/internal/action/delivery/http"
	"repo-activity-feed/internal/action/repository/memory"
	"repo-activity-feed/internal/action/usecase"
	"repo-activity-feed/internal/httpserver"
	"repo-activity-feed/internal/middleware"
	"repo-activity-feed/internal/webhook"
	"repo-activity-feed/pkg/log"
)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(ctx context.Context) error { return p.err }

func newServer(t *testing.T, pinger httpserver.Pinger) *httpserver.HTTPServer {
	t.Helper()
	l := log.NewNop()
	uc := usecase.New(l, memory.New(l), webhook.NewNormalizer(nil))

	srv, err := httpserver.New(l, httpserver.Config{
		Logger:        l,
		Port:          8080,
		Mode:          gin.TestMode,
		Environment:   "test",
		Middleware:    middleware.New(l, config.CORSConfig{AllowedOrigins: []string{"*"}}),
		ActionHandler: actionHTTP.New(l, uc, nil),
		Datastore:     pinger,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return srv
}

func serve(srv *httpserver.HTTPServer, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNewValidation(t *testing.T) {
	l := log.NewNop()
	if _, err := httpserver.New(l, httpserver.Config{Mode: gin.TestMode, Port: 8080}); err == nil {
		t.Errorf("expected error without action handler")
	}
	if _, err := httpserver.New(l, httpserver.Config{Mode: gin.TestMode}); err == nil {
		t.Errorf("expected error without port")
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newServer(t, fakePinger{})

	for _, path := range []string{"/health", "/live", "/ready"} {
		t.Run(path, func(t *testing.T) {
			if w := serve(srv, http.MethodGet, path); w.Code != http.StatusOK {
				t.Errorf("expected 200, got %d", w.Code)
			}
		})
	}

	t.Run("/metrics", func(t *testing.T) {
		w := serve(srv, http.MethodGet, "/metrics")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "http_requests_total") {
			t.Errorf("expected http metrics in exposition")
		}
	})
}

func TestReadyDatastoreDown(t *testing.T) {
	srv := newServer(t, fakePinger{err: errors.New("connection refused")})

	if w := serve(srv, http.MethodGet, "/ready"); w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
	if w := serve(srv, http.MethodGet, "/live"); w.Code != http.StatusOK {
		t.Errorf("liveness must not depend on the datastore, got %d", w.Code)
	}
}

func TestWebhookRoutesRegistered(t *testing.T) {
	srv := newServer(t, fakePinger{})

	if w := serve(srv, http.MethodGet, "/webhook/notifications"); w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Errorf("expected empty array, got %d %s", w.Code, w.Body.String())
	}
	if w := serve(srv, http.MethodPost, "/webhook/receiver"); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty delivery, got %d", w.Code)
	}
}
