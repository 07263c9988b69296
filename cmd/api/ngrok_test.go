package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestDetectNgrokURL(t *testing.T) {
	t.Run("prefers https tunnel", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/tunnels" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			_, _ = w.Write([]byte(`{"tunnels":[{"public_url":"http://a.ngrok.io","proto":"http"},{"public_url":"https://a.ngrok.io","proto":"https"}]}`))
		}))
		defer srv.Close()

		got, err := detectNgrokURLWith(context.Background(), srv.Client(), srv.URL, 1, time.Millisecond)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "https://a.ngrok.io" {
			t.Errorf("expected https tunnel, got %q", got)
		}
	})

	t.Run("retries until a tunnel appears", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				_, _ = w.Write([]byte(`{"tunnels":[]}`))
				return
			}
			_, _ = w.Write([]byte(`{"tunnels":[{"public_url":"tcp://b.ngrok.io","proto":"tcp"}]}`))
		}))
		defer srv.Close()

		got, err := detectNgrokURLWith(context.Background(), srv.Client(), srv.URL, 5, time.Millisecond)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "tcp://b.ngrok.io" {
			t.Errorf("expected fallback tunnel, got %q", got)
		}
		if calls.Load() != 3 {
			t.Errorf("expected 3 calls, got %d", calls.Load())
		}
	})

	t.Run("gives up after attempts", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		if _, err := detectNgrokURLWith(context.Background(), srv.Client(), srv.URL, 2, time.Millisecond); err == nil {
			t.Errorf("expected error")
		}
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tunnels":[]}`))
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := detectNgrokURLWith(ctx, srv.Client(), srv.URL, 3, time.Hour); err == nil {
			t.Errorf("expected context error")
		}
	})
}
