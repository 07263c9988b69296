package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values.
const (
	ResultStored      = "stored"
	ResultInvalid     = "invalid"
	ResultUnsupported = "unsupported"
	ResultError       = "error"
	ResultOK          = "ok"
	ResultEmpty       = "empty"
)

var (
	// ActionsReceived counts webhook deliveries by event kind and outcome
	ActionsReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_actions_received_total",
			Help: "Total number of webhook deliveries by event kind and result",
		},
		[]string{"event", "result"},
	)

	// Polls counts notification polls by outcome
	Polls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_polls_total",
			Help: "Total number of notification polls by result",
		},
		[]string{"result"},
	)

	// PollActionsReturned tracks how many actions each successful poll hands out
	PollActionsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "webhook_poll_actions_returned",
			Help:    "Number of actions returned per poll",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		},
	)

	// WatermarkTimestamp is the current watermark as unix seconds
	WatermarkTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "webhook_watermark_timestamp_seconds",
			Help: "Timestamp of the newest action handed out by a poll",
		},
	)

	// HTTPRequests counts HTTP requests by route, method and status
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"handler", "method", "status"},
	)

	// HTTPRequestDuration tracks request latency by route and method
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"handler", "method"},
	)
)
