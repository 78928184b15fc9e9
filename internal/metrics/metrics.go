// Package metrics exposes Prometheus instrumentation for the bridge.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "slackbridge_http_requests_total",
		Help: "HTTP requests handled, by route and status code",
	}, []string{"route", "method", "status"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "slackbridge_http_request_duration_seconds",
		Help:    "HTTP request latency by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	slackCalls = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "slackbridge_slack_api_calls_total",
		Help: "Upstream Slack Web API calls, by method and outcome",
	}, []string{"method", "outcome"})
)

func init() {
	prometheus.MustRegister(httpRequests, httpDuration, slackCalls)
}

// Handler returns the /metrics HTTP handler.
func Handler() http.Handler { return promhttp.Handler() }

// ObserveRequest records one handled HTTP request.
func ObserveRequest(route, method, status string, seconds float64) {
	httpRequests.WithLabelValues(route, method, status).Inc()
	httpDuration.WithLabelValues(route).Observe(seconds)
}

// IncSlackCall records one upstream Slack API call.
func IncSlackCall(method, outcome string) {
	slackCalls.WithLabelValues(method, outcome).Inc()
}
