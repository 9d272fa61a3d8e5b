// Package observability exposes Prometheus instrumentation for inbound HTTP
// traffic and outbound catalog calls. The /metrics endpoint runs on its own
// listener so it never shares a port with the public API.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

var (
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "theatre", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	httpLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "theatre", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	externalRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "theatre", Name: "external_requests_total", Help: "Outbound catalog requests."},
		[]string{"service", "endpoint", "status"},
	)
	externalLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "theatre", Name: "external_request_duration_seconds",
			Help:    "Outbound catalog request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "endpoint"},
	)
)

func init() {
	prometheus.MustRegister(httpRequests, httpLatency, externalRequests, externalLatency)
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveExternal(service, endpoint string, status int, dur time.Duration) {
	externalRequests.WithLabelValues(service, endpoint, strconv.Itoa(status)).Inc()
	externalLatency.WithLabelValues(service, endpoint).Observe(dur.Seconds())
}

// Middleware records request count and latency per route.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		route := c.Route().Path
		if route == "" {
			route = c.Path()
		}
		ObserveHTTP(route, c.Method(), status, time.Since(start))

		return err
	}
}

// Serve starts the standalone metrics listener. Empty addr disables it.
func Serve(addr string, log *logrus.Logger) {
	if addr == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.WithField("addr", addr).Info("Metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Metrics server failed")
		}
	}()
}
