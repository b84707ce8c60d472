// Package metrics exposes queueboard's Prometheus collectors.
//
// Every method is safe on a nil *Collector so callers never need to check
// whether metrics are enabled.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Fetch results.
const (
	ResultOK           = "ok"
	ResultNetworkError = "network_error"
	ResultParseError   = "parse_error"
)

// Land switch triggers.
const (
	TriggerTimer = "timer"
	TriggerUser  = "user"
)

// Collector holds queueboard's metrics on a private registry.
type Collector struct {
	reg *prometheus.Registry

	Fetches       *prometheus.CounterVec // result label
	FetchDuration prometheus.Histogram

	Lands     prometheus.Gauge
	OpenRides prometheus.Gauge

	LandSwitches *prometheus.CounterVec // trigger label

	CycleInterval prometheus.Gauge // seconds
}

// NewCollector registers every metric and records the configured cycle
// interval.
func NewCollector(cycleInterval time.Duration) *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		Fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "queueboard_fetch_total",
			Help: "Queue-times fetches by result.",
		}, []string{"result"}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "queueboard_fetch_duration_seconds",
			Help:    "Duration of the queue-times fetch including decode.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
		Lands: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "queueboard_lands",
			Help: "Lands in the loaded payload.",
		}),
		OpenRides: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "queueboard_rides_open",
			Help: "Rides reported open in the loaded payload.",
		}),
		LandSwitches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "queueboard_land_switches_total",
			Help: "Land selection changes by trigger.",
		}, []string{"trigger"}),
		CycleInterval: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "queueboard_cycle_interval_seconds",
			Help: "Automatic land cycle interval in seconds.",
		}),
	}

	reg.MustRegister(
		c.Fetches, c.FetchDuration,
		c.Lands, c.OpenRides,
		c.LandSwitches, c.CycleInterval,
	)

	c.CycleInterval.Set(cycleInterval.Seconds())

	return c
}

// ObserveFetch records one fetch attempt.
func (c *Collector) ObserveFetch(result string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.Fetches.WithLabelValues(result).Inc()
	c.FetchDuration.Observe(elapsed.Seconds())
}

// SetPayload records the size of the loaded payload.
func (c *Collector) SetPayload(lands, openRides int) {
	if c == nil {
		return
	}
	c.Lands.Set(float64(lands))
	c.OpenRides.Set(float64(openRides))
}

// LandSwitched counts a selection change.
func (c *Collector) LandSwitched(trigger string) {
	if c == nil {
		return
	}
	c.LandSwitches.WithLabelValues(trigger).Inc()
}

// Handler serves the collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

// Serve starts an HTTP server exposing /metrics on addr. It stops when ctx is
// cancelled.
func (c *Collector) Serve(ctx context.Context, addr string, logger *zap.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("metrics server error", zap.String("addr", addr), zap.Error(err))
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	logger.Info("metrics listening", zap.String("addr", addr))
	return srv
}
