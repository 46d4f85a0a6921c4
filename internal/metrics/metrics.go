// Package metrics tracks frame processing counters and exposes them in
// Prometheus format.
package metrics

import (
	"net/http"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the counters incremented by the session loop. Counters are
// plain atomics; Prometheus reads them through GaugeFunc collectors on a
// private registry.
type Metrics struct {
	SessionsOpened  atomic.Uint64
	ActiveSessions  atomic.Int64
	FramesReceived  atomic.Uint64
	StartVerdicts   atomic.Uint64
	WaitVerdicts    atomic.Uint64
	DecodeErrors    atomic.Uint64
	DetectionErrors atomic.Uint64

	registry *prometheus.Registry
}

// New creates a Metrics instance with all collectors registered.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
	}
	m.register()
	return m
}

func (m *Metrics) register() {
	counters := []struct {
		name string
		help string
		load func() float64
	}{
		{
			"mudra_sessions_opened_total",
			"Total websocket sessions accepted",
			func() float64 { return float64(m.SessionsOpened.Load()) },
		},
		{
			"mudra_sessions_active",
			"Currently open websocket sessions",
			func() float64 { return float64(m.ActiveSessions.Load()) },
		},
		{
			"mudra_frames_received_total",
			"Total frames received across all sessions",
			func() float64 { return float64(m.FramesReceived.Load()) },
		},
		{
			"mudra_start_verdicts_total",
			"Frames answered with the start token",
			func() float64 { return float64(m.StartVerdicts.Load()) },
		},
		{
			"mudra_wait_verdicts_total",
			"Frames answered with the wait token",
			func() float64 { return float64(m.WaitVerdicts.Load()) },
		},
		{
			"mudra_decode_errors_total",
			"Frames rejected by the payload decoder",
			func() float64 { return float64(m.DecodeErrors.Load()) },
		},
		{
			"mudra_detection_errors_total",
			"Frames where hand detection failed",
			func() float64 { return float64(m.DetectionErrors.Load()) },
		},
	}

	for _, c := range counters {
		m.registry.MustRegister(prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{Name: c.name, Help: c.help},
			c.load,
		))
	}
}

// Handler returns an http.Handler serving the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
