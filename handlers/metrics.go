package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "proposalgen"

var (
	exportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "exports_total",
		Help:      "Proposal exports by format and result",
	}, []string{"format", "result"})

	exportDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "export_duration_seconds",
		Help:      "Time spent generating an export",
		Buckets:   prometheus.DefBuckets,
	}, []string{"format"})

	assistRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "assist_requests_total",
		Help:      "Assistant requests by mode and result",
	}, []string{"mode", "result"})

	assistDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "assist_request_duration_seconds",
		Help:      "Latency of direct-mode completion calls",
		Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 40, 60},
	})

	sessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "sessions_active",
		Help:      "Wizard sessions held in memory",
	})
)
