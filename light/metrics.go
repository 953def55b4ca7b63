package light

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

const (
	// MetricsSubsystem is a subsystem shared by all metrics exposed by this
	// package.
	MetricsSubsystem = "light"
)

// Metrics contains metrics exposed by this package.
type Metrics struct {
	// Number of blocks accepted as the new trusted head.
	BlocksVerified metrics.Counter
	// Number of candidate blocks rejected.
	BlocksRejected metrics.Counter
	// Height of the trusted head.
	HeadHeight metrics.Gauge
	// Number of outcome inclusion proofs that verified.
	ProofsVerified metrics.Counter
	// Number of outcome inclusion proofs rejected.
	ProofsRejected metrics.Counter
}

// PrometheusMetrics returns Metrics build using Prometheus client library.
func PrometheusMetrics(namespace string) *Metrics {
	return &Metrics{
		BlocksVerified: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "blocks_verified",
			Help:      "Number of blocks accepted as the new trusted head.",
		}, []string{}),
		BlocksRejected: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "blocks_rejected",
			Help:      "Number of candidate blocks rejected.",
		}, []string{}),
		HeadHeight: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "head_height",
			Help:      "Height of the trusted head.",
		}, []string{}),
		ProofsVerified: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "proofs_verified",
			Help:      "Number of outcome inclusion proofs that verified.",
		}, []string{}),
		ProofsRejected: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "proofs_rejected",
			Help:      "Number of outcome inclusion proofs rejected.",
		}, []string{}),
	}
}

// NopMetrics returns no-op Metrics.
func NopMetrics() *Metrics {
	return &Metrics{
		BlocksVerified: discard.NewCounter(),
		BlocksRejected: discard.NewCounter(),
		HeadHeight:     discard.NewGauge(),
		ProofsVerified: discard.NewCounter(),
		ProofsRejected: discard.NewCounter(),
	}
}
