// Package metrics exposes quantization pipeline timings and diagnostics as
// Prometheus collectors. A *Metrics is a quantize.Observer, so it plugs into
// quantize.Run through quantize.WithObserver.
package metrics

import (
	"time"

	"github.com/katalvlaran/mstquant/quantize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric name.
const Namespace = "mstquant"

// Metrics holds all collectors, registered on its own registry.
type Metrics struct {
	StageLatency   *prometheus.HistogramVec
	Requests       prometheus.Counter
	Pixels         prometheus.Counter
	DistinctColors prometheus.Gauge
	Clusters       prometheus.Gauge
	MSTWeight      prometheus.Gauge
	registry       *prometheus.Registry
}

var _ quantize.Observer = (*Metrics)(nil)

// New creates a Metrics instance backed by a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		StageLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "stage_duration_seconds",
			Help:      "Time spent in each pipeline stage",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"stage"}),
		Requests: factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "requests_total",
			Help:      "Completed quantization requests",
		}),
		Pixels: factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "pixels_total",
			Help:      "Pixels rewritten by completed requests",
		}),
		DistinctColors: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "distinct_colors",
			Help:      "Distinct colors of the last image",
		}),
		Clusters: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "clusters",
			Help:      "Clusters produced for the last image",
		}),
		MSTWeight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "mst_weight",
			Help:      "Total spanning tree weight of the last image",
		}),
		registry: registry,
	}
}

// ObserveStage records the duration of one stage.
func (m *Metrics) ObserveStage(stage quantize.Stage, d time.Duration) {
	m.StageLatency.WithLabelValues(string(stage)).Observe(d.Seconds())
}

// ObserveStats records the diagnostics of a completed request.
func (m *Metrics) ObserveStats(s quantize.Stats) {
	m.Requests.Inc()
	m.Pixels.Add(float64(s.Pixels))
	m.DistinctColors.Set(float64(s.DistinctColors))
	m.Clusters.Set(float64(s.Clusters))
	m.MSTWeight.Set(s.MSTWeight)
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile dumps all metrics in the Prometheus text format to path,
// suitable for the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
