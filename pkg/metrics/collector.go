// Package metrics instruments note and category repositories with
// Prometheus counters and latency histograms.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the Prometheus metrics for repository calls.
type Collector struct {
	// Registry for this collector instance
	registry *prometheus.Registry

	Operations *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
}

// NewCollector creates a collector with its own registry, so several can
// coexist in one process (tests, multiple stores).
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	operations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "repository_operations_total",
			Help:      "Total number of repository operations",
		},
		[]string{"operation", "collection", "status"},
	)

	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "repository_operation_duration_seconds",
			Help:      "Repository operation duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation", "collection"},
	)

	registry.MustRegister(operations, duration)

	return &Collector{
		registry:   registry,
		Operations: operations,
		Duration:   duration,
	}
}

// Registry returns the registry holding the collector's metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTextfile writes the current metrics in the node_exporter textfile format.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

func (c *Collector) observe(operation, collection string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.Operations.WithLabelValues(operation, collection, status).Inc()
	c.Duration.WithLabelValues(operation, collection).Observe(time.Since(start).Seconds())
}
