// Package prometheus exports index and pack run metrics in the Prometheus
// text format, for node_exporter's textfile collector.
package prometheus

import (
	"github.com/fwojciec/nethys"
	"github.com/fwojciec/nethys/crawl"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "nethys"

// Metrics counts index outcomes per category and pack results.
type Metrics struct {
	registry *prometheus.Registry

	extracted *prometheus.CounterVec
	skipped   *prometheus.CounterVec
	warnings  *prometheus.CounterVec
	records   *prometheus.CounterVec
	batches   prometheus.Gauge
	batchSize prometheus.Histogram
}

// NewMetrics creates Metrics registered on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		extracted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_extracted_total",
			Help:      "Entries assembled into records.",
		}, []string{"category"}),
		skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_skipped_total",
			Help:      "Entries that could not be read or had no title.",
		}, []string{"category"}),
		warnings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "field_warnings_total",
			Help:      "Field values no normalizer understood.",
		}, []string{"category", "field"}),
		records: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_total",
			Help:      "Records built from entries.",
		}, []string{"category"}),
		batches: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "batches",
			Help:      "Batches produced by the last pack.",
		}),
		batchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_records",
			Help:      "Records per batch.",
			Buckets:   []float64{10, 25, 50, 100, 150, 200},
		}),
	}
	m.registry.MustRegister(m.extracted, m.skipped, m.warnings, m.records, m.batches, m.batchSize)
	return m
}

// Registry returns the registry holding the metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Observe records an index progress event. It has the signature of
// crawl.ProgressFunc.
func (m *Metrics) Observe(event crawl.ProgressEvent) {
	category := string(event.Entry.Category)
	switch event.Type {
	case crawl.ProgressExtracted:
		m.extracted.WithLabelValues(category).Inc()
		for _, rec := range event.Records {
			m.records.WithLabelValues(string(rec.Category)).Inc()
			for _, w := range rec.Warnings {
				m.warnings.WithLabelValues(string(rec.Category), w.Field).Inc()
			}
		}
	case crawl.ProgressSkipped:
		m.skipped.WithLabelValues(category).Inc()
	}
}

// ObserveBatches records the result of a pack.
func (m *Metrics) ObserveBatches(batches []*nethys.Batch) {
	m.batches.Set(float64(len(batches)))
	for _, b := range batches {
		m.batchSize.Observe(float64(len(b.Records)))
	}
}

// WriteToTextfile writes all metrics to path atomically.
func (m *Metrics) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
