package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// report service.
type Metrics struct {
	ReportsBuilt  *prometheus.CounterVec // label: kind={overview,daily}
	BuildErrors   prometheus.Counter
	BuildDuration prometheus.Histogram

	// Record source metrics.
	RowsLoaded         prometheus.Counter
	RowsSkipped        prometheus.Counter
	SourceLoadErrors   prometheus.Counter
	SourceLoadDuration prometheus.Histogram
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		ReportsBuilt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_report",
			Name:      "reports_built_total",
			Help:      "Total reports successfully built, by kind.",
		}, []string{"kind"}),
		BuildErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_report",
			Name:      "build_errors_total",
			Help:      "Total report builds that failed.",
		}),
		BuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_report",
			Name:      "build_duration_seconds",
			Help:      "Duration of a complete load-and-build cycle.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		}),
		RowsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_report",
			Name:      "source_rows_loaded_total",
			Help:      "Total day records read from the source file.",
		}),
		RowsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_report",
			Name:      "source_rows_skipped_total",
			Help:      "Total malformed source rows skipped.",
		}),
		SourceLoadErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_report",
			Name:      "source_load_errors_total",
			Help:      "Total failures to read the source file.",
		}),
		SourceLoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_report",
			Name:      "source_load_duration_seconds",
			Help:      "Duration of reading and parsing the source file.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
	}

	prometheus.MustRegister(
		m.ReportsBuilt,
		m.BuildErrors,
		m.BuildDuration,
		m.RowsLoaded,
		m.RowsSkipped,
		m.SourceLoadErrors,
		m.SourceLoadDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		ReportsBuilt:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weather_report", Name: "reports_built_total"}, []string{"kind"}),
		BuildErrors:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_report", Name: "build_errors_total"}),
		BuildDuration:      prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "weather_report", Name: "build_duration_seconds"}),
		RowsLoaded:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_report", Name: "source_rows_loaded_total"}),
		RowsSkipped:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_report", Name: "source_rows_skipped_total"}),
		SourceLoadErrors:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_report", Name: "source_load_errors_total"}),
		SourceLoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "weather_report", Name: "source_load_duration_seconds"}),
	}
}
