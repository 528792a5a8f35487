package report

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/tidewater-labs/weather-report-service/internal/domain"
	"github.com/tidewater-labs/weather-report-service/internal/observability"
)

// RecordSource supplies a validated weather series.
type RecordSource interface {
	Load(ctx context.Context) (domain.WeatherSeries, error)
}

// Kind selects which report to build.
type Kind string

const (
	KindOverview Kind = "overview"
	KindDaily    Kind = "daily"
)

// Summary is one built report plus its provenance.
type Summary struct {
	Kind        Kind      `json:"kind"`
	Days        int       `json:"days"`
	Text        string    `json:"text"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Service wires a record source to the report builders. Reports are rebuilt
// from the source on every call; the service holds no state between calls
// beyond a readiness flag.
type Service struct {
	source  RecordSource
	logger  *slog.Logger
	metrics *observability.Metrics
	ready   atomic.Bool
}

// NewService creates a report Service.
func NewService(source RecordSource, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		source:  source,
		logger:  logger,
		metrics: metrics,
	}
}

// Build loads the series and builds the requested report.
func (s *Service) Build(ctx context.Context, kind Kind) (Summary, error) {
	start := time.Now()

	series, err := s.source.Load(ctx)
	if err != nil {
		s.metrics.SourceLoadErrors.Inc()
		s.logger.Error("load records failed", "error", err)
		return Summary{}, fmt.Errorf("load records: %w", err)
	}

	var text string
	switch kind {
	case KindOverview:
		text, err = BuildOverview(series)
	case KindDaily:
		text, err = BuildDaily(series)
	default:
		return Summary{}, fmt.Errorf("unknown report kind %q", kind)
	}
	if err != nil {
		s.metrics.BuildErrors.Inc()
		s.logger.Error("build report failed", "kind", kind, "error", err)
		return Summary{}, fmt.Errorf("build %s report: %w", kind, err)
	}

	s.metrics.ReportsBuilt.WithLabelValues(string(kind)).Inc()
	s.metrics.BuildDuration.Observe(time.Since(start).Seconds())
	s.ready.Store(true)

	s.logger.Debug("report built", "kind", kind, "days", len(series))

	return Summary{
		Kind:        kind,
		Days:        len(series),
		Text:        text,
		GeneratedAt: clock.Now(),
	}, nil
}

// CheckReadiness returns nil once a report has been built, or after verifying
// that the source is currently loadable.
func (s *Service) CheckReadiness(ctx context.Context) error {
	if s.ready.Load() {
		return nil
	}
	if _, err := s.source.Load(ctx); err != nil {
		return fmt.Errorf("record source not loadable: %w", err)
	}
	s.ready.Store(true)
	return nil
}
