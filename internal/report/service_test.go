package report_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidewater-labs/weather-report-service/internal/domain"
	"github.com/tidewater-labs/weather-report-service/internal/observability"
	"github.com/tidewater-labs/weather-report-service/internal/report"
)

// --- mocks ---

type mockSource struct {
	series domain.WeatherSeries
	err    error
	calls  int
}

func (m *mockSource) Load(_ context.Context) (domain.WeatherSeries, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.series, nil
}

func newTestService(src *mockSource) *report.Service {
	return report.NewService(src, slog.Default(), observability.NewMetricsForTesting())
}

// --- tests ---

func TestService_Build_Overview(t *testing.T) {
	frozen := time.Date(2021, time.July, 8, 6, 0, 0, 0, time.UTC)
	report.SetClock(clockwork.NewFakeClockAt(frozen))
	defer report.SetClock(nil)

	src := &mockSource{series: domain.WeatherSeries{
		{Date: "2021-07-05", LowF: 34, HighF: 68},
		{Date: "2021-07-06", LowF: 39, HighF: 77},
	}}
	svc := newTestService(src)

	summary, err := svc.Build(context.Background(), report.KindOverview)
	require.NoError(t, err)

	assert.Equal(t, report.KindOverview, summary.Kind)
	assert.Equal(t, 2, summary.Days)
	assert.Contains(t, summary.Text, "2 Day Overview")
	assert.Equal(t, frozen, summary.GeneratedAt)
}

func TestService_Build_Daily(t *testing.T) {
	src := &mockSource{series: domain.WeatherSeries{
		{Date: "2021-07-06", LowF: 39, HighF: 77},
	}}
	svc := newTestService(src)

	summary, err := svc.Build(context.Background(), report.KindDaily)
	require.NoError(t, err)

	assert.Equal(t, report.KindDaily, summary.Kind)
	assert.Equal(t, 1, summary.Days)
	assert.Contains(t, summary.Text, "---- Tuesday 06 July 2021 ----")
}

func TestService_Build_EmptySeries(t *testing.T) {
	svc := newTestService(&mockSource{})

	summary, err := svc.Build(context.Background(), report.KindOverview)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Days)
	assert.Equal(t, "No weather data available.\n", summary.Text)
}

func TestService_Build_SourceError(t *testing.T) {
	src := &mockSource{err: errors.New("file vanished")}
	svc := newTestService(src)

	_, err := svc.Build(context.Background(), report.KindOverview)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load records")
}

func TestService_Build_BadDatePropagates(t *testing.T) {
	src := &mockSource{series: domain.WeatherSeries{{Date: "bogus", LowF: 1, HighF: 2}}}
	svc := newTestService(src)

	_, err := svc.Build(context.Background(), report.KindDaily)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestService_Build_UnknownKind(t *testing.T) {
	svc := newTestService(&mockSource{})

	_, err := svc.Build(context.Background(), report.Kind("weekly"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report kind")
}

func TestService_CheckReadiness(t *testing.T) {
	t.Run("ready after first build", func(t *testing.T) {
		src := &mockSource{}
		svc := newTestService(src)

		_, err := svc.Build(context.Background(), report.KindDaily)
		require.NoError(t, err)

		require.NoError(t, svc.CheckReadiness(context.Background()))
		// Readiness is sticky; no extra source probe once ready.
		assert.Equal(t, 1, src.calls)
	})

	t.Run("probes the source before first build", func(t *testing.T) {
		svc := newTestService(&mockSource{})
		require.NoError(t, svc.CheckReadiness(context.Background()))
	})

	t.Run("not ready when source fails", func(t *testing.T) {
		svc := newTestService(&mockSource{err: errors.New("no such file")})
		err := svc.CheckReadiness(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "record source not loadable")
	})
}
