package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/tidewater-labs/weather-report-service/internal/adapter/http"
	"github.com/tidewater-labs/weather-report-service/internal/report"
)

type mockBuilder struct {
	summary report.Summary
	err     error
	kinds   []report.Kind
}

func (m *mockBuilder) Build(_ context.Context, kind report.Kind) (report.Summary, error) {
	m.kinds = append(m.kinds, kind)
	if m.err != nil {
		return report.Summary{}, m.err
	}
	s := m.summary
	s.Kind = kind
	return s, nil
}

type mockReadiness struct {
	err error
}

func (m *mockReadiness) CheckReadiness(_ context.Context) error { return m.err }

func newTestServer(builder *mockBuilder, readyErr error) *httpadapter.Server {
	return httpadapter.NewServer(":0", builder, &mockReadiness{err: readyErr}, slog.Default())
}

func doRequest(srv *httpadapter.Server, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	srv.ServeHTTP(rec, req)
	return rec
}

func TestReportOverview(t *testing.T) {
	builder := &mockBuilder{summary: report.Summary{
		Days:        3,
		Text:        "3 Day Overview\n",
		GeneratedAt: time.Date(2021, 7, 8, 6, 0, 0, 0, time.UTC),
	}}
	srv := newTestServer(builder, nil)

	rec := doRequest(srv, "/report/overview")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3 Day Overview\n", rec.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "3", rec.Header().Get("X-Report-Days"))
	assert.Equal(t, "2021-07-08T06:00:00Z", rec.Header().Get("X-Generated-At"))
	require.Len(t, builder.kinds, 1)
	assert.Equal(t, report.KindOverview, builder.kinds[0])
}

func TestReportDaily(t *testing.T) {
	builder := &mockBuilder{summary: report.Summary{Days: 1, Text: "---- Tuesday 06 July 2021 ----\n"}}
	srv := newTestServer(builder, nil)

	rec := doRequest(srv, "/report/daily")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tuesday 06 July 2021")
	require.Len(t, builder.kinds, 1)
	assert.Equal(t, report.KindDaily, builder.kinds[0])
}

func TestReportReturns500OnBuildFailure(t *testing.T) {
	builder := &mockBuilder{err: errors.New("source gone")}
	srv := newTestServer(builder, nil)

	rec := doRequest(srv, "/report/overview")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "report could not be built", body["error"])
}

func TestHealthzReturns200(t *testing.T) {
	srv := newTestServer(&mockBuilder{}, nil)

	rec := doRequest(srv, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyzReturns200WhenReady(t *testing.T) {
	srv := newTestServer(&mockBuilder{}, nil)

	rec := doRequest(srv, "/readyz")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ready", body["status"])
}

func TestReadyzReturns503WhenNotReady(t *testing.T) {
	srv := newTestServer(&mockBuilder{}, errors.New("source missing"))

	rec := doRequest(srv, "/readyz")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not ready", body["status"])
	assert.Equal(t, "source missing", body["error"])
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(&mockBuilder{}, nil)

	rec := doRequest(srv, "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
