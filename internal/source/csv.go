// Package source reads day records from tabular files.
package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tidewater-labs/weather-report-service/internal/domain"
	"github.com/tidewater-labs/weather-report-service/internal/observability"
)

// FileSource loads a weather series from a CSV file of date,min,max rows.
// It implements report.RecordSource.
type FileSource struct {
	path    string
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewFileSource creates a FileSource for the given CSV path.
func NewFileSource(path string, logger *slog.Logger, metrics *observability.Metrics) *FileSource {
	return &FileSource{
		path:    path,
		logger:  logger,
		metrics: metrics,
	}
}

// Load reads the file into a series. The header row is skipped; rows with
// fewer than three fields or non-integer temperatures are skipped and counted
// rather than failing the load, since a single bad row should not take out
// the whole report. A missing or unreadable file is an error.
func (s *FileSource) Load(ctx context.Context) (domain.WeatherSeries, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open source file: %w", err)
	}
	defer f.Close()

	series, skipped, err := readRecords(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	s.metrics.RowsLoaded.Add(float64(len(series)))
	s.metrics.RowsSkipped.Add(float64(skipped))
	s.metrics.SourceLoadDuration.Observe(time.Since(start).Seconds())

	if skipped > 0 {
		s.logger.Warn("skipped malformed rows", "path", s.path, "skipped", skipped)
	}
	s.logger.Debug("source loaded", "path", s.path, "rows", len(series))

	return series, nil
}

// readRecords parses CSV rows into day records, returning the count of rows
// skipped as malformed.
func readRecords(r io.Reader) (domain.WeatherSeries, int, error) {
	reader := csv.NewReader(r)
	// Row width varies on malformed input; validated per row instead.
	reader.FieldsPerRecord = -1

	// Header row carries no data.
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("read header: %w", err)
	}

	var series domain.WeatherSeries
	skipped := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}

		rec, ok := parseRow(row)
		if !ok {
			skipped++
			continue
		}
		series = append(series, rec)
	}

	return series, skipped, nil
}

// parseRow converts one CSV row into a DayRecord. Columns beyond the first
// three are ignored.
func parseRow(row []string) (domain.DayRecord, bool) {
	if len(row) < 3 {
		return domain.DayRecord{}, false
	}

	date := strings.TrimSpace(row[0])
	if date == "" {
		return domain.DayRecord{}, false
	}

	low, errLow := strconv.Atoi(strings.TrimSpace(row[1]))
	high, errHigh := strconv.Atoi(strings.TrimSpace(row[2]))
	if errLow != nil || errHigh != nil {
		return domain.DayRecord{}, false
	}

	return domain.DayRecord{Date: date, LowF: low, HighF: high}, true
}
