// Package report turns a weather series into human-readable report text and
// orchestrates loading records from a source.
package report

import (
	"fmt"
	"strings"

	"github.com/tidewater-labs/weather-report-service/internal/domain"
)

// Fixed results for an empty series. An empty report is a valid, expected
// outcome, not an error.
const (
	noOverviewData = "No weather data available.\n"
	noDailyData    = "No daily weather data available.\n"
)

// BuildOverview renders the multi-day aggregate summary: day count, lowest
// low and highest high with their dates, and the average low and high. The
// extremum dates come from the record at the extremum's series index, which
// resolves ties toward the latest day. A record date that fails to parse
// aborts the whole report; no partial text is returned.
func BuildOverview(series domain.WeatherSeries) (string, error) {
	if len(series) == 0 {
		return noOverviewData, nil
	}

	lows, highs := convertSeries(series)

	lowest, _ := domain.FindMin(lows)
	highest, _ := domain.FindMax(highs)

	minDate, err := domain.FormatDate(series[lowest.Index].Date)
	if err != nil {
		return "", err
	}
	maxDate, err := domain.FormatDate(series[highest.Index].Date)
	if err != nil {
		return "", err
	}

	avgLow := domain.Round1(domain.Mean(lows))
	avgHigh := domain.Round1(domain.Mean(highs))

	var b strings.Builder
	fmt.Fprintf(&b, "%d Day Overview\n", len(series))
	fmt.Fprintf(&b, "  The lowest temperature will be %s, and will occur on %s.\n",
		domain.FormatTemperature(lowest.Value), minDate)
	fmt.Fprintf(&b, "  The highest temperature will be %s, and will occur on %s.\n",
		domain.FormatTemperature(highest.Value), maxDate)
	fmt.Fprintf(&b, "  The average low this week is %s.\n", domain.FormatTemperature(avgLow))
	fmt.Fprintf(&b, "  The average high this week is %s.\n", domain.FormatTemperature(avgHigh))
	return b.String(), nil
}

// BuildDaily renders one three-line block per record in series order, blocks
// separated by a single blank line, with exactly one trailing newline.
func BuildDaily(series domain.WeatherSeries) (string, error) {
	if len(series) == 0 {
		return noDailyData, nil
	}

	blocks := make([]string, 0, len(series))
	for _, rec := range series {
		date, err := domain.FormatDate(rec.Date)
		if err != nil {
			return "", err
		}
		low := domain.FormatTemperature(domain.FahrenheitToCelsius(float64(rec.LowF)))
		high := domain.FormatTemperature(domain.FahrenheitToCelsius(float64(rec.HighF)))
		blocks = append(blocks, fmt.Sprintf(
			"---- %s ----\n  Minimum Temperature: %s\n  Maximum Temperature: %s",
			date, low, high))
	}
	return strings.Join(blocks, "\n\n") + "\n", nil
}

// convertSeries converts every record's readings to Celsius, producing two
// slices aligned by index to the series.
func convertSeries(series domain.WeatherSeries) (lows, highs []float64) {
	lows = make([]float64, len(series))
	highs = make([]float64, len(series))
	for i, rec := range series {
		lows[i] = domain.FahrenheitToCelsius(float64(rec.LowF))
		highs[i] = domain.FahrenheitToCelsius(float64(rec.HighF))
	}
	return lows, highs
}
