package domain

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// DegreeCelsius is the fixed unit marker appended to every rendered
// temperature. It never changes at runtime.
const DegreeCelsius = "°C"

// isoDateLayout matches ISO-8601 calendar dates, e.g. "2021-07-05".
const isoDateLayout = "2006-01-02"

// displayDateLayout renders "Tuesday 06 July 2021".
const displayDateLayout = "Monday 02 January 2006"

// ErrInvalidDate reports a source date that is not a valid ISO-8601 calendar
// date. A bad date is an upstream data-integrity violation, so callers let it
// propagate rather than substituting a placeholder.
var ErrInvalidDate = errors.New("invalid ISO-8601 date")

// FormatTemperature renders a Celsius value as display text, e.g. "25.0°C".
// Values reaching this function are already rounded to one decimal place, so
// the fixed one-decimal layout reproduces them verbatim; no further rounding
// happens here.
func FormatTemperature(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + DegreeCelsius
}

// FormatDate parses an ISO-8601 calendar date and renders it as
// "<weekday> <zero-padded day> <month> <year>", e.g. "Tuesday 06 July 2021".
// The returned error wraps [ErrInvalidDate] when the input does not parse.
func FormatDate(iso string) (string, error) {
	t, err := time.Parse(isoDateLayout, iso)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, iso)
	}
	return t.Format(displayDateLayout), nil
}
