package domain

// DayRecord is one validated row of source data: a calendar date plus the
// day's low and high Fahrenheit readings. Records are immutable once read.
type DayRecord struct {
	Date  string `json:"date"` // ISO-8601 calendar date, e.g. "2021-07-05"
	LowF  int    `json:"min"`
	HighF int    `json:"max"`
}

// WeatherSeries is an ordered sequence of day records. Order is significant:
// extremum indices refer to positions in this sequence, and no sorting is
// ever applied. A series may be empty.
type WeatherSeries []DayRecord

// Extremum is a Celsius value paired with the series position it came from.
type Extremum struct {
	Value float64 `json:"value"`
	Index int     `json:"index"`
}
