// Package domain models daily weather records and the pure computations the
// report layer is built from.
//
// # Data Source
//
// Records come from a tabular CSV source with one row per calendar day:
//
//	date,min,max
//	2021-07-05,34,68
//
// Dates are ISO-8601 calendar dates. Temperatures are whole-number Fahrenheit
// readings; they are converted to Celsius exactly once on the way into any
// comparison or aggregate, never re-parsed from strings afterwards.
//
// # Rounding Policy
//
// "Round to one decimal place" means round-half-away-from-zero, as implemented
// by [Round1] on top of math.Round. The same rule applies everywhere a value
// is rounded: the Fahrenheit→Celsius conversion and the re-rounding of
// averages before display. The rule is pinned deliberately so that boundary
// values like x.x5 behave identically across platforms and call sites.
//
// # Extremum Tie-Breaking
//
// When several positions in a series share the minimum (or maximum) value,
// [FindMin] and [FindMax] report the highest index among them, not the first.
// Report text resolves dates through that index, so a week ending on its
// coldest repeated low attributes the low to the later day.
package domain
