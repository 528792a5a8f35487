package domain

import "math"

// FahrenheitToCelsius converts a Fahrenheit reading to Celsius rounded to one
// decimal place: (f − 32) × 5/9. Pure; no error conditions.
func FahrenheitToCelsius(f float64) float64 {
	return Round1((f - 32) * 5.0 / 9.0)
}

// Round1 rounds to one decimal place, halves away from zero. This is the
// single rounding rule for the whole pipeline; see the package documentation.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
