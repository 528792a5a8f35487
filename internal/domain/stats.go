package domain

// Mean returns the arithmetic mean of values, or 0.0 for an empty slice.
// The empty case is an explicit guard: an empty series is a valid input,
// not a division-by-zero error.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// FindMin returns the minimum of values and its position. When the minimum
// occurs more than once the highest index wins. ok is false for an empty
// slice and the Extremum is meaningless.
func FindMin(values []float64) (Extremum, bool) {
	if len(values) == 0 {
		return Extremum{}, false
	}
	ex := Extremum{Value: values[0], Index: 0}
	for i, v := range values[1:] {
		// <= keeps overwriting on ties, yielding the last occurrence.
		if v <= ex.Value {
			ex = Extremum{Value: v, Index: i + 1}
		}
	}
	return ex, true
}

// FindMax is the counterpart of FindMin for the maximum, with the same
// last-occurrence tie-break.
func FindMax(values []float64) (Extremum, bool) {
	if len(values) == 0 {
		return Extremum{}, false
	}
	ex := Extremum{Value: values[0], Index: 0}
	for i, v := range values[1:] {
		if v >= ex.Value {
			ex = Extremum{Value: v, Index: i + 1}
		}
	}
	return ex, true
}
