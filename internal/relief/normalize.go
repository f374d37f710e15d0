package relief

import "math"

// Normalize rescales elevation values to [0, 1] based on the minimum and
// maximum of the non-missing (non-NaN) values. Missing values stay NaN. A
// constant field maps every non-missing value to 0.5 and an all-missing
// input yields an all-NaN output.
func Normalize(values []float64) []float64 {
	out := make([]float64, len(values))

	min := math.Inf(1)
	max := math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	// no measurements at all
	if min > max {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}

	span := max - min
	for i, v := range values {
		switch {
		case math.IsNaN(v):
			out[i] = math.NaN()
		case span == 0:
			out[i] = 0.5
		default:
			out[i] = clamp((v - min) / span)
		}
	}

	return out
}

// clamp guards against floating-point overshoot outside [0, 1].
func clamp(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
