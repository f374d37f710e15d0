package dem

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the elevation distribution of a grid. All statistics
// ignore missing cells; a grid without any measurement yields NaN fields
// and Valid == 0.
type Summary struct {
	Min, Max     float64
	Mean, StdDev float64
	Valid        int
	Missing      int
}

// Stats computes summary statistics over all non-missing cells.
func (g *Grid) Stats() Summary {
	values := make([]float64, 0, len(g.Data))
	missing := 0

	for _, v := range g.Data {
		if math.IsNaN(v) {
			missing++
			continue
		}
		values = append(values, v)
	}

	if len(values) == 0 {
		nan := math.NaN()
		return Summary{Min: nan, Max: nan, Mean: nan, StdDev: nan, Missing: missing}
	}

	return Summary{
		Min:     floats.Min(values),
		Max:     floats.Max(values),
		Mean:    stat.Mean(values, nil),
		StdDev:  stat.StdDev(values, nil),
		Valid:   len(values),
		Missing: missing,
	}
}
