package contours

import (
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/gruppe-adler/dem-utils/internal/dem"
)

// Peaks returns a feature for every interior cell that is strictly higher
// than all eight of its neighbours, sorted by descending elevation. Cells
// with missing data in their neighbourhood never qualify.
func Peaks(grid *dem.Grid) []*geojson.Feature {
	peaks := []*geojson.Feature{}

	for row := uint(1); row+1 < grid.Nrows; row++ {
		for col := uint(1); col+1 < grid.Ncols; col++ {
			elevation := grid.Z(col, row)
			if math.IsNaN(elevation) {
				continue
			}

			isPeak := true
			for r := row - 1; r <= row+1 && isPeak; r++ {
				for c := col - 1; c <= col+1; c++ {
					if c == col && r == row {
						continue
					}

					neighbour := grid.Z(c, r)
					if math.IsNaN(neighbour) || neighbour >= elevation {
						isPeak = false
						break
					}
				}
			}

			if !isPeak {
				continue
			}

			feature := geojson.NewFeature(orb.Point{grid.X(col), grid.Y(row)})
			feature.Properties["elevation"] = elevation
			feature.Properties["text"] = fmt.Sprintf("%.0f", elevation)
			peaks = append(peaks, feature)
		}
	}

	sort.Slice(peaks, func(i, j int) bool {
		return peaks[i].Properties["elevation"].(float64) > peaks[j].Properties["elevation"].(float64)
	})

	return peaks
}
