package contours

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/gruppe-adler/dem-utils/internal/dem"
)

// MarchingSquares traces the contour lines of the grid at the given
// elevation level and joins the per-cell segments into polylines. Cells
// with a missing corner produce no geometry.
func MarchingSquares(grid *dem.Grid, level float64) []orb.LineString {
	lines := []orb.LineString{}

	for col := uint(0); col+1 < grid.Ncols; col++ {
		for row := uint(0); row+1 < grid.Nrows; row++ {
			for _, segment := range cellSegments(grid, col, row, level) {
				lines = appendSegment(lines, segment)
			}
		}
	}

	return lines
}

// cellSegments computes the contour segments crossing the cell whose
// top-left corner is (col, row), using the standard 16-case lookup.
func cellSegments(grid *dem.Grid, col, row uint, level float64) []orb.LineString {
	tl := grid.Z(col, row)
	tr := grid.Z(col+1, row)
	br := grid.Z(col+1, row+1)
	bl := grid.Z(col, row+1)

	if anyMissing(tl, tr, br, bl) {
		return nil
	}

	leftX := grid.X(col)
	rightX := grid.X(col + 1)
	topY := grid.Y(row)
	bottomY := grid.Y(row + 1)

	index := 0
	if tl > level {
		index |= 8
	}
	if tr > level {
		index |= 4
	}
	if br > level {
		index |= 2
	}
	if bl > level {
		index |= 1
	}

	top := func() orb.Point {
		return orb.Point{interpolate(leftX, tl, rightX, tr, level), topY}
	}
	left := func() orb.Point {
		return orb.Point{leftX, interpolate(bottomY, bl, topY, tl, level)}
	}
	bottom := func() orb.Point {
		return orb.Point{interpolate(leftX, bl, rightX, br, level), bottomY}
	}
	right := func() orb.Point {
		return orb.Point{rightX, interpolate(bottomY, br, topY, tr, level)}
	}

	switch index {
	case 1, 14:
		return []orb.LineString{{bottom(), left()}}
	case 2, 13:
		return []orb.LineString{{right(), bottom()}}
	case 3, 12:
		return []orb.LineString{{right(), left()}}
	case 4, 11:
		return []orb.LineString{{top(), right()}}
	case 5:
		// saddle: two lines through the cell
		return []orb.LineString{{left(), top()}, {bottom(), right()}}
	case 6, 9:
		return []orb.LineString{{top(), bottom()}}
	case 7, 8:
		return []orb.LineString{{left(), top()}}
	case 10:
		// the other saddle orientation
		return []orb.LineString{{left(), bottom()}, {top(), right()}}
	}

	// 0 and 15: the cell is entirely below or above the level
	return nil
}

// interpolate finds the coordinate where the contour level crosses the edge
// between coordinates c0 (elevation h0) and c1 (elevation h1). Callers only
// interpolate edges whose corners straddle the level, so h0 != h1.
func interpolate(c0, h0, c1, h1, level float64) float64 {
	return (c0*(h1-level) + c1*(level-h0)) / (h1 - h0)
}

// appendSegment adds a two-point segment to the line set, joining it with
// any polylines that share an endpoint.
func appendSegment(lines []orb.LineString, segment orb.LineString) []orb.LineString {
	for i := 0; i < len(lines); i++ {
		joined, ok := join(lines[i], segment)
		if !ok {
			continue
		}
		lines[i] = joined

		// the extended line may now close the gap to a second line
		for j := 0; j < len(lines); j++ {
			if j == i {
				continue
			}

			merged, ok := join(lines[i], lines[j])
			if !ok {
				continue
			}

			lines[i] = merged
			lines[j] = lines[len(lines)-1] // copy last element to index j
			lines[len(lines)-1] = nil      // erase last element
			lines = lines[:len(lines)-1]   // truncate slice
			break
		}

		return lines
	}

	return append(lines, segment)
}

// join combines two polylines that share an endpoint, reversing b when the
// shared endpoints face each other.
func join(a, b orb.LineString) (orb.LineString, bool) {
	switch {
	case a[len(a)-1].Equal(b[0]):
		return stitch(a, b), true
	case b[len(b)-1].Equal(a[0]):
		return stitch(b, a), true
	case a[len(a)-1].Equal(b[len(b)-1]):
		b.Reverse()
		return stitch(a, b), true
	case a[0].Equal(b[0]):
		b.Reverse()
		return stitch(b, a), true
	}

	return nil, false
}

// stitch appends all points of b except the first (shared) one to a.
func stitch(a, b orb.LineString) orb.LineString {
	for i := 1; i < len(b); i++ {
		a = append(a, b[i])
	}

	return a
}

func anyMissing(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) {
			return true
		}
	}

	return false
}
