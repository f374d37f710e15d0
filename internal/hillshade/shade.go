package hillshade

import (
	"context"
	"image/color"
	"math"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/gruppe-adler/dem-utils/internal/dem"
	"github.com/gruppe-adler/dem-utils/internal/raster"
	"github.com/gruppe-adler/dem-utils/internal/relief"
)

/*
	Shading uses Horn's method: the elevation gradient at a cell is
	estimated from its eight neighbours with the weighted kernel

		dz/dx = ((z3 + 2*z6 + z9) - (z1 + 2*z4 + z7)) / (8 * cellsize)
		dz/dy = ((z7 + 2*z8 + z9) - (z1 + 2*z2 + z3)) / (8 * cellsize)

	where z1..z9 are the 3x3 neighbourhood in row-major order and y grows
	southward with the rows. The surface normal is (-dz/dx, -dz/dy, 1)
	normalized to unit length, and the illumination of the cell is the dot
	product of that normal with the unit light vector, clamped to [0, 1]
	(faces turned away from the light go fully dark).
*/

var sem = semaphore.NewWeighted(int64(runtime.NumCPU()))

// Shade computes grayscale and colored hillshade buffers for all interior
// cells of the grid, so both outputs are (Ncols-2) x (Nrows-2). Grids
// smaller than 3x3 in either dimension yield zero-area buffers. Cells whose
// 3x3 neighbourhood contains a missing value render as the darkest shade
// and relief.NoDataColor.
//
// The colored output modulates base (the flat relief render of the same
// grid) by the illumination; a nil or mismatched base modulates white.
func Shade(grid *dem.Grid, light Light, base *raster.RGB) (*raster.Gray, *raster.RGB) {
	width := int(grid.Ncols) - 2
	height := int(grid.Nrows) - 2
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	gray := raster.NewGray(width, height)
	rgb := raster.NewRGB(width, height)

	if width == 0 || height == 0 {
		return gray, rgb
	}

	if base != nil && (base.Width != int(grid.Ncols) || base.Height != int(grid.Nrows)) {
		base = nil
	}

	lx, ly, lz := light.Vector()

	// Rows are independent: the grid is read-only and every goroutine
	// writes its own row of the output buffers.
	wg := sync.WaitGroup{}
	for row := 0; row < height; row++ {
		wg.Add(1)
		go func(row int) {
			defer wg.Done()
			sem.Acquire(context.Background(), 1)
			defer sem.Release(1)

			shadeRow(grid, row, lx, ly, lz, base, gray, rgb)
		}(row)
	}
	wg.Wait()

	return gray, rgb
}

func shadeRow(grid *dem.Grid, row int, lx, ly, lz float64, base *raster.RGB, gray *raster.Gray, rgb *raster.RGB) {
	scale := 8 * grid.CellSize

	for col := 0; col < gray.Width; col++ {
		c, r := uint(col+1), uint(row+1)

		z1 := grid.Z(c-1, r-1)
		z2 := grid.Z(c, r-1)
		z3 := grid.Z(c+1, r-1)
		z4 := grid.Z(c-1, r)
		z5 := grid.Z(c, r)
		z6 := grid.Z(c+1, r)
		z7 := grid.Z(c-1, r+1)
		z8 := grid.Z(c, r+1)
		z9 := grid.Z(c+1, r+1)

		// NaN must never reach the arithmetic below.
		if anyMissing(z1, z2, z3, z4, z5, z6, z7, z8, z9) {
			gray.Set(col, row, relief.Grayscale(math.NaN()))
			rgb.Set(col, row, relief.NoDataColor)
			continue
		}

		dzdx := ((z3 + 2*z6 + z9) - (z1 + 2*z4 + z7)) / scale
		dzdy := ((z7 + 2*z8 + z9) - (z1 + 2*z2 + z3)) / scale

		norm := math.Sqrt(dzdx*dzdx + dzdy*dzdy + 1)
		illumination := (-dzdx*lx - dzdy*ly + lz) / norm
		if illumination < 0 {
			illumination = 0
		}
		if illumination > 1 {
			illumination = 1
		}

		gray.Set(col, row, relief.Grayscale(illumination))

		baseColor := color.RGBA{R: 255, G: 255, B: 255, A: 255}
		if base != nil {
			baseColor = base.At(col+1, row+1)
		}

		rgb.Set(col, row, color.RGBA{
			R: uint8(math.Round(float64(baseColor.R) * illumination)),
			G: uint8(math.Round(float64(baseColor.G) * illumination)),
			B: uint8(math.Round(float64(baseColor.B) * illumination)),
			A: 255,
		})
	}
}

func anyMissing(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) {
			return true
		}
	}

	return false
}
