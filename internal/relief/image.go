package relief

import (
	"github.com/gruppe-adler/dem-utils/internal/raster"
)

// GrayImage lays out normalized values as a width x height grayscale
// buffer in row-major order. values must hold width*height entries.
func GrayImage(values []float64, width, height int) *raster.Gray {
	img := raster.NewGray(width, height)

	for i, v := range values {
		img.Pix[i] = Grayscale(v)
	}

	return img
}

// ColorImage lays out normalized values as a width x height RGB buffer in
// row-major order, mapping each value through fn. values must hold
// width*height entries.
func ColorImage(values []float64, width, height int, fn ColorFunc) *raster.RGB {
	img := raster.NewRGB(width, height)

	for i, v := range values {
		c := MapColor(v, fn)
		img.Pix[3*i] = c.R
		img.Pix[3*i+1] = c.G
		img.Pix[3*i+2] = c.B
	}

	return img
}
