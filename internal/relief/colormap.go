package relief

import (
	"image/color"
	"math"
)

// NoDataColor is the sentinel color for missing cells in RGB products:
// opaque black, the same "darkest shade" policy the grayscale mapping uses.
var NoDataColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}

// ColorFunc maps a normalized value in [0, 1] to a color. Implementations
// must be deterministic and total over [0, 1]; the gradient tables in
// internal/palette satisfy this.
type ColorFunc func(t float64) color.RGBA

// Grayscale maps a normalized value to an intensity in [0, 255]. Missing
// values render as 0.
func Grayscale(t float64) uint8 {
	if math.IsNaN(t) {
		return 0
	}

	return uint8(math.Round(clamp(t) * 255))
}

// MapColor maps a normalized value through fn. Missing values render as
// NoDataColor; NaN never reaches fn.
func MapColor(t float64, fn ColorFunc) color.RGBA {
	if math.IsNaN(t) {
		return NoDataColor
	}

	return fn(clamp(t))
}
