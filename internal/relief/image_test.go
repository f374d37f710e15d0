package relief

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrayImage(t *testing.T) {
	img := GrayImage([]float64{0, 1, math.NaN(), 0.5}, 2, 2)

	assert.Equal(t, 2, img.Width)
	assert.Equal(t, 2, img.Height)
	assert.Equal(t, []uint8{0, 255, 0, 128}, img.Pix)
}

func TestColorImage(t *testing.T) {
	fn := func(v float64) color.RGBA {
		return color.RGBA{R: 10, G: 20, B: uint8(math.Round(v * 100)), A: 255}
	}

	img := ColorImage([]float64{0, math.NaN()}, 2, 1, fn)

	assert.Equal(t, []uint8{10, 20, 0, 0, 0, 0}, img.Pix)
	assert.Equal(t, color.RGBA{R: 10, G: 20, B: 0, A: 255}, img.At(0, 0))
	assert.Equal(t, NoDataColor, img.At(1, 0))
}
