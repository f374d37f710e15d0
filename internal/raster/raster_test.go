package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGray(t *testing.T) {
	g := NewGray(3, 2)

	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.Len(t, g.Pix, 6)

	empty := NewGray(-1, 5)
	assert.Equal(t, 0, empty.Width)
	assert.Empty(t, empty.Pix)
}

func TestNewRGB(t *testing.T) {
	p := NewRGB(3, 2)

	assert.Equal(t, 3, p.Width)
	assert.Equal(t, 2, p.Height)
	assert.Len(t, p.Pix, 18)

	empty := NewRGB(4, -1)
	assert.Equal(t, 0, empty.Height)
	assert.Empty(t, empty.Pix)
}

func TestGraySetAt(t *testing.T) {
	g := NewGray(2, 2)
	g.Set(1, 0, 200)

	assert.Equal(t, uint8(200), g.At(1, 0))
	assert.Equal(t, uint8(0), g.At(0, 1))
}

func TestRGBSetAt(t *testing.T) {
	p := NewRGB(2, 2)
	p.Set(0, 1, color.RGBA{R: 1, G: 2, B: 3, A: 77})

	// alpha is discarded on write and always opaque on read
	assert.Equal(t, color.RGBA{R: 1, G: 2, B: 3, A: 255}, p.At(0, 1))
	assert.Equal(t, color.RGBA{A: 255}, p.At(1, 1))
}

func TestGrayToImage(t *testing.T) {
	g := NewGray(2, 1)
	g.Set(0, 0, 11)
	g.Set(1, 0, 22)

	img := g.Image()

	assert.Equal(t, image.Rect(0, 0, 2, 1), img.Bounds())
	assert.Equal(t, uint8(11), img.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(22), img.GrayAt(1, 0).Y)
}

func TestRGBToImage(t *testing.T) {
	p := NewRGB(1, 2)
	p.Set(0, 0, color.RGBA{R: 9, G: 8, B: 7, A: 255})

	img := p.Image()

	assert.Equal(t, image.Rect(0, 0, 1, 2), img.Bounds())
	assert.Equal(t, color.RGBA{R: 9, G: 8, B: 7, A: 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{A: 255}, img.RGBAAt(0, 1))
}
