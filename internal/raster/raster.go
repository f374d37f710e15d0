package raster

import (
	"image"
	"image/color"
)

// Gray is a flat, row-major buffer of single-channel intensities,
// one byte per cell.
type Gray struct {
	Width, Height int
	Pix           []uint8
}

// RGB is a flat, row-major buffer of color values, three bytes per cell.
type RGB struct {
	Width, Height int
	Pix           []uint8
}

// NewGray allocates a Gray buffer. Non-positive dimensions yield a valid
// zero-area buffer.
func NewGray(width, height int) *Gray {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	return &Gray{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// NewRGB allocates an RGB buffer. Non-positive dimensions yield a valid
// zero-area buffer.
func NewRGB(width, height int) *RGB {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	return &RGB{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, 3*width*height),
	}
}

// At returns the intensity at (x, y).
func (g *Gray) At(x, y int) uint8 {
	return g.Pix[y*g.Width+x]
}

// Set stores the intensity at (x, y).
func (g *Gray) Set(x, y int, v uint8) {
	g.Pix[y*g.Width+x] = v
}

// Image copies the buffer into an *image.Gray of the same dimensions.
func (g *Gray) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	copy(img.Pix, g.Pix)
	return img
}

// At returns the color at (x, y). The alpha channel is always opaque.
func (p *RGB) At(x, y int) color.RGBA {
	i := 3 * (y*p.Width + x)
	return color.RGBA{R: p.Pix[i], G: p.Pix[i+1], B: p.Pix[i+2], A: 255}
}

// Set stores the color at (x, y). The alpha channel is discarded.
func (p *RGB) Set(x, y int, c color.RGBA) {
	i := 3 * (y*p.Width + x)
	p.Pix[i] = c.R
	p.Pix[i+1] = c.G
	p.Pix[i+2] = c.B
}

// Image copies the buffer into an *image.RGBA with full alpha.
func (p *RGB) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))

	for i := 0; i < p.Width*p.Height; i++ {
		img.Pix[4*i] = p.Pix[3*i]
		img.Pix[4*i+1] = p.Pix[3*i+1]
		img.Pix[4*i+2] = p.Pix[3*i+2]
		img.Pix[4*i+3] = 255
	}

	return img
}
