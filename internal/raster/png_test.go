package raster

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePNG(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.png")

	img := NewRGB(2, 2)
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	require.NoError(t, WritePNG(p, img.Image()))

	f, err := os.Open(p)
	require.NoError(t, err)
	defer f.Close()

	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), decoded.Bounds())

	r, g, b, a := decoded.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xffff), a)
}

func TestWritePNGBadPath(t *testing.T) {
	img := NewGray(1, 1)

	err := WritePNG(filepath.Join(t.TempDir(), "missing", "out.png"), img.Image())
	assert.Error(t, err)
}
