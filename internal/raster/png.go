package raster

import (
	"image"
	"image/png"
	"os"
)

// WritePNG encodes img to a PNG file at path.
func WritePNG(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(out, img); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
