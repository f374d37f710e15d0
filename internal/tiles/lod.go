package tiles

import (
	"image"
	"math"
)

const tileSizeInPx = 256

// MaxLod calculates the maximum LOD for an image: the lowest zoom at which
// every tile covers at most 256x256 source pixels.
func MaxLod(img image.Image) uint8 {
	size := img.Bounds().Dx()
	if dy := img.Bounds().Dy(); dy > size {
		size = dy
	}

	tilesPerRowCol := math.Ceil(float64(size) / tileSizeInPx)
	if tilesPerRowCol <= 1 {
		return 0
	}

	return uint8(math.Ceil(math.Log2(tilesPerRowCol)))
}
