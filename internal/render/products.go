package render

import (
	"github.com/gruppe-adler/dem-utils/internal/dem"
	"github.com/gruppe-adler/dem-utils/internal/hillshade"
	"github.com/gruppe-adler/dem-utils/internal/raster"
	"github.com/gruppe-adler/dem-utils/internal/relief"
)

// Products holds the four images rendered from a DEM.
type Products struct {
	Elevation    *raster.Gray
	ElevationRGB *raster.RGB
	Hillshade    *raster.Gray
	HillshadeRGB *raster.RGB
}

// BuildProducts renders all four products of the grid: grayscale and colored
// elevation at full grid size, plus grayscale and colored hillshade over the
// grid's interior.
func BuildProducts(grid *dem.Grid, colorFn relief.ColorFunc, light hillshade.Light) *Products {
	values := relief.Normalize(grid.Data)

	width := int(grid.Ncols)
	height := int(grid.Nrows)

	elevation := relief.GrayImage(values, width, height)
	elevationRGB := relief.ColorImage(values, width, height, colorFn)
	shade, shadeRGB := hillshade.Shade(grid, light, elevationRGB)

	return &Products{
		Elevation:    elevation,
		ElevationRGB: elevationRGB,
		Hillshade:    shade,
		HillshadeRGB: shadeRGB,
	}
}
