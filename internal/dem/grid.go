package dem

import "math"

// Grid represents a parsed ASC elevation raster. Data holds all samples in
// row-major order (row 0 is the top row as read from the file) with exactly
// Ncols*Nrows entries. Samples that matched the file's nodata sentinel are
// stored as NaN; the raw sentinel never survives parsing.
type Grid struct {
	Ncols, Nrows     uint
	Xcorner, Ycorner float64
	CellSize         float64
	NoDataValue      float64
	Data             []float64
}

// Dims returns the dimensions of the grid.
func (g *Grid) Dims() (cols, rows uint) {
	return g.Ncols, g.Nrows
}

// Z returns the elevation at (col, row). Missing cells are NaN.
// It will panic if col or row are out of bounds for the grid.
func (g *Grid) Z(col, row uint) float64 {
	return g.Data[row*g.Ncols+col]
}

// IsMissing reports whether the cell at (col, row) has no measurement.
func (g *Grid) IsMissing(col, row uint) bool {
	return math.IsNaN(g.Z(col, row))
}

// X returns the horizontal coordinate of the center of column col.
func (g *Grid) X(col uint) float64 {
	return g.Xcorner + (float64(col)+0.5)*g.CellSize
}

// Y returns the vertical coordinate of the center of row row. Row 0 is the
// top of the grid, so coordinates decrease with increasing row index.
func (g *Grid) Y(row uint) float64 {
	return g.Ycorner + (float64(g.Nrows)-float64(row)-0.5)*g.CellSize
}
