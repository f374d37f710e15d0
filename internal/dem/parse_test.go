package dem

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const asc3x3 = `ncols 3
nrows 3
xllcorner 0
yllcorner 0
cellsize 1
nodata_value -9999
1 2 3
4 5 6
7 8 9
`

func TestParse(t *testing.T) {
	grid, err := Parse(strings.NewReader(asc3x3))
	require.NoError(t, err)

	assert.Equal(t, uint(3), grid.Ncols)
	assert.Equal(t, uint(3), grid.Nrows)
	assert.Equal(t, 0.0, grid.Xcorner)
	assert.Equal(t, 0.0, grid.Ycorner)
	assert.Equal(t, 1.0, grid.CellSize)
	assert.Equal(t, -9999.0, grid.NoDataValue)

	require.Len(t, grid.Data, 9)
	assert.Equal(t, 1.0, grid.Z(0, 0)) // top left
	assert.Equal(t, 3.0, grid.Z(2, 0))
	assert.Equal(t, 7.0, grid.Z(0, 2)) // bottom left
	assert.Equal(t, 9.0, grid.Z(2, 2))
}

func TestParseHeaderAnyOrderAndCase(t *testing.T) {
	input := `NODATA_VALUE -1
CELLSIZE 2.5
yllcorner -5
XLLCORNER 10
nrows 1
NCOLS 2
3 4
`

	grid, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, uint(2), grid.Ncols)
	assert.Equal(t, uint(1), grid.Nrows)
	assert.Equal(t, 10.0, grid.Xcorner)
	assert.Equal(t, -5.0, grid.Ycorner)
	assert.Equal(t, 2.5, grid.CellSize)
	assert.Equal(t, -1.0, grid.NoDataValue)
	assert.Equal(t, []float64{3, 4}, grid.Data)
}

func TestParseNoData(t *testing.T) {
	input := `ncols 3
nrows 3
xllcorner 0
yllcorner 0
cellsize 1
nodata_value -9999
1 2 3
4 -9999 6
7 8 9
`

	grid, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.True(t, grid.IsMissing(1, 1))
	assert.True(t, math.IsNaN(grid.Z(1, 1)))
	assert.False(t, grid.IsMissing(0, 0))

	// a sample close to, but not exactly, the sentinel stays a measurement
	assert.Equal(t, 6.0, grid.Z(2, 1))
}

func TestParseHeaderErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
	}{
		{"empty input", "", "ncols"},
		{"unknown keyword", "colums 3", "ncols"},
		{"data before all headers", "ncols 2 nrows 2 1 2 3 4", "xllcorner"},
		{"keyword without value", "ncols", "ncols"},
		{"non-numeric ncols", "ncols three", "ncols"},
		{"zero nrows", "ncols 2 nrows 0", "nrows"},
		{"negative cellsize", "ncols 2 nrows 2 xllcorner 0 yllcorner 0 cellsize -1", "cellsize"},
		{"zero cellsize", "ncols 2 nrows 2 xllcorner 0 yllcorner 0 cellsize 0", "cellsize"},
		{"non-numeric nodata_value", "ncols 2 nrows 2 xllcorner 0 yllcorner 0 cellsize 1 nodata_value none", "nodata_value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))

			var headerErr *HeaderError
			require.ErrorAs(t, err, &headerErr)
			assert.Equal(t, tt.field, headerErr.Field)
		})
	}
}

func TestParseSampleError(t *testing.T) {
	input := `ncols 2
nrows 2
xllcorner 0
yllcorner 0
cellsize 1
nodata_value -9999
1 2 x 4
`

	_, err := Parse(strings.NewReader(input))

	var sampleErr *SampleError
	require.ErrorAs(t, err, &sampleErr)
	assert.Equal(t, 2, sampleErr.Index)
	assert.Equal(t, "x", sampleErr.Token)
}

func TestParseTruncated(t *testing.T) {
	input := `ncols 3
nrows 3
xllcorner 0
yllcorner 0
cellsize 1
nodata_value -9999
1 2 3 4 5 6 7 8
`

	_, err := Parse(strings.NewReader(input))

	require.ErrorIs(t, err, ErrTruncatedData)
	assert.ErrorContains(t, err, "expected 9 samples, found 8")
}

func TestParseIgnoresTrailingTokens(t *testing.T) {
	input := `ncols 2
nrows 1
xllcorner 0
yllcorner 0
cellsize 1
nodata_value -9999
1 2 garbage 4
`

	grid, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, grid.Data)
}
