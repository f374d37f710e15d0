package dem

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
)

// headerFields are the required ASC header keys, in the order missing
// fields are reported.
var headerFields = []string{"ncols", "nrows", "xllcorner", "yllcorner", "cellsize", "nodata_value"}

// Parse reads an ASC elevation raster: six `key value` header fields
// (case-insensitive, any order) followed by ncols*nrows whitespace-separated
// elevation samples in row-major order, top row first. Samples equal to the
// declared nodata value are stored as NaN. Tokens beyond the declared sample
// count are ignored.
//
// Failures are typed: *HeaderError for a missing or unparsable header field,
// *SampleError for a non-numeric sample and ErrTruncatedData when samples
// run out early.
func Parse(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	grid := &Grid{}
	remaining := slices.Clone(headerFields)

	for len(remaining) > 0 {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, err
			}
			return nil, &HeaderError{Field: remaining[0]}
		}

		keyword := strings.ToLower(scanner.Text())
		if !slices.Contains(remaining, keyword) {
			// Unknown keyword, or elevation data started before all
			// required headers were seen.
			return nil, &HeaderError{Field: remaining[0]}
		}
		remaining = slices.DeleteFunc(remaining, func(f string) bool { return f == keyword })

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, err
			}
			return nil, &HeaderError{Field: keyword}
		}

		if err := grid.setHeader(keyword, scanner.Text()); err != nil {
			return nil, err
		}
	}

	total := int(grid.Ncols) * int(grid.Nrows)
	data := make([]float64, 0, total)

	for len(data) < total && scanner.Scan() {
		token := scanner.Text()

		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, &SampleError{Index: len(data), Token: token}
		}

		if f == grid.NoDataValue {
			f = math.NaN()
		}
		data = append(data, f)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(data) < total {
		return nil, fmt.Errorf("%w: expected %d samples, found %d", ErrTruncatedData, total, len(data))
	}

	grid.Data = data

	return grid, nil
}

func (g *Grid) setHeader(field, value string) error {
	switch field {
	case "ncols":
		u, err := strconv.ParseUint(value, 10, 32)
		if err != nil || u == 0 {
			return &HeaderError{Field: field, Value: value}
		}
		g.Ncols = uint(u)

	case "nrows":
		u, err := strconv.ParseUint(value, 10, 32)
		if err != nil || u == 0 {
			return &HeaderError{Field: field, Value: value}
		}
		g.Nrows = uint(u)

	case "xllcorner":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return &HeaderError{Field: field, Value: value}
		}
		g.Xcorner = f

	case "yllcorner":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return &HeaderError{Field: field, Value: value}
		}
		g.Ycorner = f

	case "cellsize":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || !(f > 0) {
			return &HeaderError{Field: field, Value: value}
		}
		g.CellSize = f

	case "nodata_value":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return &HeaderError{Field: field, Value: value}
		}
		g.NoDataValue = f
	}

	return nil
}
