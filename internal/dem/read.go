package dem

import (
	"compress/gzip"
	"os"
	"strings"
)

// Read parses the elevation raster at the given path. Files ending in .gz
// are decompressed transparently.
func Read(path string) (*Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if !strings.HasSuffix(path, ".gz") {
		return Parse(file)
	}

	gz, err := gzip.NewReader(file)
	if err != nil {
		return nil, err
	}

	grid, err := Parse(gz)
	if err != nil {
		return nil, err
	}

	if err := gz.Close(); err != nil {
		return nil, err
	}

	return grid, nil
}
