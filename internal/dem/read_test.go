package dem

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	dir := t.TempDir()

	t.Run("plain file", func(t *testing.T) {
		p := filepath.Join(dir, "grid.asc")
		require.NoError(t, os.WriteFile(p, []byte(asc3x3), 0644))

		grid, err := Read(p)
		require.NoError(t, err)
		assert.Equal(t, uint(3), grid.Ncols)
		assert.Len(t, grid.Data, 9)
	})

	t.Run("gzipped file", func(t *testing.T) {
		var buf bytes.Buffer
		gz := gzip.NewWriter(&buf)
		_, err := gz.Write([]byte(asc3x3))
		require.NoError(t, err)
		require.NoError(t, gz.Close())

		p := filepath.Join(dir, "grid.asc.gz")
		require.NoError(t, os.WriteFile(p, buf.Bytes(), 0644))

		grid, err := Read(p)
		require.NoError(t, err)
		assert.Equal(t, uint(3), grid.Nrows)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Read(filepath.Join(dir, "nope.asc"))
		assert.Error(t, err)
	})

	t.Run("not gzipped despite suffix", func(t *testing.T) {
		p := filepath.Join(dir, "bogus.asc.gz")
		require.NoError(t, os.WriteFile(p, []byte(asc3x3), 0644))

		_, err := Read(p)
		assert.Error(t, err)
	})
}
