package palette

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	gradient, err := ByName("turbo")
	require.NoError(t, err)

	// turbo starts in dark blue
	r, _, b, a := gradient.At(0).RGBA255()
	assert.Less(t, r, uint8(80))
	assert.Greater(t, b, uint8(40))
	assert.Equal(t, uint8(255), a)
}

func TestByNameCaseInsensitive(t *testing.T) {
	_, err := ByName("Viridis")
	assert.NoError(t, err)

	_, err = ByName("TURBO")
	assert.NoError(t, err)
}

func TestByNameUnknown(t *testing.T) {
	_, err := ByName("mako")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown palette "mako"`)
	assert.Contains(t, err.Error(), "turbo")
}

func TestNames(t *testing.T) {
	names := Names()

	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, Default)
	assert.Len(t, names, len(gradients))
}

func TestColorFunc(t *testing.T) {
	gradient, err := ByName(Default)
	require.NoError(t, err)

	fn := ColorFunc(gradient)

	low := fn(0)
	high := fn(1)

	assert.Equal(t, uint8(255), low.A)
	assert.Equal(t, uint8(255), high.A)
	assert.NotEqual(t, low, high)
}
