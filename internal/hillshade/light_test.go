package hillshade

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLightVector(t *testing.T) {
	tests := []struct {
		name    string
		light   Light
		x, y, z float64
	}{
		{"zenith", Light{Azimuth: 0, Altitude: 90}, 0, 0, 1},
		{"north on the horizon", Light{Azimuth: 0, Altitude: 0}, 0, -1, 0},
		{"east on the horizon", Light{Azimuth: 90, Altitude: 0}, 1, 0, 0},
		{"south on the horizon", Light{Azimuth: 180, Altitude: 0}, 0, 1, 0},
		{"default northwest", DefaultLight, -0.5, -0.5, math.Sqrt2 / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, z := tt.light.Vector()

			assert.InDelta(t, tt.x, x, 1e-9)
			assert.InDelta(t, tt.y, y, 1e-9)
			assert.InDelta(t, tt.z, z, 1e-9)

			// always unit length
			assert.InDelta(t, 1, x*x+y*y+z*z, 1e-9)
		})
	}
}
