package hillshade

import "math"

// Light is the illumination direction used for hillshading: Azimuth in
// degrees clockwise from north (0 = north, 90 = east), Altitude in degrees
// above the horizon.
type Light struct {
	Azimuth  float64
	Altitude float64
}

// DefaultLight illuminates from the northwest at 45° above the horizon,
// the conventional cartographic light.
var DefaultLight = Light{Azimuth: 315, Altitude: 45}

// Vector returns the unit vector pointing from the surface toward the
// light source, in grid space: x grows eastward (with columns), y grows
// southward (with rows), z points up.
func (l Light) Vector() (x, y, z float64) {
	azimuth := l.Azimuth * math.Pi / 180
	altitude := l.Altitude * math.Pi / 180

	x = math.Sin(azimuth) * math.Cos(altitude)
	y = -math.Cos(azimuth) * math.Cos(altitude)
	z = math.Sin(altitude)

	return x, y, z
}
