// Package palette provides the color gradients used for RGB elevation
// products. The tables come from github.com/mazznoer/colorgrad; the core
// packages only ever see a relief.ColorFunc.
package palette

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/mazznoer/colorgrad"

	"github.com/gruppe-adler/dem-utils/internal/relief"
)

// Default is the gradient used when no palette is selected.
const Default = "turbo"

var gradients = map[string]func() colorgrad.Gradient{
	"cividis":  colorgrad.Cividis,
	"cool":     colorgrad.Cool,
	"inferno":  colorgrad.Inferno,
	"magma":    colorgrad.Magma,
	"plasma":   colorgrad.Plasma,
	"rainbow":  colorgrad.Rainbow,
	"sinebow":  colorgrad.Sinebow,
	"spectral": colorgrad.Spectral,
	"turbo":    colorgrad.Turbo,
	"viridis":  colorgrad.Viridis,
	"warm":     colorgrad.Warm,
}

// Names lists the recognized palette names in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(gradients))
	for name := range gradients {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// ByName looks up a gradient by its (case-insensitive) name.
func ByName(name string) (colorgrad.Gradient, error) {
	gradient, found := gradients[strings.ToLower(name)]
	if !found {
		return colorgrad.Gradient{}, fmt.Errorf("unknown palette %q (recognized: %s)", name, strings.Join(Names(), ", "))
	}

	return gradient(), nil
}

// ColorFunc adapts a gradient to the color-mapping capability the relief
// package consumes.
func ColorFunc(gradient colorgrad.Gradient) relief.ColorFunc {
	return func(t float64) color.RGBA {
		r, g, b, a := gradient.At(t).RGBA255()
		return color.RGBA{R: r, G: g, B: b, A: a}
	}
}
