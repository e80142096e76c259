// Package star models the main-sequence stars that weigh down the fabric.
//
// Mass is expressed in solar masses and clamped to the main-sequence range the
// demo supports. Radius and colour are derived from mass so heavier stars draw
// larger and bluer.
package star

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/plus3/spacefabric/fabric"
)

const (
	MinMass = 0.5
	MaxMass = 8.0

	// SunTemperature is the solar surface temperature in kelvin.
	SunTemperature = 5778

	// MassScale converts solar masses to fabric source mass.
	MassScale = 0.08

	radiusGain = 0.6
)

// Star is a gravity source with a visual radius and colour.
type Star struct {
	Position   fabric.Vec2
	BaseRadius float32
	Radius     float32
	Mass       float32
	Color      RGBA
}

// New creates a star at pos. Mass is clamped to [MinMass, MaxMass].
func New(pos fabric.Vec2, radius, mass float32) *Star {
	s := &Star{
		Position:   pos,
		BaseRadius: radius,
		Radius:     radius,
	}
	s.SetMass(mass)
	return s
}

// SetMass clamps mass, rescales the radius and recolours the star.
func (s *Star) SetMass(mass float32) {
	s.Mass = ClampMass(mass)
	ratio := (s.Mass - MinMass) / (MaxMass - MinMass)
	s.Radius = s.BaseRadius * (1 + radiusGain*ratio)
	s.Color = ClassFor(Temperature(s.Mass)).Color()
}

// Class returns the spectral class of the star.
func (s *Star) Class() Class {
	return ClassFor(Temperature(s.Mass))
}

// Source returns the fabric gravity source for this star.
func (s *Star) Source() fabric.Source {
	return fabric.Source{
		Position: s.Position,
		Mass:     float64(s.Mass) * MassScale,
	}
}

func ClampMass(mass float32) float32 {
	return math32.Max(MinMass, math32.Min(mass, MaxMass))
}

// Temperature estimates the surface temperature in kelvin for a mass in solar
// masses, T ~ M^0.505, limited to [3000, 30000].
func Temperature(mass float32) float32 {
	t := SunTemperature * math32.Pow(mass, 0.505)
	return math32.Max(3000, math32.Min(t, 30000))
}

// RGBA is a colour with channels in [0, 1].
type RGBA struct {
	R, G, B, A float32
}

// NRGBA converts c to an 8-bit non-premultiplied colour.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(math32.Round(c.R * 255)),
		G: uint8(math32.Round(c.G * 255)),
		B: uint8(math32.Round(c.B * 255)),
		A: uint8(math32.Round(c.A * 255)),
	}
}
