package fabric

import "math"

// Shade is a per-vertex colour with channels in [0, 1].
type Shade struct {
	R, G, B float32
}

const (
	baseIntensity = 0.2
	maxBoost      = 0.6
)

// ShadeFor maps a depth to the warm curvature tint: flat fabric is dim grey,
// deep wells glow orange.
func ShadeFor(depth, gain float64) Shade {
	i := float32(baseIntensity + math.Min(math.Abs(depth)*gain, maxBoost))
	if depth == 0 {
		return Shade{R: i, G: i, B: i}
	}
	return Shade{R: i, G: i * 0.5, B: i * 0.2}
}

// Shades returns a copy of the per-vertex colour buffer in row-major order.
func (m *Mesh) Shades() []Shade {
	out := make([]Shade, len(m.shades))
	copy(out, m.shades)
	return out
}

func (m *Mesh) shadeAll() {
	for i, v := range m.vertices {
		m.shades[i] = ShadeFor(float64(v.Z), m.opts.ShadeGain)
	}
}
