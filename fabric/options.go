package fabric

import (
	"fmt"
	"math"
)

// Falloff selects the distance exponent of the depth function.
type Falloff int

const (
	// InverseLinear gives depth(d) = -mass / (d + epsilon), a wide well.
	InverseLinear Falloff = 1
	// InverseSquare gives depth(d) = -mass / (d² + epsilon), a sharper spike.
	InverseSquare Falloff = 2
)

const (
	DefaultEpsilon   = 1e-3
	DefaultShadeGain = 0.05
)

func (f Falloff) String() string {
	switch f {
	case InverseLinear:
		return "inverse-linear"
	case InverseSquare:
		return "inverse-square"
	default:
		return fmt.Sprintf("Falloff(%d)", int(f))
	}
}

// Options configures a Mesh. Zero Falloff, Epsilon and ShadeGain fall back to defaults.
type Options struct {
	Rows      int     `toml:"rows"`
	Columns   int     `toml:"columns"`
	Spacing   float64 `toml:"spacing"`
	Falloff   Falloff `toml:"falloff"`
	Epsilon   float64 `toml:"epsilon"`
	ShadeGain float64 `toml:"shade_gain"`
}

// DefaultOptions returns the 20x20 fabric the demo starts with.
func DefaultOptions() Options {
	return Options{
		Rows:      20,
		Columns:   20,
		Spacing:   0.1,
		Falloff:   InverseLinear,
		Epsilon:   DefaultEpsilon,
		ShadeGain: DefaultShadeGain,
	}
}

func (o Options) withDefaults() Options {
	if o.Falloff == 0 {
		o.Falloff = InverseLinear
	}
	if o.Epsilon == 0 {
		o.Epsilon = DefaultEpsilon
	}
	if o.ShadeGain == 0 {
		o.ShadeGain = DefaultShadeGain
	}
	return o
}

// Validate checks the options after defaults have been applied.
func (o Options) Validate() error {
	o = o.withDefaults()
	if o.Rows < 2 || o.Columns < 2 {
		return fmt.Errorf("%w: %dx%d, need at least 2x2", ErrInvalidDimension, o.Rows, o.Columns)
	}
	if !(o.Spacing > 0) || math.IsInf(o.Spacing, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSpacing, o.Spacing)
	}
	if o.Falloff != InverseLinear && o.Falloff != InverseSquare {
		return fmt.Errorf("%w: exponent %d", ErrInvalidFalloff, int(o.Falloff))
	}
	if !(o.Epsilon > 0) || math.IsInf(o.Epsilon, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidEpsilon, o.Epsilon)
	}
	return nil
}
