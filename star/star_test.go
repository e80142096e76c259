package star_test

import (
	"testing"

	"github.com/plus3/spacefabric/fabric"
	"github.com/plus3/spacefabric/star"
	"github.com/stretchr/testify/assert"
)

func TestClampMass(t *testing.T) {
	assert.Equal(t, float32(star.MinMass), star.ClampMass(0.1))
	assert.Equal(t, float32(star.MaxMass), star.ClampMass(40))
	assert.Equal(t, float32(2), star.ClampMass(2))
}

func TestTemperature(t *testing.T) {
	assert.InDelta(t, 5778, star.Temperature(1), 1e-2)
	assert.Greater(t, star.Temperature(4), star.Temperature(2))
	assert.Equal(t, float32(30000), star.Temperature(1000))
	assert.Equal(t, float32(3000), star.Temperature(0.01))
}

func TestClassFor(t *testing.T) {
	tests := []struct {
		temp float32
		want star.Class
	}{
		{25000, star.ClassO},
		{20000, star.ClassB},
		{12000, star.ClassB},
		{8000, star.ClassA},
		{6500, star.ClassF},
		{5778, star.ClassG},
		{4000, star.ClassK},
		{3700, star.ClassM},
		{3000, star.ClassM},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, star.ClassFor(tt.temp))
		})
	}
}

func TestSetMass(t *testing.T) {
	s := star.New(fabric.Vec2{}, 0.2, 1)
	assert.Equal(t, star.ClassG, s.Class())
	assert.Equal(t, star.RGBA{1.0, 0.95, 0.4, 0.8}, s.Color)

	s.SetMass(star.MinMass)
	assert.Equal(t, float32(0.2), s.Radius)

	s.SetMass(100)
	assert.Equal(t, float32(star.MaxMass), s.Mass)
	assert.InDelta(t, 0.2*1.6, s.Radius, 1e-6)
	assert.Equal(t, star.ClassB, s.Class())
}

func TestSource(t *testing.T) {
	s := star.New(fabric.Vec2{X: 0.5, Y: -0.25}, 0.1, 2)
	src := s.Source()
	assert.Equal(t, fabric.Vec2{X: 0.5, Y: -0.25}, src.Position)
	assert.InDelta(t, 2*star.MassScale, src.Mass, 1e-9)
}

func TestNRGBA(t *testing.T) {
	c := star.RGBA{1, 0.5, 0, 0.8}.NRGBA()
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(128), c.G)
	assert.Equal(t, uint8(0), c.B)
	assert.Equal(t, uint8(204), c.A)
}
