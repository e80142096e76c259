package render_test

import (
	"testing"

	"github.com/plus3/spacefabric/fabric"
	"github.com/plus3/spacefabric/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit(t *testing.T) {
	mesh, err := fabric.Create(20, 20, 0.1)
	require.NoError(t, err)

	p := render.Fit(mesh, 800, 600)
	assert.Equal(t, float32(400), p.OriginX)
	assert.Equal(t, float32(300), p.OriginY)

	for _, v := range mesh.Vertices() {
		x, y := p.Project(v)
		assert.GreaterOrEqual(t, x, float32(0))
		assert.LessOrEqual(t, x, float32(800))
		assert.GreaterOrEqual(t, y, float32(0))
		assert.LessOrEqual(t, y, float32(600))
	}
}

func TestProjectRoundTrip(t *testing.T) {
	mesh, err := fabric.Create(5, 7, 0.5)
	require.NoError(t, err)
	p := render.Fit(mesh, 1280, 720)

	for _, v := range mesh.Vertices() {
		x, y := p.Project(v)
		back := p.Unproject(x, y)
		assert.InDelta(t, v.X, back.X, 1e-4)
		assert.InDelta(t, v.Y, back.Y, 1e-4)
	}
}

func TestDepthSinksVertices(t *testing.T) {
	p := render.Projector{OriginX: 100, OriginY: 100, Scale: 10, DepthScale: 2, MaxDrop: 50}

	_, flat := p.Project(fabric.Vertex{})
	_, shallow := p.Project(fabric.Vertex{Z: -5})
	_, deep := p.Project(fabric.Vertex{Z: -1e4})

	assert.Equal(t, float32(100), flat)
	assert.Equal(t, float32(110), shallow)
	assert.Equal(t, float32(150), deep, "drop is capped")

	_, bottom := p.ProjectBottom(fabric.Vec2{})
	assert.Equal(t, deep, bottom)
}
