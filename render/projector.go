// Package render draws a fabric scene with ebiten.
package render

import (
	"github.com/chewxy/math32"
	"github.com/plus3/spacefabric/fabric"
)

// Projector maps mesh vertices to screen space with an oblique projection:
// the fabric plane is tilted away from the viewer and depth pulls vertices
// down the screen.
type Projector struct {
	OriginX, OriginY float32
	Scale            float32
	Tilt             float32
	DepthScale       float32
	// MaxDrop caps how far a vertex may sink on screen, in pixels.
	MaxDrop float32
}

const (
	defaultTilt  = 0.9
	fillFraction = 0.9
)

// Fit returns a projector that centres mesh in a w x h screen.
func Fit(mesh *fabric.Mesh, w, h int) Projector {
	halfW, halfH := mesh.Extent()
	cos := math32.Cos(defaultTilt)

	sx := float32(w) / (2 * float32(halfW))
	sy := float32(h) / (2 * float32(halfH) * cos)
	scale := fillFraction * math32.Min(sx, sy)

	return Projector{
		OriginX:    float32(w) / 2,
		OriginY:    float32(h) / 2,
		Scale:      scale,
		Tilt:       defaultTilt,
		DepthScale: scale * 0.1,
		MaxDrop:    float32(h) * 0.35,
	}
}

func (p Projector) drop(z float32) float32 {
	d := -z * p.DepthScale
	if p.MaxDrop > 0 {
		d = math32.Min(d, p.MaxDrop)
	}
	return d
}

// Project returns the screen position of v.
func (p Projector) Project(v fabric.Vertex) (x, y float32) {
	x = p.OriginX + v.X*p.Scale
	y = p.OriginY - v.Y*p.Scale*math32.Cos(p.Tilt) + p.drop(v.Z)
	return x, y
}

// ProjectBottom returns the screen position of a point at the deepest
// visible depth, where a star sits in its own well.
func (p Projector) ProjectBottom(pos fabric.Vec2) (x, y float32) {
	x = p.OriginX + float32(pos.X)*p.Scale
	y = p.OriginY - float32(pos.Y)*p.Scale*math32.Cos(p.Tilt) + p.MaxDrop
	return x, y
}

// Unproject maps a screen position back onto the flat fabric plane.
func (p Projector) Unproject(x, y float32) fabric.Vec2 {
	return fabric.Vec2{
		X: float64((x - p.OriginX) / p.Scale),
		Y: float64((p.OriginY - y) / (p.Scale * math32.Cos(p.Tilt))),
	}
}
