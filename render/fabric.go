package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/spacefabric/fabric"
)

// Segment is one projected grid line.
type Segment struct {
	X0, Y0, X1, Y1 float32
	Color          color.NRGBA
}

var flatColor = color.NRGBA{R: 51, G: 51, B: 51, A: 255}

type point struct {
	x, y  float32
	shade fabric.Shade
}

// FabricRenderer strokes the fabric grid lines.
type FabricRenderer struct {
	Shaded bool
	Width  float32

	points   []point
	segments []Segment
}

// Segments projects every grid line of mesh and appends it to dst.
func (r *FabricRenderer) Segments(mesh *fabric.Mesh, p Projector, dst []Segment) []Segment {
	r.points = r.points[:0]
	mesh.EachVertex(func(_ int, v fabric.Vertex, s fabric.Shade) {
		x, y := p.Project(v)
		r.points = append(r.points, point{x: x, y: y, shade: s})
	})

	mesh.EachLine(func(a, b uint32) {
		pa, pb := r.points[a], r.points[b]
		c := flatColor
		if r.Shaded {
			c = mix(pa.shade, pb.shade)
		}
		dst = append(dst, Segment{X0: pa.x, Y0: pa.y, X1: pb.x, Y1: pb.y, Color: c})
	})
	return dst
}

// Draw strokes the fabric onto screen.
func (r *FabricRenderer) Draw(screen *ebiten.Image, mesh *fabric.Mesh, p Projector) {
	width := r.Width
	if width <= 0 {
		width = 1
	}
	r.segments = r.Segments(mesh, p, r.segments[:0])
	for _, s := range r.segments {
		vector.StrokeLine(screen, s.X0, s.Y0, s.X1, s.Y1, width, s.Color, true)
	}
}

func mix(a, b fabric.Shade) color.NRGBA {
	return color.NRGBA{
		R: channel((a.R + b.R) / 2),
		G: channel((a.G + b.G) / 2),
		B: channel((a.B + b.B) / 2),
		A: 255,
	}
}

func channel(v float32) uint8 {
	return uint8(min(max(v, 0), 1)*255 + 0.5)
}
