// Package fabric builds the deformable grid that curves around gravity sources.
//
// A Mesh is a fixed rows x columns grid of vertices centred on the origin. Only
// the Z component of each vertex changes after construction: every Update
// overwrites it with a depth derived from the planar distance to the sources.
// The mesh is not safe for concurrent use; it belongs to the render loop.
package fabric

import (
	"fmt"
	"math"
)

// Vec2 is a planar world-space position.
type Vec2 struct {
	X, Y float64
}

// Source is a gravity source: a planar position and a mass.
type Source struct {
	Position Vec2
	Mass     float64
}

// Vertex is a mesh vertex. X and Y are fixed by the grid, Z is the depth.
type Vertex struct {
	X, Y, Z float32
}

// Mesh is the fabric grid.
type Mesh struct {
	opts      Options
	vertices  []Vertex
	shades    []Shade
	lines     []uint32
	triangles []uint32
}

// New builds a flat mesh from opts. No mesh is returned on error.
func New(opts Options) (*Mesh, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	m := &Mesh{
		opts:     opts,
		vertices: make([]Vertex, opts.Rows*opts.Columns),
		shades:   make([]Shade, opts.Rows*opts.Columns),
	}
	for r := 0; r < opts.Rows; r++ {
		for c := 0; c < opts.Columns; c++ {
			p := m.GridPoint(r, c)
			m.vertices[r*opts.Columns+c] = Vertex{X: float32(p.X), Y: float32(p.Y)}
		}
	}
	m.lines = lineIndices(opts.Rows, opts.Columns)
	m.triangles = triangleIndices(opts.Rows, opts.Columns)
	m.shadeAll()
	return m, nil
}

// Create builds a mesh with the default falloff and epsilon.
func Create(rows, columns int, spacing float64) (*Mesh, error) {
	return New(Options{Rows: rows, Columns: columns, Spacing: spacing})
}

func (m *Mesh) Rows() int        { return m.opts.Rows }
func (m *Mesh) Columns() int     { return m.opts.Columns }
func (m *Mesh) Spacing() float64 { return m.opts.Spacing }
func (m *Mesh) Falloff() Falloff { return m.opts.Falloff }
func (m *Mesh) Epsilon() float64 { return m.opts.Epsilon }
func (m *Mesh) Options() Options { return m.opts }

// Len returns rows * columns.
func (m *Mesh) Len() int { return len(m.vertices) }

func (m *Mesh) index(r, c int) int { return r*m.opts.Columns + c }

func (m *Mesh) inRange(r, c int) bool {
	return r >= 0 && r < m.opts.Rows && c >= 0 && c < m.opts.Columns
}

// GridPoint returns the world position of the vertex at (row, col).
func (m *Mesh) GridPoint(row, col int) Vec2 {
	return Vec2{
		X: (float64(col) - float64(m.opts.Columns-1)/2) * m.opts.Spacing,
		Y: (float64(row) - float64(m.opts.Rows-1)/2) * m.opts.Spacing,
	}
}

// Extent returns the half width and half height of the grid in world units.
func (m *Mesh) Extent() (halfW, halfH float64) {
	return float64(m.opts.Columns-1) / 2 * m.opts.Spacing, float64(m.opts.Rows-1) / 2 * m.opts.Spacing
}

// At returns the vertex at (row, col). It panics when out of range.
func (m *Mesh) At(row, col int) Vertex {
	if !m.inRange(row, col) {
		panic(fmt.Sprintf("fabric: vertex (%d, %d) out of range %dx%d", row, col, m.opts.Rows, m.opts.Columns))
	}
	return m.vertices[m.index(row, col)]
}

// Depth returns the depth of the vertex at (row, col).
func (m *Mesh) Depth(row, col int) float32 {
	return m.At(row, col).Z
}

// Update recomputes every depth from a single source. Calling it twice with
// the same arguments leaves the mesh unchanged.
func (m *Mesh) Update(pos Vec2, mass float64) {
	f, eps := m.opts.Falloff, m.opts.Epsilon
	for i := range m.vertices {
		v := &m.vertices[i]
		v.Z = float32(f.Depth(planar(v, pos), mass, eps))
	}
	m.shadeAll()
}

// UpdateSources recomputes every depth as the sum of the depths each source
// would produce alone. With no sources the mesh is flattened.
func (m *Mesh) UpdateSources(sources ...Source) {
	if len(sources) == 1 {
		m.Update(sources[0].Position, sources[0].Mass)
		return
	}
	f, eps := m.opts.Falloff, m.opts.Epsilon
	for i := range m.vertices {
		v := &m.vertices[i]
		var z float64
		for _, s := range sources {
			z += f.Depth(planar(v, s.Position), s.Mass, eps)
		}
		v.Z = float32(z)
	}
	m.shadeAll()
}

// Reset flattens the mesh.
func (m *Mesh) Reset() {
	for i := range m.vertices {
		m.vertices[i].Z = 0
	}
	m.shadeAll()
}

// Vertices returns a copy of the vertex buffer in row-major order.
func (m *Mesh) Vertices() []Vertex {
	out := make([]Vertex, len(m.vertices))
	copy(out, m.vertices)
	return out
}

// EachVertex calls fn for every vertex and its shade in row-major order
// without copying the buffers.
func (m *Mesh) EachVertex(fn func(i int, v Vertex, s Shade)) {
	for i, v := range m.vertices {
		fn(i, v, m.shades[i])
	}
}

func planar(v *Vertex, pos Vec2) float64 {
	return math.Hypot(float64(v.X)-pos.X, float64(v.Y)-pos.Y)
}
