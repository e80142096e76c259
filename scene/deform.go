package scene

import (
	"slices"

	"github.com/plus3/spacefabric/fabric"
)

// DeformSystem recomputes the fabric from the scene's sources. Since the mesh
// update is idempotent, frames whose sources and mesh did not change are
// skipped.
type DeformSystem struct {
	Updates int64
	Skipped int64

	sources []fabric.Source
	last    []fabric.Source
	mesh    *fabric.Mesh
	primed  bool
}

func (d *DeformSystem) Execute(frame *UpdateFrame) {
	sc := frame.Scene
	d.sources = sc.Sources(d.sources[:0])

	if d.primed && d.mesh == sc.Mesh && slices.Equal(d.sources, d.last) {
		d.Skipped++
		return
	}

	sc.Mesh.UpdateSources(d.sources...)
	d.last = append(d.last[:0], d.sources...)
	d.mesh = sc.Mesh
	d.primed = true
	d.Updates++
}

// Invalidate forces the next frame to recompute the mesh.
func (d *DeformSystem) Invalidate() {
	d.primed = false
}
