// Package scene drives a fabric mesh from a set of stars and a cursor probe.
//
// A Scene holds the mesh and its gravity sources; a Scheduler runs systems
// over it once per frame. Everything here is owned by the render loop and is
// not safe for concurrent use.
package scene

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/spacefabric/fabric"
	"github.com/plus3/spacefabric/star"
)

// BodyId identifies a star in a scene. Ids are never reused.
type BodyId uint32

// Probe is the pointer-driven gravity source.
type Probe struct {
	Enabled  bool
	Position fabric.Vec2
	Mass     float64
}

// Scene is the fabric plus everything that bends it.
type Scene struct {
	Mesh    *fabric.Mesh
	Probe   Probe
	Metrics Metrics

	bodies *intmap.Map[BodyId, *star.Star]
	order  []BodyId
	nextId BodyId
}

// New creates an empty scene around mesh.
func New(mesh *fabric.Mesh) *Scene {
	return &Scene{
		Mesh:   mesh,
		bodies: intmap.New[BodyId, *star.Star](16),
		nextId: 1,
	}
}

// Rebuild replaces the mesh with a new one built from opts. The old mesh is
// kept when opts are invalid.
func (s *Scene) Rebuild(opts fabric.Options) error {
	mesh, err := fabric.New(opts)
	if err != nil {
		return err
	}
	s.Mesh = mesh
	return nil
}

// Add registers a star and returns its id.
func (s *Scene) Add(body *star.Star) BodyId {
	id := s.nextId
	s.nextId++
	s.bodies.Put(id, body)
	s.order = append(s.order, id)
	return id
}

// Remove unregisters a star. It reports whether the id was present.
func (s *Scene) Remove(id BodyId) bool {
	if _, ok := s.bodies.Get(id); !ok {
		return false
	}
	s.bodies.Del(id)
	for i, other := range s.order {
		if other == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Body returns the star registered under id.
func (s *Scene) Body(id BodyId) (*star.Star, bool) {
	return s.bodies.Get(id)
}

// Len returns the number of registered stars.
func (s *Scene) Len() int {
	return s.bodies.Len()
}

// Bodies calls fn for every star in insertion order until fn returns false.
func (s *Scene) Bodies(fn func(id BodyId, body *star.Star) bool) {
	for _, id := range s.order {
		body, _ := s.bodies.Get(id)
		if !fn(id, body) {
			return
		}
	}
}

// Sources appends the gravity sources of every star, then the probe when
// enabled, to dst.
func (s *Scene) Sources(dst []fabric.Source) []fabric.Source {
	for _, id := range s.order {
		body, _ := s.bodies.Get(id)
		dst = append(dst, body.Source())
	}
	if s.Probe.Enabled {
		dst = append(dst, fabric.Source{Position: s.Probe.Position, Mass: s.Probe.Mass})
	}
	return dst
}
