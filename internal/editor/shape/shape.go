// Package shape owns the extruded solids and their live vertex buffers.
// The registry is the only code allowed to mutate a solid's buffer.
package shape

import (
	"github.com/Faultbox/groundforge/pkg/math"
)

// Kind identifies the primitive a solid was extruded into.
type Kind uint8

const (
	KindPyramid Kind = iota
	KindCuboid
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindPyramid:
		return "pyramid"
	case KindCuboid:
		return "cuboid"
	default:
		return "unknown"
	}
}

// ID uniquely identifies a solid for the lifetime of the process.
type ID string

// MeshRef is an opaque handle to a renderable mesh owned by the engine.
type MeshRef uint32

// Solid is an extruded 3D shape. The vertex buffer holds the editable
// corner positions in local space as a flat [x y z ...] list; its length is
// fixed at creation.
type Solid struct {
	ID         ID
	Kind       Kind
	Position   math.Vec3
	RotationY  float32 // Radians about the vertical axis
	Dimensions math.Vec3
	Color      [3]float32
	Mesh       MeshRef

	vertices []float32
}

// New creates a solid owning a copy of the given vertex buffer.
func New(id ID, kind Kind, pos math.Vec3, rotY float32, dims math.Vec3, color [3]float32, mesh MeshRef, vertices []float32) *Solid {
	buf := make([]float32, len(vertices))
	copy(buf, vertices)
	return &Solid{
		ID:         id,
		Kind:       kind,
		Position:   pos,
		RotationY:  rotY,
		Dimensions: dims,
		Color:      color,
		Mesh:       mesh,
		vertices:   buf,
	}
}

// VertexCount returns the number of vertices in the buffer.
func (s *Solid) VertexCount() int {
	return len(s.vertices) / 3
}

// Vertex returns the local-space position of vertex i.
// ok is false when i is out of range.
func (s *Solid) Vertex(i int) (math.Vec3, bool) {
	if i < 0 || i >= s.VertexCount() {
		return math.Vec3{}, false
	}
	return math.Vec3{
		X: s.vertices[i*3],
		Y: s.vertices[i*3+1],
		Z: s.vertices[i*3+2],
	}, true
}

// WorldVertex returns the world-space position of vertex i: the solid's
// rotation and translation applied to the local position.
func (s *Solid) WorldVertex(i int) (math.Vec3, bool) {
	local, ok := s.Vertex(i)
	if !ok {
		return math.Vec3{}, false
	}
	return local.RotateY(s.RotationY).Add(s.Position), true
}

// Buffer returns a copy of the flat vertex buffer.
func (s *Solid) Buffer() []float32 {
	buf := make([]float32, len(s.vertices))
	copy(buf, s.vertices)
	return buf
}
