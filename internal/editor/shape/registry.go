package shape

import (
	"errors"
	"fmt"

	"github.com/Faultbox/groundforge/pkg/math"
)

// ErrUnknownSolid is reported when an operation names a solid the registry
// does not hold.
var ErrUnknownSolid = errors.New("unknown solid")

// ErrVertexIndex is reported when a vertex mutation names an index outside
// the solid's buffer. The buffer is left untouched.
var ErrVertexIndex = errors.New("vertex index out of range")

// BufferWriter pushes a full vertex buffer back to the rendering engine.
// Whole-buffer replacement mirrors engines that cannot patch a vertex in
// place.
type BufferWriter interface {
	WriteVertexBuffer(mesh MeshRef, data []float32) error
}

// Registry holds every solid created during the session and is the sole
// mutator of their vertex buffers.
type Registry struct {
	writer BufferWriter
	solids []*Solid
	byID   map[ID]*Solid
}

// NewRegistry creates an empty registry writing buffers through w.
func NewRegistry(w BufferWriter) *Registry {
	return &Registry{
		writer: w,
		byID:   make(map[ID]*Solid),
	}
}

// Add registers a solid. Adding the same ID twice replaces the old entry in
// the lookup map but keeps insertion order for iteration.
func (r *Registry) Add(s *Solid) {
	r.solids = append(r.solids, s)
	r.byID[s.ID] = s
}

// Get returns the solid with the given ID.
func (r *Registry) Get(id ID) (*Solid, bool) {
	s, ok := r.byID[id]
	return s, ok
}

// Solids returns the registered solids in creation order. Callers must not
// mutate through the returned slice; use the registry operations instead.
func (r *Registry) Solids() []*Solid {
	return r.solids
}

// Len returns the number of registered solids.
func (r *Registry) Len() int {
	return len(r.solids)
}

// Translate moves a solid's position by delta.
func (r *Registry) Translate(id ID, delta math.Vec3) error {
	s, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("translate %s: %w", id, ErrUnknownSolid)
	}
	s.Position = s.Position.Add(delta)
	return nil
}

// DisplaceVertex adds delta component-wise to vertex index of the named
// solid and writes the whole buffer back to the engine. An out-of-range
// index leaves the buffer untouched. No geometric validity is enforced;
// arbitrary displacement is permitted.
func (r *Registry) DisplaceVertex(id ID, index int, delta math.Vec3) error {
	s, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("displace vertex of %s: %w", id, ErrUnknownSolid)
	}
	if index < 0 || index >= s.VertexCount() {
		return fmt.Errorf("displace vertex %d of %s (%d vertices): %w",
			index, id, s.VertexCount(), ErrVertexIndex)
	}

	s.vertices[index*3] += delta.X
	s.vertices[index*3+1] += delta.Y
	s.vertices[index*3+2] += delta.Z

	if err := r.writer.WriteVertexBuffer(s.Mesh, s.Buffer()); err != nil {
		return fmt.Errorf("write back buffer of %s: %w", id, err)
	}
	return nil
}
