package editor

import (
	"github.com/Faultbox/groundforge/internal/editor/shape"
)

// Marker binds one vertex marker mesh to a vertex of its owning solid. The
// index correspondence is positional, established at creation, and never
// reordered.
type Marker struct {
	Owner       shape.ID
	VertexIndex int
	Ref         MarkerRef
}

// Overlay manages the vertex markers shown in vertex-edit mode. Markers are
// derived, regenerable visuals; the solid's buffer stays authoritative.
type Overlay struct {
	markers []Marker
}

// Count returns the number of live markers.
func (o *Overlay) Count() int {
	return len(o.markers)
}

// Clear disposes every marker.
func (o *Overlay) Clear(engine Engine) {
	for _, m := range o.markers {
		engine.DisposeMarker(m.Ref)
	}
	o.markers = nil
}

// Regenerate rebuilds the full marker set from scratch: one marker per
// vertex of every registered solid, at the vertex's local position.
func (o *Overlay) Regenerate(engine Engine, registry *shape.Registry) {
	o.Clear(engine)

	for _, sol := range registry.Solids() {
		for i := 0; i < sol.VertexCount(); i++ {
			local, _ := sol.Vertex(i)
			ref := engine.CreateMarker(sol.ID, i, local)
			o.markers = append(o.markers, Marker{
				Owner:       sol.ID,
				VertexIndex: i,
				Ref:         ref,
			})
		}
	}
}

// Resync re-reads the mutated solid's buffer and moves its markers to the
// stored vertex positions, by index.
func (o *Overlay) Resync(engine Engine, sol *shape.Solid) {
	for _, m := range o.markers {
		if m.Owner != sol.ID {
			continue
		}
		if local, ok := sol.Vertex(m.VertexIndex); ok {
			engine.SetMarkerPosition(m.Ref, local)
		}
	}
}
