package scene

import (
	"github.com/Faultbox/groundforge/internal/editor"
	"github.com/Faultbox/groundforge/internal/editor/shape"
	"github.com/Faultbox/groundforge/internal/engine/mesh"
	"github.com/Faultbox/groundforge/pkg/math"
)

// marker is a pickable handle on one vertex of a solid. The local position
// follows the solid's vertex buffer; world placement is derived from the
// owner's transform at draw and pick time.
type marker struct {
	owner       shape.ID
	vertexIndex int
	local       math.Vec3
}

// CreateMarker allocates a vertex marker attached to the owner solid.
func (s *Scene) CreateMarker(owner shape.ID, vertexIndex int, local math.Vec3) editor.MarkerRef {
	ref := s.nextMarker
	s.nextMarker++
	s.markers[ref] = &marker{
		owner:       owner,
		vertexIndex: vertexIndex,
		local:       local,
	}
	return ref
}

// SetMarkerPosition moves a marker to a new local position.
func (s *Scene) SetMarkerPosition(ref editor.MarkerRef, local math.Vec3) {
	if m, ok := s.markers[ref]; ok {
		m.local = local
	}
}

// DisposeMarker releases a marker.
func (s *Scene) DisposeMarker(ref editor.MarkerRef) {
	delete(s.markers, ref)
}

// markerWorld returns the marker's world position: the owner's rotation and
// translation applied to the local vertex position. A marker whose owner is
// missing stays at its local position.
func (s *Scene) markerWorld(m *marker) math.Vec3 {
	if s.registry != nil {
		if sol, ok := s.registry.Get(m.owner); ok {
			return m.local.RotateY(sol.RotationY).Add(sol.Position)
		}
	}
	return m.local
}

// AddDraftMarker shows a handle at a freshly captured draft point.
func (s *Scene) AddDraftMarker(p math.Vec3) {
	s.draftMarkers = append(s.draftMarkers, p)
}

// SetPreviewOutline replaces the draft preview polyline. An empty slice
// hides it.
func (s *Scene) SetPreviewOutline(points []math.Vec3) {
	if len(points) < 2 {
		s.outlineCount = 0
		return
	}
	verts := mesh.PolylineVertices(points)
	s.outlineCount = int32(len(verts) / 3)
	s.uploadOutline(verts)
}

// ClearDraft removes all draft markers and the preview outline.
func (s *Scene) ClearDraft() {
	s.draftMarkers = s.draftMarkers[:0]
	s.outlineCount = 0
}
