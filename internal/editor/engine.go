package editor

import (
	"github.com/Faultbox/groundforge/internal/editor/shape"
	"github.com/Faultbox/groundforge/pkg/math"
)

// MarkerRef is an opaque handle to a vertex marker mesh owned by the engine.
type MarkerRef uint32

// HitKind classifies what a surface pick landed on.
type HitKind uint8

const (
	// HitGround is a hit on the ground plane.
	HitGround HitKind = iota
	// HitSolid is a hit on an extruded solid's body.
	HitSolid
	// HitMarker is a hit on a vertex marker.
	HitMarker
)

// Hit is a resolved surface pick: a world-space position plus the target it
// landed on. Solid is set for HitSolid and HitMarker; VertexIndex only for
// HitMarker.
type Hit struct {
	Kind        HitKind
	Position    math.Vec3
	Solid       shape.ID
	VertexIndex int
}

// Engine is the narrow interface the interaction core needs from the
// rendering layer. The GL scene implements it for the real application; the
// tests use an in-memory fake.
type Engine interface {
	shape.BufferWriter

	// PickSurface ray-casts the scene at screen coordinates. ok is false
	// on a miss.
	PickSurface(screenX, screenY float32) (hit Hit, ok bool)

	// CreateSolidMesh allocates a renderable primitive and returns its
	// handle.
	CreateSolidMesh(kind shape.Kind, dims, position math.Vec3, rotationY float32, color [3]float32) (shape.MeshRef, error)

	// ReadVertexBuffer returns the editable vertex positions of a mesh as
	// a flat [x y z ...] list.
	ReadVertexBuffer(mesh shape.MeshRef) []float32

	// CreateMarker allocates a vertex marker attached to the owner solid
	// at the given local position.
	CreateMarker(owner shape.ID, vertexIndex int, local math.Vec3) MarkerRef

	// SetMarkerPosition moves a marker to a new local position.
	SetMarkerPosition(ref MarkerRef, local math.Vec3)

	// DisposeMarker releases a marker's resources.
	DisposeMarker(ref MarkerRef)

	// AddDraftMarker shows a small handle at a freshly captured draft
	// point.
	AddDraftMarker(p math.Vec3)

	// SetPreviewOutline replaces the draft preview polyline. An empty
	// slice hides it.
	SetPreviewOutline(points []math.Vec3)

	// ClearDraft removes all draft markers and the preview outline.
	ClearDraft()
}
