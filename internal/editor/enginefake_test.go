package editor

import (
	"os"
	"testing"

	"github.com/Faultbox/groundforge/internal/editor/shape"
	"github.com/Faultbox/groundforge/internal/engine/mesh"
	"github.com/Faultbox/groundforge/internal/logger"
	"github.com/Faultbox/groundforge/pkg/math"
)

func TestMain(m *testing.M) {
	// The session logs through the global logger; keep it quiet.
	_ = logger.InitWithFileConfig("error", logger.FileConfig{}, false)
	os.Exit(m.Run())
}

type fakeMarker struct {
	owner shape.ID
	index int
	local math.Vec3
}

// fakeEngine is an in-memory Engine. Picks are scripted: each call to
// PickSurface consumes the next queued result, an empty queue is a miss.
type fakeEngine struct {
	picks []struct {
		hit Hit
		ok  bool
	}

	buffers    map[shape.MeshRef][]float32
	nextMesh   shape.MeshRef
	writes     map[shape.MeshRef]int
	markers    map[MarkerRef]fakeMarker
	nextMarker MarkerRef
	disposed   int

	draftMarkers int
	outline      []math.Vec3
	draftCleared int
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		buffers: make(map[shape.MeshRef][]float32),
		writes:  make(map[shape.MeshRef]int),
		markers: make(map[MarkerRef]fakeMarker),
	}
}

func (e *fakeEngine) queue(hit Hit) {
	e.picks = append(e.picks, struct {
		hit Hit
		ok  bool
	}{hit, true})
}

func (e *fakeEngine) queueGround(x, y, z float32) {
	e.queue(Hit{Kind: HitGround, Position: math.Vec3{X: x, Y: y, Z: z}})
}

func (e *fakeEngine) queueSolid(id shape.ID, pos math.Vec3) {
	e.queue(Hit{Kind: HitSolid, Position: pos, Solid: id})
}

func (e *fakeEngine) queueMarker(id shape.ID, index int, pos math.Vec3) {
	e.queue(Hit{Kind: HitMarker, Position: pos, Solid: id, VertexIndex: index})
}

func (e *fakeEngine) queueMiss() {
	e.picks = append(e.picks, struct {
		hit Hit
		ok  bool
	}{Hit{}, false})
}

func (e *fakeEngine) PickSurface(screenX, screenY float32) (Hit, bool) {
	if len(e.picks) == 0 {
		return Hit{}, false
	}
	next := e.picks[0]
	e.picks = e.picks[1:]
	return next.hit, next.ok
}

func (e *fakeEngine) CreateSolidMesh(kind shape.Kind, dims, position math.Vec3, rotationY float32, color [3]float32) (shape.MeshRef, error) {
	e.nextMesh++
	e.buffers[e.nextMesh] = mesh.Corners(kind, dims)
	return e.nextMesh, nil
}

func (e *fakeEngine) ReadVertexBuffer(m shape.MeshRef) []float32 {
	buf := make([]float32, len(e.buffers[m]))
	copy(buf, e.buffers[m])
	return buf
}

func (e *fakeEngine) WriteVertexBuffer(m shape.MeshRef, data []float32) error {
	buf := make([]float32, len(data))
	copy(buf, data)
	e.buffers[m] = buf
	e.writes[m]++
	return nil
}

func (e *fakeEngine) CreateMarker(owner shape.ID, vertexIndex int, local math.Vec3) MarkerRef {
	e.nextMarker++
	e.markers[e.nextMarker] = fakeMarker{owner: owner, index: vertexIndex, local: local}
	return e.nextMarker
}

func (e *fakeEngine) SetMarkerPosition(ref MarkerRef, local math.Vec3) {
	if m, ok := e.markers[ref]; ok {
		m.local = local
		e.markers[ref] = m
	}
}

func (e *fakeEngine) DisposeMarker(ref MarkerRef) {
	if _, ok := e.markers[ref]; ok {
		delete(e.markers, ref)
		e.disposed++
	}
}

func (e *fakeEngine) AddDraftMarker(p math.Vec3) {
	e.draftMarkers++
}

func (e *fakeEngine) SetPreviewOutline(points []math.Vec3) {
	e.outline = points
}

func (e *fakeEngine) ClearDraft() {
	e.draftMarkers = 0
	e.outline = nil
	e.draftCleared++
}

// newTestSession wires a session against a fresh fake engine.
func newTestSession() (*Session, *fakeEngine, *shape.Registry) {
	engine := newFakeEngine()
	registry := shape.NewRegistry(engine)
	session := NewSession(engine, registry, 2)
	return session, engine, registry
}

// sketchSolid drives a full draw-and-extrude cycle and returns the solid.
func sketchSolid(t *testing.T, s *Session, engine *fakeEngine, registry *shape.Registry, points ...[2]float32) *shape.Solid {
	t.Helper()

	s.SetMode(ModeDraw)
	for _, p := range points {
		engine.queueGround(p[0], 0, p[1])
		s.PickDown(0, 0)
	}
	if err := s.Extrude(); err != nil {
		t.Fatalf("extrude failed: %v", err)
	}

	solids := registry.Solids()
	return solids[len(solids)-1]
}
