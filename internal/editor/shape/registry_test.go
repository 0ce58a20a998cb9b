package shape

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/groundforge/pkg/math"
)

// recordingWriter captures every buffer write for inspection.
type recordingWriter struct {
	writes []struct {
		mesh MeshRef
		data []float32
	}
	err error
}

func (w *recordingWriter) WriteVertexBuffer(mesh MeshRef, data []float32) error {
	if w.err != nil {
		return w.err
	}
	buf := make([]float32, len(data))
	copy(buf, data)
	w.writes = append(w.writes, struct {
		mesh MeshRef
		data []float32
	}{mesh, buf})
	return nil
}

func newTestSolid(id ID) *Solid {
	vertices := []float32{
		0, 0, 0,
		1, 0, 0,
		0, 0, 1,
		0, 1, 0,
	}
	return New(id, KindPyramid, math.Vec3{Y: 1}, 0, math.Vec3{X: 1, Y: 2, Z: 1}, [3]float32{1, 0, 0}, 7, vertices)
}

func TestRegistryAddGet(t *testing.T) {
	reg := NewRegistry(&recordingWriter{})

	s := newTestSolid("a")
	reg.Add(s)

	got, ok := reg.Get("a")
	if !ok || got != s {
		t.Fatal("Get should return the registered solid")
	}
	if reg.Len() != 1 {
		t.Errorf("Len = %d, want 1", reg.Len())
	}
	if _, ok := reg.Get("missing"); ok {
		t.Error("Get of unknown ID should report not found")
	}
}

func TestDisplaceVertex(t *testing.T) {
	w := &recordingWriter{}
	reg := NewRegistry(w)
	s := newTestSolid("a")
	reg.Add(s)

	delta := math.Vec3{X: 0.5, Y: -0.25, Z: 2}
	if err := reg.DisplaceVertex("a", 1, delta); err != nil {
		t.Fatalf("DisplaceVertex failed: %v", err)
	}

	v, _ := s.Vertex(1)
	want := math.Vec3{X: 1.5, Y: -0.25, Z: 2}
	if v != want {
		t.Errorf("vertex 1 = %v, want %v", v, want)
	}

	// Other vertices untouched.
	v0, _ := s.Vertex(0)
	if v0 != (math.Vec3{}) {
		t.Errorf("vertex 0 = %v, want origin", v0)
	}

	// Whole buffer written back to the owning mesh.
	if len(w.writes) != 1 {
		t.Fatalf("expected 1 buffer write, got %d", len(w.writes))
	}
	if w.writes[0].mesh != 7 {
		t.Errorf("write went to mesh %d, want 7", w.writes[0].mesh)
	}
	if len(w.writes[0].data) != 12 {
		t.Errorf("write length = %d, want 12", len(w.writes[0].data))
	}
}

func TestDisplaceVertexTwiceAccumulates(t *testing.T) {
	w := &recordingWriter{}
	reg := NewRegistry(w)
	s := newTestSolid("a")
	reg.Add(s)

	delta := math.Vec3{X: 1}
	if err := reg.DisplaceVertex("a", 0, delta); err != nil {
		t.Fatal(err)
	}
	if err := reg.DisplaceVertex("a", 0, delta); err != nil {
		t.Fatal(err)
	}

	// The same event applied twice yields +2d, never coalesced.
	v, _ := s.Vertex(0)
	if v.X != 2 {
		t.Errorf("vertex 0 X = %f, want 2", v.X)
	}
	if len(w.writes) != 2 {
		t.Errorf("expected 2 buffer writes, got %d", len(w.writes))
	}
}

func TestDisplaceVertexInvalidIndex(t *testing.T) {
	w := &recordingWriter{}
	reg := NewRegistry(w)
	s := newTestSolid("a")
	reg.Add(s)

	before := s.Buffer()

	for _, idx := range []int{-1, 4, 100} {
		err := reg.DisplaceVertex("a", idx, math.Vec3{X: 1})
		if !errors.Is(err, ErrVertexIndex) {
			t.Errorf("index %d: error = %v, want ErrVertexIndex", idx, err)
		}
	}

	after := s.Buffer()
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("buffer must be untouched after an invalid-index mutation")
		}
	}
	if len(w.writes) != 0 {
		t.Errorf("no buffer writes expected, got %d", len(w.writes))
	}
}

func TestDisplaceVertexUnknownSolid(t *testing.T) {
	reg := NewRegistry(&recordingWriter{})
	err := reg.DisplaceVertex("ghost", 0, math.Vec3{})
	if !errors.Is(err, ErrUnknownSolid) {
		t.Errorf("error = %v, want ErrUnknownSolid", err)
	}
}

func TestTranslate(t *testing.T) {
	reg := NewRegistry(&recordingWriter{})
	s := newTestSolid("a")
	reg.Add(s)

	if err := reg.Translate("a", math.Vec3{X: 2, Z: -1}); err != nil {
		t.Fatal(err)
	}
	want := math.Vec3{X: 2, Y: 1, Z: -1}
	if s.Position != want {
		t.Errorf("position = %v, want %v", s.Position, want)
	}

	if err := reg.Translate("ghost", math.Vec3{}); !errors.Is(err, ErrUnknownSolid) {
		t.Errorf("error = %v, want ErrUnknownSolid", err)
	}
}

func TestWorldVertex(t *testing.T) {
	vertices := []float32{1, 0, 0}
	s := New("a", KindCuboid, math.Vec3{X: 10, Y: 1, Z: 5}, float32(gomath.Pi/2), math.Vec3{X: 1, Y: 1, Z: 1}, [3]float32{}, 1, vertices)

	world, ok := s.WorldVertex(0)
	if !ok {
		t.Fatal("WorldVertex(0) should succeed")
	}

	// Local (1,0,0) rotated a quarter turn lands on -Z, then translates.
	if gomath.Abs(float64(world.X-10)) > 1e-5 ||
		world.Y != 1 ||
		gomath.Abs(float64(world.Z-4)) > 1e-5 {
		t.Errorf("world vertex = %v, want (10, 1, 4)", world)
	}

	if _, ok := s.WorldVertex(1); ok {
		t.Error("WorldVertex out of range should report not ok")
	}
}

func TestBufferIsACopy(t *testing.T) {
	s := newTestSolid("a")
	buf := s.Buffer()
	buf[0] = 42

	v, _ := s.Vertex(0)
	if v.X != 0 {
		t.Error("Buffer must return a copy, not the live buffer")
	}
}
