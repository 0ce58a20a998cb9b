package mesh

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/groundforge/internal/editor/shape"
	"github.com/Faultbox/groundforge/pkg/math"
)

func TestPyramidCorners(t *testing.T) {
	corners := PyramidCorners(math.Vec3{X: 2, Y: 4, Z: 6})
	if len(corners) != PyramidCornerCount*3 {
		t.Fatalf("corner buffer length = %d, want %d", len(corners), PyramidCornerCount*3)
	}

	// Apex sits on top, centered.
	apexY := corners[3*3+1]
	if apexY != 2 {
		t.Errorf("apex Y = %f, want 2", apexY)
	}

	// Base spans the full width between the first two corners.
	baseWidth := corners[1*3] - corners[0*3]
	if baseWidth != 2 {
		t.Errorf("base width = %f, want 2", baseWidth)
	}
}

func TestCuboidCorners(t *testing.T) {
	corners := CuboidCorners(math.Vec3{X: 2, Y: 2, Z: 2})
	if len(corners) != CuboidCornerCount*3 {
		t.Fatalf("corner buffer length = %d, want %d", len(corners), CuboidCornerCount*3)
	}

	// All corners at distance sqrt(3) from center for a 2-unit cube.
	for i := 0; i < CuboidCornerCount; i++ {
		v := math.Vec3{X: corners[i*3], Y: corners[i*3+1], Z: corners[i*3+2]}
		if gomath.Abs(float64(v.Length())-gomath.Sqrt(3)) > 1e-5 {
			t.Errorf("corner %d at %v, want distance sqrt(3)", i, v)
		}
	}
}

func TestTrianglesVertexCounts(t *testing.T) {
	pyr := Triangles(shape.KindPyramid, PyramidCorners(math.Vec3{X: 1, Y: 1, Z: 1}))
	// 4 faces, 3 vertices each, 6 floats per vertex.
	if len(pyr) != 4*3*6 {
		t.Errorf("pyramid triangle floats = %d, want %d", len(pyr), 4*3*6)
	}

	cub := Triangles(shape.KindCuboid, CuboidCorners(math.Vec3{X: 1, Y: 1, Z: 1}))
	// 6 quads, 2 triangles each.
	if len(cub) != 6*2*3*6 {
		t.Errorf("cuboid triangle floats = %d, want %d", len(cub), 6*2*3*6)
	}
}

func TestTrianglesFollowEditedCorners(t *testing.T) {
	corners := CuboidCorners(math.Vec3{X: 1, Y: 1, Z: 1})
	corners[0] = -5 // drag corner 0 out along X

	tris := Triangles(shape.KindCuboid, corners)

	found := false
	for i := 0; i < len(tris); i += 6 {
		if tris[i] == -5 {
			found = true
			break
		}
	}
	if !found {
		t.Error("tessellation should include the edited corner position")
	}
}

func TestGridVertices(t *testing.T) {
	grid := GridVertices(1, 1)
	// Lines at -1, 0, 1 in both directions: 6 lines, 2 vertices, 3 floats.
	if len(grid) != 6*2*3 {
		t.Errorf("grid floats = %d, want %d", len(grid), 6*2*3)
	}

	if GridVertices(0, 1) != nil {
		t.Error("zero extent should produce no grid")
	}
	if GridVertices(1, 0) != nil {
		t.Error("zero step should produce no grid")
	}
}

func TestCubeWireframe(t *testing.T) {
	w := CubeWireframe(2)
	if len(w) != 12*2*3 {
		t.Errorf("wireframe floats = %d, want %d", len(w), 12*2*3)
	}
}
