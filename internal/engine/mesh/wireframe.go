package mesh

import (
	"github.com/Faultbox/groundforge/pkg/math"
)

// GridVertices generates line-pair vertices for a square ground grid on the
// y=0 plane, spanning [-extent, extent] on X and Z with the given spacing.
// Format: [x y z] per vertex, two vertices per line.
func GridVertices(extent, step float32) []float32 {
	if step <= 0 || extent <= 0 {
		return nil
	}

	var out []float32
	for d := -extent; d <= extent; d += step {
		// Line parallel to Z at x=d.
		out = append(out, d, 0, -extent, d, 0, extent)
		// Line parallel to X at z=d.
		out = append(out, -extent, 0, d, extent, 0, d)
	}
	return out
}

// PolylineVertices flattens a point sequence into line-strip vertices.
func PolylineVertices(points []math.Vec3) []float32 {
	out := make([]float32, 0, len(points)*3)
	for _, p := range points {
		out = append(out, p.X, p.Y, p.Z)
	}
	return out
}

// CubeWireframe generates line-pair vertices for a wireframe cube of the
// given edge length centered at the origin. 12 edges, two vertices each.
func CubeWireframe(size float32) []float32 {
	h := size / 2
	return []float32{
		// Bottom face
		-h, -h, -h, h, -h, -h,
		h, -h, -h, h, -h, h,
		h, -h, h, -h, -h, h,
		-h, -h, h, -h, -h, -h,
		// Top face
		-h, h, -h, h, h, -h,
		h, h, -h, h, h, h,
		h, h, h, -h, h, h,
		-h, h, h, -h, h, -h,
		// Vertical edges
		-h, -h, -h, -h, h, -h,
		h, -h, -h, h, h, -h,
		h, -h, h, h, h, h,
		-h, -h, h, -h, h, h,
	}
}
