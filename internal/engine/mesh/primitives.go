// Package mesh generates the canonical editor primitives and tessellates
// their editable corner buffers into renderable triangles. It is pure
// geometry with no GPU dependency.
package mesh

import (
	"github.com/Faultbox/groundforge/internal/editor/shape"
	"github.com/Faultbox/groundforge/pkg/math"
)

// Vertex counts of the editable corner buffers.
const (
	PyramidCornerCount = 4 // 3 base corners + apex
	CuboidCornerCount  = 8
)

// PyramidCorners returns the editable corners of a pyramid scaled to dims,
// centered on the origin: a triangular base at the bottom and the apex on
// top. Flat [x y z ...] layout.
func PyramidCorners(dims math.Vec3) []float32 {
	hw, hh, hd := dims.X/2, dims.Y/2, dims.Z/2
	return []float32{
		-hw, -hh, -hd, // base
		hw, -hh, -hd,
		0, -hh, hd,
		0, hh, 0, // apex
	}
}

// CuboidCorners returns the editable corners of a cuboid scaled to dims,
// centered on the origin: a bottom ring then a top ring, both wound the
// same way. Flat [x y z ...] layout.
func CuboidCorners(dims math.Vec3) []float32 {
	hw, hh, hd := dims.X/2, dims.Y/2, dims.Z/2
	return []float32{
		-hw, -hh, -hd,
		hw, -hh, -hd,
		hw, -hh, hd,
		-hw, -hh, hd,
		-hw, hh, -hd,
		hw, hh, -hd,
		hw, hh, hd,
		-hw, hh, hd,
	}
}

// Corners returns the canonical corner buffer for the given kind scaled to
// dims.
func Corners(kind shape.Kind, dims math.Vec3) []float32 {
	if kind == shape.KindPyramid {
		return PyramidCorners(dims)
	}
	return CuboidCorners(dims)
}

// pyramidFaces and cuboidFaces index into the corner buffers. Cuboid faces
// are quads split into two triangles each.
var pyramidFaces = [][3]int{
	{0, 2, 1}, // base
	{0, 1, 3},
	{1, 2, 3},
	{2, 0, 3},
}

var cuboidQuads = [][4]int{
	{3, 2, 1, 0}, // bottom
	{4, 5, 6, 7}, // top
	{0, 1, 5, 4},
	{1, 2, 6, 5},
	{2, 3, 7, 6},
	{3, 0, 4, 7},
}

// Triangles tessellates a corner buffer into interleaved position+normal
// triangle vertices (6 floats per vertex). Normals are flat per face and
// recomputed from the current corner positions, so the result stays valid
// after arbitrary vertex edits.
func Triangles(kind shape.Kind, corners []float32) []float32 {
	corner := func(i int) math.Vec3 {
		return math.Vec3{X: corners[i*3], Y: corners[i*3+1], Z: corners[i*3+2]}
	}

	var out []float32
	emit := func(a, b, c math.Vec3) {
		n := b.Sub(a).Cross(c.Sub(a)).Normalize()
		for _, p := range []math.Vec3{a, b, c} {
			out = append(out, p.X, p.Y, p.Z, n.X, n.Y, n.Z)
		}
	}

	if kind == shape.KindPyramid {
		for _, f := range pyramidFaces {
			emit(corner(f[0]), corner(f[1]), corner(f[2]))
		}
		return out
	}

	for _, q := range cuboidQuads {
		a, b, c, d := corner(q[0]), corner(q[1]), corner(q[2]), corner(q[3])
		emit(a, b, c)
		emit(a, c, d)
	}
	return out
}
