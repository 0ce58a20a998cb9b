// Package geometry provides the pure functions that turn sketched ground
// points into solid dimensions. It has no dependency on the renderer.
package geometry

import (
	gomath "math"

	"github.com/Faultbox/groundforge/pkg/math"
)

// SolidElevation is the fixed Y offset of a freshly extruded solid so it
// sits visibly on the ground plane.
const SolidElevation = 1.0

// Centroid returns the arithmetic mean of the X and Z coordinates of the
// input points, with Y fixed at SolidElevation. Returns the origin lifted to
// SolidElevation for an empty slice.
func Centroid(points []math.Vec3) math.Vec3 {
	c := math.Vec3{Y: SolidElevation}
	if len(points) == 0 {
		return c
	}

	for _, p := range points {
		c.X += p.X
		c.Z += p.Z
	}
	n := float32(len(points))
	c.X /= n
	c.Z /= n
	return c
}

// OrientationAngle returns the rotation about the vertical axis implied by
// the first sketch edge, measured from +X toward +Z.
func OrientationAngle(a, b math.Vec3) float32 {
	return float32(gomath.Atan2(float64(b.Z-a.Z), float64(b.X-a.X)))
}

// PyramidDimensions computes (width, height, depth) for a pyramid sketched
// from three ordered points: width spans the first edge, depth the edge from
// the first to the third point. The height is the fixed constant passed in.
//
// The produced solid is a canonical unit pyramid scaled by these dimensions,
// not a polyhedron fit through the literal triangle.
func PyramidDimensions(points []math.Vec3, height float32) math.Vec3 {
	return math.Vec3{
		X: points[0].Distance(points[1]),
		Y: height,
		Z: points[0].Distance(points[2]),
	}
}

// CuboidDimensions computes (width, height, depth) for a cuboid sketched
// from four ordered points. Opposite edges of the sketch rarely match, so
// each axis takes the longer of its two edges.
func CuboidDimensions(points []math.Vec3, height float32) math.Vec3 {
	width := points[0].Distance(points[1])
	if d := points[2].Distance(points[3]); d > width {
		width = d
	}

	depth := points[1].Distance(points[2])
	if d := points[3].Distance(points[0]); d > depth {
		depth = d
	}

	return math.Vec3{X: width, Y: height, Z: depth}
}

// ClosedOutline returns the draft preview polyline: the input points with
// the first point appended to close the loop. A single point or an empty
// draft produces no outline.
func ClosedOutline(points []math.Vec3) []math.Vec3 {
	if len(points) <= 1 {
		return nil
	}
	out := make([]math.Vec3, 0, len(points)+1)
	out = append(out, points...)
	out = append(out, points[0])
	return out
}
