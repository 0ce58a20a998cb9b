package editor

import (
	"github.com/Faultbox/groundforge/pkg/math"
)

// MaxDraftPoints is the most ground points a sketch may hold. Three points
// extrude into a pyramid, four into a cuboid; a fifth pick is refused.
const MaxDraftPoints = 4

// DraftPolygon is the in-progress sequence of user-picked ground points,
// in drawing order.
type DraftPolygon struct {
	points []math.Vec3
}

// Add appends a point. Returns false when the draft is already full.
func (d *DraftPolygon) Add(p math.Vec3) bool {
	if len(d.points) >= MaxDraftPoints {
		return false
	}
	d.points = append(d.points, p)
	return true
}

// Len returns the number of captured points.
func (d *DraftPolygon) Len() int {
	return len(d.points)
}

// Points returns a copy of the captured points in drawing order.
func (d *DraftPolygon) Points() []math.Vec3 {
	out := make([]math.Vec3, len(d.points))
	copy(out, d.points)
	return out
}

// Clear discards all captured points.
func (d *DraftPolygon) Clear() {
	d.points = d.points[:0]
}
