package scene

import (
	"github.com/Faultbox/groundforge/internal/editor"
	"github.com/Faultbox/groundforge/internal/engine/picking"
	"github.com/Faultbox/groundforge/pkg/math"
)

// PickSurface ray-casts the scene at screen coordinates. Vertex markers win
// over solid bodies, solids win over the ground plane.
func (s *Scene) PickSurface(screenX, screenY float32) (editor.Hit, bool) {
	invViewProj := s.proj.Mul(s.view).Inverse()
	ray := picking.ScreenToRay(screenX, screenY,
		float32(s.config.Width), float32(s.config.Height), invViewProj)

	if hit, ok := s.pickMarker(ray); ok {
		return hit, true
	}
	if hit, ok := s.pickSolid(ray); ok {
		return hit, true
	}
	if p, ok := ray.IntersectPlaneY(0); ok {
		// Clicks outside the working area are not picks.
		e := s.config.GroundExtent
		if p.X >= -e && p.X <= e && p.Z >= -e && p.Z <= e {
			return editor.Hit{Kind: editor.HitGround, Position: p}, true
		}
	}
	return editor.Hit{}, false
}

func (s *Scene) pickMarker(ray picking.Ray) (editor.Hit, bool) {
	half := s.config.MarkerSize / 2
	extents := math.Vec3{X: half, Y: half, Z: half}

	best := float32(-1)
	var bestHit editor.Hit
	for _, m := range s.markers {
		world := s.markerWorld(m)
		dist, ok := ray.IntersectAABB(picking.AABBAround(world, extents))
		if !ok {
			continue
		}
		if best < 0 || dist < best {
			best = dist
			bestHit = editor.Hit{
				Kind:        editor.HitMarker,
				Position:    ray.Origin.Add(ray.Direction.Scale(dist)),
				Solid:       m.owner,
				VertexIndex: m.vertexIndex,
			}
		}
	}
	return bestHit, best >= 0
}

func (s *Scene) pickSolid(ray picking.Ray) (editor.Hit, bool) {
	if s.registry == nil {
		return editor.Hit{}, false
	}

	best := float32(-1)
	var bestHit editor.Hit
	for _, sol := range s.registry.Solids() {
		// Rotation is folded into the extents: a rotated solid still fits
		// inside the box spanned by its larger footprint axis.
		side := sol.Dimensions.X
		if sol.Dimensions.Z > side {
			side = sol.Dimensions.Z
		}
		extents := math.Vec3{X: side / 2, Y: sol.Dimensions.Y / 2, Z: side / 2}

		dist, ok := ray.IntersectAABB(picking.AABBAround(sol.Position, extents))
		if !ok {
			continue
		}
		if best < 0 || dist < best {
			best = dist
			bestHit = editor.Hit{
				Kind:     editor.HitSolid,
				Position: ray.Origin.Add(ray.Direction.Scale(dist)),
				Solid:    sol.ID,
			}
		}
	}
	return bestHit, best >= 0
}
