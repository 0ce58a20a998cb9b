package editor

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/groundforge/internal/editor/geometry"
	"github.com/Faultbox/groundforge/internal/editor/shape"
	"github.com/Faultbox/groundforge/internal/logger"
	"github.com/Faultbox/groundforge/pkg/math"
)

// ErrDraftSize is reported when extrude is requested with a draft that is
// not exactly 3 or 4 points.
var ErrDraftSize = errors.New("draft needs 3 points for a pyramid or 4 for a cuboid")

// PickDown handles the start of a pointer gesture. A pick miss is a normal
// no-op; so is a hit on a target the current mode does not care about.
func (s *Session) PickDown(screenX, screenY float32) {
	hit, ok := s.engine.PickSurface(screenX, screenY)
	if !ok {
		return
	}

	switch s.mode {
	case ModeDraw:
		if hit.Kind != HitGround {
			return
		}
		// Project onto the ground plane; draft points live at y=0.
		p := math.Vec3{X: hit.Position.X, Z: hit.Position.Z}
		if !s.draft.Add(p) {
			logger.Warn("draft polygon is full",
				zap.Int("max_points", MaxDraftPoints))
			return
		}
		s.engine.AddDraftMarker(p)
		s.engine.SetPreviewOutline(geometry.ClosedOutline(s.draft.Points()))

	case ModeMove:
		if hit.Kind != HitSolid {
			return
		}
		s.selected = hit.Solid
		s.lastPick = hit.Position
		s.dragging = true

	case ModeVertexEdit:
		if hit.Kind != HitMarker {
			return
		}
		s.selected = hit.Solid
		s.lastPick = hit.Position
		s.dragging = true
	}
}

// PickMove handles pointer motion during a drag. Without an active drag, or
// on a pick miss, nothing happens. On success the previous pick position is
// advanced so repeated calls produce smooth incremental deltas.
func (s *Session) PickMove(screenX, screenY float32) {
	if !s.dragging {
		return
	}

	hit, ok := s.engine.PickSurface(screenX, screenY)
	if !ok {
		return
	}

	delta := hit.Position.Sub(s.lastPick)

	switch s.mode {
	case ModeMove:
		// Body drags stay on the horizontal plane.
		if err := s.registry.Translate(s.selected, math.Vec3{X: delta.X, Z: delta.Z}); err != nil {
			logger.Warn("move drag rejected", zap.Error(err))
			return
		}

	case ModeVertexEdit:
		// The pointer must still be over a marker; its index names the
		// vertex to displace, with the full 3-axis delta.
		if hit.Kind != HitMarker {
			return
		}
		if err := s.registry.DisplaceVertex(hit.Solid, hit.VertexIndex, delta); err != nil {
			logger.Warn("vertex drag rejected", zap.Error(err))
			return
		}
		if sol, found := s.registry.Get(hit.Solid); found {
			s.overlay.Resync(s.engine, sol)
		}

	default:
		return
	}

	s.lastPick = hit.Position
}

// PickUp ends the active drag gesture. Idempotent.
func (s *Session) PickUp() {
	s.clearSelection()
}

// Extrude converts the draft polygon into a solid: a pyramid for 3 points,
// a cuboid for 4. Any other count returns ErrDraftSize and mutates nothing.
func (s *Session) Extrude() error {
	points := s.draft.Points()
	n := len(points)
	if n != 3 && n != 4 {
		return fmt.Errorf("%w (have %d)", ErrDraftSize, n)
	}

	centroid := geometry.Centroid(points)
	rotY := geometry.OrientationAngle(points[0], points[1])

	var kind shape.Kind
	var dims math.Vec3
	if n == 3 {
		kind = shape.KindPyramid
		dims = geometry.PyramidDimensions(points, s.solidHeight)
	} else {
		kind = shape.KindCuboid
		dims = geometry.CuboidDimensions(points, s.solidHeight)
	}

	color := randomColor()

	mesh, err := s.engine.CreateSolidMesh(kind, dims, centroid, rotY, color)
	if err != nil {
		return fmt.Errorf("creating %s mesh: %w", kind, err)
	}

	sol := shape.New(shape.ID(uuid.NewString()), kind, centroid, rotY, dims, color, mesh, s.engine.ReadVertexBuffer(mesh))
	s.registry.Add(sol)

	s.draft.Clear()
	s.engine.ClearDraft()

	logger.Info("solid extruded",
		zap.String("id", string(sol.ID)),
		zap.String("kind", kind.String()),
		zap.Float32("width", dims.X),
		zap.Float32("depth", dims.Z),
	)
	return nil
}

// randomColor picks a material color bright enough to read against the
// grid.
func randomColor() [3]float32 {
	return [3]float32{
		0.3 + rand.Float32()*0.7,
		0.3 + rand.Float32()*0.7,
		0.3 + rand.Float32()*0.7,
	}
}
