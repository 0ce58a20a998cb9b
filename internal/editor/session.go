package editor

import (
	"go.uber.org/zap"

	"github.com/Faultbox/groundforge/internal/editor/shape"
	"github.com/Faultbox/groundforge/internal/logger"
	"github.com/Faultbox/groundforge/pkg/math"
)

// Session is the single source of truth for the interaction state: the
// active mode, the draft polygon, the drag selection, and the marker
// overlay. All mutation happens synchronously inside the event handlers, on
// one thread.
type Session struct {
	engine      Engine
	registry    *shape.Registry
	solidHeight float32

	mode    Mode
	draft   DraftPolygon
	overlay Overlay

	// Drag selection. Both fields are set together on pick-down and
	// cleared together on pick-up or mode switch.
	selected shape.ID
	lastPick math.Vec3
	dragging bool
}

// NewSession creates a session in Draw mode.
func NewSession(engine Engine, registry *shape.Registry, solidHeight float32) *Session {
	return &Session{
		engine:      engine,
		registry:    registry,
		solidHeight: solidHeight,
		mode:        ModeDraw,
	}
}

// Mode returns the active interaction mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// SetMode switches the interaction mode. Any mode may follow any mode.
// Every switch disposes the marker overlay and cancels the active drag;
// entering Draw also discards the draft, entering VertexEdit regenerates
// markers for every registered solid.
func (s *Session) SetMode(m Mode) {
	s.overlay.Clear(s.engine)
	s.clearSelection()
	s.mode = m

	switch m {
	case ModeDraw:
		s.draft.Clear()
		s.engine.ClearDraft()
	case ModeVertexEdit:
		s.overlay.Regenerate(s.engine, s.registry)
	}

	logger.Debug("mode switched", zap.String("mode", m.String()))
}

// DraftPoints returns a copy of the current draft polygon.
func (s *Session) DraftPoints() []math.Vec3 {
	return s.draft.Points()
}

// Selection returns the solid under drag, if any.
func (s *Session) Selection() (shape.ID, bool) {
	return s.selected, s.dragging
}

// MarkerCount returns the number of live vertex markers.
func (s *Session) MarkerCount() int {
	return s.overlay.Count()
}

func (s *Session) clearSelection() {
	s.selected = ""
	s.lastPick = math.Vec3{}
	s.dragging = false
}
