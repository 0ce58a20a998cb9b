// Package editor implements the interaction core: the mode state machine,
// the pointer gesture handling, and the vertex marker overlay. It talks to
// the renderer only through the Engine interface, so everything here runs
// without a window.
package editor

// Mode is the single active interaction context. It gates how pointer
// gestures are interpreted.
type Mode uint8

const (
	// ModeDraw captures ground picks into the draft polygon.
	ModeDraw Mode = iota
	// ModeMove drags whole solids across the ground plane.
	ModeMove
	// ModeVertexEdit drags individual vertices of a solid.
	ModeVertexEdit
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeDraw:
		return "draw"
	case ModeMove:
		return "move"
	case ModeVertexEdit:
		return "vertex-edit"
	default:
		return "unknown"
	}
}
