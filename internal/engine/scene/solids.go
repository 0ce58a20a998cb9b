package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/groundforge/internal/editor/shape"
	"github.com/Faultbox/groundforge/internal/engine/mesh"
	"github.com/Faultbox/groundforge/internal/logger"
	"github.com/Faultbox/groundforge/pkg/math"
)

// solidMesh is a renderable primitive plus its editable corner buffer.
// The triangle VBO is retessellated from the corners on every write.
// Placement and color live on the registry's solid; the mesh only holds
// GPU state and geometry.
type solidMesh struct {
	vao         uint32
	vbo         uint32
	vertexCount int32

	kind    shape.Kind
	corners []float32 // Local space, flat [x y z ...]

	// Initial placement, used until the solid is registered.
	position  math.Vec3
	rotationY float32
	color     [3]float32
}

// CreateSolidMesh allocates a renderable primitive and returns its handle.
func (s *Scene) CreateSolidMesh(kind shape.Kind, dims, position math.Vec3, rotationY float32, color [3]float32) (shape.MeshRef, error) {
	corners := mesh.Corners(kind, dims)
	tris := mesh.Triangles(kind, corners)

	m := &solidMesh{
		kind:        kind,
		corners:     corners,
		position:    position,
		rotationY:   rotationY,
		color:       color,
		vertexCount: int32(len(tris) / 6),
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(tris)*4, unsafe.Pointer(&tris[0]), gl.DYNAMIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, nil)
	gl.EnableVertexAttribArray(0)

	// Normal attribute (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	ref := s.nextMesh
	s.nextMesh++
	s.meshes[ref] = m

	logger.Debug("solid mesh created",
		zap.Uint32("ref", uint32(ref)),
		zap.String("kind", kind.String()),
	)
	return ref, nil
}

// ReadVertexBuffer returns a copy of the mesh's editable corner positions.
func (s *Scene) ReadVertexBuffer(ref shape.MeshRef) []float32 {
	m, ok := s.meshes[ref]
	if !ok {
		return nil
	}
	buf := make([]float32, len(m.corners))
	copy(buf, m.corners)
	return buf
}

// WriteVertexBuffer replaces the mesh's corner positions and retessellates
// the triangle buffer. Normals are recomputed from the new corners.
func (s *Scene) WriteVertexBuffer(ref shape.MeshRef, data []float32) error {
	m, ok := s.meshes[ref]
	if !ok {
		return fmt.Errorf("unknown mesh %d", ref)
	}
	if len(data) != len(m.corners) {
		return fmt.Errorf("corner buffer size mismatch: expected %d, got %d", len(m.corners), len(data))
	}

	copy(m.corners, data)
	tris := mesh.Triangles(m.kind, m.corners)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(tris)*4, unsafe.Pointer(&tris[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return nil
}
