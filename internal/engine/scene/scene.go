// Package scene renders the editor world: the ground grid, extruded
// solids, the draft preview and the vertex marker overlay. It implements
// the surface used by the interaction core.
package scene

import (
	gomath "math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/groundforge/internal/editor"
	"github.com/Faultbox/groundforge/internal/editor/shape"
	"github.com/Faultbox/groundforge/internal/engine/mesh"
	"github.com/Faultbox/groundforge/internal/engine/shader"
	"github.com/Faultbox/groundforge/internal/logger"
	"github.com/Faultbox/groundforge/pkg/math"
)

// Config holds scene configuration.
type Config struct {
	Width        int
	Height       int
	GroundExtent float32
	GridStep     float32
	MarkerSize   float32
}

// Scene owns all GPU resources for the editor world.
type Scene struct {
	config Config

	// Lit shader for solids
	solidProgram  uint32
	locSolidMVP   int32
	locSolidModel int32
	locSolidColor int32
	locLightDir   int32
	locAmbient    int32

	// Flat shader for grid, outline and markers
	flatProgram uint32
	locFlatMVP  int32
	locFlatCol  int32

	// Ground grid
	gridVAO   uint32
	gridVBO   uint32
	gridCount int32

	// Shared marker cube
	markerVAO   uint32
	markerVBO   uint32
	markerCount int32

	// Preview outline, re-uploaded on every draft change
	outlineVAO   uint32
	outlineVBO   uint32
	outlineCount int32

	// Wireframe box around the solid under drag
	highlightVAO   uint32
	highlightVBO   uint32
	highlightCount int32
	highlight      shape.ID
	highlightOn    bool

	meshes   map[shape.MeshRef]*solidMesh
	nextMesh shape.MeshRef

	markers      map[editor.MarkerRef]*marker
	nextMarker   editor.MarkerRef
	draftMarkers []math.Vec3

	// Set after construction; pick tests walk the live solids.
	registry *shape.Registry

	view math.Mat4
	proj math.Mat4
}

// New creates the scene. Must be called after the OpenGL context exists.
func New(cfg Config) (*Scene, error) {
	s := &Scene{
		config:  cfg,
		meshes:  make(map[shape.MeshRef]*solidMesh),
		markers: make(map[editor.MarkerRef]*marker),
		view:    math.Identity(),
	}
	s.nextMesh = 1
	s.nextMarker = 1

	if err := gl.Init(); err != nil {
		return nil, err
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	// Edited solids can turn inside out; render both faces.
	gl.Disable(gl.CULL_FACE)
	gl.ClearColor(0.12, 0.12, 0.16, 1.0)

	var err error
	s.solidProgram, err = shader.CompileProgram(solidVertexShader, solidFragmentShader)
	if err != nil {
		return nil, err
	}
	s.locSolidMVP = shader.GetUniform(s.solidProgram, "uMVP")
	s.locSolidModel = shader.GetUniform(s.solidProgram, "uModel")
	s.locSolidColor = shader.GetUniform(s.solidProgram, "uColor")
	s.locLightDir = shader.GetUniform(s.solidProgram, "uLightDir")
	s.locAmbient = shader.GetUniform(s.solidProgram, "uAmbient")

	s.flatProgram, err = shader.CompileProgram(flatVertexShader, flatFragmentShader)
	if err != nil {
		return nil, err
	}
	s.locFlatMVP = shader.GetUniform(s.flatProgram, "uMVP")
	s.locFlatCol = shader.GetUniform(s.flatProgram, "uColor")

	s.createGrid()
	s.createMarkerCube()
	s.createHighlightCube()

	gl.GenVertexArrays(1, &s.outlineVAO)
	gl.GenBuffers(1, &s.outlineVBO)
	gl.BindVertexArray(s.outlineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.outlineVBO)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	s.updateProjection()

	return s, nil
}

// SetRegistry wires the solid registry in after construction. The scene
// needs it for picking and marker transforms; the registry needs the scene
// as its buffer writer.
func (s *Scene) SetRegistry(r *shape.Registry) {
	s.registry = r
}

// Resize handles window resize.
func (s *Scene) Resize(width, height int) {
	s.config.Width = width
	s.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	s.updateProjection()
	logger.Debug("scene resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

func (s *Scene) updateProjection() {
	aspect := float32(s.config.Width) / float32(s.config.Height)
	s.proj = math.Perspective(gomath.Pi/4, aspect, 0.1, 500.0)
}

// Render draws one frame with the given view matrix.
func (s *Scene) Render(view math.Mat4) {
	s.view = view
	viewProj := s.proj.Mul(view)

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	s.drawGrid(viewProj)
	s.drawSolids(viewProj)
	s.drawHighlight(viewProj)
	s.drawOutline(viewProj)
	s.drawMarkers(viewProj)
}

// Close releases all GPU resources.
func (s *Scene) Close() {
	logger.Info("closing scene")

	for _, m := range s.meshes {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
	}
	gl.DeleteVertexArrays(1, &s.gridVAO)
	gl.DeleteBuffers(1, &s.gridVBO)
	gl.DeleteVertexArrays(1, &s.markerVAO)
	gl.DeleteBuffers(1, &s.markerVBO)
	gl.DeleteVertexArrays(1, &s.outlineVAO)
	gl.DeleteBuffers(1, &s.outlineVBO)
	gl.DeleteVertexArrays(1, &s.highlightVAO)
	gl.DeleteBuffers(1, &s.highlightVBO)
	gl.DeleteProgram(s.solidProgram)
	gl.DeleteProgram(s.flatProgram)
}

func (s *Scene) createGrid() {
	verts := mesh.GridVertices(s.config.GroundExtent, s.config.GridStep)
	s.gridCount = int32(len(verts) / 3)

	gl.GenVertexArrays(1, &s.gridVAO)
	gl.BindVertexArray(s.gridVAO)
	gl.GenBuffers(1, &s.gridVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.gridVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
}

func (s *Scene) createMarkerCube() {
	corners := mesh.CuboidCorners(math.Vec3{
		X: s.config.MarkerSize,
		Y: s.config.MarkerSize,
		Z: s.config.MarkerSize,
	})
	verts := mesh.Triangles(shape.KindCuboid, corners)
	s.markerCount = int32(len(verts) / 6)

	gl.GenVertexArrays(1, &s.markerVAO)
	gl.BindVertexArray(s.markerVAO)
	gl.GenBuffers(1, &s.markerVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.markerVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.STATIC_DRAW)
	// Flat shader only reads position; skip the interleaved normal.
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
}

func (s *Scene) createHighlightCube() {
	verts := mesh.CubeWireframe(1)
	s.highlightCount = int32(len(verts) / 3)

	gl.GenVertexArrays(1, &s.highlightVAO)
	gl.BindVertexArray(s.highlightVAO)
	gl.GenBuffers(1, &s.highlightVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.highlightVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
}

// SetHighlight toggles the wireframe box drawn around the solid under drag.
func (s *Scene) SetHighlight(id shape.ID, on bool) {
	s.highlight = id
	s.highlightOn = on
}

func (s *Scene) drawHighlight(viewProj math.Mat4) {
	if !s.highlightOn || s.registry == nil {
		return
	}
	sol, ok := s.registry.Get(s.highlight)
	if !ok {
		return
	}

	// Unit cube scaled to the solid's footprint, slightly inflated so the
	// lines do not z-fight with the faces.
	d := sol.Dimensions.Scale(1.05)
	model := math.Translate(sol.Position.X, sol.Position.Y, sol.Position.Z).
		Mul(math.RotateY(sol.RotationY)).
		Mul(math.Scale(d.X, d.Y, d.Z))
	mvp := viewProj.Mul(model)

	gl.UseProgram(s.flatProgram)
	gl.UniformMatrix4fv(s.locFlatMVP, 1, false, mvp.Ptr())
	gl.Uniform3f(s.locFlatCol, 1.0, 1.0, 1.0)
	gl.BindVertexArray(s.highlightVAO)
	gl.DrawArrays(gl.LINES, 0, s.highlightCount)
	gl.BindVertexArray(0)
}

// uploadOutline streams the preview polyline to the GPU. The buffer is
// reallocated each time; drafts are at most a handful of points.
func (s *Scene) uploadOutline(verts []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, s.outlineVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (s *Scene) drawGrid(viewProj math.Mat4) {
	gl.UseProgram(s.flatProgram)
	gl.UniformMatrix4fv(s.locFlatMVP, 1, false, viewProj.Ptr())
	gl.Uniform3f(s.locFlatCol, 0.35, 0.35, 0.4)
	gl.BindVertexArray(s.gridVAO)
	gl.DrawArrays(gl.LINES, 0, s.gridCount)
	gl.BindVertexArray(0)
}

func (s *Scene) drawSolids(viewProj math.Mat4) {
	gl.UseProgram(s.solidProgram)

	light := math.Vec3{X: -0.4, Y: -0.8, Z: -0.3}.Normalize()
	gl.Uniform3f(s.locLightDir, light.X, light.Y, light.Z)
	gl.Uniform1f(s.locAmbient, 0.35)

	// Placement comes from the registry: move drags mutate the solid, not
	// the mesh.
	drawn := make(map[shape.MeshRef]bool, len(s.meshes))
	if s.registry != nil {
		for _, sol := range s.registry.Solids() {
			m, ok := s.meshes[sol.Mesh]
			if !ok {
				continue
			}
			s.drawSolidMesh(viewProj, m, sol.Position, sol.RotationY, sol.Color)
			drawn[sol.Mesh] = true
		}
	}

	// Meshes created but not yet registered render at their initial
	// placement.
	for ref, m := range s.meshes {
		if !drawn[ref] {
			s.drawSolidMesh(viewProj, m, m.position, m.rotationY, m.color)
		}
	}
	gl.BindVertexArray(0)
}

func (s *Scene) drawSolidMesh(viewProj math.Mat4, m *solidMesh, position math.Vec3, rotationY float32, color [3]float32) {
	model := math.Translate(position.X, position.Y, position.Z).
		Mul(math.RotateY(rotationY))
	mvp := viewProj.Mul(model)

	gl.UniformMatrix4fv(s.locSolidMVP, 1, false, mvp.Ptr())
	gl.UniformMatrix4fv(s.locSolidModel, 1, false, model.Ptr())
	gl.Uniform3f(s.locSolidColor, color[0], color[1], color[2])

	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.vertexCount)
}

func (s *Scene) drawOutline(viewProj math.Mat4) {
	gl.UseProgram(s.flatProgram)
	gl.UniformMatrix4fv(s.locFlatMVP, 1, false, viewProj.Ptr())

	if s.outlineCount > 1 {
		gl.Uniform3f(s.locFlatCol, 1.0, 0.85, 0.2)
		gl.BindVertexArray(s.outlineVAO)
		gl.DrawArrays(gl.LINE_STRIP, 0, s.outlineCount)
		gl.BindVertexArray(0)
	}
}

func (s *Scene) drawMarkers(viewProj math.Mat4) {
	gl.UseProgram(s.flatProgram)
	gl.BindVertexArray(s.markerVAO)

	// Draft point handles
	gl.Uniform3f(s.locFlatCol, 1.0, 0.6, 0.1)
	for _, p := range s.draftMarkers {
		mvp := viewProj.Mul(math.Translate(p.X, p.Y, p.Z))
		gl.UniformMatrix4fv(s.locFlatMVP, 1, false, mvp.Ptr())
		gl.DrawArrays(gl.TRIANGLES, 0, s.markerCount)
	}

	// Vertex markers
	gl.Uniform3f(s.locFlatCol, 0.2, 0.6, 1.0)
	for _, m := range s.markers {
		p := s.markerWorld(m)
		mvp := viewProj.Mul(math.Translate(p.X, p.Y, p.Z))
		gl.UniformMatrix4fv(s.locFlatMVP, 1, false, mvp.Ptr())
		gl.DrawArrays(gl.TRIANGLES, 0, s.markerCount)
	}

	gl.BindVertexArray(0)
}
