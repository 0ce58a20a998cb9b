// Package app implements the main editor loop: window, input, scene and
// the interaction session wired together.
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/groundforge/internal/config"
	"github.com/Faultbox/groundforge/internal/editor"
	"github.com/Faultbox/groundforge/internal/editor/shape"
	"github.com/Faultbox/groundforge/internal/engine/camera"
	"github.com/Faultbox/groundforge/internal/engine/debug"
	"github.com/Faultbox/groundforge/internal/engine/input"
	"github.com/Faultbox/groundforge/internal/engine/scene"
	"github.com/Faultbox/groundforge/internal/engine/window"
	"github.com/Faultbox/groundforge/internal/logger"
)

// App is the main editor instance.
type App struct {
	config  *config.Config
	running bool

	window   *window.Window
	scene    *scene.Scene
	input    *input.Input
	camera   *camera.OrbitCamera
	registry *shape.Registry
	session  *editor.Session

	screenshots *debug.ScreenshotCapture

	// Mouse button state across motion events
	leftDown  bool
	rightDown bool
}

// New creates the editor. The window and GL context come up first; the
// scene needs a live context before any GPU resource is touched.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing editor",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	a := &App{
		config: cfg,
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      "GroundForge",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	a.scene, err = scene.New(scene.Config{
		Width:        cfg.Graphics.Width,
		Height:       cfg.Graphics.Height,
		GroundExtent: cfg.Editor.GroundExtent,
		GridStep:     cfg.Editor.GridStep,
		MarkerSize:   cfg.Editor.MarkerSize,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	a.registry = shape.NewRegistry(a.scene)
	a.scene.SetRegistry(a.registry)
	a.session = editor.NewSession(a.scene, a.registry, cfg.Editor.SolidHeight)

	a.camera = camera.New(cfg.Camera.Distance, cfg.Camera.Pitch)
	a.camera.DragSensitivity = cfg.Camera.DragSensitivity
	a.camera.ZoomSensitivity = cfg.Camera.ZoomSensitivity

	a.input = input.New()
	a.screenshots = debug.NewScreenshotCapture(cfg.Editor.ScreenshotDir, "groundforge")

	logger.Info("editor initialized")
	return a, nil
}

// Run starts the main loop.
func (a *App) Run() error {
	a.running = true

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting editor loop")

	for a.running {
		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}

		for _, event := range a.input.Events() {
			a.handleEvent(event)
		}

		// 2. Render
		id, dragging := a.session.Selection()
		a.scene.SetHighlight(id, dragging)
		a.scene.Render(a.camera.ViewMatrix())

		// 3. Present
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up editor resources.
func (a *App) Close() {
	logger.Info("closing editor")

	if a.scene != nil {
		a.scene.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) handleEvent(event input.Event) {
	switch event.Type {
	case input.EventWindowResize:
		a.scene.Resize(event.Width, event.Height)

	case input.EventKeyDown:
		a.handleKey(event.Key)

	case input.EventMouseDown:
		switch event.Button {
		case sdl.BUTTON_LEFT:
			a.leftDown = true
			a.session.PickDown(float32(event.MouseX), float32(event.MouseY))
		case sdl.BUTTON_RIGHT:
			a.rightDown = true
		}

	case input.EventMouseUp:
		switch event.Button {
		case sdl.BUTTON_LEFT:
			a.leftDown = false
			a.session.PickUp()
		case sdl.BUTTON_RIGHT:
			a.rightDown = false
		}

	case input.EventMouseMove:
		if a.leftDown {
			a.session.PickMove(float32(event.MouseX), float32(event.MouseY))
		}
		if a.rightDown {
			a.camera.HandleDrag(float32(event.RelX), float32(event.RelY))
		}

	case input.EventMouseWheel:
		a.camera.HandleZoom(event.WheelY)
	}
}

func (a *App) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		a.running = false

	case sdl.SCANCODE_1:
		a.session.SetMode(editor.ModeDraw)
	case sdl.SCANCODE_2:
		a.session.SetMode(editor.ModeMove)
	case sdl.SCANCODE_3:
		a.session.SetMode(editor.ModeVertexEdit)

	case sdl.SCANCODE_E, sdl.SCANCODE_RETURN:
		if err := a.session.Extrude(); err != nil {
			// An undersized draft is a user mistake, not a fault.
			if errors.Is(err, editor.ErrDraftSize) {
				logger.Warn("extrude rejected", zap.Error(err))
			} else {
				logger.Error("extrude failed", zap.Error(err))
			}
		}

	case sdl.SCANCODE_F12:
		a.captureScreenshot()
	}
}

func (a *App) captureScreenshot() {
	w, h := a.window.GetSize()
	pixels := make([]byte, w*h*4)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	filename, err := a.screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("file", filename))
}
