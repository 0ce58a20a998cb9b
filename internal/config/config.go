// Package config handles editor configuration loading and management.
package config

// Config holds all editor settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Editor   EditorConfig   `yaml:"editor"`
	Camera   CameraConfig   `yaml:"camera"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// EditorConfig holds sketching and shape synthesis settings.
type EditorConfig struct {
	GroundExtent  float32 `yaml:"ground_extent"`  // Half-size of the ground plane
	GridStep      float32 `yaml:"grid_step"`      // Spacing between grid lines
	SolidHeight   float32 `yaml:"solid_height"`   // Fixed height of extruded solids
	MarkerSize    float32 `yaml:"marker_size"`    // Edge length of vertex marker cubes
	ScreenshotDir string  `yaml:"screenshot_dir"` // Output directory for F12 captures
}

// CameraConfig holds orbit camera settings.
type CameraConfig struct {
	Distance        float32 `yaml:"distance"`
	Pitch           float32 `yaml:"pitch"` // Radians
	DragSensitivity float32 `yaml:"drag_sensitivity"`
	ZoomSensitivity float32 `yaml:"zoom_sensitivity"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Editor: EditorConfig{
			GroundExtent:  25,
			GridStep:      1,
			SolidHeight:   2,
			MarkerSize:    0.3,
			ScreenshotDir: "screenshots",
		},
		Camera: CameraConfig{
			Distance:        30,
			Pitch:           0.6,
			DragSensitivity: 0.005,
			ZoomSensitivity: 0.1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
