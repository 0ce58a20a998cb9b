package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Editor.GroundExtent != 25 {
		t.Errorf("expected ground extent 25, got %f", cfg.Editor.GroundExtent)
	}
	if cfg.Editor.SolidHeight != 2 {
		t.Errorf("expected solid height 2, got %f", cfg.Editor.SolidHeight)
	}
	if cfg.Editor.MarkerSize != 0.3 {
		t.Errorf("expected marker size 0.3, got %f", cfg.Editor.MarkerSize)
	}

	if cfg.Camera.Distance != 30 {
		t.Errorf("expected camera distance 30, got %f", cfg.Camera.Distance)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

editor:
  ground_extent: 50
  grid_step: 2
  solid_height: 3
  marker_size: 0.5
  screenshot_dir: "captures"

camera:
  distance: 40
  pitch: 0.8

logging:
  level: "debug"
  log_file: "editor.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen true")
	}
	if cfg.Editor.GroundExtent != 50 {
		t.Errorf("expected ground extent 50, got %f", cfg.Editor.GroundExtent)
	}
	if cfg.Editor.ScreenshotDir != "captures" {
		t.Errorf("expected screenshot dir 'captures', got %s", cfg.Editor.ScreenshotDir)
	}
	if cfg.Camera.Distance != 40 {
		t.Errorf("expected camera distance 40, got %f", cfg.Camera.Distance)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
logging:
  level: "warn"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Logging.Level != "warn" {
		t.Errorf("expected log level 'warn', got %s", cfg.Logging.Level)
	}
	// Untouched sections keep defaults.
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected default width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Editor.GridStep != 1 {
		t.Errorf("expected default grid step 1, got %f", cfg.Editor.GridStep)
	}
}

func TestSaveAndReload(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Editor.GroundExtent = 99
	cfg.Logging.Level = "error"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, configPath); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}

	if loaded.Editor.GroundExtent != 99 {
		t.Errorf("expected ground extent 99 after reload, got %f", loaded.Editor.GroundExtent)
	}
	if loaded.Logging.Level != "error" {
		t.Errorf("expected log level 'error' after reload, got %s", loaded.Logging.Level)
	}
}
