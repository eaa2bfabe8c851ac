// Package config loads the YAML settings shared by the svgedit command and
// the interactive editor.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds editor and export settings. The zero value is not useful;
// start from Default.
type Config struct {
	Window Size `yaml:"window"`
	Canvas Size `yaml:"canvas"`
	// Width of the toolbar drawn right of the canvas.
	ToolbarWidth int `yaml:"toolbarWidth"`
	// Frames per second of the editor loop.
	FrameRate int `yaml:"frameRate"`

	Presets Presets `yaml:"presets"`

	// JPEG quality used when the command line does not give one.
	JPEGQuality int `yaml:"jpegQuality"`
	// Directory for timestamped saves from the editor.
	SaveDir string `yaml:"saveDir"`
	// Fixed save path. When set, saves overwrite this file instead of
	// creating timestamped ones.
	SavePath string `yaml:"savePath"`

	LogLevel string `yaml:"logLevel"`
}

// Size is a width and height in pixels.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Presets are the shapes added from the toolbar, centred on the pointer.
type Presets struct {
	Circle CirclePreset `yaml:"circle"`
	Rect   RectPreset   `yaml:"rect"`
	Line   LinePreset   `yaml:"line"`
}

type CirclePreset struct {
	Radius float64 `yaml:"radius"`
	Fill   string  `yaml:"fill"`
}

type RectPreset struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Fill   string  `yaml:"fill"`
}

// LinePreset describes a diagonal line from (x-Extent, y-Extent) to
// (x+Extent, y+Extent).
type LinePreset struct {
	Extent float64 `yaml:"extent"`
	Stroke string  `yaml:"stroke"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Window:       Size{Width: 1000, Height: 800},
		Canvas:       Size{Width: 800, Height: 600},
		ToolbarWidth: 200,
		FrameRate:    60,
		Presets: Presets{
			Circle: CirclePreset{Radius: 30, Fill: "#FF0000"},
			Rect:   RectPreset{Width: 50, Height: 50, Fill: "#00FF00"},
			Line:   LinePreset{Extent: 25, Stroke: "#0000FF"},
		},
		JPEGQuality: 90,
		SaveDir:     ".",
		LogLevel:    "info",
	}
}

// Load reads the file at path over Default. An empty path or a missing
// file yields the defaults. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(filepath.Clean(path))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: open file: %w", err)
	}
	defer f.Close()

	if err := decode(f, &cfg); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse reads settings from r over Default.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	if err := decode(r, &cfg); err != nil {
		return Default(), fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return cfg.Validate()
}

// Validate checks that sizes are positive and the quality is in range.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("canvas size %dx%d must be positive", c.Canvas.Width, c.Canvas.Height)
	case c.ToolbarWidth < 0:
		return fmt.Errorf("toolbar width %d must not be negative", c.ToolbarWidth)
	case c.FrameRate <= 0:
		return fmt.Errorf("frame rate %d must be positive", c.FrameRate)
	case c.JPEGQuality < 1 || c.JPEGQuality > 100:
		return fmt.Errorf("jpeg quality %d outside 1..100", c.JPEGQuality)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns LogLevel as a slog level.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}
