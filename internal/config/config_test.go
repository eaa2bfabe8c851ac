package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Canvas != (Size{800, 600}) || cfg.Window != (Size{1000, 800}) {
		t.Errorf("unexpected default sizes: %+v %+v", cfg.Canvas, cfg.Window)
	}
}

func TestParse_Partial(t *testing.T) {
	in := `
canvas:
  width: 640
presets:
  circle:
    radius: 12
jpegQuality: 75
logLevel: debug
`
	got, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.Canvas.Width = 640
	want.Presets.Circle.Radius = 12
	want.JPEGQuality = 75
	want.LogLevel = "debug"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if l, _ := got.Level(); l != slog.LevelDebug {
		t.Errorf("Level() = %v, want debug", l)
	}
}

func TestParse_Empty(t *testing.T) {
	got, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("empty input changed defaults:\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"unknown key", "zoom: 3\n"},
		{"bad quality", "jpegQuality: 101\n"},
		{"bad canvas", "canvas: {width: 0, height: 10}\n"},
		{"bad level", "logLevel: loud\n"},
		{"bad frame rate", "frameRate: -1\n"},
		{"not yaml", "canvas: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.in)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	got, err := Load(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("missing file changed defaults:\n%s", diff)
	}

	path := filepath.Join(dir, "svgedit.yaml")
	if err := os.WriteFile(path, []byte("savePath: drawing.svg\ntoolbarWidth: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err = Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.SavePath != "drawing.svg" || got.ToolbarWidth != 0 {
		t.Errorf("Load = %+v", got)
	}

	if err := os.WriteFile(path, []byte("bogus: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), path) {
		t.Errorf("error %v does not name the file", err)
	}
}
