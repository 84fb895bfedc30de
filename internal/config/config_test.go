package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"diorama/internal/layout"
	"diorama/internal/palette"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	cfg.Scene = SceneCross
	if err := cfg.Validate(); err != nil {
		t.Fatalf("cross Default().Validate() = %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load missing file: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatal("missing file should give defaults")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "diorama.yaml")
	cfg := Default()
	cfg.Scene = SceneCross
	cfg.Cross.Arm = 4
	cfg.Camera.Position = [3]float32{1, 2, 3}
	cfg.HUD.Label = "$42"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diorama.yaml")
	data := []byte("pit:\n  size: 12\ncubes:\n  count: 5\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Pit.Size != 12 || cfg.Cubes.Count != 5 {
		t.Fatalf("file values not applied: pit=%+v cubes=%+v", cfg.Pit, cfg.Cubes)
	}
	if cfg.Pit.OuterSize != 100 || cfg.Cubes.Spacing != 1.2 || cfg.Camera.Fov != 45 {
		t.Fatalf("defaults lost: pit=%+v cubes=%+v fov=%v", cfg.Pit, cfg.Cubes, cfg.Camera.Fov)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diorama.yaml")
	if err := os.WriteFile(path, []byte("pit: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatal("parse error should still return defaults")
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	var o Config
	o.Scene = SceneCross
	o.Pit.Size = 20
	o.Camera.Position = [3]float32{3, 4, 5}
	if err := Apply(&cfg, o); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if cfg.Scene != SceneCross || cfg.Pit.Size != 20 || cfg.Camera.Position != [3]float32{3, 4, 5} {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Pit.OuterSize != 100 || cfg.Pit.Depth != 1 {
		t.Fatalf("unset pit fields changed: %+v", cfg.Pit)
	}
	if cfg.Window.Title != "diorama" || cfg.Camera.Fov != 45 {
		t.Fatalf("unset sections changed: window=%+v camera=%+v", cfg.Window, cfg.Camera)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"bad scene", func(c *Config) { c.Scene = "maze" }, layout.ErrInvalidParameter},
		{"outer too small", func(c *Config) { c.Pit.OuterSize = 5 }, layout.ErrInvalidParameter},
		{"no cubes", func(c *Config) { c.Cubes.Count = 0 }, layout.ErrInvalidParameter},
		{"cross flat", func(c *Config) { c.Scene = SceneCross; c.Cross.Height = 0 }, layout.ErrInvalidParameter},
		{"distance inverted", func(c *Config) { c.Camera.MaxDistance = 1 }, layout.ErrInvalidParameter},
		{"flat fov", func(c *Config) { c.Camera.Fov = 0 }, layout.ErrInvalidParameter},
		{"bad colour", func(c *Config) { c.Materials.Cube.Color = "#12" }, palette.ErrInvalidColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLayoutByScene(t *testing.T) {
	cache := layout.NewCache()
	cfg := Default()
	if n := len(cfg.Layout(cache)); n != 22 {
		t.Fatalf("pit scene has %d primitives, want 22", n)
	}
	cfg.Scene = SceneCross
	if n := len(cfg.Layout(cache)); n != 9 {
		t.Fatalf("cross scene has %d primitives, want 9", n)
	}
}

func TestMaterialFor(t *testing.T) {
	cfg := Default()
	if got := cfg.MaterialFor(layout.PartCube); got.Color != "#111" || got.Roughness != 0.5 {
		t.Fatalf("cube material = %+v", got)
	}
	if got := cfg.MaterialFor(layout.PartFloor); got.Color != "#fafafa" {
		t.Fatalf("floor material = %+v", got)
	}
	if got := cfg.MaterialFor(layout.PartGround); got.Color != "#eee" {
		t.Fatalf("ground material = %+v", got)
	}
}
