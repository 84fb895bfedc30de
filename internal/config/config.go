package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"diorama/internal/layout"
	"diorama/internal/palette"
)

// DefaultPath is the config file location, relative to the process working directory.
const DefaultPath = "config/diorama.yaml"

// Scene names accepted by Config.Scene.
const (
	ScenePit   = "pit"
	SceneCross = "cross"
)

// Window controls the OS window and frame loop.
type Window struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	TargetFPS  int    `yaml:"target_fps"`
	MSAA       bool   `yaml:"msaa"`
	Fullscreen bool   `yaml:"fullscreen"`
	Background string `yaml:"background"`
}

// Camera is the perspective camera plus its orbit limits. Pan is always off.
type Camera struct {
	Position    [3]float32 `yaml:"position"`
	Target      [3]float32 `yaml:"target"`
	Fov         float32    `yaml:"fov"`
	MinDistance float32    `yaml:"min_distance"`
	MaxDistance float32    `yaml:"max_distance"`
}

// Lighting is one ambient term and one directional light.
type Lighting struct {
	Ambient   float32    `yaml:"ambient"`
	Position  [3]float32 `yaml:"position"`
	Intensity float32    `yaml:"intensity"`
	Color     string     `yaml:"color"`
}

// Material is the surface look of one layout part.
type Material struct {
	Color     string  `yaml:"color"`
	Roughness float32 `yaml:"roughness"`
}

// Materials maps each layout part to a material.
type Materials struct {
	Ground Material `yaml:"ground"`
	Floor  Material `yaml:"floor"`
	Wall   Material `yaml:"wall"`
	Cube   Material `yaml:"cube"`
	Block  Material `yaml:"block"`
}

// HUD controls the bottom toolbar overlay.
type HUD struct {
	Visible bool   `yaml:"visible"`
	Label   string `yaml:"label"`
	Buttons int    `yaml:"buttons"`
}

// Debug holds developer overlays, all off by default.
type Debug struct {
	ShowFPS  bool `yaml:"show_fps"`
	ShowGrid bool `yaml:"show_grid"`
}

// Config is everything the viewer needs to build and draw a scene.
type Config struct {
	Scene     string             `yaml:"scene"`
	Window    Window             `yaml:"window"`
	Pit       layout.PitParams   `yaml:"pit"`
	Cubes     layout.CubeParams  `yaml:"cubes"`
	Cross     layout.CrossParams `yaml:"cross"`
	Camera    Camera             `yaml:"camera"`
	Lighting  Lighting           `yaml:"lighting"`
	Materials Materials          `yaml:"materials"`
	HUD       HUD                `yaml:"hud"`
	Debug     Debug              `yaml:"debug"`
}

// Default returns the reference pit diorama: 7,7,7 camera, 5..20 orbit distance,
// light grey pit with dark cubes and the toolbar on.
func Default() Config {
	return Config{
		Scene: ScenePit,
		Window: Window{
			Title:      "diorama",
			Width:      1280,
			Height:     720,
			TargetFPS:  60,
			MSAA:       true,
			Background: "#e5e7eb",
		},
		Pit:   layout.DefaultPitParams(),
		Cubes: layout.DefaultCubeParams(),
		Cross: layout.DefaultCrossParams(),
		Camera: Camera{
			Position:    [3]float32{7, 7, 7},
			Fov:         45,
			MinDistance: 5,
			MaxDistance: 20,
		},
		Lighting: Lighting{
			Ambient:   0.3,
			Position:  [3]float32{5, 10, 5},
			Intensity: 3,
			Color:     "#ffffff",
		},
		Materials: Materials{
			Ground: Material{Color: "#eee", Roughness: 1},
			Floor:  Material{Color: "#fafafa", Roughness: 1},
			Wall:   Material{Color: "#eee", Roughness: 1},
			Cube:   Material{Color: "#111", Roughness: 0.5},
			Block:  Material{Color: "#d4d4d8", Roughness: 0.8},
		},
		HUD: HUD{
			Visible: true,
			Label:   "$1,000,000",
			Buttons: 3,
		},
	}
}

// Load reads a YAML config from path on top of Default(). A missing file is not an
// error and yields the defaults. Fields absent from the file keep their default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML to path, creating the parent directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Apply copies every non-zero field of overrides onto cfg. Used for CLI flags, where
// zero means "not given". Booleans cannot be switched off this way.
func Apply(cfg *Config, overrides Config) error {
	if err := copier.CopyWithOption(cfg, &overrides, copier.Option{IgnoreEmpty: true, DeepCopy: true}); err != nil {
		return fmt.Errorf("config: apply overrides: %w", err)
	}
	return nil
}

// Validate checks the layout parameters, camera limits and colours.
func (c Config) Validate() error {
	switch c.Scene {
	case ScenePit:
		if err := c.Pit.Validate(); err != nil {
			return err
		}
		if err := c.Cubes.Validate(); err != nil {
			return err
		}
	case SceneCross:
		if err := c.Cross.Validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: scene = %q, want %q or %q", layout.ErrInvalidParameter, c.Scene, ScenePit, SceneCross)
	}
	if c.Camera.MinDistance <= 0 || c.Camera.MaxDistance < c.Camera.MinDistance {
		return fmt.Errorf("%w: camera distance [%v, %v]", layout.ErrInvalidParameter, c.Camera.MinDistance, c.Camera.MaxDistance)
	}
	if c.Camera.Fov <= 0 || c.Camera.Fov >= 180 {
		return fmt.Errorf("%w: camera.fov = %v, want (0, 180)", layout.ErrInvalidParameter, c.Camera.Fov)
	}
	colours := map[string]string{
		"window.background":      c.Window.Background,
		"lighting.color":         c.Lighting.Color,
		"materials.ground.color": c.Materials.Ground.Color,
		"materials.floor.color":  c.Materials.Floor.Color,
		"materials.wall.color":   c.Materials.Wall.Color,
		"materials.cube.color":   c.Materials.Cube.Color,
		"materials.block.color":  c.Materials.Block.Color,
	}
	for field, v := range colours {
		if _, err := palette.Parse(v); err != nil {
			return fmt.Errorf("config: %s: %w", field, err)
		}
	}
	return nil
}

// Layout builds the primitives for the configured scene through cache.
func (c Config) Layout(cache *layout.Cache) []layout.Primitive {
	if c.Scene == SceneCross {
		return cache.Cross(c.Cross)
	}
	return cache.Diorama(c.Pit, c.Cubes)
}

// MaterialFor returns the material configured for a layout part.
func (c Config) MaterialFor(part layout.Part) Material {
	switch part {
	case layout.PartFloor:
		return c.Materials.Floor
	case layout.PartWall:
		return c.Materials.Wall
	case layout.PartCube:
		return c.Materials.Cube
	case layout.PartBlock:
		return c.Materials.Block
	default:
		return c.Materials.Ground
	}
}
