package scene

import (
	"image/color"

	"diorama/internal/camera"
	"diorama/internal/config"
	"diorama/internal/layout"
	"diorama/internal/palette"
	"diorama/internal/primitives"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
)

// Scene holds a 3D camera and a fixed list of placed primitives and draws them.
// Update runs the orbit controls; Draw renders between BeginMode3D and EndMode3D.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool

	orbit     *camera.Orbit
	reg       *primitives.Registry
	light     primitives.Light
	prims     []layout.Primitive
	materials []primitives.Material // parallel to prims
}

// New returns a scene drawing prims with the camera, lighting and materials from cfg.
// Colours in cfg must already be valid (see config.Validate); bad ones fall back to grey.
func New(cfg config.Config, prims []layout.Primitive) *Scene {
	s := &Scene{
		GridVisible: cfg.Debug.ShowGrid,
		reg:         primitives.NewRegistry(),
	}
	s.orbit = camera.NewOrbit(cfg.Camera.Position,
		camera.WithTarget(cfg.Camera.Target[0], cfg.Camera.Target[1], cfg.Camera.Target[2]),
		camera.WithDistanceLimits(cfg.Camera.MinDistance, cfg.Camera.MaxDistance),
	)
	s.Camera.Target = vec(cfg.Camera.Target)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = cfg.Camera.Fov
	s.Camera.Projection = rl.CameraPerspective
	s.Camera.Position = vec(s.orbit.Position())

	lc := palette.Normalized(colourOr(cfg.Lighting.Color, "#ffffff"))
	s.light = primitives.DirectionalFrom(cfg.Lighting.Position, [3]float32{lc[0], lc[1], lc[2]},
		cfg.Lighting.Intensity, cfg.Lighting.Ambient)

	s.prims = prims
	s.materials = make([]primitives.Material, len(prims))
	for i, p := range prims {
		m := cfg.MaterialFor(p.Part)
		s.materials[i] = primitives.Material{Color: colourOr(m.Color, "#808080"), Roughness: m.Roughness}
	}
	return s
}

func colourOr(s, fallback string) color.RGBA {
	if c, err := palette.Parse(s); err == nil {
		return c
	}
	return palette.MustParse(fallback)
}

func vec(v [3]float32) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}

// Len returns how many primitives the scene draws.
func (s *Scene) Len() int {
	return len(s.prims)
}

// SetGridVisible sets whether the editor grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// Update runs once per frame: left-drag orbits, the wheel zooms. No panning.
func (s *Scene) Update() {
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		d := rl.GetMouseDelta()
		if d.X != 0 || d.Y != 0 {
			s.orbit.Drag(d.X, d.Y)
		}
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		s.orbit.Zoom(wheel)
	}
	s.Camera.Position = vec(s.orbit.Position())
}

// Draw renders the primitives, then the grid when GridVisible is true.
// Call after ClearBackground and before the 2D overlay.
func (s *Scene) Draw() {
	p := s.Camera.Position
	s.reg.SetView([3]float32{p.X, p.Y, p.Z}, s.light)
	rl.BeginMode3D(s.Camera)
	for i, prim := range s.prims {
		s.reg.Draw(prim, s.materials[i])
	}
	if s.GridVisible {
		drawEditorGrid()
	}
	rl.EndMode3D()
}

// Unload releases GPU resources. Call before the window closes.
func (s *Scene) Unload() {
	s.reg.Unload()
}

// drawEditorGrid draws a grid on the XZ plane with major/minor lines and axis lines.
// Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)

	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i += gridMinorStep {
		c := major
		if i%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(i), 0, -gridExtent
		end.X, end.Y, end.Z = float32(i), 0, gridExtent
		rl.DrawLine3D(start, end, c)
		start.X, start.Z = -gridExtent, float32(i)
		end.X, end.Z = gridExtent, float32(i)
		rl.DrawLine3D(start, end, c)
	}

	rl.DrawLine3D(rl.NewVector3(-gridExtent, 0, 0), rl.NewVector3(gridExtent, 0, 0), rl.NewColor(220, 80, 80, axisLineAlpha))
	rl.DrawLine3D(rl.NewVector3(0, -gridExtent, 0), rl.NewVector3(0, gridExtent, 0), rl.NewColor(80, 220, 80, axisLineAlpha))
	rl.DrawLine3D(rl.NewVector3(0, 0, -gridExtent), rl.NewVector3(0, 0, gridExtent), rl.NewColor(80, 80, 220, axisLineAlpha))
}
