package main

import (
	"diorama/internal/debug"
	"diorama/internal/graphics"
	"diorama/internal/hud"
	"diorama/internal/layout"
	"diorama/internal/logger"
	"diorama/internal/scene"
	"diorama/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func runView(log *logger.Logger, cache *layout.Cache, f *sceneFlags) error {
	cfg, err := f.load(log)
	if err != nil {
		return err
	}
	prims := cfg.Layout(cache)
	log.Logf("view: %d primitives, %d walls", len(prims), layout.Count(prims, layout.PartWall))

	sheet, err := ui.DefaultStylesheet()
	if err != nil {
		return err
	}
	scn := scene.New(cfg, prims)
	overlay := hud.New(ui.NewToolbar(cfg.HUD.Buttons, cfg.HUD.Label), sheet, cfg.HUD.Visible)
	dbg := debug.New(scn.Len())
	if cfg.Debug.ShowFPS {
		dbg.Toggle()
	}

	update := func() {
		scn.Update()
		handleKeys(scn, overlay, dbg)
	}
	draw := func() {
		scn.Draw()
		overlay.Draw()
		dbg.Draw()
	}
	err = graphics.Run(cfg.Window, nil, update, draw, scn.Unload)
	log.Log("view: window closed")
	return err
}

// handleKeys toggles overlays: F1 debug text, G grid, H toolbar.
func handleKeys(scn *scene.Scene, overlay *hud.HUD, dbg *debug.Debug) {
	if rl.IsKeyPressed(rl.KeyF1) {
		dbg.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyG) {
		scn.SetGridVisible(!scn.GridVisible)
	}
	if rl.IsKeyPressed(rl.KeyH) {
		overlay.Visible = !overlay.Visible
	}
}
