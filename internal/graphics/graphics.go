package graphics

import (
	"fmt"

	"diorama/internal/config"
	"diorama/internal/palette"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Run opens the window described by w and runs the frame loop until it is closed.
// Each frame it calls update (input), clears to the background colour and calls draw.
// setup runs once after the GL context exists and before the first frame; teardown runs
// before the window closes. Either may be nil.
func Run(w config.Window, setup, update, draw, teardown func()) error {
	bg, err := palette.Parse(w.Background)
	if err != nil {
		return fmt.Errorf("graphics: window.background: %w", err)
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	flags := uint32(rl.FlagWindowResizable)
	if w.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	if w.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)

	// zero size makes raylib use the monitor resolution
	width, height := int32(w.Width), int32(w.Height)
	if w.Fullscreen {
		width, height = 0, 0
	}
	rl.InitWindow(width, height, w.Title)
	defer rl.CloseWindow()
	if w.TargetFPS > 0 {
		rl.SetTargetFPS(int32(w.TargetFPS))
	}

	if setup != nil {
		setup()
	}
	if teardown != nil {
		defer teardown()
	}
	bgColor := rl.NewColor(bg.R, bg.G, bg.B, bg.A)
	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(bgColor)
		draw()
		rl.EndDrawing()
	}
	return nil
}
