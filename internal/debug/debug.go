package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// text is only rebuilt every updateInterval frames to limit allocations
	updateInterval = 30
)

// Debug draws developer overlays in the top-right corner. All of them are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool

	primitives int
	frameCount uint32
	lines      []string
	memStats   runtime.MemStats
}

// New returns a Debug overlay reporting primitives as the scene size.
func New(primitives int) *Debug {
	return &Debug{primitives: primitives}
}

// Toggle flips the FPS overlay and the memory line together.
func (d *Debug) Toggle() {
	d.ShowFPS = !d.ShowFPS
	d.ShowMemAlloc = d.ShowFPS
	d.lines = nil
}

// text returns the overlay lines for fps, primitive count and heap size in MiB;
// the memory line is included only when ShowMemAlloc is set.
func (d *Debug) text(fps int32, heapMiB float64) []string {
	out := []string{fmt.Sprintf("FPS: %d", fps), fmt.Sprintf("Primitives: %d", d.primitives)}
	if d.ShowMemAlloc {
		out = append(out, fmt.Sprintf("Mem: %.2f MiB", heapMiB))
	}
	return out
}

// Draw renders enabled overlays, right aligned. Call last in the draw loop.
func (d *Debug) Draw() {
	if !d.ShowFPS {
		return
	}
	d.frameCount++
	if d.lines == nil || d.frameCount%updateInterval == 0 {
		runtime.ReadMemStats(&d.memStats)
		d.lines = d.text(rl.GetFPS(), float64(d.memStats.Alloc)/(1024*1024))
	}
	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, line := range d.lines {
		w := rl.MeasureText(line, fontSize)
		rl.DrawText(line, screenW-w-padding, y, fontSize, rl.DarkGreen)
		y += lineHeight
	}
}
