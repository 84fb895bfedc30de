package camera

import (
	"sync"

	"github.com/chewxy/math32"
)

// Orbit keeps a camera on a sphere around a fixed target. Position is derived from
// radius, azimuth (around Y, 0 looks down -Z from +Z) and elevation (above the XZ plane).
// Panning is not supported: the target never moves once set.
type Orbit struct {
	mu sync.Mutex

	position [3]float32
	target   [3]float32

	radius    float32
	azimuth   float32
	elevation float32

	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32

	sensitivity float32 // radians per pixel of mouse drag
	zoomStep    float32 // radius change per wheel notch
}

// Option configures an Orbit.
type Option func(*Orbit)

// WithTarget sets the point the camera orbits around.
func WithTarget(x, y, z float32) Option {
	return func(o *Orbit) { o.target = [3]float32{x, y, z} }
}

// WithDistanceLimits clamps the orbit radius to [min, max].
func WithDistanceLimits(min, max float32) Option {
	return func(o *Orbit) {
		o.minRadius = min
		o.maxRadius = max
	}
}

// WithSensitivity sets the drag sensitivity in radians per pixel.
func WithSensitivity(s float32) Option {
	return func(o *Orbit) { o.sensitivity = s }
}

// WithZoomStep sets how far one wheel notch moves the camera.
func WithZoomStep(step float32) Option {
	return func(o *Orbit) { o.zoomStep = step }
}

// NewOrbit returns an orbit that starts at from, looking at the target.
// The starting radius is clamped to the distance limits.
func NewOrbit(from [3]float32, options ...Option) *Orbit {
	o := &Orbit{
		minRadius:    0.1,
		maxRadius:    1000,
		minElevation: -math32.Pi/2 + 0.05,
		maxElevation: math32.Pi/2 - 0.05,
		sensitivity:  0.005,
		zoomStep:     1,
	}
	for _, opt := range options {
		opt(o)
	}
	o.setFrom(from)
	return o
}

// setFrom converts a cartesian start position into spherical coordinates.
func (o *Orbit) setFrom(from [3]float32) {
	dx := from[0] - o.target[0]
	dy := from[1] - o.target[1]
	dz := from[2] - o.target[2]
	o.radius = math32.Sqrt(dx*dx + dy*dy + dz*dz)
	o.azimuth = math32.Atan2(dx, dz)
	if o.radius > 0 {
		o.elevation = math32.Asin(dy / o.radius)
	}
	o.clamp()
	o.updatePosition()
}

func (o *Orbit) clamp() {
	if o.radius < o.minRadius {
		o.radius = o.minRadius
	}
	if o.radius > o.maxRadius {
		o.radius = o.maxRadius
	}
	if o.elevation < o.minElevation {
		o.elevation = o.minElevation
	}
	if o.elevation > o.maxElevation {
		o.elevation = o.maxElevation
	}
}

// updatePosition recomputes the position from spherical coordinates. Caller holds mu.
func (o *Orbit) updatePosition() {
	cosElev := math32.Cos(o.elevation)
	o.position[0] = o.target[0] + o.radius*cosElev*math32.Sin(o.azimuth)
	o.position[1] = o.target[1] + o.radius*math32.Sin(o.elevation)
	o.position[2] = o.target[2] + o.radius*cosElev*math32.Cos(o.azimuth)
}

// Drag rotates the camera by a mouse movement in pixels. Dragging right orbits left
// around the target, dragging down raises the camera.
func (o *Orbit) Drag(dx, dy float32) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.azimuth -= dx * o.sensitivity
	o.elevation += dy * o.sensitivity
	o.clamp()
	o.updatePosition()
}

// Zoom moves the camera towards the target for positive notches.
func (o *Orbit) Zoom(notches float32) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.radius -= notches * o.zoomStep
	o.clamp()
	o.updatePosition()
}

// Position returns the current camera position.
func (o *Orbit) Position() [3]float32 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.position
}

// Target returns the orbit centre.
func (o *Orbit) Target() [3]float32 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.target
}

// Radius returns the current distance to the target.
func (o *Orbit) Radius() float32 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.radius
}

// Elevation returns the current angle above the XZ plane in radians.
func (o *Orbit) Elevation() float32 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.elevation
}
