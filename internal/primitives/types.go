package primitives

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Material is the flat colour and roughness a primitive is shaded with.
// Roughness 1 is fully matte; lower values add a tighter, brighter highlight.
type Material struct {
	Color     color.RGBA
	Roughness float32
}

// Light is one ambient term plus one directional light, set once per frame.
type Light struct {
	Direction [3]float32 // towards the light, normalised
	Color     [3]float32
	Intensity float32
	Ambient   float32
}

// DirectionalFrom returns a light shining from pos towards the origin.
// intensity is divided by 4, so 3 (bright sun) maps to 0.75 on the shader's 0-1 diffuse scale.
func DirectionalFrom(pos [3]float32, rgb [3]float32, intensity, ambient float32) Light {
	l := math32.Sqrt(pos[0]*pos[0] + pos[1]*pos[1] + pos[2]*pos[2])
	dir := [3]float32{0, 1, 0}
	if l > 0 {
		dir = [3]float32{pos[0] / l, pos[1] / l, pos[2] / l}
	}
	return Light{Direction: dir, Color: rgb, Intensity: intensity / 4, Ambient: ambient}
}

// specular maps roughness to the lit shader's highlight power and strength.
func specular(roughness float32) (power, strength float32) {
	if roughness < 0 {
		roughness = 0
	}
	if roughness > 1 {
		roughness = 1
	}
	gloss := 1 - roughness
	return 8 + 56*gloss, 0.5 * gloss
}
