package layout

import "github.com/chewxy/math32"

// PitParams describes a square pit sunk into a square ground plane.
// Size is the inner pit side, Depth how far the floor sits below ground,
// OuterSize the side of the surrounding ground square.
type PitParams struct {
	Size      float32 `yaml:"size"`
	Depth     float32 `yaml:"depth"`
	OuterSize float32 `yaml:"outer_size"`
}

// DefaultPitParams matches the reference diorama: a 10x10 pit, 1 deep, in a 100x100 ground.
func DefaultPitParams() PitParams {
	return PitParams{Size: 10, Depth: 1, OuterSize: 100}
}

// pitPrimitiveCount is 8 ground strips + 1 floor + 4 walls.
const pitPrimitiveCount = 13

// flat rotates an XY plane onto the XZ (ground) plane, facing +Y.
var flat = [3]float32{-math32.Pi / 2, 0, 0}

// GeneratePit returns the ground strips, the recessed floor and the four walls of a pit.
// The 8 ground strips tile the annulus between the pit square and the outer square;
// each strip is (outerSize-size)/2 wide. Order is fixed: bottom, top, left and right
// centre strips, then the bottom-left, top-left, bottom-right and top-right corners,
// then the floor, then the +Z, -Z, -X and +X walls.
// Inputs are not checked; outerSize <= size gives degenerate strips.
func GeneratePit(size, depth, outerSize float32) []Primitive {
	strip := (outerSize - size) / 2
	// centre of a strip measured from the origin along its axis
	c := size/2 + strip/2

	prims := make([]Primitive, 0, pitPrimitiveCount)
	ground := func(name string, w, h, x, z float32) {
		prims = append(prims, Primitive{
			Kind:     Plane,
			Part:     PartGround,
			Name:     name,
			Size:     [3]float32{w, h, 0},
			Position: [3]float32{x, 0, z},
			Rotation: flat,
		})
	}
	ground("bottom centre", size, strip, 0, -c)
	ground("top centre", size, strip, 0, c)
	ground("left centre", strip, size, -c, 0)
	ground("right centre", strip, size, c, 0)
	ground("bottom-left", strip, strip, -c, -c)
	ground("top-left", strip, strip, -c, c)
	ground("bottom-right", strip, strip, c, -c)
	ground("top-right", strip, strip, c, c)

	prims = append(prims, Primitive{
		Kind:     Plane,
		Part:     PartFloor,
		Name:     "floor",
		Size:     [3]float32{size, size, 0},
		Position: [3]float32{0, -depth, 0},
		Rotation: flat,
	})

	half := size / 2
	walls := []struct {
		name string
		rotY float32
		x, z float32
	}{
		{"wall +z", 0, 0, half},
		{"wall -z", math32.Pi, 0, -half},
		{"wall -x", -math32.Pi / 2, -half, 0},
		{"wall +x", math32.Pi / 2, half, 0},
	}
	for _, w := range walls {
		prims = append(prims, Primitive{
			Kind:     Plane,
			Part:     PartWall,
			Name:     w.name,
			Size:     [3]float32{size, depth, 0},
			Position: [3]float32{w.x, -depth / 2, w.z},
			Rotation: [3]float32{0, w.rotY, 0},
		})
	}
	return prims
}

// Generate is GeneratePit over the params struct.
func (p PitParams) Generate() []Primitive {
	return GeneratePit(p.Size, p.Depth, p.OuterSize)
}
