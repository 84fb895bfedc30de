package layout

// CubeParams describes a count x count grid of cubes standing on the pit floor.
type CubeParams struct {
	Count    int     `yaml:"count"`
	Spacing  float32 `yaml:"spacing"`
	CubeSize float32 `yaml:"cube_size"`
	PitDepth float32 `yaml:"pit_depth"`
}

// DefaultCubeParams is the reference 3x3 grid of unit cubes on a floor 1 below ground.
func DefaultCubeParams() CubeParams {
	return CubeParams{Count: 3, Spacing: 1.2, CubeSize: 1, PitDepth: 1}
}

// GenerateCubeGrid places count*count cubes of side cubeSize, spacing apart and centred on
// the origin in XZ, with their bottoms on a floor pitDepth below ground.
// Order is row-major: outer index along X, inner along Z. count < 1 yields no cubes.
func GenerateCubeGrid(count int, spacing, cubeSize, pitDepth float32) []Primitive {
	if count < 1 {
		return []Primitive{}
	}
	offset := float32(count-1) / 2
	y := -pitDepth + cubeSize/2

	prims := make([]Primitive, 0, count*count)
	for ix := 0; ix < count; ix++ {
		x := (float32(ix) - offset) * spacing
		for iz := 0; iz < count; iz++ {
			z := (float32(iz) - offset) * spacing
			prims = append(prims, Primitive{
				Kind:     Box,
				Part:     PartCube,
				Size:     [3]float32{cubeSize, cubeSize, cubeSize},
				Position: [3]float32{x, y, z},
			})
		}
	}
	return prims
}

// Generate is GenerateCubeGrid over the params struct.
func (p CubeParams) Generate() []Primitive {
	return GenerateCubeGrid(p.Count, p.Spacing, p.CubeSize, p.PitDepth)
}
