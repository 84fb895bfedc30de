package layout

// CrossParams describes a plus-shaped platform of blocks resting on the ground.
// Arm is the number of blocks on each side of the centre block.
type CrossParams struct {
	Arm       int     `yaml:"arm"`
	BlockSize float32 `yaml:"block_size"`
	Gap       float32 `yaml:"gap"`
	Height    float32 `yaml:"height"`
}

// DefaultCrossParams is a cross of 9 blocks, 2 per arm.
func DefaultCrossParams() CrossParams {
	return CrossParams{Arm: 2, BlockSize: 1, Gap: 0.1, Height: 0.5}
}

// GenerateCross returns 4*arm+1 blocks of blockSize x height x blockSize with pitch
// blockSize+gap. The centre block comes first, then the X arm from -arm to +arm,
// then the Z arm in the same order; the centre is not repeated.
// A negative arm is treated as zero.
func GenerateCross(arm int, blockSize, gap, height float32) []Primitive {
	if arm < 0 {
		arm = 0
	}
	pitch := blockSize + gap
	y := height / 2 // bottom on Y=0

	prims := make([]Primitive, 0, 4*arm+1)
	block := func(x, z float32) {
		prims = append(prims, Primitive{
			Kind:     Box,
			Part:     PartBlock,
			Size:     [3]float32{blockSize, height, blockSize},
			Position: [3]float32{x, y, z},
		})
	}
	block(0, 0)
	for i := -arm; i <= arm; i++ {
		if i != 0 {
			block(float32(i)*pitch, 0)
		}
	}
	for i := -arm; i <= arm; i++ {
		if i != 0 {
			block(0, float32(i)*pitch)
		}
	}
	return prims
}

// Generate is GenerateCross over the params struct.
func (p CrossParams) Generate() []Primitive {
	return GenerateCross(p.Arm, p.BlockSize, p.Gap, p.Height)
}

// Diorama is the pit followed by its cube grid.
func Diorama(pit PitParams, cubes CubeParams) []Primitive {
	p := pit.Generate()
	c := cubes.Generate()
	out := make([]Primitive, 0, len(p)+len(c))
	out = append(out, p...)
	return append(out, c...)
}
