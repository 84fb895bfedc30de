package layout

// Kind is the shape of a placed primitive.
type Kind int

const (
	// Plane is a flat rectangle. Unrotated it lies in the XY plane facing +Z,
	// Size[0] along X and Size[1] along Y; Size[2] is always 0.
	Plane Kind = iota
	// Box is an axis-aligned rectangular prism centred on its position.
	Box
)

// String returns "plane" or "box"; these are also the names used in dumps.
func (k Kind) String() string {
	switch k {
	case Plane:
		return "plane"
	case Box:
		return "box"
	default:
		return "unknown"
	}
}

// MarshalYAML writes the kind by name.
func (k Kind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// Part tags the surface role of a primitive so the renderer can choose a material.
// It carries no identity; two primitives with the same Part are interchangeable.
type Part int

const (
	PartGround Part = iota
	PartFloor
	PartWall
	PartCube
	PartBlock
)

func (p Part) String() string {
	switch p {
	case PartGround:
		return "ground"
	case PartFloor:
		return "floor"
	case PartWall:
		return "wall"
	case PartCube:
		return "cube"
	case PartBlock:
		return "block"
	default:
		return "unknown"
	}
}

func (p Part) MarshalYAML() (any, error) {
	return p.String(), nil
}

// Primitive is one placed plane or box. Rotation is an Euler XYZ triple in radians.
// Values are produced fresh by the generators and are never shared between calls.
type Primitive struct {
	Kind     Kind       `yaml:"kind"`
	Part     Part       `yaml:"part"`
	Name     string     `yaml:"name"`
	Size     [3]float32 `yaml:"size,flow"`
	Position [3]float32 `yaml:"position,flow"`
	Rotation [3]float32 `yaml:"rotation,flow"`
}

// Area returns width*height for planes and 0 for boxes.
func (p Primitive) Area() float32 {
	if p.Kind != Plane {
		return 0
	}
	return p.Size[0] * p.Size[1]
}

// Count returns how many primitives of the given part are in prims.
func Count(prims []Primitive, part Part) int {
	n := 0
	for _, p := range prims {
		if p.Part == part {
			n++
		}
	}
	return n
}
