package layout

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is wrapped by every Validate error.
var ErrInvalidParameter = errors.New("invalid parameter")

func invalid(field string, v any, want string) error {
	return fmt.Errorf("%w: %s = %v, want %s", ErrInvalidParameter, field, v, want)
}

// Validate reports the first parameter that would make GeneratePit degenerate.
func (p PitParams) Validate() error {
	if p.Size <= 0 {
		return invalid("pit.size", p.Size, "> 0")
	}
	if p.Depth <= 0 {
		return invalid("pit.depth", p.Depth, "> 0")
	}
	if p.OuterSize <= p.Size {
		return invalid("pit.outer_size", p.OuterSize, fmt.Sprintf("> pit.size (%v)", p.Size))
	}
	return nil
}

// Validate reports the first parameter that would make GenerateCubeGrid degenerate.
func (p CubeParams) Validate() error {
	if p.Count < 1 {
		return invalid("cubes.count", p.Count, ">= 1")
	}
	if p.Spacing <= 0 {
		return invalid("cubes.spacing", p.Spacing, "> 0")
	}
	if p.CubeSize <= 0 {
		return invalid("cubes.cube_size", p.CubeSize, "> 0")
	}
	if p.PitDepth < 0 {
		return invalid("cubes.pit_depth", p.PitDepth, ">= 0")
	}
	return nil
}

// Validate reports the first parameter that would make GenerateCross degenerate.
func (p CrossParams) Validate() error {
	if p.Arm < 0 {
		return invalid("cross.arm", p.Arm, ">= 0")
	}
	if p.BlockSize <= 0 {
		return invalid("cross.block_size", p.BlockSize, "> 0")
	}
	if p.Gap < 0 {
		return invalid("cross.gap", p.Gap, ">= 0")
	}
	if p.Height <= 0 {
		return invalid("cross.height", p.Height, "> 0")
	}
	return nil
}
