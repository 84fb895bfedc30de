package layout

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Dump writes prims to w as a YAML sequence, one mapping per primitive.
func Dump(w io.Writer, prims []Primitive) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(prims); err != nil {
		return fmt.Errorf("layout: dump: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("layout: dump: %w", err)
	}
	return nil
}
