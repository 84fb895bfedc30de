// Package palette parses the colour strings used in config files and stylesheets.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrInvalidColor is wrapped by every Parse error.
var ErrInvalidColor = errors.New("invalid colour")

// Parse accepts #RGB, #RGBA, #RRGGBB, #RRGGBBAA and CSS colour names ("white", "darkgray").
// Names are case-insensitive. "transparent" is fully transparent black.
func Parse(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, fmt.Errorf("%w: empty", ErrInvalidColor)
	}
	if s[0] == '#' {
		return parseHex(s)
	}
	name := strings.ToLower(s)
	if name == "transparent" {
		return color.RGBA{}, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("%w: unknown name %q", ErrInvalidColor, s)
}

// MustParse is Parse for literals known to be valid; it panics otherwise.
func MustParse(s string) color.RGBA {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(s string) (color.RGBA, error) {
	hex := s[1:]
	digits := make([]uint8, len(hex))
	for i := 0; i < len(hex); i++ {
		v, ok := hexDigit(hex[i])
		if !ok {
			return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		digits[i] = v
	}
	c := color.RGBA{A: 255}
	switch len(digits) {
	case 3, 4:
		c.R, c.G, c.B = digits[0]*17, digits[1]*17, digits[2]*17
		if len(digits) == 4 {
			c.A = digits[3] * 17
		}
	case 6, 8:
		c.R = digits[0]<<4 | digits[1]
		c.G = digits[2]<<4 | digits[3]
		c.B = digits[4]<<4 | digits[5]
		if len(digits) == 8 {
			c.A = digits[6]<<4 | digits[7]
		}
	default:
		return color.RGBA{}, fmt.Errorf("%w: %q has %d hex digits", ErrInvalidColor, s, len(digits))
	}
	return c, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Normalized returns the colour as four floats in [0,1], the form shader uniforms take.
func Normalized(c color.RGBA) [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}
