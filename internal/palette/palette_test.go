package palette

import (
	"errors"
	"image/color"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#eee", color.RGBA{0xee, 0xee, 0xee, 0xff}},
		{"#111", color.RGBA{0x11, 0x11, 0x11, 0xff}},
		{"#fafafa", color.RGBA{0xfa, 0xfa, 0xfa, 0xff}},
		{"#A1A1AA", color.RGBA{0xa1, 0xa1, 0xaa, 0xff}},
		{"#a1a1aacc", color.RGBA{0xa1, 0xa1, 0xaa, 0xcc}},
		{"#f008", color.RGBA{0xff, 0x00, 0x00, 0x88}},
		{"  #86efac ", color.RGBA{0x86, 0xef, 0xac, 0xff}},
		{"white", color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{"DarkGray", color.RGBA{0xa9, 0xa9, 0xa9, 0xff}},
		{"transparent", color.RGBA{}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#ggg", "notacolour", "#1234567"} {
		if _, err := Parse(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("Parse(%q) err = %v, want ErrInvalidColor", in, err)
		}
	}
}

func TestNormalized(t *testing.T) {
	got := Normalized(color.RGBA{255, 0, 51, 255})
	want := [4]float32{1, 0, 0.2, 1}
	if got != want {
		t.Fatalf("Normalized = %v, want %v", got, want)
	}
}
