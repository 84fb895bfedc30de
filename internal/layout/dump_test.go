package layout

import (
	"bytes"
	"strings"
	"testing"
)

func TestDumpPit(t *testing.T) {
	var buf bytes.Buffer
	if err := Dump(&buf, GeneratePit(10, 1, 100)); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	out := buf.String()
	if n := strings.Count(out, "- kind:"); n != 13 {
		t.Fatalf("dump has %d entries, want 13:\n%s", n, out)
	}
	for _, want := range []string{"kind: plane", "part: floor", "name: floor", "part: wall", "size: [10, 10, 0]"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestDumpEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Dump(&buf, []Primitive{}); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Fatalf("empty dump = %q, want []", got)
	}
}

func TestDumpCubeKind(t *testing.T) {
	var buf bytes.Buffer
	if err := Dump(&buf, GenerateCubeGrid(1, 1.2, 1, 1)); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if !strings.Contains(buf.String(), "kind: box") || !strings.Contains(buf.String(), "part: cube") {
		t.Fatalf("cube dump:\n%s", buf.String())
	}
}
