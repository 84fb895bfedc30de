package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLogWritesMemoryAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "out.txt")
	l := New(path)
	l.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	l.Log("hello")
	l.Logf("primitives=%d", 22)

	lines := l.Lines()
	want := []string{"[2026-01-02 03:04:05] hello", "[2026-01-02 03:04:05] primitives=22"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if got := string(data); got != strings.Join(want, "\n")+"\n" {
		t.Fatalf("file = %q", got)
	}
}

func TestLinesIsACopy(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "out.txt"))
	l.Log("a")
	lines := l.Lines()
	lines[0] = "changed"
	if l.Lines()[0] == "changed" {
		t.Fatal("Lines returned the internal slice")
	}
}

func TestEcho(t *testing.T) {
	var buf bytes.Buffer
	l := New(filepath.Join(t.TempDir(), "out.txt"))
	l.SetEcho(&buf)
	l.Log("mirrored")
	if !strings.HasSuffix(buf.String(), "] mirrored\n") {
		t.Fatalf("echo = %q", buf.String())
	}
	l.SetEcho(nil)
	l.Log("quiet")
	if strings.Contains(buf.String(), "quiet") {
		t.Fatal("echo still on after SetEcho(nil)")
	}
}
