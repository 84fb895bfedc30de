package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is used when New is given an empty path.
const DefaultPath = "logs/diorama.txt"

const stampLayout = "2006-01-02 15:04:05"

// Logger keeps every logged line in memory and appends it to a file on disk.
// An optional echo writer (usually stderr) receives the same lines.
type Logger struct {
	mu    sync.Mutex
	path  string
	echo  io.Writer
	lines []string
	now   func() time.Time
}

// New returns a Logger writing to path and creates the parent directory.
// File errors are not fatal: the logger keeps working in memory.
func New(path string) *Logger {
	if path == "" {
		path = DefaultPath
	}
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	return &Logger{path: path, lines: make([]string, 0), now: time.Now}
}

// SetEcho mirrors every line to w as well. nil turns echoing off.
func (l *Logger) SetEcho(w io.Writer) {
	l.mu.Lock()
	l.echo = w
	l.mu.Unlock()
}

// Log records line prefixed with a [timestamp].
func (l *Logger) Log(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	stamped := "[" + l.now().Format(stampLayout) + "] " + line
	l.lines = append(l.lines, stamped)
	if l.echo != nil {
		_, _ = io.WriteString(l.echo, stamped+"\n")
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats according to fmt.Sprintf and logs the result.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Path returns the log file path.
func (l *Logger) Path() string {
	return l.path
}
