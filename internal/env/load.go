package env

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ConfigVar names the variable that overrides the default config path.
const ConfigVar = "DIORAMA_CONFIG"

// Parse reads KEY=VALUE lines. Blank lines, # comments and lines without a key are
// skipped; an optional "export " prefix and matching surrounding quotes are removed.
func Parse(r io.Reader) (map[string]string, error) {
	vars := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		key, value, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			continue
		}
		value = strings.TrimSpace(value)
		if n := len(value); n >= 2 && (value[0] == '"' || value[0] == '\'') && value[n-1] == value[0] {
			value = value[1 : n-1]
		}
		vars[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("env: %w", err)
	}
	return vars, nil
}

// Load reads path (e.g. ".env") and sets every variable not already present in the
// process environment. A missing file is not an error. Returns the keys it set.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("env: %w", err)
	}
	defer f.Close()
	vars, err := Parse(f)
	if err != nil {
		return nil, err
	}
	var set []string
	for k, v := range vars {
		if _, exists := os.LookupEnv(k); exists {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return set, fmt.Errorf("env: %w", err)
		}
		set = append(set, k)
	}
	return set, nil
}

// Or returns the value of key, or fallback when the variable is unset or empty.
func Or(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
