package utils

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// DefaultEnvFile is the override file read from the working directory
const DefaultEnvFile = ".env"

// ParseOverrideFile reads a dotenv-style file into a key/value map.
// A missing file is not an error and yields an empty map.
// The process environment is never modified.
func ParseOverrideFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("open override file %s: %w", path, err)
	}
	defer f.Close()

	values, err := ParseOverrides(f)
	if err != nil {
		return nil, fmt.Errorf("read override file %s: %w", path, err)
	}
	return values, nil
}

// ParseOverrides parses KEY=VALUE lines.
// Blank lines, '#' comments and lines without '=' are skipped.
// Later lines win over earlier ones for the same key.
func ParseOverrides(r io.Reader) (map[string]string, error) {
	values := make(map[string]string)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		key, value, ok := parseOverrideLine(scanner.Text())
		if !ok {
			continue
		}
		values[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return values, nil
}

func parseOverrideLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}

	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}

	// key and value keep any whitespace around '='
	if key == "" {
		return "", "", false
	}

	// one layer of double quotes
	value = strings.TrimPrefix(value, `"`)
	value = strings.TrimSuffix(value, `"`)

	return key, value, true
}

// MergeEnvironment lays override values on top of an os.Environ style list.
// Override values win over ambient ones.
func MergeEnvironment(environ []string, overrides map[string]string) map[string]string {
	merged := make(map[string]string, len(environ)+len(overrides))
	for _, kv := range environ {
		key, value, found := strings.Cut(kv, "=")
		if !found || key == "" {
			continue
		}
		merged[key] = value
	}
	for key, value := range overrides {
		merged[key] = value
	}
	return merged
}
