package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/springpress/create-springpress-app/internal/platform"
)

// Encode renders p as JSON with two-space indentation followed by the
// platform line terminator.
func Encode(p *Package) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}

	out := bytes.TrimRight(buf.Bytes(), "\n")
	return append(out, platform.EOL...), nil
}

// Parse decodes a manifest document.
func Parse(data []byte) (*Package, error) {
	var p Package
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &p, nil
}

// ParseFile reads and decodes the manifest at path.
func ParseFile(path string) (*Package, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
