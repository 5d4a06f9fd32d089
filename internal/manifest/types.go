package manifest

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// FileName is the manifest file written at the project root.
const FileName = "package.json"

// Defaults for newly scaffolded projects.
const (
	DefaultVersion = "1.0.0"
	DefaultPrivate = true
)

// Package is the package.json document. Field order is the on-disk key order.
type Package struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Private bool   `json:"private"`
}

// New returns a manifest for name. The version must be a strict semantic
// version (MAJOR.MINOR.PATCH with optional pre-release and build metadata).
func New(name, version string, private bool) (*Package, error) {
	if name == "" {
		return nil, fmt.Errorf("manifest name must not be empty")
	}
	if err := CheckVersion(version); err != nil {
		return nil, err
	}
	return &Package{
		Name:    name,
		Version: version,
		Private: private,
	}, nil
}

// CheckVersion reports whether version is a strict semantic version.
func CheckVersion(version string) error {
	if _, err := semver.StrictNewVersion(version); err != nil {
		return fmt.Errorf("invalid manifest version %q: %w", version, err)
	}
	return nil
}
