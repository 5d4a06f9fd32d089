package platform

import (
	"errors"
	"io/fs"
	"os"
)

// Permission constants for generated entries.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// Exists reports whether any filesystem entry is present at path. Symlinks
// are not followed, so a dangling link still counts as occupied.
func Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Mkdir creates a single directory. The parent must already exist.
func Mkdir(path string, perm os.FileMode) error {
	return os.Mkdir(path, perm)
}

// WriteFile writes data to path, creating or truncating it.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}
