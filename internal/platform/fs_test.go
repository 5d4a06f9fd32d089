package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestExists(t *testing.T) {
	tmp := t.TempDir()

	file := filepath.Join(tmp, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"directory", tmp, true},
		{"regular file", file, true},
		{"missing", filepath.Join(tmp, "missing"), false},
		{"missing parent", filepath.Join(tmp, "missing", "child"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Exists(tt.path)
			if err != nil {
				t.Fatalf("Exists(%q) error: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("Exists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestExistsDanglingSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require developer mode on Windows")
	}
	tmp := t.TempDir()
	link := filepath.Join(tmp, "link")
	if err := os.Symlink(filepath.Join(tmp, "nowhere"), link); err != nil {
		t.Fatal(err)
	}

	got, err := Exists(link)
	if err != nil {
		t.Fatalf("Exists error: %v", err)
	}
	if !got {
		t.Error("dangling symlink should count as existing")
	}
}

func TestMkdirIsNotRecursive(t *testing.T) {
	tmp := t.TempDir()

	if err := Mkdir(filepath.Join(tmp, "a", "b"), DirPerm); err == nil {
		t.Fatal("expected error when parent is missing")
	}

	dir := filepath.Join(tmp, "a")
	if err := Mkdir(dir, DirPerm); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", dir)
	}
}

func TestWriteFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "out.txt")

	if err := WriteFile(path, []byte("hello"), FilePerm); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello" {
		t.Errorf("content = %q, want %q", data, "hello")
	}
}

func TestLineEnding(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"windows", "\r\n"},
		{"linux", "\n"},
		{"darwin", "\n"},
	}
	for _, tt := range tests {
		if got := lineEnding(tt.goos); got != tt.want {
			t.Errorf("lineEnding(%q) = %q, want %q", tt.goos, got, tt.want)
		}
	}
}
