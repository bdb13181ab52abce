package server

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveRoot returns the directory containing the running executable.
//
// Binaries built by `go run` live under the OS temp directory; in that case
// the working directory is served instead.
func ResolveRoot() (string, error) {
	return resolveRoot(os.Executable, os.Getwd, os.TempDir())
}

func resolveRoot(executable, getwd func() (string, error), tempDir string) (string, error) {
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	dir := filepath.Dir(exe)
	if isWithin(dir, tempDir) {
		if dir, err = getwd(); err != nil {
			return "", fmt.Errorf("failed to read working directory: %w", err)
		}
	}

	if err := CheckRoot(dir); err != nil {
		return "", err
	}
	return dir, nil
}

// CheckRoot verifies that dir exists, is a directory and can be listed.
func CheckRoot(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("root directory unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root %q is not a directory", dir)
	}
	f, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("root directory unreadable: %w", err)
	}
	return f.Close()
}

func isWithin(dir, parent string) bool {
	if parent == "" {
		return false
	}
	if resolved, err := filepath.EvalSymlinks(parent); err == nil {
		parent = resolved
	}
	rel, err := filepath.Rel(parent, dir)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
