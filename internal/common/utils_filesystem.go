package common

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// ToAbsolutePath converts a relative file path into an absolute one,
// and expands '~' to the current user's home directory.
func ToAbsolutePath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		usr, err := user.Current()
		if err != nil {
			return "", fmt.Errorf("failed to get current user: %w", err)
		}
		path = filepath.Join(usr.HomeDir, strings.TrimPrefix(path, "~"))
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to convert path to absolute: %w", err)
	}
	return absPath, nil
}

// EnsureDirectory resolves `path` and creates it (including parents) if
// it is missing, returning the absolute path. A non-directory at `path`
// is an error
func EnsureDirectory(path string) (string, error) {
	absPath, err := ToAbsolutePath(path)
	if err != nil {
		return "", err
	}
	fileInfo, err := os.Stat(absPath)
	if err == nil {
		if !fileInfo.IsDir() {
			return "", fmt.Errorf("path[%s] exists but is not a directory", absPath)
		}
		return absPath, nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to stat path[%s]: %w", absPath, err)
	}
	if err := os.MkdirAll(absPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory[%s]: %w", absPath, err)
	}
	return absPath, nil
}
