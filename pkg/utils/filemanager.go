// =============================================================================
// Compute Sales - File Manager Utility
// =============================================================================
//
// This module provides the small set of file operations the reporter needs:
//   - Directory management for output paths
//   - Overwriting report files
//   - Existence checks
//
// OVERWRITE STRATEGY:
//   Report files are truncated and rewritten in place. There is no temporary
//   file, rename or backup copy.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureParentDir creates the directory that will contain path.
//
// PARAMETERS:
//   - path: A file path. Its parent directory is created if missing.
//
// RETURNS:
//   - An error if the directory cannot be created.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// =============================================================================
// FILE WRITING
// =============================================================================

// WriteFile overwrites path with data, creating parent directories first.
func WriteFile(path string, data []byte) error {
	if err := EnsureParentDir(path); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return file.Close()
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
