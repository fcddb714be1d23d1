package app

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// expandPath expands and normalizes a seed directory, handling:
// - ~ for home directory
// - Relative paths, resolved against the working directory
// - Windows drive letters and UNC paths
func expandPath(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			if input == "~" {
				return home
			}
			if strings.HasPrefix(input, "~/") || strings.HasPrefix(input, "~\\") {
				return filepath.Clean(filepath.Join(home, input[2:]))
			}
		}
	}

	if isAbsolutePath(input) {
		return filepath.Clean(input)
	}

	if abs, err := filepath.Abs(input); err == nil {
		return abs
	}
	return filepath.Clean(input)
}

// isAbsolutePath checks if a path is absolute, handling both Unix and Windows paths
func isAbsolutePath(path string) bool {
	if len(path) == 0 {
		return false
	}

	if path[0] == '/' {
		return true
	}

	if runtime.GOOS == "windows" {
		// Drive letter paths: C:\, D:\, C:/, etc.
		if len(path) >= 2 && isLetter(path[0]) && path[1] == ':' {
			return true
		}
		// UNC paths: \\server\share
		if len(path) >= 2 && path[0] == '\\' && path[1] == '\\' {
			return true
		}
	}

	return false
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// validatePath checks if a path exists and returns info about it
func validatePath(path string) (exists bool, isDir bool) {
	info, err := os.Stat(path)
	if err != nil {
		return false, false
	}
	return true, info.IsDir()
}
