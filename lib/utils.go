package lib

import (
	"os"
	"path/filepath"
	"strings"
)

// IsReadableDirectory checks whether a readable directory exists at given path
func IsReadableDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsReadableFile checks whether argument is a readable file
func IsReadableFile(path string) bool {
	fileInfo, statErr := os.Stat(path)
	if statErr != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}

// ExpandUser replaces a leading "~" with the current user's home directory
func ExpandUser(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// ExcludePatterns parses the contents of an exclude file. As in rsync's --exclude-from, lines
// starting with ';' or '#' are comments, and every pattern is relative (leading '/' is dropped).
func ExcludePatterns(contents string) []string {
	contents = strings.ReplaceAll(contents, "\r\n", "\n") // Windows
	patterns := make([]string, 0, 8)
	for _, line := range strings.Split(contents, "\n") {
		if strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#") {
			continue
		}
		pattern := strings.TrimLeft(strings.TrimRight(line, " \t\r\n"), "/")
		if pattern == "" {
			continue
		}
		patterns = append(patterns, pattern)
	}
	return patterns
}
