package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	set "github.com/deckarep/golang-set/v2"
	"github.com/m-manu/sftpclone/lib"
)

// LoadExclusions reads an exclude file and expands its patterns against the local root.
// An empty path yields an empty set.
func LoadExclusions(excludeFilePath string, localRoot string) (set.Set[string], error) {
	if excludeFilePath == "" {
		return set.NewThreadUnsafeSet[string](), nil
	}
	contents, err := os.ReadFile(excludeFilePath)
	if err != nil {
		return nil, fmt.Errorf("couldn't read exclude file %q: %w", excludeFilePath, err)
	}
	return ExpandExclusions(lib.ExcludePatterns(string(contents)), localRoot)
}

// ExpandExclusions turns glob patterns relative to localRoot into the set of absolute local
// paths they currently match
func ExpandExclusions(patterns []string, localRoot string) (set.Set[string], error) {
	exclusions := set.NewThreadUnsafeSetWithSize[string](len(patterns))
	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(localRoot, pattern))
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		for _, match := range matches {
			if !hiddenByWildcard(localRoot, pattern, match) {
				exclusions.Add(match)
			}
		}
	}
	return exclusions, nil
}

// hiddenByWildcard reports whether match reaches a dot-file through a pattern component that
// doesn't start with "." itself. Such matches are skipped, as shell globbing does.
func hiddenByWildcard(localRoot, pattern, match string) bool {
	relativeMatch, err := filepath.Rel(localRoot, match)
	if err != nil {
		return false
	}
	patternParts := strings.Split(filepath.Clean(pattern), string(filepath.Separator))
	matchParts := strings.Split(relativeMatch, string(filepath.Separator))
	if len(patternParts) != len(matchParts) {
		return false
	}
	for i, part := range matchParts {
		if strings.HasPrefix(part, ".") && !strings.HasPrefix(patternParts[i], ".") {
			return true
		}
	}
	return false
}
