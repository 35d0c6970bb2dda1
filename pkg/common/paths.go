package common

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Singleton for the resolved default puzzles directory.
var (
	resolvedPuzzlesDir string
	pathsOnce          sync.Once
	pathsError         error
)

// RepoMarkerFiles are files that indicate the root of this module's
// repository, used to find the bundled testdata/puzzles directory
// regardless of the directory cmd/batch is invoked from.
var RepoMarkerFiles = []string{"go.mod"}

// initPaths resolves the default puzzles directory once at startup.
// It looks for the repo root by checking:
// 1. Current working directory
// 2. Parent directories (up to 5 levels)
// Returns error if repo root cannot be found.
func initPaths() {
	pathsOnce.Do(func() {
		repoRoot, err := findRepoRoot()
		if err != nil {
			pathsError = err
			return
		}

		resolvedPuzzlesDir = filepath.Join(repoRoot, "testdata", "puzzles")
		Verbose("Resolved repo root: %s", repoRoot)
		Verbose("Default puzzles directory: %s", resolvedPuzzlesDir)
	})
}

// findRepoRoot searches for the repository root by looking for marker files
// starting from the current directory and walking up the directory tree.
func findRepoRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	dir := cwd
	for i := 0; i < 6; i++ {
		if isRepoRoot(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("could not find module root (looked for %v starting from %s)", RepoMarkerFiles, cwd)
}

// isRepoRoot checks if a directory contains a repo marker file alongside a
// testdata directory.
func isRepoRoot(dir string) bool {
	for _, marker := range RepoMarkerFiles {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			if _, err := os.Stat(filepath.Join(dir, "testdata")); err == nil {
				return true
			}
		}
	}
	return false
}

// PuzzlesDir returns explicit, made absolute, if it is non-empty; otherwise
// it returns the module's default testdata/puzzles directory.
func PuzzlesDir(explicit string) (string, error) {
	if explicit != "" {
		return filepath.Abs(explicit)
	}

	initPaths()
	if pathsError != nil {
		return "", pathsError
	}
	return resolvedPuzzlesDir, nil
}

// ResetPaths resets the cached puzzles directory (useful for testing).
func ResetPaths() {
	resolvedPuzzlesDir = ""
	pathsOnce = sync.Once{}
	pathsError = nil
}
