// Package projectpath locates the project root so that secrets, configuration
// files, and log folders can all be resolved relative to one directory,
// regardless of where inside the project a binary is started.
package projectpath

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrRootNotFound is returned when no ancestor directory carries a root marker.
var ErrRootNotFound = errors.New("unable to locate project root")

// rootMarkers identify a directory as the project root. Checked in order.
var rootMarkers = []string{"go.mod", ".env", ".git"}

// Find walks up from start until a directory containing one of the root
// markers is found and returns its absolute path.
func Find(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}

	for {
		for _, marker := range rootMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%w (searched upwards from %s)", ErrRootNotFound, start)
}

// FindFromWd finds the project root starting at the current working directory.
func FindFromWd() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("determine working directory: %w", err)
	}
	return Find(wd)
}
