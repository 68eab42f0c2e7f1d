// Package filesystem resolves the on-disk locations launchers are installed to.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// UserApplicationsSubdir is the per-user launcher directory relative to $HOME.
const UserApplicationsSubdir = ".local/share/applications"

// ApplicationsDirResolver implements ports.DirectoryResolver.
type ApplicationsDirResolver struct {
	homeDir  func() (string, error)
	override string
}

// NewApplicationsDirResolver creates a resolver. A non-empty override is
// returned verbatim; otherwise the directory is derived from the user's home.
func NewApplicationsDirResolver(override string) *ApplicationsDirResolver {
	return &ApplicationsDirResolver{
		override: override,
		homeDir:  os.UserHomeDir,
	}
}

// ApplicationsDir returns <home>/.local/share/applications, or the override.
func (r *ApplicationsDirResolver) ApplicationsDir(_ context.Context) (string, error) {
	if r.override != "" {
		return expandHome(r.override, r.homeDir)
	}

	home, err := r.homeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}
	return filepath.Join(home, UserApplicationsSubdir), nil
}

// expandHome replaces a leading "~/" with the home directory.
func expandHome(path string, homeDir func() (string, error)) (string, error) {
	if path != "~" && !hasHomePrefix(path) {
		return filepath.Clean(path), nil
	}
	home, err := homeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand %q: %w", path, err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

func hasHomePrefix(path string) bool {
	return len(path) >= 2 && path[0] == '~' && path[1] == '/'
}
