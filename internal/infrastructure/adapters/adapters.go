// Package adapters provides infrastructure adapters that implement application ports.
// These adapters wrap existing infrastructure components to satisfy port interfaces.
package adapters

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/reglet-dev/launchkit/internal/application/ports"
	"github.com/reglet-dev/launchkit/internal/infrastructure/filesystem"
	"github.com/reglet-dev/launchkit/internal/infrastructure/system"
)

// Ensure adapters implement ports at compile time
var (
	_ ports.SystemConfigProvider = (*SystemConfigAdapter)(nil)
	_ ports.DirectoryResolver    = (*filesystem.ApplicationsDirResolver)(nil)
)

// ConfigDirName is the directory under $HOME holding config.yaml.
const ConfigDirName = ".launchkit"

// DefaultConfigPath returns ~/.launchkit/config.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ConfigDirName, "config.yaml"), nil
}

// SystemConfigAdapter adapts system config loader to port interface.
type SystemConfigAdapter struct {
	loader *system.ConfigLoader
}

// NewSystemConfigAdapter creates a new system config adapter.
func NewSystemConfigAdapter() *SystemConfigAdapter {
	return &SystemConfigAdapter{
		loader: system.NewConfigLoader(),
	}
}

// LoadConfig loads system configuration from path, or from
// DefaultConfigPath when path is empty.
func (a *SystemConfigAdapter) LoadConfig(_ context.Context, path string) (*system.Config, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	return a.loader.Load(path)
}
