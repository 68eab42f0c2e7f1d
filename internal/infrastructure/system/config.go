// Package system provides infrastructure for system-level configuration.
// This covers loading the user's config file (~/.launchkit/config.yaml).
package system

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config represents the global configuration file (~/.launchkit/config.yaml).
// It is separate from the launcher manifests the tool is run against.
type Config struct {
	Install InstallConfig `yaml:"install"`
	Render  RenderConfig  `yaml:"render"`
}

// InstallConfig controls where and how launchers are installed.
type InstallConfig struct {
	// ApplicationsDir overrides ~/.local/share/applications.
	ApplicationsDir string `yaml:"applications_dir"`

	// PermissionMode selects how the execute bits are set:
	// "command" runs chmod a+x, "mode" calls chmod(2) directly.
	PermissionMode string `yaml:"permission_mode"`

	// StrictPermissions turns a failed permission change into an error.
	StrictPermissions bool `yaml:"strict_permissions"`
}

// RenderConfig controls the preview printed by "launchkit render".
type RenderConfig struct {
	// Color is one of "auto", "always" or "never".
	Color string `yaml:"color"`

	// Style names a chroma style.
	Style string `yaml:"style"`
}

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "catppuccin-mocha"

// ConfigLoader loads system configuration from disk.
type ConfigLoader struct{}

// NewConfigLoader creates a new system config loader.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{}
}

// DefaultConfig returns a Config with defaults for all fields.
// This is used when no system config file exists.
func DefaultConfig() *Config {
	return &Config{
		Install: InstallConfig{
			PermissionMode: "command",
		},
		Render: RenderConfig{
			Color: ColorAuto,
			Style: DefaultStyle,
		},
	}
}

// Load loads the system configuration from the specified path.
// If the file does not exist, returns DefaultConfig().
// Fields missing from the file keep their default values.
func (l *ConfigLoader) Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	//nolint:gosec // G304: path is user-provided config file, validated to exist above
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read system config: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse system config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid system config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Install.PermissionMode {
	case "", "command", "mode":
	default:
		return fmt.Errorf("install.permission_mode: unknown mode %q", c.Install.PermissionMode)
	}
	switch c.Render.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("render.color: unknown mode %q", c.Render.Color)
	}
	return nil
}
