// Package ports defines interfaces for infrastructure dependencies.
// These are the "ports" in hexagonal architecture - abstractions that
// the application layer depends on but doesn't implement.
package ports

import (
	"context"
	"io"

	"github.com/reglet-dev/launchkit/internal/application/dto"
	"github.com/reglet-dev/launchkit/internal/infrastructure/system"
)

// PermissionSetter marks an installed launcher file executable for
// owner, group and others.
type PermissionSetter interface {
	MakeExecutable(ctx context.Context, path string) error
}

// DirectoryResolver resolves the per-user directory launchers are installed into.
type DirectoryResolver interface {
	ApplicationsDir(ctx context.Context) (string, error)
}

// ManifestLoader loads launcher manifests from storage.
type ManifestLoader interface {
	LoadManifest(path string) (*dto.Manifest, error)
}

// SystemConfigProvider loads system configuration.
type SystemConfigProvider interface {
	LoadConfig(ctx context.Context, path string) (*system.Config, error)
}

// OutputFormatter writes registry listings in a specific format.
type OutputFormatter interface {
	FormatCategories(categories []dto.CategoryInfo) error
	FormatEnvironments(environments []dto.EnvironmentInfo) error
}

// FormatterOptions contains options for creating formatters.
type FormatterOptions struct {
	Indent bool // For JSON
	Color  bool // For table
}

// OutputFormatterFactory creates output formatters.
type OutputFormatterFactory interface {
	Create(format string, writer io.Writer, options FormatterOptions) (OutputFormatter, error)
	SupportedFormats() []string
}
