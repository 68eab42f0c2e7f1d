// Package container provides dependency injection for the application.
package container

import (
	"context"
	"log/slog"

	apperrors "github.com/reglet-dev/launchkit/internal/application/errors"
	"github.com/reglet-dev/launchkit/internal/application/ports"
	"github.com/reglet-dev/launchkit/internal/application/services"
	"github.com/reglet-dev/launchkit/internal/infrastructure/adapters"
	"github.com/reglet-dev/launchkit/internal/infrastructure/config"
	"github.com/reglet-dev/launchkit/internal/infrastructure/filesystem"
	"github.com/reglet-dev/launchkit/internal/infrastructure/output"
	"github.com/reglet-dev/launchkit/internal/infrastructure/permissions"
	"github.com/reglet-dev/launchkit/internal/infrastructure/prompt"
	"github.com/reglet-dev/launchkit/internal/infrastructure/system"
)

// Container holds all application dependencies.
type Container struct {
	manifestService  *services.ManifestService
	installService   *services.InstallService
	catalogService   *services.CatalogService
	formatterFactory ports.OutputFormatterFactory
	prompter         *prompt.TerminalPrompter
	systemCfg        *system.Config
	logger           *slog.Logger
}

// Options configure the container. Non-zero fields override the
// corresponding system config settings.
type Options struct {
	Logger            *slog.Logger
	SystemConfigPath  string
	ApplicationsDir   string
	PermissionMode    string
	StrictPermissions bool
}

// New creates a new dependency injection container.
func New(opts Options) (*Container, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	systemCfg, err := adapters.NewSystemConfigAdapter().LoadConfig(context.TODO(), opts.SystemConfigPath)
	if err != nil {
		return nil, apperrors.NewConfigurationError("system config", "failed to load", err)
	}
	applyOverrides(systemCfg, opts)

	permissionSetter, err := permissions.New(systemCfg.Install.PermissionMode)
	if err != nil {
		return nil, apperrors.NewConfigurationError("install.permission_mode", "invalid value", err)
	}

	dirResolver := filesystem.NewApplicationsDirResolver(systemCfg.Install.ApplicationsDir)

	opts.Logger.Debug("container initialized",
		"applications_dir", systemCfg.Install.ApplicationsDir,
		"permission_mode", systemCfg.Install.PermissionMode,
		"strict_permissions", systemCfg.Install.StrictPermissions,
	)

	return &Container{
		manifestService: services.NewManifestService(config.NewManifestLoader(), opts.Logger),
		installService: services.NewInstallService(
			dirResolver,
			permissionSetter,
			systemCfg.Install.StrictPermissions,
			opts.Logger,
		),
		catalogService:   services.NewCatalogService(),
		formatterFactory: output.NewFormatterFactory(),
		prompter:         prompt.NewTerminalPrompter(),
		systemCfg:        systemCfg,
		logger:           opts.Logger,
	}, nil
}

func applyOverrides(cfg *system.Config, opts Options) {
	if opts.ApplicationsDir != "" {
		cfg.Install.ApplicationsDir = opts.ApplicationsDir
	}
	if opts.PermissionMode != "" {
		cfg.Install.PermissionMode = opts.PermissionMode
	}
	if opts.StrictPermissions {
		cfg.Install.StrictPermissions = true
	}
}

// ManifestService returns the manifest service.
func (c *Container) ManifestService() *services.ManifestService {
	return c.manifestService
}

// InstallService returns the install service.
func (c *Container) InstallService() *services.InstallService {
	return c.installService
}

// CatalogService returns the catalog service.
func (c *Container) CatalogService() *services.CatalogService {
	return c.catalogService
}

// FormatterFactory returns the output formatter factory.
func (c *Container) FormatterFactory() ports.OutputFormatterFactory {
	return c.formatterFactory
}

// Prompter returns the terminal prompter.
func (c *Container) Prompter() *prompt.TerminalPrompter {
	return c.prompter
}

// SystemConfig returns the system configuration.
func (c *Container) SystemConfig() *system.Config {
	return c.systemCfg
}

// Logger returns the configured logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}
