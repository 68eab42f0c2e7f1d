package container

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/reglet-dev/launchkit/internal/application/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNew_Defaults(t *testing.T) {
	c, err := New(Options{SystemConfigPath: filepath.Join(t.TempDir(), "missing.yaml")})

	require.NoError(t, err)
	assert.NotNil(t, c.ManifestService())
	assert.NotNil(t, c.InstallService())
	assert.NotNil(t, c.CatalogService())
	assert.NotNil(t, c.FormatterFactory())
	assert.NotNil(t, c.Prompter())
	assert.NotNil(t, c.Logger())
	assert.Equal(t, "command", c.SystemConfig().Install.PermissionMode)
}

func TestNew_OverridesWinOverConfigFile(t *testing.T) {
	path := writeConfig(t, "install:\n  applications_dir: /from/config\n  permission_mode: command\n")

	c, err := New(Options{
		SystemConfigPath:  path,
		ApplicationsDir:   "/from/flag",
		PermissionMode:    "mode",
		StrictPermissions: true,
	})

	require.NoError(t, err)
	cfg := c.SystemConfig()
	assert.Equal(t, "/from/flag", cfg.Install.ApplicationsDir)
	assert.Equal(t, "mode", cfg.Install.PermissionMode)
	assert.True(t, cfg.Install.StrictPermissions)
}

func TestNew_InvalidConfig(t *testing.T) {
	path := writeConfig(t, "install:\n  permission_mode: setuid\n")

	_, err := New(Options{SystemConfigPath: path})

	var cfgErr *apperrors.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "system config", cfgErr.Aspect)
}

func TestNew_InvalidPermissionOverride(t *testing.T) {
	_, err := New(Options{
		SystemConfigPath: filepath.Join(t.TempDir(), "missing.yaml"),
		PermissionMode:   "setuid",
	})

	var cfgErr *apperrors.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "install.permission_mode", cfgErr.Aspect)
}
