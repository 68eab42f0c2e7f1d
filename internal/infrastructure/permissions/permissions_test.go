package permissions

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLauncher(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "myapp.desktop")
	require.NoError(t, os.WriteFile(path, []byte("[Desktop Entry]\n"), 0o644))
	require.NoError(t, os.Chmod(path, 0o644))
	return path
}

func assertExecutableByAll(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestModePermissionSetter(t *testing.T) {
	path := writeLauncher(t)

	err := NewModePermissionSetter().MakeExecutable(context.Background(), path)

	require.NoError(t, err)
	assertExecutableByAll(t, path)
}

func TestModePermissionSetter_MissingFile(t *testing.T) {
	err := NewModePermissionSetter().MakeExecutable(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestCommandPermissionSetter(t *testing.T) {
	if _, err := exec.LookPath("chmod"); err != nil {
		t.Skip("chmod not available")
	}
	path := writeLauncher(t)

	err := NewCommandPermissionSetter().MakeExecutable(context.Background(), path)

	require.NoError(t, err)
	assertExecutableByAll(t, path)
}

func TestCommandPermissionSetter_ReportsExitStatus(t *testing.T) {
	if _, err := exec.LookPath("chmod"); err != nil {
		t.Skip("chmod not available")
	}

	err := NewCommandPermissionSetter().MakeExecutable(context.Background(), filepath.Join(t.TempDir(), "nope"))

	require.Error(t, err)
	var exitErr *exec.ExitError
	assert.ErrorAs(t, err, &exitErr)
}

func TestCommandPermissionSetter_CommandNotFound(t *testing.T) {
	s := &CommandPermissionSetter{binary: "launchkit-no-such-chmod"}

	err := s.MakeExecutable(context.Background(), writeLauncher(t))

	assert.ErrorIs(t, err, exec.ErrNotFound)
}

func TestNew(t *testing.T) {
	s, err := New("")
	require.NoError(t, err)
	assert.IsType(t, &CommandPermissionSetter{}, s)

	s, err = New(ModeChmod)
	require.NoError(t, err)
	assert.IsType(t, &ModePermissionSetter{}, s)

	_, err = New("setuid")
	assert.Error(t, err)
}
