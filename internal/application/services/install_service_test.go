package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/reglet-dev/launchkit/internal/application/errors"
	"github.com/reglet-dev/launchkit/internal/domain/entities"
	"github.com/reglet-dev/launchkit/internal/domain/values"
)

type staticDirResolver struct {
	dir string
	err error
}

func (r staticDirResolver) ApplicationsDir(context.Context) (string, error) {
	return r.dir, r.err
}

// recordingPermissionSetter chmods like the real setter and records calls.
type recordingPermissionSetter struct {
	err   error
	paths []string
}

func (p *recordingPermissionSetter) MakeExecutable(_ context.Context, path string) error {
	p.paths = append(p.paths, path)
	if p.err != nil {
		return p.err
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.Chmod(path, info.Mode().Perm()|0o111)
}

func testEntry(t *testing.T) *entities.DesktopEntry {
	t.Helper()
	b, err := entities.NewBuilder("myapp", values.EntryTypeApplication, "My App", "/usr/bin/myapp")
	require.NoError(t, err)
	return b.Icon("myapp").Build()
}

func newTestInstallService(dir string, perms *recordingPermissionSetter, strict bool) *InstallService {
	return NewInstallService(staticDirResolver{dir: dir}, perms, strict, nil)
}

func TestInstallService_Install_Fresh(t *testing.T) {
	dir := t.TempDir()
	perms := &recordingPermissionSetter{}
	svc := newTestInstallService(dir, perms, false)
	entry := testEntry(t)

	result, err := svc.Install(context.Background(), entry, false)

	require.NoError(t, err)
	target := filepath.Join(dir, "myapp.desktop")
	assert.Equal(t, target, result.Path)
	assert.False(t, result.Overwritten)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, int64(len(entry.Render())), result.BytesWritten)
	assert.Equal(t, []string{target}, perms.paths)

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, entry.Render(), string(content))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o111), info.Mode().Perm()&0o111)
}

func TestInstallService_Install_ExistingWithoutOverwrite(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "myapp.desktop")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o600))
	perms := &recordingPermissionSetter{}
	svc := newTestInstallService(dir, perms, false)

	_, err := svc.Install(context.Background(), testEntry(t), false)

	require.ErrorIs(t, err, apperrors.ErrAlreadyExists)
	var existsErr *apperrors.AlreadyExistsError
	require.True(t, errors.As(err, &existsErr))
	assert.Equal(t, target, existsErr.Path)
	assert.Empty(t, perms.paths)

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "old", string(content))
}

func TestInstallService_Install_ExistingWithOverwrite(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "myapp.desktop")
	require.NoError(t, os.WriteFile(target, []byte("a much longer previous launcher body"), 0o600))
	svc := newTestInstallService(dir, &recordingPermissionSetter{}, false)
	entry := testEntry(t)

	_, err := svc.Install(context.Background(), entry, false)
	require.ErrorIs(t, err, apperrors.ErrAlreadyExists)

	result, err := svc.Install(context.Background(), entry, true)

	require.NoError(t, err)
	assert.True(t, result.Overwritten)
	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, entry.Render(), string(content))
}

func TestInstallService_Install_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	// A non-empty directory at the target cannot be removed or opened for writing.
	target := filepath.Join(dir, "myapp.desktop")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "child"), 0o755))
	perms := &recordingPermissionSetter{}
	svc := newTestInstallService(dir, perms, false)

	result, err := svc.Install(context.Background(), testEntry(t), true)

	require.ErrorIs(t, err, apperrors.ErrIO)
	assert.Nil(t, result)
	var ioErr *apperrors.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "create", ioErr.Op)
	assert.Equal(t, target, ioErr.Path)
	assert.Empty(t, perms.paths)
}

func TestInstallService_Install_MissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does", "not", "exist")
	svc := newTestInstallService(dir, &recordingPermissionSetter{}, false)

	_, err := svc.Install(context.Background(), testEntry(t), false)

	require.ErrorIs(t, err, apperrors.ErrEnvironment)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInstallService_Install_TargetDirIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "applications")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	svc := newTestInstallService(file, &recordingPermissionSetter{}, false)

	_, err := svc.Install(context.Background(), testEntry(t), false)

	require.ErrorIs(t, err, apperrors.ErrEnvironment)
}

func TestInstallService_Install_UnwritableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can write to read-only directories")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })
	svc := newTestInstallService(dir, &recordingPermissionSetter{}, false)

	_, err := svc.Install(context.Background(), testEntry(t), false)

	require.ErrorIs(t, err, apperrors.ErrEnvironment)
}

func TestInstallService_Install_ResolverFailure(t *testing.T) {
	svc := NewInstallService(staticDirResolver{err: errors.New("no home")}, &recordingPermissionSetter{}, false, nil)

	_, err := svc.Install(context.Background(), testEntry(t), false)

	require.ErrorIs(t, err, apperrors.ErrEnvironment)
}

func TestInstallService_Install_PermissionFailureIsWarning(t *testing.T) {
	dir := t.TempDir()
	perms := &recordingPermissionSetter{err: errors.New("chmod: command not found")}
	svc := newTestInstallService(dir, perms, false)

	result, err := svc.Install(context.Background(), testEntry(t), false)

	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "command not found")
	assert.FileExists(t, filepath.Join(dir, "myapp.desktop"))
}

func TestInstallService_Install_PermissionFailureStrict(t *testing.T) {
	dir := t.TempDir()
	perms := &recordingPermissionSetter{err: errors.New("exit status 1")}
	svc := newTestInstallService(dir, perms, true)

	result, err := svc.Install(context.Background(), testEntry(t), false)

	require.ErrorIs(t, err, apperrors.ErrPermission)
	require.NotNil(t, result)
	assert.FileExists(t, result.Path)
}

func TestInstallService_Install_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc := newTestInstallService(t.TempDir(), &recordingPermissionSetter{}, false)

	_, err := svc.Install(ctx, testEntry(t), false)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestInstallService_StatusAndUninstall(t *testing.T) {
	dir := t.TempDir()
	svc := newTestInstallService(dir, &recordingPermissionSetter{}, false)
	ctx := context.Background()
	name := values.MustNewFileName("myapp")

	status, err := svc.Status(ctx, name)
	require.NoError(t, err)
	assert.False(t, status.Installed)

	_, err = svc.Install(ctx, testEntry(t), false)
	require.NoError(t, err)

	status, err = svc.Status(ctx, name)
	require.NoError(t, err)
	assert.True(t, status.Installed)
	assert.True(t, status.Executable)
	assert.Equal(t, filepath.Join(dir, "myapp.desktop"), status.Path)

	removed, err := svc.Uninstall(ctx, name)
	require.NoError(t, err)
	assert.NoFileExists(t, removed)

	_, err = svc.Uninstall(ctx, name)
	assert.ErrorIs(t, err, apperrors.ErrNotInstalled)
}
