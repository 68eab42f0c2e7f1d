package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	apperrors "github.com/reglet-dev/launchkit/internal/application/errors"
	"github.com/reglet-dev/launchkit/internal/application/ports"
	"github.com/reglet-dev/launchkit/internal/domain/entities"
	"github.com/reglet-dev/launchkit/internal/domain/values"
)

// InstallResult describes a completed install.
type InstallResult struct {
	Path         string
	Warnings     []string
	BytesWritten int64
	Overwritten  bool
}

// InstallStatus describes whether a launcher is present in the applications directory.
type InstallStatus struct {
	Path       string
	Installed  bool
	Executable bool
}

// InstallService writes launchers into the per-user applications directory
// and makes them executable.
type InstallService struct {
	directories       ports.DirectoryResolver
	permissions       ports.PermissionSetter
	logger            *slog.Logger
	strictPermissions bool
}

// NewInstallService creates an install service.
// When strictPermissions is false, a failed permission change is reported
// as a warning on the result instead of an error.
func NewInstallService(
	directories ports.DirectoryResolver,
	permissions ports.PermissionSetter,
	strictPermissions bool,
	logger *slog.Logger,
) *InstallService {
	if logger == nil {
		logger = slog.Default()
	}
	return &InstallService{
		directories:       directories,
		permissions:       permissions,
		strictPermissions: strictPermissions,
		logger:            logger,
	}
}

// Install writes entry to <applications dir>/<file name>.desktop.
//
// An existing file is only replaced when overwrite is true. Without
// overwrite the file is created exclusively, so a concurrent creator makes
// this call fail with ErrAlreadyExists rather than being clobbered.
func (s *InstallService) Install(ctx context.Context, entry *entities.DesktopEntry, overwrite bool) (*InstallResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir, err := s.writableDir(ctx)
	if err != nil {
		return nil, err
	}

	target := filepath.Join(dir, entry.FileName().DesktopFile())
	result := &InstallResult{Path: target}

	switch _, err := os.Lstat(target); {
	case err == nil:
		if !overwrite {
			return nil, apperrors.NewAlreadyExistsError(target)
		}
		// A failed removal shows up as a write failure below.
		if rmErr := os.Remove(target); rmErr != nil {
			s.logger.Debug("failed to remove existing launcher", "path", target, "error", rmErr)
		}
		result.Overwritten = true
	case !errors.Is(err, fs.ErrNotExist):
		return nil, apperrors.NewIOError("stat", target, err)
	}

	n, err := writeEntry(target, entry, overwrite)
	if err != nil {
		return nil, err
	}
	result.BytesWritten = n

	if err := s.permissions.MakeExecutable(ctx, target); err != nil {
		if s.strictPermissions {
			return result, apperrors.NewPermissionError(target, err)
		}
		s.logger.Warn("launcher written but not made executable", "path", target, "error", err)
		result.Warnings = append(result.Warnings, apperrors.NewPermissionError(target, err).Error())
	}

	s.logger.Info("launcher installed",
		"path", target,
		"bytes", n,
		"overwritten", result.Overwritten,
	)
	return result, nil
}

// Uninstall removes an installed launcher.
func (s *InstallService) Uninstall(ctx context.Context, fileName values.FileName) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	target, err := s.TargetPath(ctx, fileName)
	if err != nil {
		return "", err
	}

	if err := os.Remove(target); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return target, apperrors.NewNotInstalledError(target)
		}
		return target, apperrors.NewIOError("remove", target, err)
	}

	s.logger.Info("launcher removed", "path", target)
	return target, nil
}

// Status reports whether a launcher with the given name is installed.
func (s *InstallService) Status(ctx context.Context, fileName values.FileName) (*InstallStatus, error) {
	target, err := s.TargetPath(ctx, fileName)
	if err != nil {
		return nil, err
	}

	status := &InstallStatus{Path: target}
	info, err := os.Stat(target)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return status, nil
	case err != nil:
		return nil, apperrors.NewIOError("stat", target, err)
	}

	status.Installed = info.Mode().IsRegular()
	status.Executable = info.Mode().Perm()&0o111 == 0o111
	return status, nil
}

// TargetPath returns the path a launcher with the given name is installed at.
func (s *InstallService) TargetPath(ctx context.Context, fileName values.FileName) (string, error) {
	dir, err := s.directories.ApplicationsDir(ctx)
	if err != nil {
		return "", apperrors.NewEnvironmentError(dir, "cannot resolve applications directory", err)
	}
	return filepath.Join(dir, fileName.DesktopFile()), nil
}

// writableDir resolves the applications directory and checks it is an
// existing, writable directory.
func (s *InstallService) writableDir(ctx context.Context) (string, error) {
	dir, err := s.directories.ApplicationsDir(ctx)
	if err != nil {
		return "", apperrors.NewEnvironmentError(dir, "cannot resolve applications directory", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return "", apperrors.NewEnvironmentError(dir, "directory does not exist", err)
	}
	if !info.IsDir() {
		return "", apperrors.NewEnvironmentError(dir, "not a directory", nil)
	}
	if err := unix.Access(dir, unix.W_OK); err != nil {
		return "", apperrors.NewEnvironmentError(dir, "directory is not writable", err)
	}

	return dir, nil
}

func writeEntry(target string, entry *entities.DesktopEntry, overwrite bool) (int64, error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}

	//nolint:gosec // G302: launchers are world-readable; exec bits are added afterwards
	f, err := os.OpenFile(target, flags, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return 0, apperrors.NewAlreadyExistsError(target)
		}
		return 0, apperrors.NewIOError("create", target, err)
	}

	n, err := entry.WriteTo(f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return n, apperrors.NewIOError("write", target, fmt.Errorf("after %d bytes: %w", n, err))
	}
	return n, nil
}
