// Package apperrors defines application-level error types.
package apperrors

import (
	"errors"
	"fmt"
)

// Error kinds raised by the install use cases. Use errors.Is to test for them.
var (
	ErrEnvironment   = errors.New("environment error")
	ErrAlreadyExists = errors.New("already exists")
	ErrIO            = errors.New("i/o failure")
	ErrPermission    = errors.New("permission change failed")
	ErrNotInstalled  = errors.New("not installed")
)

// EnvironmentError indicates the install target directory is missing or unwritable.
type EnvironmentError struct {
	Cause   error
	Path    string
	Message string
}

func (e *EnvironmentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("environment error: %s %q: %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("environment error: %s %q", e.Message, e.Path)
}

func (e *EnvironmentError) Unwrap() error { return e.Cause }

// Is reports whether target is ErrEnvironment.
func (e *EnvironmentError) Is(target error) bool { return target == ErrEnvironment }

// NewEnvironmentError creates a new environment error.
func NewEnvironmentError(path, message string, cause error) *EnvironmentError {
	return &EnvironmentError{
		Path:    path,
		Message: message,
		Cause:   cause,
	}
}

// AlreadyExistsError indicates the target file exists and overwriting was not requested.
type AlreadyExistsError struct {
	Path string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("file %q already exists", e.Path)
}

// Is reports whether target is ErrAlreadyExists.
func (e *AlreadyExistsError) Is(target error) bool { return target == ErrAlreadyExists }

// NewAlreadyExistsError creates a new already-exists error.
func NewAlreadyExistsError(path string) *AlreadyExistsError {
	return &AlreadyExistsError{Path: path}
}

// IOError wraps a failed filesystem operation.
type IOError struct {
	Cause error
	Op    string
	Path  string
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Cause)
}

func (e *IOError) Unwrap() error { return e.Cause }

// Is reports whether target is ErrIO.
func (e *IOError) Is(target error) bool { return target == ErrIO }

// NewIOError creates a new I/O error.
func NewIOError(op, path string, cause error) *IOError {
	return &IOError{
		Op:    op,
		Path:  path,
		Cause: cause,
	}
}

// PermissionError indicates the file was written but could not be made executable.
type PermissionError struct {
	Cause error
	Path  string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("make %q executable: %v", e.Path, e.Cause)
}

func (e *PermissionError) Unwrap() error { return e.Cause }

// Is reports whether target is ErrPermission.
func (e *PermissionError) Is(target error) bool { return target == ErrPermission }

// NewPermissionError creates a new permission error.
func NewPermissionError(path string, cause error) *PermissionError {
	return &PermissionError{
		Path:  path,
		Cause: cause,
	}
}

// NotInstalledError indicates there is no installed entry with the given name.
type NotInstalledError struct {
	Path string
}

func (e *NotInstalledError) Error() string {
	return fmt.Sprintf("%q is not installed", e.Path)
}

// Is reports whether target is ErrNotInstalled.
func (e *NotInstalledError) Is(target error) bool { return target == ErrNotInstalled }

// NewNotInstalledError creates a new not-installed error.
func NewNotInstalledError(path string) *NotInstalledError {
	return &NotInstalledError{Path: path}
}

// ValidationError indicates manifest or filter validation failed.
type ValidationError struct {
	Field   string   // Field that failed validation
	Message string   // Error message
	Details []string // Additional details
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s: %s (%d issues)", e.Field, e.Message, len(e.Details))
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string, details ...string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Details: details,
	}
}

// ConfigurationError indicates system config or setup issue.
type ConfigurationError struct {
	Cause   error
	Aspect  string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error (%s): %s: %v", e.Aspect, e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error (%s): %s", e.Aspect, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(aspect, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		Aspect:  aspect,
		Message: message,
		Cause:   cause,
	}
}
