// Package permissions marks installed launcher files executable.
package permissions

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/reglet-dev/launchkit/internal/application/ports"
)

// Modes accepted by New.
const (
	ModeCommand = "command"
	ModeChmod   = "mode"
)

// CommandPermissionSetter runs "chmod a+x <path>" and reports its exit status.
type CommandPermissionSetter struct {
	binary string
}

// NewCommandPermissionSetter creates a setter that shells out to chmod.
func NewCommandPermissionSetter() *CommandPermissionSetter {
	return &CommandPermissionSetter{binary: "chmod"}
}

// MakeExecutable implements ports.PermissionSetter.
func (s *CommandPermissionSetter) MakeExecutable(ctx context.Context, path string) error {
	//nolint:gosec // G204: binary is fixed at construction, path is passed as a single argument
	cmd := exec.CommandContext(ctx, s.binary, "a+x", path)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s a+x failed: %w: %s", s.binary, err, msg)
		}
		return fmt.Errorf("%s a+x failed: %w", s.binary, err)
	}
	return nil
}

// ModePermissionSetter adds the execute bits with a chmod(2) call.
type ModePermissionSetter struct{}

// NewModePermissionSetter creates a setter that calls os.Chmod.
func NewModePermissionSetter() *ModePermissionSetter {
	return &ModePermissionSetter{}
}

// MakeExecutable implements ports.PermissionSetter.
func (s *ModePermissionSetter) MakeExecutable(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}
	//nolint:gosec // G302: launchers must be executable by everyone
	if err := os.Chmod(path, info.Mode().Perm()|0o111); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	return nil
}

// New returns the setter for a configured mode. An empty mode selects ModeCommand.
func New(mode string) (ports.PermissionSetter, error) {
	switch mode {
	case "", ModeCommand:
		return NewCommandPermissionSetter(), nil
	case ModeChmod:
		return NewModePermissionSetter(), nil
	default:
		return nil, fmt.Errorf("unknown permission mode %q (valid: %s, %s)", mode, ModeCommand, ModeChmod)
	}
}
