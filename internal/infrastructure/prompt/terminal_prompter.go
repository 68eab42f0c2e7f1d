// Package prompt asks the user for confirmation on the terminal.
package prompt

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// TerminalPrompter asks whether an installed launcher may be replaced.
type TerminalPrompter struct {
	stdin   *os.File
	confirm func(title, description string) (bool, error)
}

// NewTerminalPrompter creates a prompter reading from stdin.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{
		stdin:   os.Stdin,
		confirm: huhConfirm,
	}
}

// IsInteractive reports whether stdin is a terminal.
func (p *TerminalPrompter) IsInteractive() bool {
	return p.stdin != nil && term.IsTerminal(int(p.stdin.Fd())) //nolint:gosec // G115: file descriptors fit in int
}

// ConfirmOverwrite asks whether the launcher at path may be replaced.
// Declining is not an error.
func (p *TerminalPrompter) ConfirmOverwrite(path string) (bool, error) {
	ok, err := p.confirm(
		"Replace existing launcher?",
		fmt.Sprintf("%s already exists.", path),
	)
	if err != nil {
		return false, fmt.Errorf("confirmation aborted: %w", err)
	}
	return ok, nil
}

// FormatNonInteractiveError explains how to replace a launcher without a prompt.
func (p *TerminalPrompter) FormatNonInteractiveError(cause error) error {
	return fmt.Errorf("%w\n\nTo replace it:\n  1. Run interactively and confirm when prompted\n  2. Use --overwrite", cause)
}

func huhConfirm(title, description string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Replace").
		Negative("Keep").
		Value(&ok).
		Run()
	return ok, err
}
