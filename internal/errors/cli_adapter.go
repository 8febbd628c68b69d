package errors

import (
	"fmt"
	"log/slog"
)

// CLIErrorAdapter handles error presentation and exit code determination for the CLI.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
// The tool's contract is binary: 0 on success, 1 on any handled error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// FormatError formats an error for user-friendly display on stderr.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	if ie, ok := err.(*InjectError); ok {
		return a.formatInject(ie)
	}

	return fmt.Sprintf("Error: %v", err)
}

// formatInject formats an InjectError for display.
func (a *CLIErrorAdapter) formatInject(err *InjectError) string {
	if a.verbose {
		return err.Error()
	}

	msg := err.Message
	if path, ok := err.Context["path"]; ok {
		msg = fmt.Sprintf("%s: %v", msg, path)
	} else if spec, ok := err.Context["spec"]; ok {
		msg = fmt.Sprintf("%s: %v", msg, spec)
	}
	if err.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, err.Cause)
	}
	return fmt.Sprintf("Error: %s", msg)
}
