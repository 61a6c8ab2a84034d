// Package colors provides pre-configured color functions for CLI output.
package colors

import "github.com/fatih/color"

//nolint:gochecknoglobals // Immutable color definitions initialized at package load
var (
	// Warning formats text in yellow for warning messages.
	Warning = color.New(color.FgYellow).SprintFunc()

	// Error formats text in red for error messages.
	Error = color.New(color.FgRed).SprintFunc()

	// Success formats text in green for success messages.
	Success = color.New(color.FgGreen).SprintFunc()

	// Info formats text in cyan for informational messages.
	Info = color.New(color.FgCyan).SprintFunc()

	// FieldLabel formats field labels (e.g., "Token:", "Expires:") in cyan.
	FieldLabel = color.New(color.FgCyan).SprintFunc()

	// Active formats the active-push marker in green.
	Active = color.New(color.FgGreen).SprintFunc()

	// Expired formats the expired-push marker in red.
	Expired = color.New(color.FgRed).SprintFunc()
)
