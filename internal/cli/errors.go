// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Exit codes and error display for the cmdargs binary.
//
// STANDARDIZED PATTERN:
//   - Library packages ALWAYS return errors, never print them
//   - The binary decides how to display them and which exit code to use
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jeranaias/cmdargs/internal/argparse"
	"github.com/jeranaias/cmdargs/internal/config"
	"github.com/jeranaias/cmdargs/internal/manifest"
)

// =============================================================================
// EXIT CODES - Specific codes for different error categories
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command declarations or arguments
	ExitUsageError = 2
	// ExitConfigError indicates a configuration or manifest error
	ExitConfigError = 3
)

// GetExitCode determines the appropriate exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if argparse.IsRegistrationError(err) || errors.Is(err, argparse.ErrNoCommands) {
		return ExitUsageError
	}

	if errors.Is(err, manifest.ErrUnreadable) {
		return ExitConfigError
	}

	if errors.Is(err, config.ErrInvalid) {
		return ExitConfigError
	}

	return ExitGeneralError
}

// errorType names the error category in JSON output.
func errorType(err error) string {
	switch {
	case errors.Is(err, argparse.ErrMissingName):
		return "missing_name"
	case errors.Is(err, argparse.ErrInvalidType):
		return "invalid_type"
	case errors.Is(err, argparse.ErrDuplicateName):
		return "duplicate_name"
	case errors.Is(err, argparse.ErrDuplicateShortcut):
		return "duplicate_shortcut"
	case errors.Is(err, argparse.ErrNoCommands):
		return "no_commands_registered"
	case errors.Is(err, manifest.ErrUnreadable):
		return "metadata_unreadable"
	case errors.Is(err, config.ErrInvalid):
		return "invalid_config"
	default:
		return "generic_error"
	}
}

// =============================================================================
// ERROR DISPLAY HELPERS
// =============================================================================

// DisplayError writes err to w in a consistent format.
// In JSON mode, outputs a structured JSON object instead.
func DisplayError(w io.Writer, err error, jsonMode bool) {
	if err == nil {
		return
	}

	if jsonMode {
		DisplayErrorJSON(w, err)
		return
	}

	fmt.Fprintf(w, "%s %s\n", RenderConditional(ErrorStyle, "[ERROR]"), err.Error())
}

// DisplayErrorJSON writes err to w as JSON.
func DisplayErrorJSON(w io.Writer, err error) {
	output := map[string]interface{}{
		"error":      err.Error(),
		"error_type": errorType(err),
		"exit_code":  GetExitCode(err),
		"success":    false,
	}

	var regErr *argparse.RegistrationError
	if errors.As(err, &regErr) {
		output["command"] = regErr.Name
		output["field"] = regErr.Field
	}

	var mdErr *manifest.UnreadableError
	if errors.As(err, &mdErr) {
		output["path"] = mdErr.Path
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	_ = encoder.Encode(output)
}

// HandleError displays err and returns its exit code.
//
// Example:
//
//	if err := run(); err != nil {
//	    os.Exit(cli.HandleError(os.Stderr, err, false))
//	}
func HandleError(w io.Writer, err error, jsonMode bool) int {
	if err == nil {
		return ExitSuccess
	}
	DisplayError(w, err, jsonMode)
	return GetExitCode(err)
}
