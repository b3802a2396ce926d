// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the user-facing output of the cmdargs binary.
//
// # Key Types
//
//   - Reporter: help and version rendering from a manifest.Source
//   - Exit codes and error display helpers (text and JSON)
//   - Shared lipgloss styles with TTY and NO_COLOR aware color handling
//
// # Usage
//
//	rep := cli.NewReporter(source, parser.Registry(), os.Stdout)
//	if err := rep.RenderHelp(); err != nil {
//	    os.Exit(cli.HandleError(os.Stderr, err, false))
//	}
package cli
