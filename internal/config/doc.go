// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for the cmdargs binary.
//
// # Key Types
//
//   - Config: logging, output and parser settings
//   - ValidateErrors: every validation failure found in one pass
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (CMDARGS_*)
//   - $CMDARGS_CONFIG or ~/.cmdargs/config.toml
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	strict := cfg.Parser.StrictFlags
package config
