// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package argparse declares command-line commands and scans raw argument
// vectors into an ordered mapping of command names to values.
//
// # Key Types
//
//   - Command: a declared option with name, shortcut, description and default
//   - Registry: owned, append-only set of Commands with unique names/shortcuts
//   - Scanner: single-pass grouping of tokens under "--name" long flags
//   - ParsedArguments: ordered name -> Value mapping produced by a scan
//   - Parser: registry plus an injected token vector
//
// # Usage
//
//	p := argparse.New(os.Args[1:])
//	if err := p.Register("hello", argparse.CommandOptions{Shortcut: "n"}); err != nil {
//	    return err
//	}
//	args, err := p.Parse()
//	if err != nil {
//	    return err
//	}
//	if v, ok := args.Get("hello"); ok {
//	    fmt.Println(v.Strings())
//	}
//
// Values are never coerced: every value is the raw token text. A long flag
// followed by no value yields boolean true only under the rules described on
// FlagPolicy.
package argparse
